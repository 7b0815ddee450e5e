// Package taskpool is a small keyed worker pool. Jobs that share a key are
// hashed to the same worker, so they run in dispatch order relative to each
// other; jobs with different keys run in parallel. The revalidation layer
// uses it to keep signals for the same path/tag ordered while never blocking
// the request path.
package taskpool

import (
	"context"
	"hash/fnv"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// Job is one unit of background work. Key selects the worker; an empty key
// is valid and simply pins to worker 0.
type Job struct {
	Key     string
	Handler func(ctx context.Context) error
}

// Stats is a point-in-time snapshot of pool counters.
type Stats struct {
	NumWorkers int   `json:"num_workers"`
	QueueSize  int   `json:"queue_size"`
	Dispatched int64 `json:"dispatched"`
	Processed  int64 `json:"processed"`
	Dropped    int64 `json:"dropped"`
	Errors     int64 `json:"errors"`
}

type Pool struct {
	numWorkers int
	queueSize  int
	queues     []chan Job
	wg         sync.WaitGroup
	stopOnce   sync.Once
	stopped    atomic.Bool

	dispatched atomic.Int64
	processed  atomic.Int64
	dropped    atomic.Int64
	errors     atomic.Int64
}

func New(numWorkers, queueSize int) *Pool {
	if numWorkers <= 0 {
		numWorkers = 4
	}
	if queueSize <= 0 {
		queueSize = 256
	}
	return &Pool{
		numWorkers: numWorkers,
		queueSize:  queueSize,
		queues:     make([]chan Job, numWorkers),
	}
}

// Start launches the workers. They stop when ctx is cancelled or Stop is
// called.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.numWorkers; i++ {
		queue := make(chan Job, p.queueSize)
		p.queues[i] = queue

		p.wg.Add(1)
		go func(id int, queue chan Job) {
			defer p.wg.Done()
			for job := range queue {
				if err := job.Handler(ctx); err != nil {
					p.errors.Add(1)
					logrus.Warnf("[TASK_POOL] Worker %d job %q failed: %v", id, job.Key, err)
				}
				p.processed.Add(1)
			}
		}(i, queue)
	}
	logrus.Infof("[TASK_POOL] Started with %d workers, queue size %d", p.numWorkers, p.queueSize)
}

// TryDispatch enqueues a job without blocking and reports whether it was
// accepted. A full queue or a stopped pool drops the job.
func (p *Pool) TryDispatch(job Job) bool {
	if p.stopped.Load() {
		p.dropped.Add(1)
		return false
	}
	p.dispatched.Add(1)

	shard := p.shardFor(job.Key)
	accepted := func() (ok bool) {
		// Send on a closed queue panics if Stop races with dispatch; count
		// that as a drop instead of crashing the caller.
		defer func() {
			if r := recover(); r != nil {
				ok = false
			}
		}()
		select {
		case p.queues[shard] <- job:
			return true
		default:
			return false
		}
	}()

	if !accepted {
		p.dropped.Add(1)
		logrus.Warnf("[TASK_POOL] Worker %d queue full, dropping job %q", shard, job.Key)
	}
	return accepted
}

// Dispatch is TryDispatch with the result discarded.
func (p *Pool) Dispatch(job Job) {
	_ = p.TryDispatch(job)
}

// Stop drains and stops all workers.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		p.stopped.Store(true)
		for _, queue := range p.queues {
			close(queue)
		}
		p.wg.Wait()
		logrus.Info("[TASK_POOL] All workers stopped")
	})
}

func (p *Pool) Stats() Stats {
	return Stats{
		NumWorkers: p.numWorkers,
		QueueSize:  p.queueSize,
		Dispatched: p.dispatched.Load(),
		Processed:  p.processed.Load(),
		Dropped:    p.dropped.Load(),
		Errors:     p.errors.Load(),
	}
}

func (p *Pool) shardFor(key string) int {
	h := fnv.New32a()
	h.Write([]byte(key))
	return int(h.Sum32() % uint32(p.numWorkers))
}
