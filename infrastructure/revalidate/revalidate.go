// Package revalidate delivers path/tag invalidation signals to the edge
// layer that caches rendered pages. The literal path and tag strings are a
// contract with that consumer; they must match what the invalidation
// registry produces.
package revalidate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/alien2112/menu-rwad-sub005/pkg/taskpool"
	"github.com/sirupsen/logrus"
)

// Revalidator is the collaborator the invalidation registry talks to.
// Implementations must be safe for concurrent use and must never block the
// caller on network I/O.
type Revalidator interface {
	InvalidatePaths(ctx context.Context, paths ...string)
	InvalidateTags(ctx context.Context, tags ...string)
}

// Noop is the default when no edge layer is configured.
type Noop struct{}

func (Noop) InvalidatePaths(ctx context.Context, paths ...string) {}
func (Noop) InvalidateTags(ctx context.Context, tags ...string)   {}

// Webhook POSTs revalidation requests to a configured endpoint. Delivery
// goes through a keyed worker pool so signals for the same path or tag stay
// ordered while the HTTP request that triggered them is never blocked.
type Webhook struct {
	endpoint string
	secret   string
	pool     *taskpool.Pool
	client   *http.Client
}

type webhookPayload struct {
	Paths []string `json:"paths,omitempty"`
	Tags  []string `json:"tags,omitempty"`
}

func NewWebhook(endpoint, secret string, pool *taskpool.Pool) *Webhook {
	return &Webhook{
		endpoint: endpoint,
		secret:   secret,
		pool:     pool,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (w *Webhook) InvalidatePaths(ctx context.Context, paths ...string) {
	if len(paths) == 0 {
		return
	}
	w.dispatch("path:"+strings.Join(paths, ","), webhookPayload{Paths: paths})
}

func (w *Webhook) InvalidateTags(ctx context.Context, tags ...string) {
	if len(tags) == 0 {
		return
	}
	w.dispatch("tag:"+strings.Join(tags, ","), webhookPayload{Tags: tags})
}

func (w *Webhook) dispatch(key string, payload webhookPayload) {
	w.pool.Dispatch(taskpool.Job{
		Key: key,
		Handler: func(ctx context.Context) error {
			return w.post(ctx, payload)
		},
	})
}

func (w *Webhook) post(ctx context.Context, payload webhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if w.secret != "" {
		req.Header.Set("Authorization", "Bearer "+w.secret)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("revalidate webhook returned %d", resp.StatusCode)
	}
	return nil
}

// Multi fans a signal out to several revalidators.
type Multi []Revalidator

func (m Multi) InvalidatePaths(ctx context.Context, paths ...string) {
	for _, r := range m {
		r.InvalidatePaths(ctx, paths...)
	}
}

func (m Multi) InvalidateTags(ctx context.Context, tags ...string) {
	for _, r := range m {
		r.InvalidateTags(ctx, tags...)
	}
}

// Log wraps another revalidator with debug logging; used when APP_DEBUG is
// on to trace which mutation produced which signal.
type Log struct {
	Next Revalidator
}

func (l Log) InvalidatePaths(ctx context.Context, paths ...string) {
	logrus.Debugf("[REVALIDATE] paths=%v", paths)
	l.Next.InvalidatePaths(ctx, paths...)
}

func (l Log) InvalidateTags(ctx context.Context, tags ...string) {
	logrus.Debugf("[REVALIDATE] tags=%v", tags)
	l.Next.InvalidateTags(ctx, tags...)
}
