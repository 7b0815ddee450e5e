package revalidate

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/alien2112/menu-rwad-sub005/pkg/taskpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhook_PostsPathsAndTags(t *testing.T) {
	var mu sync.Mutex
	var bodies []webhookPayload
	var auth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		var p webhookPayload
		require.NoError(t, json.Unmarshal(data, &p))
		mu.Lock()
		bodies = append(bodies, p)
		auth = r.Header.Get("Authorization")
		mu.Unlock()
	}))
	defer srv.Close()

	pool := taskpool.New(2, 16)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	pool.Start(ctx)

	hook := NewWebhook(srv.URL, "s3cret", pool)
	hook.InvalidatePaths(ctx, "/", "/offers")
	hook.InvalidateTags(ctx, "offers")
	pool.Stop()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, bodies, 2)
	assert.Equal(t, "Bearer s3cret", auth)

	var gotPaths, gotTags bool
	for _, b := range bodies {
		if len(b.Paths) > 0 {
			assert.Equal(t, []string{"/", "/offers"}, b.Paths)
			gotPaths = true
		}
		if len(b.Tags) > 0 {
			assert.Equal(t, []string{"offers"}, b.Tags)
			gotTags = true
		}
	}
	assert.True(t, gotPaths)
	assert.True(t, gotTags)
}

func TestWebhook_DoesNotBlockCaller(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	pool := taskpool.New(1, 16)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	pool.Start(ctx)
	t.Cleanup(pool.Stop)

	hook := NewWebhook(srv.URL, "", pool)

	start := time.Now()
	hook.InvalidatePaths(ctx, "/")
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}

func TestNoopAndMulti(t *testing.T) {
	ctx := context.Background()

	assert.NotPanics(t, func() {
		var r Revalidator = Noop{}
		r.InvalidatePaths(ctx, "/")
		r.InvalidateTags(ctx, "homepage")
	})

	rec := &recorder{}
	m := Multi{Noop{}, rec}
	m.InvalidateTags(ctx, "signature-drinks")
	assert.Equal(t, []string{"signature-drinks"}, rec.tags)
}

type recorder struct {
	mu    sync.Mutex
	paths []string
	tags  []string
}

func (r *recorder) InvalidatePaths(ctx context.Context, paths ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, paths...)
}

func (r *recorder) InvalidateTags(ctx context.Context, tags ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tags = append(r.tags, tags...)
}
