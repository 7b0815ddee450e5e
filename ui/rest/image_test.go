package rest

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	domainImage "github.com/alien2112/menu-rwad-sub005/domains/image"
	"github.com/alien2112/menu-rwad-sub005/ui/rest/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingImageService struct {
	lastID   string
	lastOpts domainImage.RenderOptions
}

func (s *recordingImageService) Upload(_ context.Context, _, _ string, _ []byte) (*domainImage.Record, error) {
	return nil, nil
}

func (s *recordingImageService) List(_ context.Context) ([]domainImage.Record, error) {
	return nil, nil
}

func (s *recordingImageService) Render(_ context.Context, id string, opts domainImage.RenderOptions) (*domainImage.Rendered, error) {
	s.lastID = id
	s.lastOpts = opts
	return &domainImage.Rendered{ContentType: "image/png", Data: []byte{1}}, nil
}

func (s *recordingImageService) Delete(_ context.Context, _ string) error { return nil }

func newImageApp() (*fiber.App, *recordingImageService) {
	svc := &recordingImageService{}
	app := fiber.New()
	app.Use(middleware.Recovery())
	api := app.Group("/api", middleware.CacheHeaders(24*time.Hour))
	InitRestImage(api, api, svc)
	return app, svc
}

func TestRenderPassesAllVariantParameters(t *testing.T) {
	app, svc := newImageApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/images/x1?w=100&h=100&q=85&f=webp", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	_, _ = io.ReadAll(resp.Body)

	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "x1", svc.lastID)
	assert.Equal(t, 100, svc.lastOpts.Width)
	assert.Equal(t, 100, svc.lastOpts.Height)
	assert.Equal(t, 85, svc.lastOpts.Quality)
	assert.Equal(t, "webp", svc.lastOpts.Format, "the f query parameter selects the output format")
}

func TestRenderAcceptsFormatAlias(t *testing.T) {
	app, svc := newImageApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/images/x1?format=png", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "png", svc.lastOpts.Format)
}

func TestRenderFPrecedesFormatAlias(t *testing.T) {
	app, svc := newImageApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/images/x1?f=webp&format=png", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "webp", svc.lastOpts.Format)
}
