package usecase

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	domainCache "github.com/alien2112/menu-rwad-sub005/domains/cache"
	domainImage "github.com/alien2112/menu-rwad-sub005/domains/image"
	"github.com/alien2112/menu-rwad-sub005/infrastructure/memcache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeImageRepo struct {
	records map[string]domainImage.Record
}

func (f *fakeImageRepo) Create(_ context.Context, r *domainImage.Record) error {
	if r.ID == "" {
		r.ID = "img-1"
	}
	f.records[r.ID] = *r
	return nil
}

func (f *fakeImageRepo) GetByID(_ context.Context, id string) (*domainImage.Record, error) {
	r, ok := f.records[id]
	if !ok {
		return nil, domainImage.ErrNotFound
	}
	return &r, nil
}

func (f *fakeImageRepo) List(_ context.Context) ([]domainImage.Record, error) { return nil, nil }

func (f *fakeImageRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.records[id]; !ok {
		return domainImage.ErrNotFound
	}
	delete(f.records, id)
	return nil
}

func testPNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newImageFixture(t *testing.T) (*memcache.Cache, domainImage.IImageUsecase, string, string) {
	t.Helper()

	dir := t.TempDir()
	repo := &fakeImageRepo{records: map[string]domainImage.Record{}}
	store := memcache.New()
	svc := NewImageService(repo, store, NewInvalidationRegistry(store, nil), dir)

	rec, err := svc.Upload(context.Background(), "photo.png", "image/png", testPNG(t, 200, 100))
	require.NoError(t, err)
	return store, svc, rec.ID, dir
}

func TestRenderResizesAndCaches(t *testing.T) {
	ctx := context.Background()
	store, svc, id, _ := newImageFixture(t)

	out, err := svc.Render(ctx, id, domainImage.RenderOptions{Width: 50, Height: 50, Quality: 80, Format: "png"})
	require.NoError(t, err)
	assert.Equal(t, "image/png", out.ContentType)

	decoded, err := png.Decode(bytes.NewReader(out.Data))
	require.NoError(t, err)
	// Fit preserves aspect ratio inside the 50x50 box
	assert.Equal(t, 50, decoded.Bounds().Dx())
	assert.Equal(t, 25, decoded.Bounds().Dy())

	_, hit := store.Get(ctx, domainCache.KeyImage(id, 50, 50, 80, "png"))
	assert.True(t, hit, "rendered bytes must be cached")
}

func TestRenderDistinctOptionsDistinctKeys(t *testing.T) {
	ctx := context.Background()
	store, svc, id, _ := newImageFixture(t)

	_, err := svc.Render(ctx, id, domainImage.RenderOptions{Width: 50, Height: 50, Quality: 80, Format: "png"})
	require.NoError(t, err)
	_, err = svc.Render(ctx, id, domainImage.RenderOptions{Width: 60, Height: 50, Quality: 80, Format: "png"})
	require.NoError(t, err)

	keys := store.Keys(ctx)
	assert.Len(t, keys, 2, "every differing render option gets its own entry")
}

func TestRenderServesFromCacheWithoutSource(t *testing.T) {
	ctx := context.Background()
	_, svc, id, dir := newImageFixture(t)

	first, err := svc.Render(ctx, id, domainImage.RenderOptions{Width: 40, Format: "jpeg"})
	require.NoError(t, err)

	// remove the source file: a warm cache must still answer
	require.NoError(t, os.Remove(filepath.Join(dir, id)))

	second, err := svc.Render(ctx, id, domainImage.RenderOptions{Width: 40, Format: "jpeg"})
	require.NoError(t, err)
	assert.Equal(t, first.Data, second.Data)
}

func TestRenderValidation(t *testing.T) {
	ctx := context.Background()
	_, svc, id, _ := newImageFixture(t)

	_, err := svc.Render(ctx, id, domainImage.RenderOptions{Width: -1})
	assert.ErrorIs(t, err, domainImage.ErrBadDimensions)

	_, err = svc.Render(ctx, id, domainImage.RenderOptions{Width: 10, Format: "bmp"})
	assert.ErrorIs(t, err, domainImage.ErrBadFormat)

	_, err = svc.Render(ctx, "missing", domainImage.RenderOptions{Width: 10})
	assert.ErrorIs(t, err, domainImage.ErrNotFound)
}

func TestRenderWebpFallsBackToPNG(t *testing.T) {
	ctx := context.Background()
	_, svc, id, _ := newImageFixture(t)

	out, err := svc.Render(ctx, id, domainImage.RenderOptions{Width: 30, Format: "webp"})
	require.NoError(t, err)
	assert.Equal(t, "image/png", out.ContentType)
}

func TestDeleteClearsRenderedVariants(t *testing.T) {
	ctx := context.Background()
	store, svc, id, _ := newImageFixture(t)

	_, err := svc.Render(ctx, id, domainImage.RenderOptions{Width: 50, Format: "png"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, id))
	assert.Empty(t, store.Keys(ctx), "every rendered variant must be invalidated")
}
