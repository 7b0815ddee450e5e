package usecase

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	domainCache "github.com/alien2112/menu-rwad-sub005/domains/cache"
	domainImage "github.com/alien2112/menu-rwad-sub005/domains/image"
	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"

	// register webp decoding for uploaded sources
	_ "golang.org/x/image/webp"
)

const (
	maxRenderEdge  = 4096
	defaultQuality = 80
)

type imageService struct {
	repo  domainImage.IImageRepository
	cache domainCache.Store
	inv   *InvalidationRegistry
	dir   string
}

func NewImageService(repo domainImage.IImageRepository, cache domainCache.Store, inv *InvalidationRegistry, dir string) domainImage.IImageUsecase {
	return &imageService{repo: repo, cache: cache, inv: inv, dir: dir}
}

func (s *imageService) Upload(ctx context.Context, fileName, contentType string, data []byte) (*domainImage.Record, error) {
	// reject anything the resize pipeline cannot decode later
	if _, err := imaging.Decode(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("decode upload: %w", err)
	}

	rec := &domainImage.Record{
		FileName:    fileName,
		ContentType: contentType,
		SizeBytes:   int64(len(data)),
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(s.sourcePath(rec.ID), data, 0o644); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"image_id": rec.ID,
		"size":     rec.SizeBytes,
	}).Info("[IMAGE] uploaded")
	return rec, nil
}

func (s *imageService) List(ctx context.Context) ([]domainImage.Record, error) {
	return s.repo.List(ctx)
}

// Render is a read-through over the rendered-variant cache: the key carries
// id, width, height, quality and format, so distinct requests never collide.
func (s *imageService) Render(ctx context.Context, id string, opts domainImage.RenderOptions) (*domainImage.Rendered, error) {
	opts, err := normalizeRenderOptions(opts)
	if err != nil {
		return nil, err
	}

	key := domainCache.KeyImage(id, opts.Width, opts.Height, opts.Quality, opts.Format)
	out, _, err := domainCache.Read(ctx, s.cache, key, domainCache.ImageTTL(),
		func(ctx context.Context) (*domainImage.Rendered, error) {
			return s.render(ctx, id, opts)
		})
	return out, err
}

func (s *imageService) render(ctx context.Context, id string, opts domainImage.RenderOptions) (*domainImage.Rendered, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	src, err := imaging.Open(s.sourcePath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domainImage.ErrNotFound
		}
		return nil, err
	}

	resized := src
	switch {
	case opts.Width > 0 && opts.Height > 0:
		resized = imaging.Fit(src, opts.Width, opts.Height, imaging.Lanczos)
	case opts.Width > 0 || opts.Height > 0:
		// zero edge preserves aspect ratio
		resized = imaging.Resize(src, opts.Width, opts.Height, imaging.Lanczos)
	}

	var buf bytes.Buffer
	contentType := "image/" + opts.Format
	switch opts.Format {
	case "jpeg":
		err = imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(opts.Quality))
	case "png", "webp":
		// no webp encoder in the pipeline; webp requests get lossless png
		err = imaging.Encode(&buf, resized, imaging.PNG)
		contentType = "image/png"
	case "gif":
		err = imaging.Encode(&buf, resized, imaging.GIF)
	}
	if err != nil {
		return nil, err
	}

	return &domainImage.Rendered{ContentType: contentType, Data: buf.Bytes()}, nil
}

func (s *imageService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := os.Remove(s.sourcePath(id)); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).WithField("image_id", id).Warn("[IMAGE] source file removal failed")
	}

	s.inv.Image(ctx, id)
	return nil
}

func (s *imageService) sourcePath(id string) string {
	return filepath.Join(s.dir, id)
}

func normalizeRenderOptions(opts domainImage.RenderOptions) (domainImage.RenderOptions, error) {
	if opts.Width < 0 || opts.Height < 0 || opts.Width > maxRenderEdge || opts.Height > maxRenderEdge {
		return opts, domainImage.ErrBadDimensions
	}
	if opts.Quality <= 0 || opts.Quality > 100 {
		opts.Quality = defaultQuality
	}

	opts.Format = strings.ToLower(opts.Format)
	switch opts.Format {
	case "":
		opts.Format = "jpeg"
	case "jpg":
		opts.Format = "jpeg"
	case "jpeg", "png", "gif", "webp":
	default:
		return opts, domainImage.ErrBadFormat
	}
	return opts, nil
}
