package service

import (
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog"

	"github.com/forumapp/forumcli/internal/core/domain"
	"github.com/forumapp/forumcli/internal/core/ports"
	"github.com/forumapp/forumcli/internal/metrics"
)

// MaxUploadSize is the image size cap enforced before any bytes leave the
// client. The server enforces the same limit and answers 413.
const MaxUploadSize = 10 << 20

// UploadService attaches images to posts.
type UploadService struct {
	uploads ports.UploadGateway
	log     zerolog.Logger
}

func NewUploadService(uploads ports.UploadGateway, log zerolog.Logger) *UploadService {
	return &UploadService{uploads: uploads, log: log}
}

// UploadImage streams the file to the backend and returns the stored URL.
// Files over MaxUploadSize are rejected locally without a network call.
func (s *UploadService) UploadImage(ctx context.Context, filename string, r io.Reader, size int64) (string, error) {
	if size > MaxUploadSize {
		metrics.UploadsTotal.WithLabelValues("too_large").Inc()
		return "", domain.ErrUploadTooLarge
	}

	url, err := s.uploads.UploadImage(ctx, filename, r, size)
	if err != nil {
		if errors.Is(err, domain.ErrUploadTooLarge) {
			metrics.UploadsTotal.WithLabelValues("too_large").Inc()
		} else {
			metrics.UploadsTotal.WithLabelValues("error").Inc()
		}
		return "", err
	}

	metrics.UploadsTotal.WithLabelValues("ok").Inc()
	s.log.Info().Str("file", filename).Int64("bytes", size).Str("url", url).Msg("image uploaded")
	return url, nil
}

func (s *UploadService) DeleteImage(ctx context.Context, url string) error {
	if url == "" {
		return domain.ErrInvalidTarget
	}
	return s.uploads.DeleteImage(ctx, url)
}
