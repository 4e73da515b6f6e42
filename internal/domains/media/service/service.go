package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"

	"resort/infras/otel"
	"resort/infras/s3"
	"resort/internal/domains/media/model"
	"resort/internal/domains/media/model/dto"
	"resort/shared/constant"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ErrDeleteImages = errors.New("failed to delete images")

// Media stores images in the object store. Other services use Store and
// DeleteLater for the images of their own records.
type Media interface {
	Upload(ctx context.Context, req dto.UploadImageRequest) (dto.UploadImageResponse, error)
	Store(ctx context.Context, directory string, file multipart.File, header *multipart.FileHeader) (string, error)
	Delete(ctx context.Context, req dto.DeleteImagesRequest) error
	DeleteLater(ctx context.Context, urls ...string)
}

type serviceImpl struct {
	otel otel.Otel
	s3   s3.S3
}

func New(otel otel.Otel, s3 s3.S3) Media {
	return &serviceImpl{
		otel: otel,
		s3:   s3,
	}
}

// objectName keeps the extension of the uploaded file behind a random name.
func objectName(original string) string {
	name := uuid.NewString()

	if ext := strings.ToLower(filepath.Ext(original)); ext != constant.Empty {
		name += ext
	}

	return name
}

func (s *serviceImpl) Upload(ctx context.Context, req dto.UploadImageRequest) (res dto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".media.Upload")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	directory := req.Directory
	if directory == constant.Empty {
		directory = model.DirectoryGeneral
	}

	url, err := s.Store(ctx, directory, req.ImageFile, req.Image)
	if err != nil {
		return res, err
	}

	res.FromModel(url, req.Image.Filename)

	return res, nil
}

func (s *serviceImpl) Store(ctx context.Context, directory string, file multipart.File, header *multipart.FileHeader) (url string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".media.Store")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key := path.Join(directory, objectName(header.Filename))
	contentType := header.Header.Get(constant.RequestHeaderContentType)

	url, err = s.s3.Put(ctx, key, file, header.Size, contentType)
	if err != nil {
		log.Error().Err(err).Str("directory", directory).Msg("failed to upload image")

		return constant.Empty, fmt.Errorf("failed to upload image: %w", err)
	}

	scope.SetAttribute("media.url", url)

	return url, nil
}

func (s *serviceImpl) Delete(ctx context.Context, req dto.DeleteImagesRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".media.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	keys := make([]string, 0, len(req.ImageURLs))
	for _, imageURL := range req.ImageURLs {
		key := s.s3.KeyFromURL(imageURL)
		if key == constant.Empty {
			log.Warn().Str("url", imageURL).Msg("image is not stored in this bucket, skipping")

			continue
		}

		keys = append(keys, key)
	}

	if len(keys) == 0 {
		return nil
	}

	if err := s.s3.Delete(ctx, keys...); err != nil {
		log.Error().Err(err).Strs("keys", keys).Msg("failed to delete images")

		return fmt.Errorf("%w: %w", ErrDeleteImages, err)
	}

	return nil
}

// DeleteLater removes the images in the background. Empty URLs are ignored.
func (s *serviceImpl) DeleteLater(ctx context.Context, urls ...string) {
	images := make([]string, 0, len(urls))

	for _, url := range urls {
		if url != constant.Empty {
			images = append(images, url)
		}
	}

	if len(images) == 0 {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.Delete(c, dto.DeleteImagesRequest{ImageURLs: images}); err != nil {
			log.Error().Err(err).Strs("urls", images).Msg("failed to clean up images")
		}
	}()
}
