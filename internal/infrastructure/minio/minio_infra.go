package minio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/DRSN-tech/eshop-backend/internal/cfg"
	"github.com/DRSN-tech/eshop-backend/internal/domain"
	"github.com/DRSN-tech/eshop-backend/internal/infrastructure"
	"github.com/DRSN-tech/eshop-backend/internal/usecase"
	"github.com/DRSN-tech/eshop-backend/pkg/e"
	"github.com/DRSN-tech/eshop-backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
)

// MinioInfrastructure управляет загрузкой и зачисткой изображений товаров.
type MinioInfrastructure struct {
	imageRepo usecase.ImageRepository
	cfg       *cfg.MinIOCfg
	logger    logger.Logger
	cleanupWg sync.WaitGroup
}

func NewMinioInfrastructure(imageRepo usecase.ImageRepository, cfg *cfg.MinIOCfg, logger logger.Logger) *MinioInfrastructure {
	return &MinioInfrastructure{
		imageRepo: imageRepo,
		cfg:       cfg,
		logger:    logger,
	}
}

// UploadImages последовательно загружает изображения и возвращает их ключи.
// При ошибке уже загруженные объекты зачищаются в фоне.
func (m *MinioInfrastructure) UploadImages(ctx context.Context, req *usecase.UploadImagesReq) (*usecase.UploadImagesRes, error) {
	if len(req.Images) == 0 {
		return nil, e.ErrNoImages
	}
	if len(req.Images) > m.cfg.UploadImagesLimit {
		return nil, e.ErrTooManyImages
	}

	keys := make([]string, 0, len(req.Images))
	for _, img := range req.Images {
		ext, err := infrastructure.GetExtensionFromMIME(img.MimeType)
		if err != nil {
			m.CleanupImages(keys)
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		objectKey := fmt.Sprintf("products/%d/%s.%s", req.ProductID, uuid.NewString(), ext)

		key, err := m.imageRepo.Upload(ctx, domain.NewImage(objectKey, img.Data, img.Size, img.MimeType))
		if err != nil {
			m.CleanupImages(keys)
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		keys = append(keys, key)
	}

	return usecase.NewUploadImagesRes(keys), nil
}

// CleanupImages удаляет объекты по ключам в фоне, не блокируя вызывающего.
func (m *MinioInfrastructure) CleanupImages(keys []string) {
	if len(keys) == 0 {
		return
	}

	m.cleanupWg.Add(1)
	go func() {
		defer m.cleanupWg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		for _, key := range keys {
			if err := m.imageRepo.Delete(ctx, key); err != nil {
				m.logger.Warnf("Failed to clean up image %s: %v", key, err)
			}
		}
	}()
}

// WaitForCleanup дожидается завершения всех фоновых зачисток.
func (m *MinioInfrastructure) WaitForCleanup(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		m.cleanupWg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
