package usecase

import (
	"context"
	"fmt"

	"travel-functions/pkg/storage"
	"travel-functions/pkg/table"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

type StorageService interface {
	ListBuckets(ctx context.Context) ([]storage.Bucket, error)
	ReadTable(ctx context.Context, bucket, key string) (*table.Table, error)
	Region() string
}

type storageService struct {
	store storage.ObjectStore
	log   *zap.Logger
}

func NewStorageService(store storage.ObjectStore, log *zap.Logger) StorageService {
	return &storageService{
		store: store,
		log:   log.With(zap.String("service", "storage")),
	}
}

func (s *storageService) Region() string {
	return s.store.Region()
}

func (s *storageService) ListBuckets(ctx context.Context) ([]storage.Bucket, error) {
	buckets, err := s.store.ListBuckets(ctx)
	if err != nil {
		s.log.Error("Failed to list buckets", zap.Error(err))
		return nil, err
	}

	s.log.Info("Listed buckets",
		zap.String("region", s.store.Region()),
		zap.Int("count", len(buckets)))
	return buckets, nil
}

// ReadTable loads a CSV object into memory.
func (s *storageService) ReadTable(ctx context.Context, bucket, key string) (*table.Table, error) {
	uri := storage.URI(bucket, key)

	obj, err := s.store.OpenObject(ctx, bucket, key)
	if err != nil {
		return nil, err
	}
	defer obj.Body.Close()

	s.log.Info("Reading CSV",
		zap.String("uri", uri),
		zap.String("size", humanize.Bytes(uint64(obj.Size))),
		zap.String("content_type", obj.ContentType))

	t, err := table.Read(obj.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", uri, err)
	}
	return t, nil
}
