package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"travel-functions/internal/dto/request"
	"travel-functions/internal/dto/response"
	"travel-functions/pkg/storage"

	"go.uber.org/zap"
)

const (
	ingestSampleRows = 5
	csvExtension     = ".csv"
)

type IngestService interface {
	Ingest(ctx context.Context, obj request.ObjectRef) response.IngestResult
}

type ingestService struct {
	storage StorageService
	prefix  string
	log     *zap.Logger
}

func NewIngestService(storage StorageService, prefix string, log *zap.Logger) IngestService {
	return &ingestService{
		storage: storage,
		prefix:  prefix,
		log:     log.With(zap.String("service", "ingest")),
	}
}

// Ingest never fails: skips are 204, read errors are 500, success is 200 with a count.
func (s *ingestService) Ingest(ctx context.Context, obj request.ObjectRef) response.IngestResult {
	if !strings.HasPrefix(obj.Name, s.prefix) {
		s.log.Info("Skipping object outside prefix",
			zap.String("name", obj.Name),
			zap.String("prefix", s.prefix))
		return response.IngestResult{StatusCode: http.StatusNoContent, Reason: fmt.Sprintf("Ignored non-%s path", strings.TrimSuffix(s.prefix, "/"))}
	}
	if !strings.HasSuffix(strings.ToLower(obj.Name), csvExtension) {
		s.log.Warn("Skipping non-CSV object", zap.String("name", obj.Name))
		return response.IngestResult{StatusCode: http.StatusNoContent, Reason: "Ignored non-CSV file"}
	}

	uri := storage.URI(obj.Bucket, obj.Name)
	t, err := s.storage.ReadTable(ctx, obj.Bucket, obj.Name)
	if err != nil {
		s.log.Error("Failed to read CSV", zap.String("uri", uri), zap.Error(err))
		return response.IngestResult{StatusCode: http.StatusInternalServerError, Reason: fmt.Sprintf("Error reading CSV: %v", err)}
	}

	s.log.Info("Data sample", zap.String("sample", "\n"+t.Head(ingestSampleRows).String()))
	s.log.Info("Total records read",
		zap.String("name", obj.Name),
		zap.Int("record_count", t.Len()))

	return response.IngestResult{StatusCode: http.StatusOK, RecordCount: t.Len()}
}
