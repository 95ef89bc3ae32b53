package usecase

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"travel-functions/internal/dto/request"
	"travel-functions/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Mock object store for testing
type mockObjectStore struct {
	objects  map[string]string
	buckets  []storage.Bucket
	listErr  error
	openErr  error
	openKeys []string
}

func (m *mockObjectStore) Region() string {
	return "us-east-1"
}

func (m *mockObjectStore) ListBuckets(ctx context.Context) ([]storage.Bucket, error) {
	return m.buckets, m.listErr
}

func (m *mockObjectStore) OpenObject(ctx context.Context, bucket, key string) (*storage.Object, error) {
	m.openKeys = append(m.openKeys, key)
	if m.openErr != nil {
		return nil, m.openErr
	}
	body, ok := m.objects[bucket+"/"+key]
	if !ok {
		return nil, errors.New("get " + storage.URI(bucket, key) + ": NoSuchKey")
	}
	return &storage.Object{
		Body:        io.NopCloser(strings.NewReader(body)),
		Bucket:      bucket,
		Key:         key,
		Size:        int64(len(body)),
		ContentType: "text/csv",
	}, nil
}

const salesCSV = "order_id,region,amount\n1,west,10.5\n2,east,3\n3,west,7\n4,north,1\n5,south,2\n6,central,9\n"

func newTestIngestService(store *mockObjectStore) (IngestService, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(core)
	return NewIngestService(NewStorageService(store, log), "raw_data/", log), logs
}

func TestIngest_SkipsOutsidePrefix(t *testing.T) {
	store := &mockObjectStore{}
	svc, logs := newTestIngestService(store)

	result := svc.Ingest(context.Background(), request.ObjectRef{Bucket: "b", Name: "processed/sales.csv"})

	assert.Equal(t, http.StatusNoContent, result.StatusCode)
	assert.Equal(t, "Ignored non-raw_data path", result.Reason)
	assert.Empty(t, store.openKeys)
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.InfoLevel).FilterMessage("Skipping object outside prefix").Len())
}

func TestIngest_SkipsNonCSV(t *testing.T) {
	store := &mockObjectStore{}
	svc, logs := newTestIngestService(store)

	result := svc.Ingest(context.Background(), request.ObjectRef{Bucket: "b", Name: "raw_data/sales.json"})

	assert.Equal(t, http.StatusNoContent, result.StatusCode)
	assert.Equal(t, "Ignored non-CSV file", result.Reason)
	assert.Empty(t, store.openKeys)
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestIngest_CountsRecords(t *testing.T) {
	store := &mockObjectStore{objects: map[string]string{"b/raw_data/sales.CSV": salesCSV}}
	svc, logs := newTestIngestService(store)

	result := svc.Ingest(context.Background(), request.ObjectRef{Bucket: "b", Name: "raw_data/sales.CSV"})

	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, 6, result.RecordCount)
	assert.Equal(t, []string{"raw_data/sales.CSV"}, store.openKeys)

	samples := logs.FilterMessage("Data sample").All()
	require.Len(t, samples, 1)
	sample := samples[0].ContextMap()["sample"].(string)
	assert.Contains(t, sample, "order_id")
	assert.Contains(t, sample, "north")
	assert.NotContains(t, sample, "central")
}

func TestIngest_ReadFailure(t *testing.T) {
	store := &mockObjectStore{
		objects: map[string]string{"b/raw_data/sales.csv": salesCSV},
		openErr: errors.New("AccessDenied"),
	}
	svc, logs := newTestIngestService(store)

	result := svc.Ingest(context.Background(), request.ObjectRef{Bucket: "b", Name: "raw_data/sales.csv"})

	assert.Equal(t, http.StatusInternalServerError, result.StatusCode)
	assert.True(t, strings.HasPrefix(result.Reason, "Error reading CSV: "))
	assert.Contains(t, result.Reason, "AccessDenied")
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestIngest_MalformedCSV(t *testing.T) {
	store := &mockObjectStore{objects: map[string]string{"b/raw_data/bad.csv": "a,b\n1,2,3\n"}}
	svc, _ := newTestIngestService(store)

	result := svc.Ingest(context.Background(), request.ObjectRef{Bucket: "b", Name: "raw_data/bad.csv"})

	assert.Equal(t, http.StatusInternalServerError, result.StatusCode)
	assert.Contains(t, result.Reason, "s3://b/raw_data/bad.csv")
}

func TestStorageService_ListBuckets(t *testing.T) {
	created := time.Date(2025, 11, 21, 0, 0, 0, 0, time.UTC)
	store := &mockObjectStore{buckets: []storage.Bucket{{Name: "firstbucket", CreatedAt: created}, {Name: "second"}}}
	svc := NewStorageService(store, zap.NewNop())

	buckets, err := svc.ListBuckets(context.Background())
	require.NoError(t, err)
	require.Len(t, buckets, 2)
	assert.Equal(t, "firstbucket", buckets[0].Name)
	assert.Equal(t, created, buckets[0].CreatedAt)

	store.listErr = errors.New("expired token")
	_, err = svc.ListBuckets(context.Background())
	assert.EqualError(t, err, "expired token")
}

func TestStorageService_ReadTableMissingObject(t *testing.T) {
	store := &mockObjectStore{objects: map[string]string{}}
	svc := NewStorageService(store, zap.NewNop())

	_, err := svc.ReadTable(context.Background(), "b", "raw_data/none.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NoSuchKey")
}

func TestStorageService_ReadTableSingleRequest(t *testing.T) {
	store := &mockObjectStore{objects: map[string]string{"b/raw_data/sales.csv": salesCSV}}
	core, logs := observer.New(zapcore.InfoLevel)
	svc := NewStorageService(store, zap.New(core))

	tbl, err := svc.ReadTable(context.Background(), "b", "raw_data/sales.csv")
	require.NoError(t, err)
	assert.Equal(t, 6, tbl.Len())
	assert.Equal(t, []string{"raw_data/sales.csv"}, store.openKeys)

	entries := logs.FilterMessage("Reading CSV").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "85 B", entries[0].ContextMap()["size"])
}
