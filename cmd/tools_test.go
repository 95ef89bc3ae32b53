package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"travel-functions/pkg/storage"
	"travel-functions/pkg/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock storage service for testing
type mockStorageService struct {
	buckets []storage.Bucket
	tbl     *table.Table
	err     error
}

func (m *mockStorageService) ListBuckets(ctx context.Context) ([]storage.Bucket, error) {
	return m.buckets, m.err
}

func (m *mockStorageService) ReadTable(ctx context.Context, bucket, key string) (*table.Table, error) {
	return m.tbl, m.err
}

func (m *mockStorageService) Region() string {
	return "ap-south-1"
}

func TestListBuckets(t *testing.T) {
	var out bytes.Buffer
	svc := &mockStorageService{buckets: []storage.Bucket{{Name: "first"}, {Name: "second"}}}

	require.NoError(t, ListBuckets(context.Background(), svc, &out))
	assert.Equal(t, "Buckets in ap-south-1:\n - first\n - second\n", out.String())
}

func TestListBuckets_Error(t *testing.T) {
	var out bytes.Buffer
	svc := &mockStorageService{err: errors.New("denied")}

	assert.EqualError(t, ListBuckets(context.Background(), svc, &out), "denied")
	assert.Empty(t, out.String())
}

func TestReadCSV(t *testing.T) {
	var out bytes.Buffer
	svc := &mockStorageService{tbl: &table.Table{
		Columns: []string{"id"},
		Rows:    [][]string{{"1"}, {"2"}, {"3"}},
	}}

	require.NoError(t, ReadCSV(context.Background(), svc, "b", "sales.csv", 2, &out))
	assert.Contains(t, out.String(), "[3 rows x 1 columns]")
	assert.NotContains(t, out.String(), "2  3")
}
