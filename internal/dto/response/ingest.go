package response

import (
	"time"

	"travel-functions/pkg/storage"
)

// IngestResult is the trigger outcome. Skipped objects carry a text reason instead of a count.
type IngestResult struct {
	StatusCode  int
	Reason      string
	RecordCount int
}

type IngestResponse struct {
	RecordCount int `json:"record_count"`
}

type BucketResponse struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type TableResponse struct {
	Bucket      string     `json:"bucket"`
	Key         string     `json:"key"`
	Columns     []string   `json:"columns"`
	Head        [][]string `json:"head"`
	RecordCount int        `json:"record_count"`
}

// Helper converters
func BucketToResponse(b storage.Bucket) BucketResponse {
	return BucketResponse{
		Name:      b.Name,
		CreatedAt: b.CreatedAt,
	}
}
