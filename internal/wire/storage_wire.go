package wire

import (
	"travel-functions/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireStorage(r chi.Router, storageHandler *adaptor.StorageHandler, ingestHandler *adaptor.IngestHandler) {
	// GET /api/buckets - List buckets visible to the configured credentials
	r.Get("/api/buckets", storageHandler.ListBuckets)

	// GET /api/tables?bucket=&key=&rows= - Read a CSV object and return its head
	r.Get("/api/tables", storageHandler.ReadTable)

	// POST /api/ingest - Run the CSV ingestion trigger for one object
	r.Post("/api/ingest", ingestHandler.Ingest)
}
