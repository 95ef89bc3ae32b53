package adaptor

import (
	"net/http"
	"strconv"

	"travel-functions/internal/dto/request"
	"travel-functions/internal/dto/response"
	"travel-functions/internal/usecase"
	"travel-functions/pkg/apperror"
	"travel-functions/pkg/utils"

	"go.uber.org/zap"
)

const defaultHeadRows = 5

type StorageHandler struct {
	service usecase.StorageService
	log     *zap.Logger
}

func NewStorageHandler(service usecase.StorageService, log *zap.Logger) *StorageHandler {
	return &StorageHandler{
		service: service,
		log:     log.With(zap.String("handler", "storage")),
	}
}

// ListBuckets handles GET /api/buckets
func (h *StorageHandler) ListBuckets(w http.ResponseWriter, r *http.Request) {
	buckets, err := h.service.ListBuckets(r.Context())
	if err != nil {
		h.log.Error("Failed to list buckets", zap.Error(err))
		utils.ResponseError(w, apperror.Upstream(err, "Failed to list buckets"))
		return
	}

	resp := make([]response.BucketResponse, 0, len(buckets))
	for _, b := range buckets {
		resp = append(resp, response.BucketToResponse(b))
	}
	utils.ResponseSuccess(w, resp)
}

// ReadTable handles GET /api/tables?bucket=&key=&rows=
func (h *StorageHandler) ReadTable(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := request.ReadTableRequest{
		Bucket: query.Get("bucket"),
		Key:    query.Get("key"),
		Rows:   defaultHeadRows,
	}
	if raw := query.Get("rows"); raw != "" {
		rows, err := strconv.Atoi(raw)
		if err != nil {
			utils.ResponseError(w, apperror.BadRequest("rows must be a number"))
			return
		}
		req.Rows = rows
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseError(w, apperror.BadRequest("Validation failed: "+utils.FormatValidationErrors(validationErrors)))
		return
	}

	t, err := h.service.ReadTable(r.Context(), req.Bucket, req.Key)
	if err != nil {
		h.log.Error("Failed to read table",
			zap.String("bucket", req.Bucket),
			zap.String("key", req.Key),
			zap.Error(err))
		utils.ResponseError(w, apperror.Upstream(err, "Error reading CSV: "+err.Error()))
		return
	}

	head := t.Head(req.Rows)
	if head.Rows == nil {
		head.Rows = [][]string{}
	}
	utils.ResponseSuccess(w, response.TableResponse{
		Bucket:      req.Bucket,
		Key:         req.Key,
		Columns:     t.Columns,
		Head:        head.Rows,
		RecordCount: t.Len(),
	})
}
