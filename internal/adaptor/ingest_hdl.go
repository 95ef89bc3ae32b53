package adaptor

import (
	"encoding/json"
	"net/http"

	"travel-functions/internal/dto/request"
	"travel-functions/internal/dto/response"
	"travel-functions/internal/usecase"
	"travel-functions/pkg/apperror"
	"travel-functions/pkg/utils"

	"go.uber.org/zap"
)

type IngestHandler struct {
	service usecase.IngestService
	log     *zap.Logger
}

func NewIngestHandler(service usecase.IngestService, log *zap.Logger) *IngestHandler {
	return &IngestHandler{
		service: service,
		log:     log.With(zap.String("handler", "ingest")),
	}
}

// Ingest handles POST /api/ingest with an object-finalize style body
func (h *IngestHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	var req request.ObjectRef
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseError(w, apperror.BadRequest("Invalid request body"))
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		h.log.Warn("Ingest validation failed", zap.Any("errors", validationErrors))
		utils.ResponseError(w, apperror.BadRequest("Validation failed: "+utils.FormatValidationErrors(validationErrors)))
		return
	}

	writeIngestResult(w, h.service.Ingest(r.Context(), req))
}

func writeIngestResult(w http.ResponseWriter, result response.IngestResult) {
	if result.StatusCode == http.StatusOK {
		utils.ResponseSuccess(w, response.IngestResponse{RecordCount: result.RecordCount})
		return
	}
	utils.ResponseText(w, result.StatusCode, result.Reason)
}
