package adaptor

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/url"

	"travel-functions/internal/dto/request"
	"travel-functions/internal/dto/response"
	"travel-functions/internal/usecase"
	"travel-functions/pkg/apperror"
	"travel-functions/pkg/utils"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"
)

// LambdaHandler adapts API Gateway and S3 events to the use cases.
type LambdaHandler struct {
	booking usecase.BookingService
	ingest  usecase.IngestService
	log     *zap.Logger
}

func NewLambdaHandler(booking usecase.BookingService, ingest usecase.IngestService, log *zap.Logger) *LambdaHandler {
	return &LambdaHandler{
		booking: booking,
		ingest:  ingest,
		log:     log.With(zap.String("handler", "lambda")),
	}
}

func (h *LambdaHandler) Booking(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	body := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			h.log.Warn("Failed to decode base64 body", zap.Error(err))
			decoded = nil
		}
		body = decoded
	}

	booking, err := h.booking.CreateBooking(ctx, request.BookingInvocation{
		Method: req.HTTPMethod,
		Body:   body,
	})
	if err != nil {
		appErr := apperror.From(err)
		return jsonResponse(appErr.HTTPStatus, utils.ErrorBody{Error: appErr.Message})
	}

	return jsonResponse(http.StatusCreated, booking)
}

// Ingest handles each record in order and answers with the last outcome.
func (h *LambdaHandler) Ingest(ctx context.Context, event events.S3Event) (events.APIGatewayProxyResponse, error) {
	if len(event.Records) == 0 {
		h.log.Warn("S3 event without records")
		return events.APIGatewayProxyResponse{StatusCode: http.StatusNoContent, Body: "No records in event"}, nil
	}

	var result response.IngestResult
	for _, record := range event.Records {
		key, err := url.QueryUnescape(record.S3.Object.Key)
		if err != nil {
			key = record.S3.Object.Key
		}
		result = h.ingest.Ingest(ctx, request.ObjectRef{
			Bucket: record.S3.Bucket.Name,
			Name:   key,
		})
	}

	if result.StatusCode == http.StatusOK {
		return jsonResponse(http.StatusOK, response.IngestResponse{RecordCount: result.RecordCount})
	}
	return events.APIGatewayProxyResponse{StatusCode: result.StatusCode, Body: result.Reason}, nil
}

func jsonResponse(status int, body any) (events.APIGatewayProxyResponse, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(b),
	}, nil
}
