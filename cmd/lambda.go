package cmd

import (
	"travel-functions/internal/adaptor"

	"github.com/aws/aws-lambda-go/lambda"
)

// BookingLambda runs the booking function behind API Gateway. It does not return.
func BookingLambda(h *adaptor.LambdaHandler) {
	lambda.Start(h.Booking)
}

// IngestLambda runs the CSV ingestion trigger on S3 object-created events. It does not return.
func IngestLambda(h *adaptor.LambdaHandler) {
	lambda.Start(h.Ingest)
}
