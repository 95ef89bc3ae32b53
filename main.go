// main.go
package main

import (
	"context"
	"log"
	"os"

	"travel-functions/cmd"
	"travel-functions/internal/usecase"
	"travel-functions/internal/wire"
	"travel-functions/pkg/storage"
	"travel-functions/pkg/utils"

	"github.com/alexflint/go-arg"
	"go.uber.org/zap"
)

type serveCmd struct{}

type bookingLambdaCmd struct{}

type ingestLambdaCmd struct{}

type bucketsCmd struct{}

type readCSVCmd struct {
	Bucket string `arg:"--bucket,required" help:"bucket name"`
	Key    string `arg:"--key,required" help:"object key of the csv file"`
	Rows   int    `arg:"--rows" default:"5" help:"rows to print"`
}

type args struct {
	Serve         *serveCmd         `arg:"subcommand:serve" help:"run the http api (default)"`
	BookingLambda *bookingLambdaCmd `arg:"subcommand:booking-lambda" help:"run the booking function on the lambda runtime"`
	IngestLambda  *ingestLambdaCmd  `arg:"subcommand:ingest-lambda" help:"run the csv ingestion trigger on the lambda runtime"`
	Buckets       *bucketsCmd       `arg:"subcommand:buckets" help:"list buckets"`
	ReadCSV       *readCSVCmd       `arg:"subcommand:read-csv" help:"read a csv object and print its head"`
}

func (args) Description() string {
	return "\ntravel booking and csv ingestion functions\n"
}

func main() {
	var a args
	arg.MustParse(&a)

	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	ctx := context.Background()

	// booking needs no storage, everything else does
	if a.BookingLambda != nil {
		app := wire.Wiring(nil, config, logger)
		cmd.BookingLambda(app.Handler.Lambda)
		return
	}

	store, err := storage.InitS3(ctx, config.Storage)
	if err != nil {
		logger.Fatal("Failed to init object storage", zap.Error(err))
	}

	switch {
	case a.IngestLambda != nil:
		app := wire.Wiring(store, config, logger)
		cmd.IngestLambda(app.Handler.Lambda)

	case a.Buckets != nil:
		svc := usecase.NewStorageService(store, logger)
		if err := cmd.ListBuckets(ctx, svc, os.Stdout); err != nil {
			logger.Fatal("Failed to list buckets", zap.Error(err))
		}

	case a.ReadCSV != nil:
		svc := usecase.NewStorageService(store, logger)
		if err := cmd.ReadCSV(ctx, svc, a.ReadCSV.Bucket, a.ReadCSV.Key, a.ReadCSV.Rows, os.Stdout); err != nil {
			logger.Fatal("Failed to read csv", zap.Error(err))
		}

	default:
		logger.Info("Starting application",
			zap.String("app", config.App.Name),
			zap.String("port", config.App.Port),
			zap.Bool("debug", config.App.Debug),
			zap.String("env", config.Runtime.Env),
		)

		app := wire.Wiring(store, config, logger)
		if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
			logger.Fatal("Server stopped", zap.Error(err))
		}
	}
}
