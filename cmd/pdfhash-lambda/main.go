package main

import (
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"pdfhash/internal/config"
	"pdfhash/internal/handler"

	//Import registered hashing algorithms here
	_ "pdfhash/internal/hashing/blake3"
	_ "pdfhash/internal/hashing/sha256"
	_ "pdfhash/internal/hashing/sha512"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	// No audit store in the Lambda deployment: the function stays
	// dependency-free so cold starts are cheap.
	core := handler.New(cfg, logger, nil)

	lambda.Start(core.Handle)
}

func newLogger() *zap.Logger {
	if os.Getenv("DEBUG") == "true" {
		logger, _ := zap.NewDevelopment()
		return logger
	}
	logger, _ := zap.NewProduction()
	return logger
}
