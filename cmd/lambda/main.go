// Command lambda serves one endpoint, chosen by HANDLER, as an AWS Lambda
// function behind an API Gateway proxy integration.
package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"profilehub/internal/app"
	"profilehub/internal/config"
	lambdaadapter "profilehub/internal/microservices/lambda"
	"profilehub/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	if cfg.Handler == "" {
		log.Fatalf("HANDLER must be set to one of %v", config.Handlers)
	}

	if err := logger.InitializeLogger(cfg.IsDevelopment(), cfg.LogLevel); err != nil {
		log.Fatalf("could not initialize logger: %v", err)
	}
	defer logger.Sync()

	a, err := app.Build(context.Background(), cfg)
	if err != nil {
		logger.L().Fatal("could not build app", zap.Error(err))
	}
	defer a.Close()

	endpoint, err := a.Endpoint(cfg.Handler)
	if err != nil {
		logger.L().Fatal("could not select handler", zap.Error(err))
	}

	logger.L().Info("cold start complete", zap.String("handler", cfg.Handler))
	lambda.Start(lambdaadapter.NewAdapter(a.Pipeline, endpoint).Handle)
}
