// Package lambda runs the endpoints behind AWS Lambda proxy integrations.
package lambda

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"go.uber.org/zap"

	"profilehub/internal/microservices/http-api/handler"
	"profilehub/internal/microservices/http-api/service"
	"profilehub/internal/observability/metrics"
	"profilehub/pkg/logger"
)

// WarmerSource marks the scheduled events that only keep the function warm.
const WarmerSource = "lambda_warmer"

// WarmResponse answers a warmer event.
type WarmResponse struct {
	StatusCode int               `json:"status_code"`
	Body       map[string]string `json:"body"`
}

type warmerEvent struct {
	Source string `json:"source"`
}

// Adapter decodes proxy events for one endpoint.
type Adapter struct {
	pipeline *handler.Pipeline
	endpoint handler.Endpoint
}

// NewAdapter registers the collectors the pipeline updates. A function has no
// scrape endpoint; an exporter wired by the host gathers the default registry.
func NewAdapter(pipeline *handler.Pipeline, endpoint handler.Endpoint) *Adapter {
	metrics.InitMetrics()
	return &Adapter{pipeline: pipeline, endpoint: endpoint}
}

// Handle is the function registered with lambda.Start. It never returns an
// error: every failure becomes an envelope.
func (a *Adapter) Handle(ctx context.Context, raw json.RawMessage) (resp interface{}, err error) {
	var warmer warmerEvent
	if json.Unmarshal(raw, &warmer) == nil && warmer.Source == WarmerSource {
		logger.L().Debug("warmer event", zap.String("endpoint", a.endpoint.Name()))
		return WarmResponse{StatusCode: 200, Body: map[string]string{"message": "lambda warmed"}}, nil
	}

	var event events.APIGatewayProxyRequest
	if uErr := json.Unmarshal(raw, &event); uErr != nil {
		scope := a.pipeline.Begin(a.endpoint.Name(), handler.Request{RequestID: requestID(ctx, "")})
		return scope.Fail(service.Fail(service.KindBadRequest, "decode event", uErr)), nil
	}

	req := handler.Request{
		Headers:   event.Headers,
		RequestID: requestID(ctx, event.RequestContext.RequestID),
	}

	defer func() {
		if r := recover(); r != nil {
			scope := a.pipeline.Begin(a.endpoint.Name(), req)
			resp = scope.Fail(service.Fail(service.KindInternal, "handle event", fmt.Errorf("panic: %v", r)))
			err = nil
		}
	}()

	return a.endpoint.Handle(ctx, req), nil
}

func requestID(ctx context.Context, fromEvent string) string {
	if fromEvent != "" {
		return fromEvent
	}
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		return lc.AwsRequestID
	}
	return ""
}
