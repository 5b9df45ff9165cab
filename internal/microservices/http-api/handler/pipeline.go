package handler

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"profilehub/internal/i18n"
	"profilehub/internal/microservices/http-api/service"
	"profilehub/internal/observability/metrics"
	"profilehub/pkg/logger"
)

// Endpoint handles one transport-neutral request.
type Endpoint interface {
	Name() string
	Handle(ctx context.Context, req Request) Envelope
}

// Pipeline holds what every endpoint shares: credential verification, the
// message catalogs and the per-request timeout.
type Pipeline struct {
	verifier service.CredentialVerifier
	catalogs *i18n.Catalogs
	timeout  time.Duration
}

func NewPipeline(verifier service.CredentialVerifier, catalogs *i18n.Catalogs, timeout time.Duration) *Pipeline {
	return &Pipeline{verifier: verifier, catalogs: catalogs, timeout: timeout}
}

// Begin opens the scope of one request on the base language.
func (p *Pipeline) Begin(endpoint string, req Request) *Scope {
	requestID := req.RequestID
	if requestID == "" {
		requestID = uuid.NewString()
	}
	log := logger.L().With(zap.String("request_id", requestID), zap.String("endpoint", endpoint))
	return newScope(endpoint, p.catalogs, log)
}

// Authenticate verifies the Authorization header and switches the scope to
// the token's language.
func (p *Pipeline) Authenticate(scope *Scope, req Request) (*service.Claims, error) {
	claims, err := p.verifier.Verify(req.Header("Authorization"))
	if err != nil {
		return nil, err
	}
	scope.UseLanguage(claims.LanguageID)
	scope.log = scope.log.With(zap.Int64("record_id", claims.RecordID))
	return claims, nil
}

// Gin adapts an endpoint to a gin route.
func (p *Pipeline) Gin(e Endpoint) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		ctx := c.Request.Context()
		if p.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, p.timeout)
			defer cancel()
		}

		env := e.Handle(ctx, RequestFromHTTP(c.Request.Header, c.GetString("request_id")))
		env.Write(c)

		metrics.HTTPRequestsTotal.WithLabelValues(e.Name(), strconv.Itoa(env.StatusCode)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(e.Name()).Observe(time.Since(start).Seconds())
	}
}

// Reject answers a request stopped before reaching an endpoint, in the
// language named by a numeric language_id header when there is one.
func (p *Pipeline) Reject(c *gin.Context, kind service.Kind, cause error) {
	scope := p.Begin(c.FullPath(), RequestFromHTTP(c.Request.Header, c.GetString("request_id")))
	if id, err := strconv.Atoi(strings.TrimSpace(c.GetHeader("language_id"))); err == nil && id > 0 {
		scope.UseLanguage(id)
	}
	scope.Fail(service.Fail(kind, "middleware", cause)).Write(c)
	c.Abort()
}

// Recovery turns a panic into an internal error envelope.
func (p *Pipeline) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		p.Reject(c, service.KindInternal, fmt.Errorf("panic: %v", recovered))
	})
}
