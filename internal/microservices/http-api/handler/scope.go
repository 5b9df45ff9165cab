package handler

import (
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"profilehub/internal/i18n"
	"profilehub/internal/microservices/http-api/service"
	"profilehub/internal/observability/metrics"
)

// Scope carries the per-request state of one endpoint call: the catalog used
// for messages and a logger tagged with the request. It starts on the base
// language and switches as soon as the caller's language is known.
type Scope struct {
	endpoint string
	catalogs *i18n.Catalogs
	catalog  i18n.Catalog
	log      *zap.Logger
}

func newScope(endpoint string, catalogs *i18n.Catalogs, log *zap.Logger) *Scope {
	return &Scope{
		endpoint: endpoint,
		catalogs: catalogs,
		catalog:  catalogs.Base(),
		log:      log,
	}
}

// UseLanguage selects the catalog for later messages.
func (s *Scope) UseLanguage(languageID int) {
	if !s.catalogs.Has(languageID) {
		s.log.Debug("no catalog for language, using base", zap.Int("language_id", languageID))
	}
	s.catalog = s.catalogs.Resolve(languageID)
	s.log = s.log.With(zap.Int("language_id", languageID))
}

// Language is the language id of the active catalog.
func (s *Scope) Language() int {
	return s.catalog.LanguageID()
}

func (s *Scope) Logger() *zap.Logger {
	return s.log
}

// Success encodes payload as the body of a status envelope.
func (s *Scope) Success(status int, payload interface{}) Envelope {
	body, err := json.Marshal(payload)
	if err != nil {
		return s.Fail(service.Fail(service.KindInternal, "encode response", err))
	}
	return newEnvelope(status, body)
}

// SuccessMessage answers 200 with the localized message for key.
func (s *Scope) SuccessMessage(key string) Envelope {
	return s.Success(200, gin.H{"message": s.catalog.Message(key)})
}

// Fail converts err into its localized error envelope and logs both the
// message shown and the underlying cause.
func (s *Scope) Fail(err error) Envelope {
	kind := service.KindOf(err)
	message := s.catalog.Message(kind.MessageKey())

	fields := []zap.Field{
		zap.String("kind", kind.String()),
		zap.Int("status", kind.Status()),
		zap.String("message", message),
		zap.Error(err),
	}
	var classified *service.Error
	if errors.As(err, &classified) {
		fields = append(fields, zap.String("op", classified.Op))
	}
	if kind.Status() >= 500 {
		s.log.Error("request failed", fields...)
	} else {
		s.log.Warn("request rejected", fields...)
	}
	metrics.EnvelopeErrorsTotal.WithLabelValues(s.endpoint, kind.String()).Inc()

	body, mErr := json.Marshal(gin.H{"message": message})
	if mErr != nil {
		return internalEnvelope(message)
	}
	return newEnvelope(kind.Status(), body)
}
