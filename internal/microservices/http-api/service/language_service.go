package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"profilehub/internal/observability/metrics"
	"profilehub/pkg/logger"
)

// UnknownLanguage is the header value clients send before a language is known.
const UnknownLanguage = "null"

var (
	ErrMissingLanguage       = errors.New("language_id header missing")
	ErrMissingAcceptLanguage = errors.New("Accept-Language header missing")
)

// LanguageDetector asks the sibling language service to map an
// Accept-Language value to a language id.
type LanguageDetector interface {
	DetectLanguage(ctx context.Context, acceptLanguage string) (int, error)
}

// LanguageCache remembers earlier detections. Implementations must treat a
// miss as (0, false, nil).
type LanguageCache interface {
	Get(ctx context.Context, acceptLanguage string) (int, bool, error)
	Set(ctx context.Context, acceptLanguage string, languageID int) error
}

// LanguageResolver turns the language_id request header into a language id.
type LanguageResolver interface {
	Resolve(ctx context.Context, languageHeader, acceptLanguage string) (int, error)
}

type languageResolver struct {
	detector LanguageDetector
	cache    LanguageCache
}

// NewLanguageResolver builds a resolver; cache may be nil.
func NewLanguageResolver(detector LanguageDetector, cache LanguageCache) LanguageResolver {
	return &languageResolver{detector: detector, cache: cache}
}

func (r *languageResolver) Resolve(ctx context.Context, languageHeader, acceptLanguage string) (int, error) {
	const op = "resolve language"

	value := strings.TrimSpace(languageHeader)
	switch value {
	case "":
		return 0, Fail(KindBadRequest, op, ErrMissingLanguage)
	case UnknownLanguage:
		acceptLanguage = strings.TrimSpace(acceptLanguage)
		if acceptLanguage == "" {
			// nothing to detect from; never reaches the detector or the cache
			return 0, Fail(KindInvocation, op, ErrMissingAcceptLanguage)
		}
		return r.detect(ctx, acceptLanguage)
	}

	id, err := strconv.Atoi(value)
	if err != nil || id < 1 {
		return 0, Fail(KindBadRequest, op, errors.New("language_id header is not a positive integer: "+value))
	}
	return id, nil
}

func (r *languageResolver) detect(ctx context.Context, acceptLanguage string) (int, error) {
	if r.cache != nil {
		id, ok, err := r.cache.Get(ctx, acceptLanguage)
		switch {
		case err != nil:
			logger.L().Warn("language cache read failed", zap.Error(err))
		case ok:
			metrics.LanguageDetectionsTotal.WithLabelValues("cache_hit").Inc()
			return id, nil
		}
	}

	id, err := r.detector.DetectLanguage(ctx, acceptLanguage)
	if err != nil {
		metrics.LanguageDetectionsTotal.WithLabelValues("failed").Inc()
		return 0, Fail(KindInvocation, "detect language", err)
	}
	metrics.LanguageDetectionsTotal.WithLabelValues("invoked").Inc()

	if r.cache != nil {
		if err := r.cache.Set(ctx, acceptLanguage, id); err != nil {
			logger.L().Warn("language cache write failed", zap.Error(err))
		}
	}
	return id, nil
}
