package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"profilehub/internal/i18n"
	"profilehub/internal/microservices/http-api/service"
)

// QuestionHandler serves the public questions endpoint. The language comes
// from the language_id header instead of a credential.
type QuestionHandler struct {
	pipeline *Pipeline
	resolver service.LanguageResolver
	svc      service.QuestionService
}

func NewQuestionHandler(pipeline *Pipeline, resolver service.LanguageResolver, svc service.QuestionService) *QuestionHandler {
	return &QuestionHandler{pipeline: pipeline, resolver: resolver, svc: svc}
}

func (h *QuestionHandler) Name() string { return "questions" }

func (h *QuestionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/questions", h.pipeline.Gin(h))
}

func (h *QuestionHandler) Handle(ctx context.Context, req Request) Envelope {
	scope := h.pipeline.Begin(h.Name(), req)

	languageID, err := h.resolver.Resolve(ctx, req.Header("language_id"), req.Header("Accept-Language"))
	if err != nil {
		return scope.Fail(err)
	}
	scope.UseLanguage(languageID)

	resp, err := h.svc.Questions(ctx, languageID)
	if err != nil {
		return scope.Fail(err)
	}
	if len(resp.Questions) == 0 {
		scope.Logger().Info("no questions for language")
		return scope.SuccessMessage(i18n.KeyQuestionsStatus)
	}

	scope.Logger().Debug("questions served", zap.Int("count", len(resp.Questions)))
	return scope.Success(http.StatusOK, resp)
}
