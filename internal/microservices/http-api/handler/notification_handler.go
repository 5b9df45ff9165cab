package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"profilehub/internal/microservices/http-api/service"
)

type NotificationHandler struct {
	pipeline *Pipeline
	svc      service.NotificationService
}

func NewNotificationHandler(pipeline *Pipeline, svc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{pipeline: pipeline, svc: svc}
}

func (h *NotificationHandler) Name() string { return "notifications" }

func (h *NotificationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/notifications/active", h.pipeline.Gin(h))
}

// Handle returns the caller's unread notifications and marks them read.
func (h *NotificationHandler) Handle(ctx context.Context, req Request) Envelope {
	scope := h.pipeline.Begin(h.Name(), req)

	claims, err := h.pipeline.Authenticate(scope, req)
	if err != nil {
		return scope.Fail(err)
	}

	languageID, err := h.svc.CurrentLanguage(ctx, claims)
	if err != nil {
		return scope.Fail(err)
	}
	scope.UseLanguage(languageID)

	notifications, err := h.svc.FetchActive(ctx, claims.RecordID)
	if err != nil {
		return scope.Fail(err)
	}

	scope.Logger().Info("notifications delivered", zap.Int("count", len(notifications)))
	return scope.Success(http.StatusOK, notifications)
}
