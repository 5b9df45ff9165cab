package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"profilehub/internal/i18n"
	"profilehub/internal/microservices/http-api/service"
)

type PictureHandler struct {
	pipeline *Pipeline
	svc      service.PictureService
}

func NewPictureHandler(pipeline *Pipeline, svc service.PictureService) *PictureHandler {
	return &PictureHandler{pipeline: pipeline, svc: svc}
}

func (h *PictureHandler) Name() string { return "delete-picture" }

func (h *PictureHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.DELETE("/profile/picture", h.pipeline.Gin(h))
}

// Handle clears the caller's profile picture and deletes the stored image.
func (h *PictureHandler) Handle(ctx context.Context, req Request) Envelope {
	scope := h.pipeline.Begin(h.Name(), req)

	claims, err := h.pipeline.Authenticate(scope, req)
	if err != nil {
		return scope.Fail(err)
	}

	languageID, err := h.svc.Language(ctx, claims.RecordID)
	if err != nil {
		return scope.Fail(err)
	}
	scope.UseLanguage(languageID)

	if err := h.svc.DeletePicture(ctx, claims.RecordID, claims.UserID); err != nil {
		return scope.Fail(err)
	}
	return scope.SuccessMessage(i18n.KeySuccessMessage)
}
