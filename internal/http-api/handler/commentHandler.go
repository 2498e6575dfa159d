package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"quillhub/internal/http-api/dto"
	"quillhub/internal/http-api/middleware"
	"quillhub/internal/http-api/service"
)

type CommentHandler struct {
	commentSvc service.CommentService
}

func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{commentSvc: commentSvc}
}

func (h *CommentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.DELETE("/:comment_id", middleware.RequireIdentity(), h.Delete)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("comment_id"))
	if err != nil {
		dto.Error(c, http.StatusBadRequest, "Invalid comment ID")
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.commentSvc.Delete(ctx, id, *middleware.ViewerID(c)); err != nil {
		respondError(c, err)
		return
	}
	dto.NoContent(c)
}
