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

type AnswerHandler struct {
	answerSvc   service.AnswerService
	likeSvc     service.LikeService
	commentSvc  service.CommentService
	defaultSize int
	maxSize     int
}

func NewAnswerHandler(answerSvc service.AnswerService, likeSvc service.LikeService, commentSvc service.CommentService, defaultSize, maxSize int) *AnswerHandler {
	return &AnswerHandler{
		answerSvc:   answerSvc,
		likeSvc:     likeSvc,
		commentSvc:  commentSvc,
		defaultSize: defaultSize,
		maxSize:     maxSize,
	}
}

func (h *AnswerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/:answer_id", h.Get)
	rg.PUT("/:answer_id", middleware.RequireIdentity(), h.Update)
	rg.DELETE("/:answer_id", middleware.RequireIdentity(), h.Delete)

	rg.POST("/:answer_id/like", middleware.RequireIdentity(), h.Like)
	rg.DELETE("/:answer_id/like", middleware.RequireIdentity(), h.Unlike)

	rg.GET("/:answer_id/comments", h.ListComments)
	rg.POST("/:answer_id/comments", middleware.RequireIdentity(), h.CreateComment)
}

func (h *AnswerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("answer_id"))
	if err != nil {
		dto.Error(c, http.StatusBadRequest, "Invalid answer ID")
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	answer, err := h.answerSvc.GetByID(ctx, id, middleware.ViewerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, answer)
}

func (h *AnswerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("answer_id"))
	if err != nil {
		dto.Error(c, http.StatusBadRequest, "Invalid answer ID")
		return
	}
	var req dto.UpdateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	answer, err := h.answerSvc.Update(ctx, id, *middleware.ViewerID(c), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, answer)
}

func (h *AnswerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("answer_id"))
	if err != nil {
		dto.Error(c, http.StatusBadRequest, "Invalid answer ID")
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.answerSvc.Delete(ctx, id, *middleware.ViewerID(c)); err != nil {
		respondError(c, err)
		return
	}
	dto.NoContent(c)
}

func (h *AnswerHandler) Like(c *gin.Context) {
	id, err := uuid.Parse(c.Param("answer_id"))
	if err != nil {
		dto.Error(c, http.StatusBadRequest, "Invalid answer ID")
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	like, err := h.likeSvc.Like(ctx, id, *middleware.ViewerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Created(c, like)
}

func (h *AnswerHandler) Unlike(c *gin.Context) {
	id, err := uuid.Parse(c.Param("answer_id"))
	if err != nil {
		dto.Error(c, http.StatusBadRequest, "Invalid answer ID")
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.likeSvc.Unlike(ctx, id, *middleware.ViewerID(c)); err != nil {
		respondError(c, err)
		return
	}
	dto.NoContent(c)
}

func (h *AnswerHandler) ListComments(c *gin.Context) {
	id, err := uuid.Parse(c.Param("answer_id"))
	if err != nil {
		dto.Error(c, http.StatusBadRequest, "Invalid answer ID")
		return
	}
	page, pageSize, _ := dto.PaginationFromQuery(c, h.defaultSize, h.maxSize)
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	comments, total, err := h.commentSvc.ListByAnswer(ctx, id, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Paginated(c, comments, page, pageSize, total)
}

func (h *AnswerHandler) CreateComment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("answer_id"))
	if err != nil {
		dto.Error(c, http.StatusBadRequest, "Invalid answer ID")
		return
	}
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	comment, err := h.commentSvc.Create(ctx, id, *middleware.ViewerID(c), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Created(c, comment)
}
