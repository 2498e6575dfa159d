package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"quillhub/internal/http-api/dto"
	"quillhub/internal/http-api/middleware"
	"quillhub/internal/http-api/repository"
	"quillhub/internal/http-api/service"
)

type ChallengeHandler struct {
	challengeSvc service.ChallengeService
	answerSvc    service.AnswerService
	defaultSize  int
	maxSize      int
}

func NewChallengeHandler(challengeSvc service.ChallengeService, answerSvc service.AnswerService, defaultSize, maxSize int) *ChallengeHandler {
	return &ChallengeHandler{
		challengeSvc: challengeSvc,
		answerSvc:    answerSvc,
		defaultSize:  defaultSize,
		maxSize:      maxSize,
	}
}

func (h *ChallengeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/daily", h.Daily)
	rg.GET("/:challenge_id", h.Get)
	rg.POST("", middleware.RequireIdentity(), h.Create)

	rg.GET("/:challenge_id/answers", h.ListAnswers)
	rg.POST("/:challenge_id/answers", middleware.RequireIdentity(), h.CreateAnswer)
}

func (h *ChallengeHandler) List(c *gin.Context) {
	page, pageSize, _ := dto.PaginationFromQuery(c, h.defaultSize, h.maxSize)
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	challenges, total, err := h.challengeSvc.List(ctx, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Paginated(c, challenges, page, pageSize, total)
}

func (h *ChallengeHandler) Daily(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	challenges, err := h.challengeSvc.Daily(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, challenges)
}

func (h *ChallengeHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("challenge_id"))
	if err != nil {
		dto.Error(c, http.StatusBadRequest, "Invalid challenge ID")
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	challenge, err := h.challengeSvc.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, challenge)
}

func (h *ChallengeHandler) Create(c *gin.Context) {
	var req dto.CreateChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	challenge, err := h.challengeSvc.Create(ctx, req)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Created(c, challenge)
}

func (h *ChallengeHandler) ListAnswers(c *gin.Context) {
	id, err := uuid.Parse(c.Param("challenge_id"))
	if err != nil {
		dto.Error(c, http.StatusBadRequest, "Invalid challenge ID")
		return
	}
	sort := repository.SortFromQuery(c.Query("sort"))
	page, pageSize, _ := dto.PaginationFromQuery(c, h.defaultSize, h.maxSize)
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	answers, total, err := h.answerSvc.ListByChallenge(ctx, id, middleware.ViewerID(c), sort, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Paginated(c, answers, page, pageSize, total)
}

func (h *ChallengeHandler) CreateAnswer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("challenge_id"))
	if err != nil {
		dto.Error(c, http.StatusBadRequest, "Invalid challenge ID")
		return
	}
	var req dto.CreateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	answer, err := h.answerSvc.Create(ctx, id, *middleware.ViewerID(c), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Created(c, answer)
}
