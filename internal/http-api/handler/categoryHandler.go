package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"quillhub/internal/http-api/dto"
	"quillhub/internal/http-api/service"
)

type CategoryHandler struct {
	categorySvc  service.CategoryService
	challengeSvc service.ChallengeService
	defaultSize  int
	maxSize      int
}

func NewCategoryHandler(categorySvc service.CategoryService, challengeSvc service.ChallengeService, defaultSize, maxSize int) *CategoryHandler {
	return &CategoryHandler{
		categorySvc:  categorySvc,
		challengeSvc: challengeSvc,
		defaultSize:  defaultSize,
		maxSize:      maxSize,
	}
}

func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:category_id", h.Get)
	rg.GET("/:category_id/challenges", h.ListChallenges)
}

func (h *CategoryHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	categories, err := h.categorySvc.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, categories)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("category_id"))
	if err != nil {
		dto.Error(c, http.StatusBadRequest, "Invalid category ID")
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	category, err := h.categorySvc.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, category)
}

func (h *CategoryHandler) ListChallenges(c *gin.Context) {
	id, err := uuid.Parse(c.Param("category_id"))
	if err != nil {
		dto.Error(c, http.StatusBadRequest, "Invalid category ID")
		return
	}
	page, pageSize, _ := dto.PaginationFromQuery(c, h.defaultSize, h.maxSize)
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	challenges, total, err := h.challengeSvc.ListByCategory(ctx, id, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Paginated(c, challenges, page, pageSize, total)
}
