package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"quillhub/internal/http-api/dto"
	"quillhub/internal/http-api/middleware"
	"quillhub/internal/http-api/service"
)

type FeedHandler struct {
	feedSvc     service.FeedService
	defaultSize int
	maxSize     int
}

func NewFeedHandler(feedSvc service.FeedService, defaultSize, maxSize int) *FeedHandler {
	return &FeedHandler{
		feedSvc:     feedSvc,
		defaultSize: defaultSize,
		maxSize:     maxSize,
	}
}

func (h *FeedHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/feed", h.Feed)
	rg.GET("/trending", h.Trending)
	rg.GET("/rankings/:period", h.Rankings)
}

func (h *FeedHandler) Feed(c *gin.Context) {
	page, pageSize, _ := dto.PaginationFromQuery(c, h.defaultSize, h.maxSize)
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	answers, total, err := h.feedSvc.Feed(ctx, middleware.ViewerID(c), c.DefaultQuery("filter", "all"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Paginated(c, answers, page, pageSize, total)
}

func (h *FeedHandler) Trending(c *gin.Context) {
	page, pageSize, _ := dto.PaginationFromQuery(c, h.defaultSize, h.maxSize)
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	answers, total, err := h.feedSvc.Trending(ctx, middleware.ViewerID(c), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Paginated(c, answers, page, pageSize, total)
}

func (h *FeedHandler) Rankings(c *gin.Context) {
	page, pageSize, _ := dto.PaginationFromQuery(c, h.defaultSize, h.maxSize)
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	answers, total, err := h.feedSvc.Rankings(ctx, middleware.ViewerID(c), c.Param("period"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Paginated(c, answers, page, pageSize, total)
}
