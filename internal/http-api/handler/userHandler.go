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

type UserHandler struct {
	userSvc     service.UserService
	answerSvc   service.AnswerService
	followSvc   service.FollowService
	defaultSize int
	maxSize     int
}

func NewUserHandler(userSvc service.UserService, answerSvc service.AnswerService, followSvc service.FollowService, defaultSize, maxSize int) *UserHandler {
	return &UserHandler{
		userSvc:     userSvc,
		answerSvc:   answerSvc,
		followSvc:   followSvc,
		defaultSize: defaultSize,
		maxSize:     maxSize,
	}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("/:user_id", h.GetProfile)
	rg.PUT("/:user_id", middleware.RequireIdentity(), h.Update)
	rg.GET("/:user_id/answers", h.ListAnswers)

	rg.POST("/:user_id/follow", middleware.RequireIdentity(), h.Follow)
	rg.DELETE("/:user_id/follow", middleware.RequireIdentity(), h.Unfollow)
	rg.GET("/:user_id/followers", h.Followers)
	rg.GET("/:user_id/following", h.Following)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := h.userSvc.Create(ctx, req)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Created(c, user)
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		dto.Error(c, http.StatusBadRequest, "Invalid user ID")
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	profile, err := h.userSvc.GetProfile(ctx, id, middleware.ViewerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, profile)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		dto.Error(c, http.StatusBadRequest, "Invalid user ID")
		return
	}
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := h.userSvc.Update(ctx, id, *middleware.ViewerID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, user)
}

func (h *UserHandler) ListAnswers(c *gin.Context) {
	id, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		dto.Error(c, http.StatusBadRequest, "Invalid user ID")
		return
	}
	page, pageSize, _ := dto.PaginationFromQuery(c, h.defaultSize, h.maxSize)
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	answers, total, err := h.answerSvc.ListByUser(ctx, id, middleware.ViewerID(c), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Paginated(c, answers, page, pageSize, total)
}

func (h *UserHandler) Follow(c *gin.Context) {
	id, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		dto.Error(c, http.StatusBadRequest, "Invalid user ID")
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	follow, err := h.followSvc.Follow(ctx, *middleware.ViewerID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Created(c, follow)
}

func (h *UserHandler) Unfollow(c *gin.Context) {
	id, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		dto.Error(c, http.StatusBadRequest, "Invalid user ID")
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.followSvc.Unfollow(ctx, *middleware.ViewerID(c), id); err != nil {
		respondError(c, err)
		return
	}
	dto.NoContent(c)
}

func (h *UserHandler) Followers(c *gin.Context) {
	id, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		dto.Error(c, http.StatusBadRequest, "Invalid user ID")
		return
	}
	page, pageSize, _ := dto.PaginationFromQuery(c, h.defaultSize, h.maxSize)
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	users, total, err := h.followSvc.Followers(ctx, id, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Paginated(c, users, page, pageSize, total)
}

func (h *UserHandler) Following(c *gin.Context) {
	id, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		dto.Error(c, http.StatusBadRequest, "Invalid user ID")
		return
	}
	page, pageSize, _ := dto.PaginationFromQuery(c, h.defaultSize, h.maxSize)
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	users, total, err := h.followSvc.Following(ctx, id, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Paginated(c, users, page, pageSize, total)
}
