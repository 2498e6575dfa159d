package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform wrapper returned by every endpoint.
type Envelope struct {
	Success    bool            `json:"success"`
	Data       any             `json:"data,omitempty"`
	Error      string          `json:"error,omitempty"`
	Pagination *PaginationInfo `json:"pagination,omitempty"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: data})
}

func Paginated(c *gin.Context, data any, page, pageSize int, total int64) {
	info := NewPaginationInfo(page, pageSize, total)
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Pagination: &info})
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{Success: false, Error: message})
}
