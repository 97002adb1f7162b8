// Package httpx holds request parsing helpers shared by handlers.
package httpx

import (
	"net/http"
	"strconv"

	"hotel/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ParamID reads a positive integer path parameter. On failure it renders a
// 400 and returns false.
func ParamID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Identificador inválido")
		return 0, false
	}
	return id, true
}

// Limit reads ?limit= with the default page size and a hard cap.
func Limit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultLimit)))
	if err != nil || limit <= 0 {
		return DefaultLimit
	}
	return min(limit, MaxLimit)
}

// Page reads limit/offset with the default page size and a hard cap.
func Page(c *gin.Context) (limit, offset int) {
	limit = Limit(c)
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}
