package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/dashboard-config-api/internal/api/dto"
	"github.com/kingrain94/dashboard-config-api/internal/repository"
	"github.com/kingrain94/dashboard-config-api/internal/service"
	"github.com/kingrain94/dashboard-config-api/internal/utils"
)

type BaseHandler struct{}

func (h *BaseHandler) RequestCtx(ginCtx *gin.Context) context.Context {
	ctx := ginCtx.Request.Context()
	for k, v := range ginCtx.Keys {
		// Convert string keys to proper context key types to avoid collisions
		contextKey := utils.ContextKey(k)
		ctx = context.WithValue(ctx, contextKey, v)
	}
	return ctx
}

// WriteError maps manager and store errors to a status code and writes dto.Error.
func (h *BaseHandler) WriteError(c *gin.Context, err error) {
	c.JSON(statusFor(err), dto.Error{Error: err.Error()})
}

func (h *BaseHandler) BadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
}

// ParseID reads a positive numeric path parameter.
func (h *BaseHandler) ParseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		h.BadRequest(c, fmt.Errorf("invalid %s: %q", name, c.Param(name)))
		return 0, false
	}
	return uint(id), true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrPreferenceNotFound),
		errors.Is(err, service.ErrParentNotFound),
		errors.Is(err, repository.ErrParentNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrDuplicateUser),
		errors.Is(err, repository.ErrConstraintViolation):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidGeometry),
		errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
