package handlers

import (
	"errors"
	"net/http"

	"coworking/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusFor maps an error kind to its HTTP status.
func statusFor(err error) int {
	switch utils.KindOf(err) {
	case utils.ErrValidation:
		return http.StatusBadRequest
	case utils.ErrNotFound:
		return http.StatusNotFound
	case utils.ErrConflict:
		return http.StatusConflict
	case utils.ErrPermission:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as the standard error body. Unclassified and
// transient failures are logged and rendered without internals.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		getLogger(c).Error("Request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		utils.JSONError(c, status, "internal_error", "Internal server error")
		return
	}

	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		utils.JSONError(c, status, appErr.Code, appErr.Message)
		return
	}
	utils.JSONError(c, status, "error", err.Error())
}

func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, utils.ErrorResponse{
		Error:   "invalid input",
		Code:    "invalid_input",
		Details: err.Error(),
	})
}
