package controllers

import (
	"beadcraft/pkg/apperr"
	"beadcraft/pkg/resp"

	"github.com/gin-gonic/gin"
)

// writeError maps service error kinds onto HTTP responses.
func writeError(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		resp.BadRequest(c, err.Error())
	case apperr.KindNotFound:
		resp.NotFound(c, err.Error())
	case apperr.KindConflict:
		resp.Conflict(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
