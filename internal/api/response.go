package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"relief-coordination-backend/internal/apperr"
)

// Every endpoint answers with a tagged result:
// {"success":true,"data":...} or {"success":false,"error":{code,message}}.

func respond(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondErr(c *gin.Context, err error) {
	code := apperr.CodeOf(err)
	status := http.StatusInternalServerError
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		status = http.StatusBadRequest
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindAuth:
		if code == "forbidden" {
			status = http.StatusForbidden
		} else {
			status = http.StatusUnauthorized
		}
	}
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": apperr.MessageOf(err),
		},
	})
}

func respondBindErr(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "invalid-request-body",
			"message": "요청 형식이 올바르지 않습니다.",
		},
	})
}
