package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/antoniofmoraes/nutri-plan/apperr"
)

// respondOK wraps data in the success envelope.
func respondOK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// respondMessage is used by delete-style endpoints that only acknowledge.
func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

// respondErr translates an error into the failure envelope. Business errors
// carry their own status; binding errors become field-level validation
// details; anything else is an internal error.
func respondErr(c *gin.Context, err error) {
	if e, ok := apperr.As(err); ok {
		body := gin.H{"success": false, "error": e.Message}
		if len(e.Details) > 0 {
			body["details"] = e.Details
		}
		c.JSON(apperr.Status(e), body)
		return
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]apperr.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, apperr.FieldError{Field: fe.Field(), Message: fe.Tag()})
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Dados inválidos", "details": details})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erro interno do servidor"})
}

// respondBindErr handles ShouldBindJSON failures.
func respondBindErr(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Dados inválidos"})
}

// currentUserID reads the authenticated user id placed by the auth
// middleware.
func currentUserID(c *gin.Context) uuid.UUID {
	id, _ := c.MustGet("userID").(uuid.UUID)
	return id
}

// pathUUID parses a uuid route param, answering NotFound on garbage so that
// malformed ids behave like missing resources.
func pathUUID(c *gin.Context, name, notFoundMsg string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondErr(c, apperr.NotFound(notFoundMsg))
		return uuid.Nil, false
	}
	return id, true
}
