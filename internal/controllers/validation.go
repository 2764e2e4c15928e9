package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindingDetails turns a gin binding error into a response-friendly shape.
// Validator errors become one entry per failing field; anything else (bad
// JSON, wrong types) is reported as-is.
func bindingDetails(err error) interface{} {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	details := make([]gin.H, 0, len(verrs))
	for _, fe := range verrs {
		detail := gin.H{
			"field": fe.Field(),
			"rule":  fe.Tag(),
		}
		if fe.Param() != "" {
			detail["param"] = fe.Param()
		}
		details = append(details, detail)
	}
	return details
}

// invalidRequest writes the standard 400 response for a binding failure
func invalidRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Invalid request body",
		"details": bindingDetails(err),
	})
}
