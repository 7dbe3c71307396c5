package v1

import (
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// Contracts validate the keys a route depends on. The stored document is the
// full request body, so clients may send any extra fields.

type SessionContract struct {
	Email string `json:"email" binding:"required,email"`
}

type JobOwnerContract struct {
	Email string `json:"email" binding:"omitempty,email"`
}

type JobContract struct {
	JobTitle string            `json:"jobTitle" binding:"required"`
	Category string            `json:"category"`
	JobOwner *JobOwnerContract `json:"jobOwner"`
}

type ApplicationContract struct {
	Email    string `json:"email" binding:"required,email"`
	JobID    string `json:"jobId" binding:"required"`
	Category string `json:"category"`
}

type UserContract struct {
	Email  string `json:"email" binding:"required,email"`
	Role   string `json:"role" binding:"user_role"`
	Status string `json:"status"`
}

type UserPatchContract struct {
	Email *string `json:"email" binding:"omitempty,email"`
	Role  *string `json:"role" binding:"omitempty,user_role"`
}

// bindDocument validates the body against contract (when not nil) and returns
// the body as an open document.
func bindDocument(c *gin.Context, contract interface{}) (domain.Document, error) {
	if contract != nil {
		if err := c.ShouldBindBodyWith(contract, binding.JSON); err != nil {
			return nil, apperror.BadRequest(validation.FormatValidationError(err))
		}
	}

	var doc domain.Document
	if err := c.ShouldBindBodyWith(&doc, binding.JSON); err != nil {
		return nil, apperror.BadRequest(validation.FormatValidationError(err))
	}
	if doc == nil {
		doc = domain.Document{}
	}
	return doc, nil
}
