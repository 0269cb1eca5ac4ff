package handler

import (
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/d-fine/dataland-sourcing-service/internal/domain"
)

// Response is the unified response envelope.
type Response struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// SuccessResponse returns a successful response.
func SuccessResponse(c *app.RequestContext, data interface{}) {
	c.JSON(consts.StatusOK, Response{
		Code:    "SUCCESS",
		Message: "operation successful",
		Data:    data,
	})
}

// CreatedResponse returns a created response.
func CreatedResponse(c *app.RequestContext, data interface{}) {
	c.JSON(consts.StatusCreated, Response{
		Code:    "CREATED",
		Message: "resource created successfully",
		Data:    data,
	})
}

// ErrorResponse maps a domain error to its HTTP representation.
func ErrorResponse(c *app.RequestContext, err error) {
	// User-facing message without internal detail.
	getUserMessage := func(err error) string {
		if domainErr, ok := err.(*domain.DomainError); ok {
			return domainErr.UserMessage()
		}
		return "an error occurred"
	}

	switch {
	case domain.IsNotFound(err):
		c.JSON(consts.StatusNotFound, Response{
			Code:    "NOT_FOUND",
			Message: getUserMessage(err),
		})
	case domain.IsAlreadyExists(err):
		c.JSON(consts.StatusConflict, Response{
			Code:    "ALREADY_EXISTS",
			Message: getUserMessage(err),
		})
	case domain.IsIllegalTransition(err):
		c.JSON(consts.StatusConflict, Response{
			Code:    "ILLEGAL_TRANSITION",
			Message: getUserMessage(err),
		})
	case domain.IsInvalidDimension(err):
		c.JSON(consts.StatusBadRequest, Response{
			Code:    "INVALID_DIMENSION",
			Message: getUserMessage(err),
		})
	case domain.IsInvalidInput(err):
		c.JSON(consts.StatusBadRequest, Response{
			Code:    "INVALID_INPUT",
			Message: getUserMessage(err),
		})
	case domain.IsForbidden(err):
		c.JSON(consts.StatusForbidden, Response{
			Code:    "FORBIDDEN",
			Message: getUserMessage(err),
		})
	case domain.IsUnauthorized(err):
		c.JSON(consts.StatusUnauthorized, Response{
			Code:    "UNAUTHORIZED",
			Message: getUserMessage(err),
		})
	default:
		// Covers Inconsistent and unexpected failures; no detail leaves
		// the service.
		c.JSON(consts.StatusInternalServerError, Response{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		})
	}
}

// BadRequestResponse returns a bad request response.
func BadRequestResponse(c *app.RequestContext, message string) {
	c.JSON(consts.StatusBadRequest, Response{
		Code:    "BAD_REQUEST",
		Message: message,
	})
}

// ListResponse is the envelope for chunked listings.
type ListResponse struct {
	Items      interface{} `json:"items"`
	TotalCount int         `json:"totalCount"`
	ChunkSize  int         `json:"chunkSize"`
	ChunkIndex int         `json:"chunkIndex"`
}
