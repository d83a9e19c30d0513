package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/wallet-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
)

// StatusCode maps a domain error to the HTTP status it is reported with
func StatusCode(err error) int {
	switch {
	case errors.Is(err, domainerr.ErrInsufficientBalance), domainerr.IsValidationError(err):
		return http.StatusBadRequest
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case domainerr.IsConflictError(err):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrPaymentDeclined):
		return http.StatusPaymentRequired
	case domainerr.IsGatewayError(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorResponse builds the error body for err. Server side failures never
// leak their details.
func NewErrorResponse(err error) dto.ErrorResponse {
	resp := dto.ErrorResponse{Code: domainerr.ErrorCode(err), Message: err.Error()}

	var validationErr *domainerr.ValidationError
	if errors.As(err, &validationErr) {
		resp.Field = validationErr.Field
	}

	switch status := StatusCode(err); {
	case status == http.StatusBadGateway:
		resp.Message = "Payment provider error"
	case status >= http.StatusInternalServerError:
		resp.Message = "Internal server error"
	}
	return resp
}

type logFielder interface {
	LogFields() map[string]any
}

// respondError logs err and writes its error response
func respondError(c *gin.Context, log coreport.Logger, message string, err error) {
	status := StatusCode(err)

	fields := map[string]any{
		"error":  err.Error(),
		"status": status,
		"path":   c.FullPath(),
	}
	var lf logFielder
	if errors.As(err, &lf) {
		for k, v := range lf.LogFields() {
			fields[k] = v
		}
	}
	if requestID := logger.RequestIDFromContext(c.Request.Context()); requestID != "" {
		fields["request_id"] = requestID
	}

	switch {
	case status >= http.StatusInternalServerError && !errors.Is(err, context.Canceled):
		log.Error(message, fields)
	default:
		log.Warn(message, fields)
	}

	c.JSON(status, NewErrorResponse(err))
}

// badRequest answers a malformed request that never reached the domain
func badRequest(c *gin.Context, field, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message: message,
		Field:   field,
	})
}

// parseIDParam reads a positive integer path parameter
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		badRequest(c, name, "Invalid "+name+" format")
		return 0, false
	}
	return id, true
}

// parseIntQuery reads an optional non-negative integer query parameter
func parseIntQuery(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		badRequest(c, name, name+" must be a non-negative integer")
		return 0, false
	}
	return v, true
}
