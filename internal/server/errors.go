package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	bankingdomain "github.com/marinex/fueleu/internal/banking/domain"
	compliancedomain "github.com/marinex/fueleu/internal/compliance/domain"
	poolingdomain "github.com/marinex/fueleu/internal/pooling/domain"
	routedomain "github.com/marinex/fueleu/internal/route/domain"
	"gorm.io/gorm"
)

type errorPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var ErrInvalidRequest = errors.New("invalid_request")

// ErrorHandlingMiddleware maps domain errors collected on the gin context to
// a JSON error response once the handler chain finishes.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorPayload) {
	switch {
	case isValidationError(err):
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: err.Error(),
		}
	case errors.Is(err, bankingdomain.ErrInsufficientReserve),
		errors.Is(err, routedomain.ErrNoBaseline):
		return http.StatusBadRequest, errorPayload{
			Type:    errorType(err),
			Message: err.Error(),
		}
	case errors.Is(err, bankingdomain.ErrInsufficientBalance),
		errors.Is(err, routedomain.ErrAlreadyBaseline),
		errors.Is(err, routedomain.ErrRouteExists),
		errors.Is(err, poolingdomain.ErrConstraintViolation):
		return http.StatusConflict, errorPayload{
			Type:    errorType(err),
			Message: err.Error(),
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: err.Error(),
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, routedomain.ErrInvalidRouteID),
		errors.Is(err, routedomain.ErrInvalidYear),
		errors.Is(err, routedomain.ErrInvalidIntensity),
		errors.Is(err, routedomain.ErrInvalidFuel),
		errors.Is(err, compliancedomain.ErrInvalidShipID),
		errors.Is(err, compliancedomain.ErrInvalidYear),
		errors.Is(err, bankingdomain.ErrInvalidShipID),
		errors.Is(err, bankingdomain.ErrInvalidYear),
		errors.Is(err, bankingdomain.ErrInvalidAmount),
		errors.Is(err, poolingdomain.ErrInvalidYear),
		errors.Is(err, poolingdomain.ErrNoMembers),
		errors.Is(err, poolingdomain.ErrDuplicateMember):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, routedomain.ErrNotFound),
		errors.Is(err, compliancedomain.ErrNotFound),
		errors.Is(err, poolingdomain.ErrNotFound),
		errors.Is(err, poolingdomain.ErrMissingComplianceRecord),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}

func errorType(err error) string {
	switch {
	case errors.Is(err, bankingdomain.ErrInsufficientReserve):
		return "insufficient_reserve"
	case errors.Is(err, bankingdomain.ErrInsufficientBalance):
		return "insufficient_balance"
	case errors.Is(err, routedomain.ErrAlreadyBaseline):
		return "already_baseline"
	case errors.Is(err, routedomain.ErrRouteExists):
		return "conflict"
	case errors.Is(err, routedomain.ErrNoBaseline):
		return "no_baseline_set"
	case errors.Is(err, poolingdomain.ErrConstraintViolation):
		return "pool_constraint_violation"
	default:
		return "error"
	}
}
