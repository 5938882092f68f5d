package http

import (
	"errors"
	"net/http"

	"sales/internal/core/domain/model/inventory"
	"sales/internal/core/domain/model/order"
	"sales/internal/generated/servers"
	"sales/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type malformedRequestError struct {
	cause error
}

func (e *malformedRequestError) Error() string {
	return "malformed request body: " + e.cause.Error()
}

func (e *malformedRequestError) Unwrap() error {
	return e.cause
}

// statusFor maps an error kind to the HTTP status returned for it.
func statusFor(err error) int {
	var malformed *malformedRequestError
	var validation validator.ValidationErrors

	switch {
	case errors.As(err, &malformed):
		return http.StatusBadRequest
	case errors.As(err, &validation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, inventory.ErrInsufficientStock),
		errors.Is(err, order.ErrInvalidState),
		errors.Is(err, errs.ErrObjectIsReferenced),
		errors.Is(err, errs.ErrConcurrencyConflict):
		return http.StatusConflict
	case errors.Is(err, order.ErrEmptyOrder),
		errors.Is(err, order.ErrInvalidQuantity),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrTimeout), errors.Is(err, errs.ErrStorage):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as a servers.Error. Stock failures carry every shortfall.
func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusFor(err)
	body := servers.Error{Code: code, Message: err.Error()}

	var shortage *inventory.InsufficientStockError
	if errors.As(err, &shortage) {
		shortfalls := make([]servers.Shortfall, 0, len(shortage.Shortfalls))
		for _, sf := range shortage.Shortfalls {
			shortfalls = append(shortfalls, servers.Shortfall{
				ProductId: sf.ProductID.Bytes(),
				Requested: sf.Requested,
				Available: sf.Available,
			})
		}
		body.Shortfalls = &shortfalls
	}

	if code >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		if code == http.StatusInternalServerError {
			body.Message = "Internal server error"
		}
	}

	return ctx.JSON(code, body)
}
