package middleware

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/backend"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/cart"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/checkout"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/orders"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/shared/apperr"
)

func Fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// ErrorHandler renders the last handler error as JSON.
func ErrorHandler(l *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		ae := Translate(err)
		status := apperr.HTTPStatus(ae)
		rid := GetRequestID(c)

		level := slog.LevelWarn
		if status >= 500 {
			level = slog.LevelError
		}
		l.LogAttrs(c.Request.Context(), level, "request_failed",
			slog.String("request_id", rid),
			slog.String("kind", string(ae.Kind)),
			slog.Int("status", status),
			slog.Any("err", err),
		)

		payload := gin.H{
			"error":      apperr.PublicMessage(ae),
			"request_id": rid,
		}
		if len(ae.Fields) > 0 {
			payload["fields"] = ae.Fields
		}
		if ae.Redirect != "" {
			payload["redirect"] = ae.Redirect
		}
		c.AbortWithStatusJSON(status, payload)
	}
}

// Translate maps domain and backend errors onto application error kinds.
func Translate(err error) *apperr.AppError {
	if ae, ok := apperr.As(err); ok {
		return ae
	}

	var ve *checkout.ValidationError
	if errors.As(err, &ve) {
		return apperr.InvalidErr(ve.Message, ve.Fields).WithCause(err)
	}

	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		return apperr.ConflictErr("Your cart is empty.").WithRedirect("/cart").WithCause(err)
	case errors.Is(err, checkout.ErrSubmissionInFlight):
		return apperr.ConflictErr("Your order is already being placed.").WithCause(err)
	case errors.Is(err, checkout.ErrAlreadyComplete):
		return apperr.ConflictErr("This order has already been placed.").WithCause(err)
	case errors.Is(err, checkout.ErrPaymentNotReady):
		return apperr.ConflictErr("Complete the previous checkout steps first.").WithCause(err)
	case errors.Is(err, checkout.ErrInvalidDelivery):
		return apperr.InvalidErr("Choose home delivery or store pickup.", map[string]string{"delivery_option": "invalid"}).WithCause(err)
	case errors.Is(err, checkout.ErrInvalidPayment):
		return apperr.InvalidErr("Choose card or cash on delivery.", map[string]string{"payment_method": "invalid"}).WithCause(err)
	case errors.Is(err, cart.ErrUnknownLensType), errors.Is(err, cart.ErrUnknownLensOption):
		return apperr.InvalidErr("Unknown lens option.", nil).WithCause(err)
	case errors.Is(err, orders.ErrInvalidStatus):
		return apperr.InvalidErr("Unknown order status.", map[string]string{"status": "invalid"}).WithCause(err)
	case errors.Is(err, orders.ErrNotCancellable):
		return apperr.ConflictErr("This order can no longer be cancelled.").WithCause(err)
	case errors.Is(err, orders.ErrNothingReordered):
		return apperr.ConflictErr("None of the items from this order are available.").WithCause(err)
	case errors.Is(err, orders.ErrUnknownOrder):
		return apperr.NotFoundErr("Order not found. Refresh the order list.").WithCause(err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return apperr.UnavailableErr("The request was interrupted. Please try again.").WithCause(err)
	}

	var be *backend.Error
	if errors.As(err, &be) {
		msg := be.UserMessage()
		switch be.Kind {
		case backend.KindNotFound:
			return apperr.NotFoundErr(msg).WithCause(err)
		case backend.KindUnauthorized:
			return apperr.UnauthorizedErr(msg).WithCause(err)
		case backend.KindForbidden:
			return apperr.ForbiddenErr(msg).WithCause(err)
		case backend.KindRejected:
			return apperr.InvalidErr(msg, nil).WithCause(err)
		default:
			return apperr.UnavailableErr(msg).WithCause(err)
		}
	}

	return apperr.Wrap(err)
}
