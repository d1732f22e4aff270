package api

import (
	"errors"
	"net/http"

	"github.com/aiya/event-intake/internal/intake"
	"github.com/aiya/event-intake/internal/pkg/httputil"
	"github.com/aiya/event-intake/internal/pkg/logger"
)

// Handlers exposes the intake service over HTTP.
type Handlers struct {
	svc *intake.Service
}

// NewHandlers creates the HTTP handlers for the given intake service.
func NewHandlers(svc *intake.Service) *Handlers {
	return &Handlers{svc: svc}
}

// HandleRegister accepts a registration submission.
//
//	POST /api/register
func (h *Handlers) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var in intake.RegistrationInput
	if !httputil.Decode(w, r, &in) {
		return
	}

	res, err := h.svc.Register(r.Context(), in)
	if err != nil {
		if ve, ok := intake.AsValidationErrors(err); ok {
			httputil.JSON(w, http.StatusBadRequest, map[string]any{
				"success": false,
				"message": "Invalid request data",
				"errors":  ve,
			})
			return
		}
		if errors.Is(err, intake.ErrDuplicateEmail) {
			httputil.JSON(w, http.StatusConflict, map[string]any{
				"success": false,
				"message": "This email is already registered",
			})
			return
		}
		// Storage failure: full detail stays server-side.
		logger.Error("registration failed", "error", err.Error())
		httputil.JSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"message": "Registration failed. Please try again.",
		})
		return
	}

	httputil.OK(w, map[string]any{
		"success":        true,
		"message":        "Registration successful",
		"registrationId": res.Registration.ID,
		"emailSent":      res.Email.Sent,
	})
}

// HandleCheckRegistration reports whether an email is already registered.
// Advisory only; the write path still enforces uniqueness.
//
//	GET /api/check-registration?email=
func (h *Handlers) HandleCheckRegistration(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		httputil.JSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "email query parameter is required",
		})
		return
	}

	exists, err := h.svc.CheckRegistration(r.Context(), email)
	if err != nil {
		logger.Error("registration check failed", "error", err.Error())
		httputil.JSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"message": "Check failed. Please try again.",
		})
		return
	}

	httputil.OK(w, map[string]any{"exists": exists})
}

// HandleCreateOrder accepts a ticket-order submission.
//
//	POST /api/orders
func (h *Handlers) HandleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var in intake.OrderInput
	if !httputil.Decode(w, r, &in) {
		return
	}

	res, err := h.svc.PlaceOrder(r.Context(), in)
	if err != nil {
		if ve, ok := intake.AsValidationErrors(err); ok {
			httputil.JSON(w, http.StatusBadRequest, map[string]any{
				"success": false,
				"message": "Invalid request data",
				"errors":  ve,
			})
			return
		}
		logger.Error("order failed", "error", err.Error())
		httputil.JSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"message": "Order failed. Please try again.",
		})
		return
	}

	httputil.OK(w, map[string]any{
		"success": true,
		"orderId": res.Order.ID,
	})
}
