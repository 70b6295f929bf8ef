// Package handler contains the HTTP handlers for the local storefront API.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler holds dependencies for session-related handlers.
type SessionHandler struct {
	uc     usecase.SessionUsecase
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerRequest struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Password       string `json:"password"`
	RepeatPassword string `json:"repeat_password"`
}

// Register handles the account registration request.
func (h *SessionHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		Password:       req.Password,
		RepeatPassword: req.RepeatPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated,
		map[string]string{"confirmation": output.Confirmation},
		"Registration submitted")
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles the sign-in request.
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.SignIn(c.Request().Context(), usecase.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sessionPayload(output), "Login successful")
}

// Logout discards the local session.
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.uc.SignOut(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Signed out")
}

// GetSession returns the current session snapshot.
func (h *SessionHandler) GetSession(c echo.Context) error {
	return response.Success(c, http.StatusOK, sessionPayload(h.uc.Current()), "")
}

// Activate confirms an account using the emailed uid/token pair.
func (h *SessionHandler) Activate(c echo.Context) error {
	uid := c.Param("uid")
	token := c.Param("token")

	if err := h.uc.Activate(c.Request().Context(), uid, token); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account activated. You can sign in now.")
}

func sessionPayload(output *usecase.SessionOutput) map[string]any {
	payload := map[string]any{
		"signed_in": output.SignedIn,
	}
	if output.Profile != nil {
		payload["profile"] = map[string]any{
			"id":           output.Profile.ID,
			"email":        output.Profile.Email,
			"first_name":   output.Profile.FirstName,
			"last_name":    output.Profile.LastName,
			"display_name": output.Profile.DisplayName(),
			"verified":     output.Profile.Verified,
		}
		payload["signed_in_at"] = output.SignedInAt.Format(time.RFC3339)
	}

	return payload
}
