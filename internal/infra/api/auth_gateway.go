package api

import (
	"context"
	"net/http"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
)

// verificationHints are detail-message fragments the backend uses when an
// account exists but its email has not been activated. The wording varies
// between backend versions, so all known variants are checked.
var verificationHints = []string{
	"account is not verified",
	"not verified",
	"verify your email",
	"account not activated",
	"activation required",
}

// AuthGateway implements service.AuthGateway against the backend HTTP API.
type AuthGateway struct {
	client *Client
}

// NewAuthGateway creates the authentication gateway.
func NewAuthGateway(client *Client) service.AuthGateway {
	return &AuthGateway{client: client}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         struct {
		ID         string `json:"id"`
		Email      string `json:"email"`
		FirstName  string `json:"first_name"`
		LastName   string `json:"last_name"`
		Phone      string `json:"phone"`
		IsVerified bool   `json:"is_verified"`
	} `json:"user"`
}

// Login exchanges credentials for tokens and the user profile.
func (g *AuthGateway) Login(ctx context.Context, email, password string) (*service.Credentials, *entity.UserProfile, error) {
	var resp loginResponse
	err := g.client.do(ctx, http.MethodPost, "/login", "", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		if detail, ok := credentialRejected(err); ok {
			if isVerificationDetail(detail) {
				return nil, nil, domainerrors.ErrAccountNotVerified.WithDetails(detail)
			}

			return nil, nil, domainerrors.ErrInvalidCredentials.WithDetails(detail)
		}
		if detail, ok := clientError(err); ok {
			if isVerificationDetail(detail) {
				return nil, nil, domainerrors.ErrAccountNotVerified.WithDetails(detail)
			}

			return nil, nil, domainerrors.ErrInvalidCredentials.WithDetails(detail)
		}

		return nil, nil, err
	}

	creds := &service.Credentials{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}
	profile := &entity.UserProfile{
		ID:        resp.User.ID,
		Email:     resp.User.Email,
		FirstName: resp.User.FirstName,
		LastName:  resp.User.LastName,
		Phone:     resp.User.Phone,
		Verified:  resp.User.IsVerified,
	}

	return creds, profile, nil
}

type registerRequest struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Password       string `json:"password"`
	RepeatPassword string `json:"repeat_password"`
}

type registerResponse struct {
	Detail string `json:"detail"`
}

// Register submits a registration and returns the confirmation message.
func (g *AuthGateway) Register(ctx context.Context, form service.RegistrationForm) (string, error) {
	req := registerRequest{
		FirstName:      form.FirstName,
		LastName:       form.LastName,
		Email:          form.Email,
		Phone:          form.Phone,
		Password:       form.Password,
		RepeatPassword: form.RepeatPassword,
	}

	var resp registerResponse
	if err := g.client.do(ctx, http.MethodPost, "/register", "", req, &resp); err != nil {
		if detail, ok := clientError(err); ok {
			return "", domainerrors.ErrRegistrationRejected.WithDetails(detail)
		}

		return "", err
	}

	if resp.Detail == "" {
		resp.Detail = "Verification email sent. Please check your inbox."
	}

	return resp.Detail, nil
}

// Activate confirms an email activation link.
func (g *AuthGateway) Activate(ctx context.Context, uid, token string) error {
	return g.client.do(ctx, http.MethodGet, "/activate/"+uid+"/"+token, "", nil, nil)
}

func isVerificationDetail(detail string) bool {
	lowered := strings.ToLower(detail)
	for _, hint := range verificationHints {
		if strings.Contains(lowered, hint) {
			return true
		}
	}

	return false
}
