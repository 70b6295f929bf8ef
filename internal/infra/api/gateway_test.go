package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Backend = config.BackendConfig{BaseURL: server.URL, Timeout: 5 * time.Second}

	return NewClient(ClientParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestAuthGateway_Login_Success(t *testing.T) {
	gateway := NewAuthGateway(newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/login", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "user@example.com", req["email"])

		writeJSON(t, w, http.StatusOK, map[string]any{
			"access_token":  "token-abc",
			"refresh_token": "refresh-abc",
			"user": map[string]any{
				"id":          "user-1",
				"email":       "user@example.com",
				"first_name":  "Ada",
				"last_name":   "Lovelace",
				"is_verified": true,
			},
		})
	})))

	creds, profile, err := gateway.Login(context.Background(), "user@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "token-abc", creds.AccessToken)
	assert.Equal(t, "refresh-abc", creds.RefreshToken)
	assert.Equal(t, "user-1", profile.ID)
	assert.True(t, profile.Verified)
}

func TestAuthGateway_Login_InvalidCredentials(t *testing.T) {
	gateway := NewAuthGateway(newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"detail": "Invalid email or password"})
	})))

	_, _, err := gateway.Login(context.Background(), "user@example.com", "wrong")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthGateway_Login_UnverifiedAccount(t *testing.T) {
	gateway := NewAuthGateway(newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusForbidden, map[string]string{"detail": "Account is not verified. Please verify your email."})
	})))

	_, _, err := gateway.Login(context.Background(), "user@example.com", "secret123")
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotVerified)
}

func TestAuthGateway_Login_ServerError(t *testing.T) {
	gateway := NewAuthGateway(newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})))

	_, _, err := gateway.Login(context.Background(), "user@example.com", "secret123")
	assert.ErrorIs(t, err, domainerrors.ErrServer)
}

func TestAuthGateway_Login_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	cfg := &config.Config{}
	cfg.Backend = config.BackendConfig{BaseURL: server.URL, Timeout: time.Second}
	gateway := NewAuthGateway(NewClient(ClientParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}))

	_, _, err := gateway.Login(context.Background(), "user@example.com", "secret123")
	require.Error(t, err)
	assert.True(t, domainerrors.IsNetworkError(err))
}

func TestAuthGateway_Register(t *testing.T) {
	gateway := NewAuthGateway(newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/register", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "secret123", req["repeat_password"])

		writeJSON(t, w, http.StatusCreated, map[string]string{"detail": "Verification email sent."})
	})))

	confirmation, err := gateway.Register(context.Background(), service.RegistrationForm{
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Email:          "user@example.com",
		Password:       "secret123",
		RepeatPassword: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Verification email sent.", confirmation)
}

func TestAuthGateway_Register_Rejected(t *testing.T) {
	gateway := NewAuthGateway(newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, map[string]string{"detail": "Email already registered"})
	})))

	_, err := gateway.Register(context.Background(), service.RegistrationForm{Email: "user@example.com"})
	assert.ErrorIs(t, err, domainerrors.ErrRegistrationRejected)
}

func TestAuthGateway_Activate(t *testing.T) {
	gateway := NewAuthGateway(newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/activate/uid-1/token-1", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})))

	require.NoError(t, gateway.Activate(context.Background(), "uid-1", "token-1"))
}

func TestCatalogGateway_ListTools(t *testing.T) {
	gateway := NewCatalogGateway(newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/tools", r.URL.Path)

		// Mixed numeric and string IDs exercise both backend formats.
		writeJSON(t, w, http.StatusOK, []map[string]any{
			{"id": 3, "name": "Contract Analyzer", "price": 49.99, "category": "legal", "url": "https://tools.example.com/contracts"},
			{"id": "7", "name": "Invoice Builder", "price": 19.99, "category": "finance"},
			{"id": 9, "name": "Tax Assistant", "price": 89.99, "coming_soon": true},
		})
	})))

	items, err := gateway.ListTools(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, int64(3), items[0].ID)
	assert.Equal(t, int64(7), items[1].ID)
	assert.Equal(t, "https://tools.example.com/contracts", items[0].LaunchURL)
	assert.True(t, items[2].ComingSoon)
}

func TestCatalogGateway_ListTools_InvalidID(t *testing.T) {
	gateway := NewCatalogGateway(newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, []map[string]any{
			{"id": "not-a-number", "name": "Broken"},
		})
	})))

	_, err := gateway.ListTools(context.Background())
	require.Error(t, err)
}

func TestBillingGateway_FetchEntitlements(t *testing.T) {
	expiry := time.Now().Add(30 * 24 * time.Hour).UTC().Format(time.RFC3339)
	gateway := NewBillingGateway(newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/check-subscription", r.URL.Path)
		require.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))

		writeJSON(t, w, http.StatusOK, map[string]any{
			"has_access":  true,
			"tools":       []int64{3, 7},
			"expiry_date": expiry,
		})
	})))

	set, err := gateway.FetchEntitlements(context.Background(), "token-abc")
	require.NoError(t, err)
	assert.True(t, set.Contains(3))
	assert.True(t, set.Contains(7))
	assert.False(t, set.Contains(9))
	require.NotNil(t, set.Expiry)
}

func TestBillingGateway_FetchEntitlements_CredentialRejected(t *testing.T) {
	gateway := NewBillingGateway(newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"detail": "Token expired"})
	})))

	_, err := gateway.FetchEntitlements(context.Background(), "stale-token")
	assert.ErrorIs(t, err, service.ErrCredentialRejected)
}

func TestBillingGateway_CreateCheckout(t *testing.T) {
	gateway := NewBillingGateway(newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/stripe/create-checkout", r.URL.Path)

		var req map[string]int64
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(3), req["tool_id"])

		writeJSON(t, w, http.StatusOK, map[string]string{
			"checkout_url": "https://checkout.stripe.com/c/pay/cs_test_123",
		})
	})))

	url, err := gateway.CreateCheckout(context.Background(), "token-abc", 3)
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_123", url)
}

func TestBillingGateway_CreateCheckout_MissingURL(t *testing.T) {
	gateway := NewBillingGateway(newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]string{})
	})))

	_, err := gateway.CreateCheckout(context.Background(), "token-abc", 3)
	assert.ErrorIs(t, err, domainerrors.ErrServer)
}

func TestBillingGateway_CreateCheckout_CredentialRejected(t *testing.T) {
	gateway := NewBillingGateway(newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})))

	_, err := gateway.CreateCheckout(context.Background(), "stale-token", 3)
	assert.ErrorIs(t, err, service.ErrCredentialRejected)
}
