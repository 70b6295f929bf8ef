// Package api contains the HTTP implementations of the backend gateways.
// All calls share one client with a request timeout so a hung backend can
// never wedge a caller indefinitely.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Client is the shared HTTP transport for all backend gateways.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// ClientParams holds dependencies for the backend client, injected by Fx.
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewClient creates the shared backend HTTP client.
func NewClient(params ClientParams) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: params.Config.Backend.Timeout},
		baseURL:    strings.TrimRight(params.Config.Backend.BaseURL, "/"),
		logger:     params.Logger,
	}
}

// detailPayload is the backend's error envelope.
type detailPayload struct {
	Detail string `json:"detail"`
}

// do executes a request and decodes a 2xx JSON body into out (out may be nil).
// Non-2xx responses are mapped onto the domain error taxonomy; the backend's
// {detail} message is preserved for the caller to inspect.
func (c *Client) do(ctx context.Context, method, path string, bearer string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errors.Wrap(err, "failed to build backend request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Backend request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)

		return domainerrors.NewNetworkError(err, method+" "+path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return domainerrors.NewNetworkError(err, "reading response for "+path)
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return errors.Wrapf(err, "failed to decode %s response", path)
		}

		return nil
	}

	return c.mapErrorStatus(resp.StatusCode, path, raw)
}

// mapErrorStatus converts a non-2xx backend response into a domain error.
func (c *Client) mapErrorStatus(status int, path string, raw []byte) error {
	detail := decodeDetail(raw)

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return errors.Wrapf(&statusError{status: status, detail: detail}, "backend rejected credentials for %s", path)
	case status >= http.StatusInternalServerError:
		c.logger.Warn("Backend returned server error",
			slog.String("path", path),
			slog.Int("status", status),
		)

		return domainerrors.ErrServer.WrapMessage(detail)
	default:
		return errors.WithStack(&statusError{status: status, detail: detail})
	}
}

func decodeDetail(raw []byte) string {
	var payload detailPayload
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Detail != "" {
		return payload.Detail
	}

	return strings.TrimSpace(string(raw))
}

// statusError carries the backend's status and detail message through the
// gateway layer so each gateway can map it onto its own taxonomy.
type statusError struct {
	status int
	detail string
}

func (e *statusError) Error() string {
	if e.detail != "" {
		return e.detail
	}

	return http.StatusText(e.status)
}

// credentialRejected reports whether err is a 401/403 backend answer.
func credentialRejected(err error) (string, bool) {
	var se *statusError
	if errors.As(err, &se) && (se.status == http.StatusUnauthorized || se.status == http.StatusForbidden) {
		return se.detail, true
	}

	return "", false
}

// clientError extracts a 4xx detail message from err.
func clientError(err error) (string, bool) {
	var se *statusError
	if errors.As(err, &se) && se.status >= http.StatusBadRequest && se.status < http.StatusInternalServerError {
		return se.detail, true
	}

	return "", false
}

// Interface guards.
var (
	_ service.AuthGateway    = (*AuthGateway)(nil)
	_ service.CatalogGateway = (*CatalogGateway)(nil)
	_ service.BillingGateway = (*BillingGateway)(nil)
)
