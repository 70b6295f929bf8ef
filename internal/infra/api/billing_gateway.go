package api

import (
	"context"
	"net/http"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

// BillingGateway implements service.BillingGateway against the backend HTTP API.
type BillingGateway struct {
	client *Client
}

// NewBillingGateway creates the billing gateway.
func NewBillingGateway(client *Client) service.BillingGateway {
	return &BillingGateway{client: client}
}

type subscriptionResponse struct {
	HasAccess  bool    `json:"has_access"`
	Tools      []int64 `json:"tools"`
	ExpiryDate *string `json:"expiry_date"`
}

// FetchEntitlements returns the purchased-tool set for the token bearer.
func (g *BillingGateway) FetchEntitlements(ctx context.Context, accessToken string) (*entity.EntitlementSet, error) {
	var resp subscriptionResponse
	if err := g.client.do(ctx, http.MethodGet, "/auth/check-subscription", accessToken, nil, &resp); err != nil {
		if _, ok := credentialRejected(err); ok {
			return nil, errors.Wrap(service.ErrCredentialRejected, "entitlement sync")
		}

		return nil, err
	}

	var expiry *time.Time
	if resp.ExpiryDate != nil {
		if parsed, err := time.Parse(time.RFC3339, *resp.ExpiryDate); err == nil {
			expiry = &parsed
		}
	}

	return entity.NewEntitlementSet(resp.Tools, expiry, time.Now()), nil
}

type checkoutRequest struct {
	ToolID int64 `json:"tool_id"`
}

type checkoutResponse struct {
	CheckoutURL string `json:"checkout_url"`
}

// CreateCheckout opens a checkout session and returns the payment URL.
func (g *BillingGateway) CreateCheckout(ctx context.Context, accessToken string, toolID int64) (string, error) {
	var resp checkoutResponse
	if err := g.client.do(ctx, http.MethodPost, "/stripe/create-checkout", accessToken, checkoutRequest{ToolID: toolID}, &resp); err != nil {
		if _, ok := credentialRejected(err); ok {
			return "", errors.Wrap(service.ErrCredentialRejected, "checkout creation")
		}
		if detail, ok := clientError(err); ok {
			return "", domainerrors.ErrServer.WithDetails(detail)
		}

		return "", err
	}

	if resp.CheckoutURL == "" {
		return "", domainerrors.ErrServer.WrapMessage("checkout response missing checkout_url")
	}

	return resp.CheckoutURL, nil
}
