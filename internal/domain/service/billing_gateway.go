package service

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrCredentialRejected is returned when the backend answers an
// authenticated call with 401/403. The stored credential is no longer
// valid and the session must be torn down, not merely the call failed.
var ErrCredentialRejected = errors.New("bearer credential rejected by backend")

// BillingGateway is the entitlement and payment surface of the backend.
type BillingGateway interface {
	// FetchEntitlements returns the purchased-tool set for the bearer of
	// the given token. 401/403 maps to ErrCredentialRejected.
	FetchEntitlements(ctx context.Context, accessToken string) (*entity.EntitlementSet, error)

	// CreateCheckout opens a checkout session for the given tool and
	// returns the external payment URL the user must be sent to.
	CreateCheckout(ctx context.Context, accessToken string, toolID int64) (string, error)
}
