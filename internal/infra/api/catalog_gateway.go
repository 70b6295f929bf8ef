package api

import (
	"context"
	"net/http"
	"strconv"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

// CatalogGateway implements service.CatalogGateway against the backend HTTP API.
type CatalogGateway struct {
	client *Client
}

// NewCatalogGateway creates the catalog gateway.
func NewCatalogGateway(client *Client) service.CatalogGateway {
	return &CatalogGateway{client: client}
}

// toolPayload tolerates both numeric and string tool identifiers; older
// backend versions serialize the ID as a string.
type toolPayload struct {
	ID         flexibleID `json:"id"`
	Name       string     `json:"name"`
	Price      float64    `json:"price"`
	Category   string     `json:"category"`
	ComingSoon bool       `json:"coming_soon"`
	URL        string     `json:"url"`
}

type flexibleID int64

func (f *flexibleID) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if len(raw) >= 2 && raw[0] == '"' {
		raw = raw[1 : len(raw)-1]
	}

	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return errors.Wrapf(err, "invalid tool id %q", raw)
	}
	*f = flexibleID(parsed)

	return nil
}

// ListTools returns the full catalog directory.
func (g *CatalogGateway) ListTools(ctx context.Context) ([]entity.CatalogItem, error) {
	var payload []toolPayload
	if err := g.client.do(ctx, http.MethodGet, "/tools", "", nil, &payload); err != nil {
		return nil, err
	}

	items := make([]entity.CatalogItem, 0, len(payload))
	for _, tool := range payload {
		items = append(items, entity.CatalogItem{
			ID:         int64(tool.ID),
			Name:       tool.Name,
			Price:      tool.Price,
			Category:   tool.Category,
			ComingSoon: tool.ComingSoon,
			LaunchURL:  tool.URL,
		})
	}

	return items, nil
}
