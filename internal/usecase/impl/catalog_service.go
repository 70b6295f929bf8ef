package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface. It caches the
// backend catalog after the first successful fetch; a failed fetch caches
// nothing so the next call retries.
type catalogService struct {
	gateway service.CatalogGateway
	logger  *slog.Logger

	mu        sync.Mutex
	directory *entity.Directory
}

// CatalogServiceParams holds dependencies for the catalog service, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogGateway service.CatalogGateway
	SessionUsecase usecase.SessionUsecase
	Logger         *slog.Logger
}

// NewCatalogService is the constructor for catalogService. The cache is
// dropped on every session change so a fresh sign-in never resolves against
// a directory fetched for someone else.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	srv := &catalogService{
		gateway: params.CatalogGateway,
		logger:  params.Logger,
	}

	params.SessionUsecase.Subscribe(func(*entity.Session) {
		srv.Invalidate()
	})

	return srv
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Items returns the full catalog, fetching it on first use. The mutex is
// held across the fetch so concurrent first calls result in one request.
func (srv *catalogService) Items(ctx context.Context) ([]entity.CatalogItem, error) {
	directory, err := srv.load(ctx)
	if err != nil {
		return nil, err
	}

	return directory.Items(), nil
}

// Refresh discards the cache and fetches the catalog again.
func (srv *catalogService) Refresh(ctx context.Context) ([]entity.CatalogItem, error) {
	srv.Invalidate()

	return srv.Items(ctx)
}

// ResolveTool maps a display name to its catalog item.
func (srv *catalogService) ResolveTool(ctx context.Context, name string) (entity.CatalogItem, error) {
	directory, err := srv.load(ctx)
	if err != nil {
		return entity.CatalogItem{}, err
	}

	id, ok := directory.IDByName(name)
	if !ok {
		srv.log(ctx).Debug("Catalog lookup missed", slog.String("name", name))

		return entity.CatalogItem{}, domainerrors.ErrToolNotFound.WithDetails(name)
	}

	item, _ := directory.ItemByID(id)

	return item, nil
}

// ResolveCached resolves a display name against the cached catalog without
// fetching. A cold cache is simply a miss.
func (srv *catalogService) ResolveCached(name string) (entity.CatalogItem, bool) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.directory == nil {
		return entity.CatalogItem{}, false
	}

	id, ok := srv.directory.IDByName(name)
	if !ok {
		return entity.CatalogItem{}, false
	}

	return srv.directory.ItemByID(id)
}

// ItemByID maps a backend tool identifier to its catalog item.
func (srv *catalogService) ItemByID(ctx context.Context, id int64) (entity.CatalogItem, error) {
	directory, err := srv.load(ctx)
	if err != nil {
		return entity.CatalogItem{}, err
	}

	item, ok := directory.ItemByID(id)
	if !ok {
		return entity.CatalogItem{}, domainerrors.ErrToolNotFound
	}

	return item, nil
}

// Invalidate drops the cached catalog without fetching a replacement.
func (srv *catalogService) Invalidate() {
	srv.mu.Lock()
	srv.directory = nil
	srv.mu.Unlock()
}

func (srv *catalogService) load(ctx context.Context) (*entity.Directory, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.directory != nil {
		return srv.directory, nil
	}

	items, err := srv.gateway.ListTools(ctx)
	if err != nil {
		srv.log(ctx).Warn("Catalog fetch failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to fetch catalog")
	}

	srv.directory = entity.NewDirectory(items)
	srv.log(ctx).Debug("Catalog cached", slog.Int("items", len(items)))

	return srv.directory, nil
}
