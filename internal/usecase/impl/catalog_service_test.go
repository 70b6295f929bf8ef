package impl

import (
	"context"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	mockSvc "storefront/internal/mocks/service"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogFixture(t *testing.T) (*mockSvc.MockCatalogGateway, usecase.CatalogUsecase) {
	gateway, service, _ := newCatalogFixtureWithSessions(t)

	return gateway, service
}

func newCatalogFixtureWithSessions(t *testing.T) (*mockSvc.MockCatalogGateway, usecase.CatalogUsecase, *listenerCapture) {
	t.Helper()

	capture := &listenerCapture{}
	sessions := mockUC.NewMockSessionUsecase(t)
	sessions.EXPECT().
		Subscribe(mock.Anything).
		Run(func(listener usecase.SessionListener) {
			capture.listener = listener
		}).
		Return(func() {})

	gateway := mockSvc.NewMockCatalogGateway(t)
	service := NewCatalogService(CatalogServiceParams{
		CatalogGateway: gateway,
		SessionUsecase: sessions,
		Logger:         testLogger(),
	})

	return gateway, service, capture
}

type listenerCapture struct {
	listener usecase.SessionListener
}

func TestCatalogService_Items_FetchedOnce(t *testing.T) {
	gateway, service := newCatalogFixture(t)
	ctx := context.Background()

	gateway.EXPECT().
		ListTools(ctx).
		Return(catalogFixtureItems(), nil).
		Once()

	first, err := service.Items(ctx)
	require.NoError(t, err)
	assert.Len(t, first, 3)

	// Second call is served from the cache; the mock would fail on a
	// second fetch.
	second, err := service.Items(ctx)
	require.NoError(t, err)
	assert.Len(t, second, 3)
}

func TestCatalogService_Items_FailureNotCached(t *testing.T) {
	gateway, service := newCatalogFixture(t)
	ctx := context.Background()

	gateway.EXPECT().
		ListTools(ctx).
		Return(nil, errors.New("connection refused")).
		Once()
	gateway.EXPECT().
		ListTools(ctx).
		Return(catalogFixtureItems(), nil).
		Once()

	_, err := service.Items(ctx)
	require.Error(t, err)

	items, err := service.Items(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestCatalogService_ResolveTool(t *testing.T) {
	gateway, service := newCatalogFixture(t)
	ctx := context.Background()

	gateway.EXPECT().
		ListTools(ctx).
		Return(catalogFixtureItems(), nil).
		Once()

	item, err := service.ResolveTool(ctx, "Contract Analyzer")
	require.NoError(t, err)
	assert.Equal(t, int64(3), item.ID)
	assert.Equal(t, 49.99, item.Price)

	_, err = service.ResolveTool(ctx, "No Such Tool")
	assert.ErrorIs(t, err, domainerrors.ErrToolNotFound)

	// Exact-name lookup; a case mismatch is a miss.
	_, err = service.ResolveTool(ctx, "contract analyzer")
	assert.ErrorIs(t, err, domainerrors.ErrToolNotFound)
}

func TestCatalogService_ItemByID(t *testing.T) {
	gateway, service := newCatalogFixture(t)
	ctx := context.Background()

	gateway.EXPECT().
		ListTools(ctx).
		Return(catalogFixtureItems(), nil).
		Once()

	item, err := service.ItemByID(ctx, 9)
	require.NoError(t, err)
	assert.True(t, item.ComingSoon)

	_, err = service.ItemByID(ctx, 999)
	assert.ErrorIs(t, err, domainerrors.ErrToolNotFound)
}

func TestCatalogService_Invalidate_ForcesRefetch(t *testing.T) {
	gateway, service := newCatalogFixture(t)
	ctx := context.Background()

	gateway.EXPECT().
		ListTools(ctx).
		Return(catalogFixtureItems(), nil).
		Twice()

	_, err := service.Items(ctx)
	require.NoError(t, err)

	service.Invalidate()

	_, err = service.Items(ctx)
	require.NoError(t, err)
}

func TestCatalogService_ResolveCached(t *testing.T) {
	gateway, service := newCatalogFixture(t)
	ctx := context.Background()

	// A cold cache never fetches; the lookup is simply a miss.
	_, ok := service.ResolveCached("Contract Analyzer")
	assert.False(t, ok)

	gateway.EXPECT().
		ListTools(ctx).
		Return(catalogFixtureItems(), nil).
		Once()
	_, err := service.Items(ctx)
	require.NoError(t, err)

	item, ok := service.ResolveCached("Contract Analyzer")
	require.True(t, ok)
	assert.Equal(t, int64(3), item.ID)

	_, ok = service.ResolveCached("No Such Tool")
	assert.False(t, ok)
}

func TestCatalogService_SessionChangeInvalidatesCache(t *testing.T) {
	gateway, service, capture := newCatalogFixtureWithSessions(t)
	ctx := context.Background()

	gateway.EXPECT().
		ListTools(ctx).
		Return(catalogFixtureItems(), nil).
		Twice()

	_, err := service.Items(ctx)
	require.NoError(t, err)

	require.NotNil(t, capture.listener)
	capture.listener(nil)

	_, ok := service.ResolveCached("Contract Analyzer")
	assert.False(t, ok)

	_, err = service.Items(ctx)
	require.NoError(t, err)
}

func TestCatalogService_Refresh(t *testing.T) {
	gateway, service := newCatalogFixture(t)
	ctx := context.Background()

	gateway.EXPECT().
		ListTools(ctx).
		Return(catalogFixtureItems(), nil).
		Twice()

	_, err := service.Items(ctx)
	require.NoError(t, err)

	items, err := service.Refresh(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 3)
}
