package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cartFixture struct {
	service      usecase.CartUsecase
	catalog      *mockUC.MockCatalogUsecase
	entitlements *mockUC.MockEntitlementUsecase

	listener usecase.SessionListener
}

func newCartFixture(t *testing.T) *cartFixture {
	t.Helper()

	fixture := &cartFixture{
		catalog:      mockUC.NewMockCatalogUsecase(t),
		entitlements: mockUC.NewMockEntitlementUsecase(t),
	}

	sessions := mockUC.NewMockSessionUsecase(t)
	sessions.EXPECT().
		Subscribe(mock.Anything).
		Run(func(listener usecase.SessionListener) {
			fixture.listener = listener
		}).
		Return(func() {})

	fixture.service = NewCartService(CartServiceParams{
		CatalogUsecase:     fixture.catalog,
		EntitlementUsecase: fixture.entitlements,
		SessionUsecase:     sessions,
		Logger:             testLogger(),
	})

	return fixture
}

func (f *cartFixture) expectItem(item entity.CatalogItem) {
	f.catalog.EXPECT().
		ItemByID(mock.Anything, item.ID).
		Return(item, nil)
}

func TestCartService_Add_Success(t *testing.T) {
	fixture := newCartFixture(t)
	ctx := context.Background()
	item := catalogFixtureItems()[0]

	fixture.expectItem(item)
	fixture.entitlements.EXPECT().HasAccess(item.ID).Return(false)

	require.NoError(t, fixture.service.Add(ctx, item.ID))

	contents := fixture.service.Contents(ctx)
	require.Len(t, contents.Items, 1)
	assert.Equal(t, item.Name, contents.Items[0].Item.Name)
	assert.InDelta(t, item.Price, contents.Total, 0.001)
}

func TestCartService_Add_Duplicate(t *testing.T) {
	fixture := newCartFixture(t)
	ctx := context.Background()
	item := catalogFixtureItems()[0]

	fixture.expectItem(item)
	fixture.entitlements.EXPECT().HasAccess(item.ID).Return(false)

	require.NoError(t, fixture.service.Add(ctx, item.ID))
	err := fixture.service.Add(ctx, item.ID)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyInCart)
}

func TestCartService_Add_UnknownTool(t *testing.T) {
	fixture := newCartFixture(t)
	ctx := context.Background()

	fixture.catalog.EXPECT().
		ItemByID(mock.Anything, int64(999)).
		Return(entity.CatalogItem{}, errors.Wrap(domainerrors.ErrToolNotFound, "missing"))

	err := fixture.service.Add(ctx, 999)
	assert.ErrorIs(t, err, domainerrors.ErrToolNotFound)
}

func TestCartService_Add_ComingSoon(t *testing.T) {
	fixture := newCartFixture(t)
	ctx := context.Background()
	item := catalogFixtureItems()[2]
	require.True(t, item.ComingSoon)

	fixture.expectItem(item)

	err := fixture.service.Add(ctx, item.ID)
	assert.ErrorIs(t, err, domainerrors.ErrToolUnavailable)
}

func TestCartService_Add_AlreadyOwned(t *testing.T) {
	fixture := newCartFixture(t)
	ctx := context.Background()
	item := catalogFixtureItems()[0]

	fixture.expectItem(item)
	fixture.entitlements.EXPECT().HasAccess(item.ID).Return(true)

	err := fixture.service.Add(ctx, item.ID)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyOwned)
}

func TestCartService_Remove(t *testing.T) {
	fixture := newCartFixture(t)
	ctx := context.Background()
	item := catalogFixtureItems()[0]

	fixture.expectItem(item)
	fixture.entitlements.EXPECT().HasAccess(item.ID).Return(false)
	require.NoError(t, fixture.service.Add(ctx, item.ID))

	require.NoError(t, fixture.service.Remove(ctx, item.ID))
	assert.Empty(t, fixture.service.Contents(ctx).Items)

	err := fixture.service.Remove(ctx, item.ID)
	assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
}

func TestCartService_Contents_ExcludesOwnedFromTotal(t *testing.T) {
	fixture := newCartFixture(t)
	ctx := context.Background()
	analyzer := catalogFixtureItems()[0]
	builder := catalogFixtureItems()[1]

	owned := map[int64]bool{}
	fixture.entitlements.EXPECT().
		HasAccess(mock.AnythingOfType("int64")).
		RunAndReturn(func(toolID int64) bool { return owned[toolID] })

	fixture.expectItem(analyzer)
	fixture.expectItem(builder)
	require.NoError(t, fixture.service.Add(ctx, analyzer.ID))
	require.NoError(t, fixture.service.Add(ctx, builder.ID))

	// A purchase lands while both items sit in the cart.
	owned[analyzer.ID] = true

	contents := fixture.service.Contents(ctx)
	assert.Len(t, contents.Items, 2)
	assert.InDelta(t, builder.Price, contents.Total, 0.001)
}

func TestCartService_SignOutClearsCart(t *testing.T) {
	fixture := newCartFixture(t)
	ctx := context.Background()
	item := catalogFixtureItems()[0]

	fixture.expectItem(item)
	fixture.entitlements.EXPECT().HasAccess(item.ID).Return(false)
	require.NoError(t, fixture.service.Add(ctx, item.ID))

	require.NotNil(t, fixture.listener)
	fixture.listener(nil)

	assert.Empty(t, fixture.service.Contents(ctx).Items)
}
