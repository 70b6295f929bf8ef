package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type entitlementFixture struct {
	service  usecase.EntitlementUsecase
	billing  *mockSvc.MockBillingGateway
	cache    *mockRepo.MockEntitlementCacheRepository
	sessions *mockUC.MockSessionUsecase

	mu       sync.Mutex
	current  *entity.Session
	listener usecase.SessionListener
}

func (f *entitlementFixture) session() *entity.Session {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.current
}

func (f *entitlementFixture) dropSession() {
	f.mu.Lock()
	f.current = nil
	listener := f.listener
	f.mu.Unlock()

	if listener != nil {
		listener(nil)
	}
}

func newEntitlementFixture(t *testing.T, session *entity.Session) *entitlementFixture {
	t.Helper()

	fixture := &entitlementFixture{
		billing:  mockSvc.NewMockBillingGateway(t),
		cache:    mockRepo.NewMockEntitlementCacheRepository(t),
		sessions: mockUC.NewMockSessionUsecase(t),
		current:  session,
	}

	fixture.sessions.EXPECT().
		Subscribe(mock.Anything).
		Run(func(listener usecase.SessionListener) {
			fixture.listener = listener
		}).
		Return(func() {})
	fixture.sessions.EXPECT().
		Session().
		RunAndReturn(fixture.session).
		Maybe()

	if session != nil {
		// Constructor seeding looks for a cached snapshot.
		fixture.cache.EXPECT().
			Load(mock.Anything, session.Profile.ID).
			Return(nil, repository.ErrSnapshotNotFound).
			Once()
	}

	fixture.service = NewEntitlementService(EntitlementServiceParams{
		BillingGateway: fixture.billing,
		SessionUsecase: fixture.sessions,
		CacheRepo:      fixture.cache,
		Config:         testConfig(),
		Logger:         testLogger(),
	})

	return fixture
}

func TestEntitlementService_Refresh_SignedOut(t *testing.T) {
	fixture := newEntitlementFixture(t, nil)

	err := fixture.service.Refresh(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrAuthRequired)

	snapshot := fixture.service.Snapshot()
	assert.Equal(t, entity.SyncStateUnauthenticated, snapshot.State)
	assert.False(t, snapshot.HasAccess)
	assert.False(t, fixture.service.HasAccess(3))
}

func TestEntitlementService_Refresh_Success(t *testing.T) {
	fixture := newEntitlementFixture(t, signedInSession())
	ctx := context.Background()
	set := entity.NewEntitlementSet([]int64{3, 7}, nil, time.Now())

	fixture.billing.EXPECT().
		FetchEntitlements(mock.Anything, "access-token").
		Return(set, nil).
		Once()
	fixture.cache.EXPECT().
		Save(mock.Anything, "user-1", set).
		Return(nil).
		Once()

	require.NoError(t, fixture.service.Refresh(ctx))

	snapshot := fixture.service.Snapshot()
	assert.Equal(t, entity.SyncStateSynced, snapshot.State)
	assert.True(t, snapshot.HasAccess)
	assert.ElementsMatch(t, []int64{3, 7}, snapshot.ToolIDs)
	assert.True(t, fixture.service.HasAccess(3))
	assert.False(t, fixture.service.HasAccess(9))
}

func TestEntitlementService_Refresh_FailureKeepsPreviousSet(t *testing.T) {
	fixture := newEntitlementFixture(t, signedInSession())
	ctx := context.Background()
	set := entity.NewEntitlementSet([]int64{3}, nil, time.Now())

	fixture.billing.EXPECT().
		FetchEntitlements(mock.Anything, "access-token").
		Return(set, nil).
		Once()
	fixture.cache.EXPECT().
		Save(mock.Anything, "user-1", set).
		Return(nil).
		Once()
	require.NoError(t, fixture.service.Refresh(ctx))

	fixture.billing.EXPECT().
		FetchEntitlements(mock.Anything, "access-token").
		Return(nil, errors.New("connection refused")).
		Once()
	err := fixture.service.Refresh(ctx)
	require.Error(t, err)

	snapshot := fixture.service.Snapshot()
	assert.Equal(t, entity.SyncStateStale, snapshot.State)
	// Stale data still gates the UI until the next successful sync.
	assert.True(t, fixture.service.HasAccess(3))
}

func TestEntitlementService_Refresh_CredentialRejectedCascadesSignOut(t *testing.T) {
	fixture := newEntitlementFixture(t, signedInSession())
	ctx := context.Background()

	fixture.billing.EXPECT().
		FetchEntitlements(mock.Anything, "access-token").
		Return(nil, errors.Wrap(service.ErrCredentialRejected, "entitlement sync")).
		Once()
	fixture.sessions.EXPECT().
		SignOut(mock.Anything).
		RunAndReturn(func(context.Context) error {
			fixture.dropSession()

			return nil
		}).
		Once()
	// The sign-out listener clears the per-user snapshot cache.
	fixture.cache.EXPECT().
		Delete(mock.Anything).
		Return(nil).
		Once()

	err := fixture.service.Refresh(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrSessionExpired)

	snapshot := fixture.service.Snapshot()
	assert.Equal(t, entity.SyncStateUnauthenticated, snapshot.State)
	assert.False(t, fixture.service.HasAccess(3))
}

func TestEntitlementService_Refresh_CoalescesConcurrentCallers(t *testing.T) {
	fixture := newEntitlementFixture(t, signedInSession())
	set := entity.NewEntitlementSet([]int64{3}, nil, time.Now())

	started := make(chan struct{})
	release := make(chan struct{})
	fixture.billing.EXPECT().
		FetchEntitlements(mock.Anything, "access-token").
		RunAndReturn(func(context.Context, string) (*entity.EntitlementSet, error) {
			close(started)
			<-release

			return set, nil
		}).
		Once()
	fixture.cache.EXPECT().
		Save(mock.Anything, "user-1", set).
		Return(nil).
		Once()

	results := make(chan error, 2)
	go func() { results <- fixture.service.Refresh(context.Background()) }()
	<-started
	go func() { results <- fixture.service.Refresh(context.Background()) }()

	// Give the second caller time to join the in-flight sync.
	time.Sleep(20 * time.Millisecond)
	close(release)

	require.NoError(t, <-results)
	require.NoError(t, <-results)
	assert.True(t, fixture.service.HasAccess(3))
}

func TestEntitlementService_SignOutEmptiesSet(t *testing.T) {
	fixture := newEntitlementFixture(t, signedInSession())
	ctx := context.Background()
	set := entity.NewEntitlementSet([]int64{3}, nil, time.Now())

	fixture.billing.EXPECT().
		FetchEntitlements(mock.Anything, "access-token").
		Return(set, nil).
		Once()
	fixture.cache.EXPECT().
		Save(mock.Anything, "user-1", set).
		Return(nil).
		Once()
	require.NoError(t, fixture.service.Refresh(ctx))
	require.True(t, fixture.service.HasAccess(3))

	fixture.cache.EXPECT().
		Delete(mock.Anything).
		Return(nil).
		Once()
	fixture.dropSession()

	assert.False(t, fixture.service.HasAccess(3))
	assert.Equal(t, entity.SyncStateUnauthenticated, fixture.service.Snapshot().State)
}

func TestEntitlementService_HandlePaymentReturn_StopsOnChange(t *testing.T) {
	fixture := newEntitlementFixture(t, signedInSession())
	ctx := context.Background()
	empty := entity.NewEntitlementSet(nil, nil, time.Now())
	granted := entity.NewEntitlementSet([]int64{3}, nil, time.Now())

	fixture.billing.EXPECT().
		FetchEntitlements(mock.Anything, "access-token").
		Return(empty, nil).
		Once()
	fixture.billing.EXPECT().
		FetchEntitlements(mock.Anything, "access-token").
		Return(granted, nil).
		Once()
	fixture.cache.EXPECT().
		Save(mock.Anything, "user-1", mock.AnythingOfType("*entity.EntitlementSet")).
		Return(nil)

	require.NoError(t, fixture.service.HandlePaymentReturn(ctx))
	assert.True(t, fixture.service.HasAccess(3))
}

func TestEntitlementService_HandlePaymentReturn_NoChangeIsNotAnError(t *testing.T) {
	fixture := newEntitlementFixture(t, signedInSession())
	ctx := context.Background()
	empty := entity.NewEntitlementSet(nil, nil, time.Now())

	fixture.billing.EXPECT().
		FetchEntitlements(mock.Anything, "access-token").
		Return(empty, nil).
		Times(3)
	fixture.cache.EXPECT().
		Save(mock.Anything, "user-1", mock.AnythingOfType("*entity.EntitlementSet")).
		Return(nil)

	require.NoError(t, fixture.service.HandlePaymentReturn(ctx))
	assert.False(t, fixture.service.HasAccess(3))
}

func TestEntitlementService_SchedulerSyncsOnStart(t *testing.T) {
	fixture := newEntitlementFixture(t, signedInSession())
	set := entity.NewEntitlementSet([]int64{3}, nil, time.Now())

	fixture.billing.EXPECT().
		FetchEntitlements(mock.Anything, "access-token").
		Return(set, nil).
		Once()
	fixture.cache.EXPECT().
		Save(mock.Anything, "user-1", set).
		Return(nil).
		Once()

	require.NoError(t, fixture.service.Start(context.Background()))
	defer fixture.service.Stop()

	require.Eventually(t, func() bool {
		return fixture.service.Snapshot().State == entity.SyncStateSynced
	}, time.Second, 10*time.Millisecond)
	assert.True(t, fixture.service.HasAccess(3))
}

func TestEntitlementService_SeedsFromCachedSnapshot(t *testing.T) {
	session := signedInSession()

	billing := mockSvc.NewMockBillingGateway(t)
	cache := mockRepo.NewMockEntitlementCacheRepository(t)
	sessions := mockUC.NewMockSessionUsecase(t)

	sessions.EXPECT().Subscribe(mock.Anything).Return(func() {})
	sessions.EXPECT().Session().Return(session).Maybe()

	cached := entity.NewEntitlementSet([]int64{7}, nil, time.Now().Add(-time.Hour))
	cache.EXPECT().
		Load(mock.Anything, "user-1").
		Return(cached, nil).
		Once()

	entitlements := NewEntitlementService(EntitlementServiceParams{
		BillingGateway: billing,
		SessionUsecase: sessions,
		CacheRepo:      cache,
		Config:         testConfig(),
		Logger:         testLogger(),
	})

	snapshot := entitlements.Snapshot()
	assert.Equal(t, entity.SyncStateStale, snapshot.State)
	assert.True(t, entitlements.HasAccess(7))
}
