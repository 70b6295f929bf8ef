package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionFixture struct {
	service   usecase.SessionUsecase
	authGW    *mockSvc.MockAuthGateway
	repo      *mockRepo.MockSessionRepository
	inspector *mockSvc.MockTokenInspector
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()

	fixture := &sessionFixture{
		authGW:    mockSvc.NewMockAuthGateway(t),
		repo:      mockRepo.NewMockSessionRepository(t),
		inspector: mockSvc.NewMockTokenInspector(t),
	}
	fixture.service = NewSessionService(SessionServiceParams{
		AuthGateway:    fixture.authGW,
		SessionRepo:    fixture.repo,
		TokenInspector: fixture.inspector,
		Config:         testConfig(),
		Logger:         testLogger(),
	})

	return fixture
}

func TestSessionService_SignIn_Success(t *testing.T) {
	fixture := newSessionFixture(t)
	ctx := context.Background()

	var notified []*entity.Session
	fixture.service.Subscribe(func(session *entity.Session) {
		notified = append(notified, session)
	})

	fixture.authGW.EXPECT().
		Login(ctx, "user@example.com", "secret123").
		Return(
			&service.Credentials{AccessToken: "access-token", RefreshToken: "refresh-token"},
			&entity.UserProfile{ID: "user-1", Email: "user@example.com", FirstName: "Ada", LastName: "Lovelace"},
			nil,
		)
	fixture.repo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Session")).
		Return(nil)

	output, err := fixture.service.SignIn(ctx, usecase.SignInInput{
		Email:    "user@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.True(t, output.SignedIn)
	assert.Equal(t, "user@example.com", output.Profile.Email)

	require.Len(t, notified, 1)
	assert.True(t, notified[0].Valid())
	assert.True(t, fixture.service.Session().Valid())
}

func TestSessionService_SignIn_PersistFailureStillSignsIn(t *testing.T) {
	fixture := newSessionFixture(t)
	ctx := context.Background()

	fixture.authGW.EXPECT().
		Login(ctx, "user@example.com", "secret123").
		Return(
			&service.Credentials{AccessToken: "access-token"},
			&entity.UserProfile{ID: "user-1", Email: "user@example.com"},
			nil,
		)
	fixture.repo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Session")).
		Return(errors.New("disk full"))

	output, err := fixture.service.SignIn(ctx, usecase.SignInInput{
		Email:    "user@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.True(t, output.SignedIn)
}

func TestSessionService_SignIn_MissingFields(t *testing.T) {
	fixture := newSessionFixture(t)

	_, err := fixture.service.SignIn(context.Background(), usecase.SignInInput{Email: " ", Password: ""})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, fixture.service.Session())
}

func TestSessionService_SignIn_InvalidCredentials(t *testing.T) {
	fixture := newSessionFixture(t)
	ctx := context.Background()

	fixture.authGW.EXPECT().
		Login(ctx, "user@example.com", "wrong").
		Return(nil, nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed"))

	_, err := fixture.service.SignIn(ctx, usecase.SignInInput{
		Email:    "user@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.False(t, fixture.service.Current().SignedIn)
}

func TestSessionService_Register_Success(t *testing.T) {
	fixture := newSessionFixture(t)
	ctx := context.Background()

	fixture.authGW.EXPECT().
		Register(ctx, mock.AnythingOfType("service.RegistrationForm")).
		Return("Verification email sent. Please check your inbox.", nil)

	output, err := fixture.service.Register(ctx, usecase.RegisterInput{
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Email:          "user@example.com",
		Phone:          "555-0100",
		Password:       "secret123",
		RepeatPassword: "secret123",
	})
	require.NoError(t, err)
	assert.Contains(t, output.Confirmation, "Verification email sent")
	assert.Nil(t, fixture.service.Session())
}

func TestSessionService_Register_LocalValidation(t *testing.T) {
	fixture := newSessionFixture(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   usecase.RegisterInput
		wantErr error
	}{
		{
			name: "missing last name",
			input: usecase.RegisterInput{
				FirstName: "Ada", Email: "user@example.com",
				Password: "secret123", RepeatPassword: "secret123",
			},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name: "password too short",
			input: usecase.RegisterInput{
				FirstName: "Ada", LastName: "Lovelace", Email: "user@example.com",
				Password: "abc", RepeatPassword: "abc",
			},
			wantErr: domainerrors.ErrPasswordTooShort,
		},
		{
			name: "password mismatch",
			input: usecase.RegisterInput{
				FirstName: "Ada", LastName: "Lovelace", Email: "user@example.com",
				Password: "secret123", RepeatPassword: "secret124",
			},
			wantErr: domainerrors.ErrPasswordMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fixture.service.Register(ctx, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSessionService_Activate(t *testing.T) {
	fixture := newSessionFixture(t)
	ctx := context.Background()

	err := fixture.service.Activate(ctx, "", "token")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	fixture.authGW.EXPECT().
		Activate(ctx, "uid-1", "token-1").
		Return(nil)

	require.NoError(t, fixture.service.Activate(ctx, "uid-1", "token-1"))
}

func TestSessionService_Rehydrate_NoStoredSession(t *testing.T) {
	fixture := newSessionFixture(t)
	ctx := context.Background()

	fixture.repo.EXPECT().
		Load(ctx).
		Return(nil, repository.ErrSessionNotFound)

	require.NoError(t, fixture.service.Rehydrate(ctx))
	assert.False(t, fixture.service.Current().SignedIn)
}

func TestSessionService_Rehydrate_CorruptRecordDiscarded(t *testing.T) {
	fixture := newSessionFixture(t)
	ctx := context.Background()

	fixture.repo.EXPECT().
		Load(ctx).
		Return(nil, errors.Wrap(repository.ErrCorruptRecord, "bad json"))
	fixture.repo.EXPECT().
		Delete(ctx).
		Return(nil)

	require.NoError(t, fixture.service.Rehydrate(ctx))
	assert.False(t, fixture.service.Current().SignedIn)
}

func TestSessionService_Rehydrate_ExpiredTokenDiscarded(t *testing.T) {
	fixture := newSessionFixture(t)
	ctx := context.Background()
	stored := signedInSession()

	fixture.repo.EXPECT().
		Load(ctx).
		Return(stored, nil)
	fixture.inspector.EXPECT().
		Expired("access-token").
		Return(true)
	fixture.repo.EXPECT().
		Delete(ctx).
		Return(nil)

	require.NoError(t, fixture.service.Rehydrate(ctx))
	assert.False(t, fixture.service.Current().SignedIn)
	assert.Nil(t, fixture.service.Session())
}

func TestSessionService_Rehydrate_ValidSessionRestored(t *testing.T) {
	fixture := newSessionFixture(t)
	ctx := context.Background()
	stored := signedInSession()

	var notified []*entity.Session
	fixture.service.Subscribe(func(session *entity.Session) {
		notified = append(notified, session)
	})

	fixture.repo.EXPECT().
		Load(ctx).
		Return(stored, nil)
	fixture.inspector.EXPECT().
		Expired("access-token").
		Return(false)

	require.NoError(t, fixture.service.Rehydrate(ctx))

	current := fixture.service.Current()
	assert.True(t, current.SignedIn)
	assert.Equal(t, "user@example.com", current.Profile.Email)
	require.Len(t, notified, 1)
}

func TestSessionService_SignOut(t *testing.T) {
	fixture := newSessionFixture(t)
	ctx := context.Background()
	stored := signedInSession()

	fixture.repo.EXPECT().Load(ctx).Return(stored, nil)
	fixture.inspector.EXPECT().Expired("access-token").Return(false)
	require.NoError(t, fixture.service.Rehydrate(ctx))

	var notified []*entity.Session
	fixture.service.Subscribe(func(session *entity.Session) {
		notified = append(notified, session)
	})

	fixture.repo.EXPECT().Delete(ctx).Return(nil)
	require.NoError(t, fixture.service.SignOut(ctx))

	assert.False(t, fixture.service.Current().SignedIn)
	assert.Nil(t, fixture.service.Session())
	require.Len(t, notified, 1)
	assert.Nil(t, notified[0])
}

func TestSessionService_Subscribe_Unsubscribe(t *testing.T) {
	fixture := newSessionFixture(t)
	ctx := context.Background()

	calls := 0
	unsubscribe := fixture.service.Subscribe(func(*entity.Session) { calls++ })
	unsubscribe()

	fixture.repo.EXPECT().Delete(ctx).Return(nil)
	require.NoError(t, fixture.service.SignOut(ctx))
	assert.Zero(t, calls)
}
