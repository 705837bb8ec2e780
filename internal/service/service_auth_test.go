package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mbastos/acervo/internal/config"
	"github.com/mbastos/acervo/internal/logger"
	"github.com/mbastos/acervo/internal/mock"
	"github.com/mbastos/acervo/internal/store"
	"github.com/mbastos/acervo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockMemberRepository, *mock.MockSessionStore, *mock.MockPasswordHasher) {
	t.Helper()
	mockRepository := mock.NewMockMemberRepository(ctrl)
	mockSessions := mock.NewMockSessionStore(ctrl)
	mockHasher := mock.NewMockPasswordHasher(ctrl)

	cfg := config.App{
		SessionSignKey: "test-sign-key",
		SessionIssuer:  "acervo-test",
		SessionTTL:     time.Hour,
	}
	svc := NewAuthService(mockRepository, mockSessions, mockHasher, cfg, logger.Nop())

	return svc, mockRepository, mockSessions, mockHasher
}

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepository, mockSessions, mockHasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	member := models.Member{ID: 7, CPF: "11144477735", Name: "Maria Silva", PasswordHash: "$argon2id$hash"}

	mockRepository.EXPECT().FindMemberByCPF(ctx, "11144477735").Return(member, nil)
	mockHasher.EXPECT().Verify("super-secret", "$argon2id$hash").Return(true, nil)
	mockSessions.EXPECT().
		Create(ctx, gomock.Any(), time.Hour).
		DoAndReturn(func(_ context.Context, session models.Session, _ time.Duration) error {
			assert.NotEmpty(t, session.ID)
			assert.Equal(t, int64(7), session.MemberID)
			assert.Equal(t, "Maria Silva", session.DisplayName)
			return nil
		})

	session, err := svc.Login(ctx, models.LoginRequest{CPF: validCPF, Password: "super-secret"})

	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, int64(7), session.MemberID)
}

func TestAuthService_Login_FreshSessionPerLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepository, mockSessions, mockHasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	member := models.Member{ID: 7, CPF: "11144477735", Name: "Maria Silva", PasswordHash: "$argon2id$hash"}

	mockRepository.EXPECT().FindMemberByCPF(ctx, "11144477735").Return(member, nil).Times(2)
	mockHasher.EXPECT().Verify("super-secret", "$argon2id$hash").Return(true, nil).Times(2)
	mockSessions.EXPECT().Create(ctx, gomock.Any(), time.Hour).Return(nil).Times(2)

	first, err := svc.Login(ctx, models.LoginRequest{CPF: validCPF, Password: "super-secret"})
	require.NoError(t, err)
	second, err := svc.Login(ctx, models.LoginRequest{CPF: validCPF, Password: "super-secret"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID, "each login should mint a brand-new session ID")
}

func TestAuthService_Login_InvalidData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name    string
		request models.LoginRequest
	}{
		{"empty cpf", models.LoginRequest{Password: "pass"}},
		{"empty password", models.LoginRequest{CPF: validCPF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tt.request)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepository, _, mockHasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	t.Run("malformed identity number", func(t *testing.T) {
		_, err := svc.Login(ctx, models.LoginRequest{CPF: "123", Password: "pass"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown identity number", func(t *testing.T) {
		mockRepository.EXPECT().
			FindMemberByCPF(ctx, "11144477735").
			Return(models.Member{}, store.ErrNoMemberWasFound)

		_, err := svc.Login(ctx, models.LoginRequest{CPF: validCPF, Password: "pass"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		member := models.Member{ID: 7, PasswordHash: "$argon2id$hash"}
		mockRepository.EXPECT().FindMemberByCPF(ctx, "11144477735").Return(member, nil)
		mockHasher.EXPECT().Verify("wrong", "$argon2id$hash").Return(false, nil)

		_, err := svc.Login(ctx, models.LoginRequest{CPF: validCPF, Password: "wrong"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_Login_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepository, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepository.EXPECT().
		FindMemberByCPF(ctx, "11144477735").
		Return(models.Member{}, errors.New("connection refused"))

	_, err := svc.Login(ctx, models.LoginRequest{CPF: validCPF, Password: "pass"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials, "an infrastructure failure must not read as bad credentials")
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockSessions, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	// Deleting an absent session is not an error; repeated logouts succeed.
	mockSessions.EXPECT().Delete(ctx, "session-id").Return(nil).Times(2)

	require.NoError(t, svc.Logout(ctx, "session-id"))
	require.NoError(t, svc.Logout(ctx, "session-id"))
}

func TestAuthService_SessionTokenRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockSessions, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	session := models.Session{ID: "session-id", MemberID: 7, DisplayName: "Maria Silva"}

	token, err := svc.CreateSessionToken(ctx, session)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	mockSessions.EXPECT().Get(ctx, "session-id").Return(session, nil)

	resolved, err := svc.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, session, resolved)
}

func TestAuthService_Authenticate_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Authenticate(ctx, "forged.token.value")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_Authenticate_SessionGone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockSessions, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	session := models.Session{ID: "session-id", MemberID: 7}
	token, err := svc.CreateSessionToken(ctx, session)
	require.NoError(t, err)

	// The container is still valid, but the server-side record is gone
	// (expired or logged out): the request is unauthenticated.
	mockSessions.EXPECT().Get(ctx, "session-id").Return(models.Session{}, store.ErrSessionNotFound)

	_, err = svc.Authenticate(ctx, token)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
