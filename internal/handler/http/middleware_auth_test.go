package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mbastos/acervo/internal/mock"
	"github.com/mbastos/acervo/internal/service"
	"github.com/mbastos/acervo/internal/utils"
	"github.com/mbastos/acervo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthMiddleware_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, mockAuth, _ := newTestHandler(t, ctrl)

	session := models.Session{ID: "session-id", MemberID: 7, DisplayName: "Maria Silva"}
	mockAuth.EXPECT().Authenticate(gomock.Any(), "signed.token").Return(session, nil)

	var gotMemberID int64
	var gotSessionID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		memberID, ok := utils.GetMemberIDFromContext(r.Context())
		require.True(t, ok)
		gotMemberID = memberID

		sessionID, ok := utils.GetSessionIDFromContext(r.Context())
		require.True(t, ok)
		gotSessionID = sessionID

		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/member/profile", nil)
	req.AddCookie(sessionCookie("signed.token", 3600))
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), gotMemberID)
	assert.Equal(t, "session-id", gotSessionID)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(mockAuth *mock.MockAuthService, req *http.Request)
	}{
		{
			name:    "no cookie",
			prepare: func(mockAuth *mock.MockAuthService, req *http.Request) {},
		},
		{
			name: "empty cookie value",
			prepare: func(mockAuth *mock.MockAuthService, req *http.Request) {
				req.AddCookie(sessionCookie("", 3600))
			},
		},
		{
			name: "invalid or expired token",
			prepare: func(mockAuth *mock.MockAuthService, req *http.Request) {
				req.AddCookie(sessionCookie("forged.token", 3600))
				mockAuth.EXPECT().
					Authenticate(gomock.Any(), "forged.token").
					Return(models.Session{}, service.ErrTokenIsExpiredOrInvalid)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h, _, mockAuth, _ := newTestHandler(t, ctrl)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})

			req := httptest.NewRequest(http.MethodGet, "/api/member/profile", nil)
			tt.prepare(mockAuth, req)
			rec := httptest.NewRecorder()

			h.auth(next).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, nextCalled, "next handler must not run on a rejected request")
		})
	}
}
