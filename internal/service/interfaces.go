package service

import (
	"context"
	"io"

	"github.com/mbastos/acervo/models"
)

type RegistrationService interface {
	Register(ctx context.Context, request models.RegistrationRequest) (models.Member, error)
	Profile(ctx context.Context, memberID int64) (models.Member, error)
}

type AuthService interface {
	Login(ctx context.Context, request models.LoginRequest) (models.Session, error)
	Logout(ctx context.Context, sessionID string) error
	CreateSessionToken(ctx context.Context, session models.Session) (string, error)
	Authenticate(ctx context.Context, tokenString string) (models.Session, error)
}

type AssetService interface {
	Ingest(ctx context.Context, category models.AssetCategory, upload models.Upload) (string, error)
	Discard(ctx context.Context, category models.AssetCategory, storedName string) error
	Fetch(ctx context.Context, memberID int64, category models.AssetCategory, requestedName string) (io.ReadCloser, error)
}
