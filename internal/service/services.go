package service

import (
	"github.com/mbastos/acervo/internal/config"
	"github.com/mbastos/acervo/internal/crypto"
	"github.com/mbastos/acervo/internal/logger"
	"github.com/mbastos/acervo/internal/store"
)

type Services struct {
	RegistrationService RegistrationService
	AuthService         AuthService
	AssetService        AssetService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	hasher := crypto.NewPasswordHasher()
	assetService := NewAssetService(storages.AssetStorage, storages.MemberRepository, logger)

	return &Services{
		RegistrationService: NewRegistrationService(storages.MemberRepository, assetService, hasher, logger),
		AuthService:         NewAuthService(storages.MemberRepository, storages.Sessions, hasher, cfg.App, logger),
		AssetService:        assetService,
	}
}
