package service

import (
	"context"
	"fmt"

	"github.com/mbastos/acervo/internal/crypto"
	"github.com/mbastos/acervo/internal/logger"
	"github.com/mbastos/acervo/internal/store"
	"github.com/mbastos/acervo/internal/validators"
	"github.com/mbastos/acervo/models"
)

// registrationService is the concrete implementation of RegistrationService.
// It enrolls new members: identity validation, credential hashing, document
// ingestion, and persistence of the account row.
type registrationService struct {
	// memberRepository is the data-access layer used to create member rows.
	memberRepository store.MemberRepository

	// assets admits uploaded documents into their storage areas.
	assets AssetService

	// hasher derives the stored one-way credential hash.
	hasher crypto.PasswordHasher

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewRegistrationService constructs a RegistrationService wired to the given
// collaborators. The returned service is safe for concurrent use.
func NewRegistrationService(memberRepository store.MemberRepository, assets AssetService, hasher crypto.PasswordHasher, logger *logger.Logger) RegistrationService {
	return &registrationService{
		memberRepository: memberRepository,
		assets:           assets,
		hasher:           hasher,
		logger:           logger,
	}
}

// ingestedAsset records one file admitted during a registration attempt so
// it can be unwound if a later step of the same attempt fails.
type ingestedAsset struct {
	category models.AssetCategory
	name     string
}

// Register enrolls a new member.
//
// Sequence: all required text fields must be non-empty; the identity number
// is normalized and checksum-validated; the password is hashed; each
// provided upload is ingested in turn — if either ingestion fails the whole
// registration aborts, removing any file already admitted by this attempt;
// finally one account row is persisted with zero outstanding fines.
//
// A uniqueness conflict on the identity number surfaces as
// store.ErrCPFAlreadyRegistered. Files ingested before the conflict are not
// removed; the reconciliation sweep reclaims them later.
//
// Successful registration produces no session; the member logs in separately.
//
// Returns the persisted member (with server-assigned ID) or:
//   - ErrInvalidDataProvided if a required field is empty.
//   - validators.ErrInvalidCPF (wrapped) if the identity number is invalid.
//   - ErrRejectedUpload (wrapped) if an upload fails admission.
//   - A wrapped storage error if persistence fails.
func (s *registrationService) Register(ctx context.Context, request models.RegistrationRequest) (models.Member, error) {
	log := logger.FromContext(ctx)

	if request.CPF == "" || request.Password == "" || request.Name == "" || request.Address == "" || request.Phone == "" {
		log.Error().Str("name", request.Name).Msg("invalid registration data provided")
		return models.Member{}, ErrInvalidDataProvided
	}

	cpf, err := validators.ValidateCPF(request.CPF)
	if err != nil {
		log.Err(err).Msg("identity number validation failed")
		return models.Member{}, fmt.Errorf("identity number validation failed: %w", err)
	}

	passwordHash, err := s.hasher.Hash(request.Password)
	if err != nil {
		log.Err(err).Msg("password hashing ended with error")
		return models.Member{}, fmt.Errorf("password hashing ended with error: %w", err)
	}

	member := models.Member{
		CPF:          cpf,
		PasswordHash: passwordHash,
		Name:         request.Name,
		Address:      request.Address,
		Phone:        request.Phone,
		Fines:        0,
	}

	var ingested []ingestedAsset
	uploads := []struct {
		category models.AssetCategory
		upload   *models.Upload
		target   *string
	}{
		{models.CategoryDocument, request.Document, &member.DocumentAsset},
		{models.CategoryResidenceProof, request.ResidenceProof, &member.ResidenceProofAsset},
	}
	for _, u := range uploads {
		// A missing file, an empty file name, or a named-but-empty file all
		// count as "no asset supplied".
		if u.upload == nil || u.upload.OriginalName == "" || len(u.upload.Content) == 0 {
			continue
		}

		storedName, err := s.assets.Ingest(ctx, u.category, *u.upload)
		if err != nil {
			s.discardIngested(ctx, ingested)
			log.Err(err).Str("category", string(u.category)).Msg("upload ingestion failed")
			return models.Member{}, fmt.Errorf("upload ingestion failed: %w", err)
		}

		*u.target = storedName
		ingested = append(ingested, ingestedAsset{category: u.category, name: storedName})
	}

	registeredMember, err := s.memberRepository.CreateMember(ctx, member)
	if err != nil {
		log.Err(err).Str("cpf", cpf).Msg("member creation ended with error")
		return models.Member{}, fmt.Errorf("member creation ended with error: %w", err)
	}

	return registeredMember, nil
}

// Profile returns the account row of an authenticated member.
//
// Returns the member or a wrapped storage error; an unknown ID surfaces as
// store.ErrNoMemberWasFound.
func (s *registrationService) Profile(ctx context.Context, memberID int64) (models.Member, error) {
	log := logger.FromContext(ctx)

	member, err := s.memberRepository.FindMemberByID(ctx, memberID)
	if err != nil {
		log.Err(err).Int64("member_id", memberID).Msg("member search by id failed")
		return models.Member{}, fmt.Errorf("member search by id failed: %w", err)
	}

	return member, nil
}

// discardIngested unwinds the files admitted by an aborted registration
// attempt. Removal failures are logged and otherwise ignored; the
// reconciliation sweep covers anything left behind.
func (s *registrationService) discardIngested(ctx context.Context, ingested []ingestedAsset) {
	log := logger.FromContext(ctx)

	for _, asset := range ingested {
		if err := s.assets.Discard(ctx, asset.category, asset.name); err != nil {
			log.Err(err).Str("category", string(asset.category)).Str("stored_name", asset.name).Msg("error occured during discarding ingested file")
		}
	}
}
