package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mbastos/acervo/internal/config"
	"github.com/mbastos/acervo/internal/crypto"
	"github.com/mbastos/acervo/internal/logger"
	"github.com/mbastos/acervo/internal/store"
	"github.com/mbastos/acervo/internal/utils"
	"github.com/mbastos/acervo/internal/validators"
	"github.com/mbastos/acervo/models"
)

// authService is the concrete implementation of AuthService.
// It verifies member credentials, owns the server-side session lifecycle,
// and signs/parses the client-held session container.
type authService struct {
	// memberRepository looks up accounts by identity number.
	memberRepository store.MemberRepository

	// sessions holds the authoritative server-side session records.
	sessions store.SessionStore

	// hasher verifies the presented password against the stored hash.
	hasher crypto.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued session token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// sessionTTL controls both the server-side session lifetime and the
	// expiry of the signed client-held container.
	sessionTTL time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given backends and
// populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(memberRepository store.MemberRepository, sessions store.SessionStore, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		memberRepository: memberRepository,
		sessions:         sessions,
		hasher:           hasher,
		tokenSignKey:     cfg.SessionSignKey,
		tokenIssuer:      cfg.SessionIssuer,
		sessionTTL:       cfg.SessionTTL,
		logger:           logger,
	}
}

// Login authenticates a member and mints a fresh server-side session.
//
// An unknown identity number, a malformed identity number, and a wrong
// password all collapse into the single ErrInvalidCredentials; the response
// never reveals which check failed.
//
// Each successful login creates a brand-new session record under a fresh
// random ID. Callers are expected to drop any session the request carried
// before invoking Login, so a login never extends prior session state.
//
// Returns the created session or:
//   - ErrInvalidDataProvided if the identity number or password is empty.
//   - ErrInvalidCredentials if the credentials do not match an account.
//   - A wrapped storage error if the lookup or session creation fails.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.Session, error) {
	log := logger.FromContext(ctx)

	if request.CPF == "" || request.Password == "" {
		log.Error().Msg("invalid login data provided")
		return models.Session{}, ErrInvalidDataProvided
	}

	cpf, err := validators.ValidateCPF(request.CPF)
	if err != nil {
		log.Err(err).Msg("login with malformed identity number")
		return models.Session{}, ErrInvalidCredentials
	}

	member, err := a.memberRepository.FindMemberByCPF(ctx, cpf)
	if err != nil {
		if errors.Is(err, store.ErrNoMemberWasFound) {
			log.Error().Str("cpf", cpf).Msg("login for unknown identity number")
			return models.Session{}, ErrInvalidCredentials
		}
		log.Err(err).Str("cpf", cpf).Msg("member search by cpf failed")
		return models.Session{}, fmt.Errorf("member search by cpf failed: %w", err)
	}

	match, err := a.hasher.Verify(request.Password, member.PasswordHash)
	if err != nil {
		log.Err(err).Int64("member_id", member.ID).Msg("password verification ended with error")
		return models.Session{}, fmt.Errorf("password verification ended with error: %w", err)
	}
	if !match {
		log.Error().Int64("member_id", member.ID).Msg("wrong password")
		return models.Session{}, ErrInvalidCredentials
	}

	session := models.Session{
		ID:          uuid.NewString(),
		MemberID:    member.ID,
		DisplayName: member.Name,
		CreatedAt:   time.Now(),
	}
	if err := a.sessions.Create(ctx, session, a.sessionTTL); err != nil {
		log.Err(err).Int64("member_id", member.ID).Msg("session creation ended with error")
		return models.Session{}, fmt.Errorf("session creation ended with error: %w", err)
	}

	return session, nil
}

// Logout deletes the server-side session with the given ID. Deleting an
// absent session is not an error; repeated logouts succeed.
func (a *authService) Logout(ctx context.Context, sessionID string) error {
	if err := a.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("session deletion ended with error: %w", err)
	}
	return nil
}

// CreateSessionToken issues the signed client-held container for a session.
//
// The token is signed with the configured sign key, carries the configured
// issuer as the "iss" claim, holds the session ID as the subject, and
// expires together with the server-side session.
//
// Returns the signed token string on success or a wrapped error if signing
// fails.
func (a *authService) CreateSessionToken(ctx context.Context, session models.Session) (string, error) {
	token, err := utils.GenerateSessionToken(a.tokenIssuer, session.ID, a.sessionTTL, a.tokenSignKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Authenticate resolves a raw session token to its live server-side session.
//
// The signature and issuer of the container are verified first; the session
// ID from its subject claim is then looked up in the session store. Any
// container validation failure and an absent or expired session record are
// both normalised to ErrTokenIsExpiredOrInvalid so that callers do not need
// to inspect low-level errors.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.Session, error) {
	sessionID, err := utils.ValidateAndParseSessionToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Session{}, ErrTokenIsExpiredOrInvalid
	}

	session, err := a.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.Session{}, ErrTokenIsExpiredOrInvalid
		}
		return models.Session{}, fmt.Errorf("session lookup ended with error: %w", err)
	}

	return session, nil
}
