package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mbastos/acervo/internal/logger"
	"github.com/mbastos/acervo/models"
)

// memberRepository is the SQL-backed implementation of [MemberRepository].
// It handles member account creation and lookup against the "members" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type memberRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMemberRepository constructs a [MemberRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewMemberRepository(db *DB, logger *logger.Logger) MemberRepository {
	logger.Debug().Msg("creating member repository")
	return &memberRepository{
		db:     db,
		logger: logger,
	}
}

// CreateMember persists a new member record and returns the fully populated
// [models.Member] with server-assigned fields (ID, CreatedAt).
//
// Error handling:
//   - unique violation on cpf → [ErrCPFAlreadyRegistered].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *memberRepository) CreateMember(ctx context.Context, member models.Member) (models.Member, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertMember(member)
	if err != nil {
		log.Err(err).Str("func", "*memberRepository.CreateMember").Msg("error building insert query")
		return models.Member{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Scan(&member.ID, &member.CreatedAt); err != nil {
		if r.db.isUniqueViolation(err) {
			log.Warn().Str("cpf", member.CPF).Msg("duplicate CPF registration attempt")
			return models.Member{}, ErrCPFAlreadyRegistered
		}

		log.Err(err).Str("func", "*memberRepository.CreateMember").Msg("error inserting member")
		return models.Member{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return member, nil
}

// FindMemberByCPF retrieves the member record whose CPF matches the given
// normalized identity number.
//
// Error handling:
//   - empty result set → [ErrNoMemberWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *memberRepository) FindMemberByCPF(ctx context.Context, cpf string) (models.Member, error) {
	query, args, err := buildSelectMemberByCPF(cpf)
	if err != nil {
		return models.Member{}, err
	}

	return r.scanMember(ctx, query, args)
}

// FindMemberByID retrieves the member record with the given surrogate ID.
//
// Error handling mirrors [memberRepository.FindMemberByCPF].
func (r *memberRepository) FindMemberByID(ctx context.Context, id int64) (models.Member, error) {
	query, args, err := buildSelectMemberByID(id)
	if err != nil {
		return models.Member{}, err
	}

	return r.scanMember(ctx, query, args)
}

// UpdateMemberFines replaces the outstanding-fines amount of one member.
//
// Error handling:
//   - zero affected rows → [ErrNoMemberWasFound].
func (r *memberRepository) UpdateMemberFines(ctx context.Context, id int64, fines float64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateMemberFines(id, fines)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*memberRepository.UpdateMemberFines").Msg("error updating fines")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrNoMemberWasFound
	}

	return nil
}

// ListAssetNames returns every stored asset name referenced by any member
// row for the given category.
func (r *memberRepository) ListAssetNames(ctx context.Context, category models.AssetCategory) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAssetNames(category)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*memberRepository.ListAssetNames").Msg("error listing asset names")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("error scanning asset name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return names, nil
}

// scanMember runs a single-row member query and scans the full column list.
func (r *memberRepository) scanMember(ctx context.Context, query string, args []any) (models.Member, error) {
	log := logger.FromContext(ctx)

	var member models.Member
	row := r.db.QueryRowContext(ctx, query, args...)

	err := row.Scan(
		&member.ID, &member.CPF, &member.PasswordHash, &member.Name,
		&member.Address, &member.Phone, &member.Fines,
		&member.DocumentAsset, &member.ResidenceProofAsset, &member.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Member{}, ErrNoMemberWasFound
		}

		log.Err(err).Str("func", "*memberRepository.scanMember").Msg("error scanning member row")
		return models.Member{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return member, nil
}
