package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/mbastos/acervo/models"
)

const membersTable = "members"

// memberColumns is the full column list scanned into a [models.Member].
var memberColumns = []string{
	"id", "cpf", "password_hash", "name", "address", "phone",
	"fines", "document_asset", "residence_proof_asset", "created_at",
}

// psql is the shared statement builder. Dollar placeholders are understood
// by both the pgx and the sqlite3 driver.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// assetColumn maps an asset category to its members-table column. The map
// is fixed: category values never reach SQL text directly, so no dynamic
// query construction happens from user input.
func assetColumn(category models.AssetCategory) (string, error) {
	switch category {
	case models.CategoryDocument:
		return "document_asset", nil
	case models.CategoryResidenceProof:
		return "residence_proof_asset", nil
	default:
		return "", fmt.Errorf("unknown asset category %q", category)
	}
}

// buildInsertMember builds the INSERT for a new member row. Server-assigned
// columns (id, created_at) come back via RETURNING.
func buildInsertMember(member models.Member) (string, []any, error) {
	return psql.Insert(membersTable).
		Columns("cpf", "password_hash", "name", "address", "phone",
			"fines", "document_asset", "residence_proof_asset").
		Values(member.CPF, member.PasswordHash, member.Name, member.Address, member.Phone,
			member.Fines, member.DocumentAsset, member.ResidenceProofAsset).
		Suffix("RETURNING id, created_at").
		ToSql()
}

// buildSelectMemberByCPF builds the lookup used at login.
func buildSelectMemberByCPF(cpf string) (string, []any, error) {
	return psql.Select(memberColumns...).
		From(membersTable).
		Where(sq.Eq{"cpf": cpf}).
		ToSql()
}

// buildSelectMemberByID builds the lookup used by the profile page and the
// asset gate.
func buildSelectMemberByID(id int64) (string, []any, error) {
	return psql.Select(memberColumns...).
		From(membersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildUpdateMemberFines builds the fines update issued by the billing
// collaborator.
func buildUpdateMemberFines(id int64, fines float64) (string, []any, error) {
	return psql.Update(membersTable).
		Set("fines", fines).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildSelectAssetNames builds the query listing every referenced asset
// name of one category, for the reconciliation sweep.
func buildSelectAssetNames(category models.AssetCategory) (string, []any, error) {
	column, err := assetColumn(category)
	if err != nil {
		return "", nil, err
	}

	return psql.Select(column).
		From(membersTable).
		Where(sq.NotEq{column: ""}).
		ToSql()
}
