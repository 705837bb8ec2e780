package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/mbastos/acervo/models"
)

func TestBuildInsertMember(t *testing.T) {
	member := models.Member{
		CPF:          "11144477735",
		PasswordHash: "hash",
		Name:         "Maria",
		Address:      "Rua A",
		Phone:        "11 91234-5678",
	}

	query, args, err := buildInsertMember(member)
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO members")
	assert.Contains(t, query, "RETURNING id, created_at")
	assert.Len(t, args, 8)
	assert.Equal(t, "11144477735", args[0])
}

func TestBuildSelectMemberByCPF(t *testing.T) {
	query, args, err := buildSelectMemberByCPF("11144477735")
	require.NoError(t, err)

	assert.Contains(t, query, "FROM members")
	assert.Contains(t, query, "cpf = $1")
	assert.Equal(t, []any{"11144477735"}, args)
}

func TestBuildUpdateMemberFines(t *testing.T) {
	query, args, err := buildUpdateMemberFines(7, 12.5)
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE members SET fines = $1")
	assert.Contains(t, query, "id = $2")
	assert.Equal(t, []any{12.5, int64(7)}, args)
}

func TestBuildSelectAssetNames(t *testing.T) {
	tests := []struct {
		category models.AssetCategory
		column   string
	}{
		{category: models.CategoryDocument, column: "document_asset"},
		{category: models.CategoryResidenceProof, column: "residence_proof_asset"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			query, args, err := buildSelectAssetNames(tt.category)
			require.NoError(t, err)

			assert.Contains(t, query, "SELECT "+tt.column+" FROM members")
			assert.Equal(t, []any{""}, args)
		})
	}
}

func TestAssetColumn_UnknownCategory(t *testing.T) {
	_, err := assetColumn(models.AssetCategory("passport"))
	require.Error(t, err)

	_, _, err = buildSelectAssetNames(models.AssetCategory("passport"))
	require.Error(t, err)
}
