package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCPF_Valid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain digits", raw: "11144477735", want: "11144477735"},
		{name: "formatted", raw: "111.444.777-35", want: "11144477735"},
		{name: "another valid number", raw: "52998224725", want: "52998224725"},
		{name: "surrounded by junk", raw: " 111 444 777 35 ", want: "11144477735"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateCPF(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateCPF_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "too short", raw: "1114447773"},
		{name: "too long", raw: "111444777351"},
		{name: "letters only", raw: "not-a-cpf"},
		{name: "repeated digits pass checksum arithmetic", raw: "11111111111"},
		{name: "repeated zeros", raw: "00000000000"},
		{name: "first checksum digit mutated", raw: "11144477745"},
		{name: "second checksum digit mutated", raw: "11144477736"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateCPF(tt.raw)
			assert.ErrorIs(t, err, ErrInvalidCPF)
		})
	}
}

func TestValidateCPF_Deterministic(t *testing.T) {
	first, err1 := ValidateCPF("529.982.247-25")
	second, err2 := ValidateCPF("529.982.247-25")

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
}
