package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "giftmatch/pkg/domain-errors"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "Ana.Perez@example.com", Normalize("  Ana.Perez@EXAMPLE.com "))
	assert.Equal(t, "no-at-sign", Normalize("no-at-sign"))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"plain address", "ana@example.com", "ana@example.com", false},
		{"domain is lowercased", "ana@Example.COM", "ana@example.com", false},
		{"surrounding space is trimmed", "  ana@example.com\t", "ana@example.com", false},
		{"empty", "", "", true},
		{"missing domain", "ana@", "", true},
		{"no at sign", "ana.example.com", "", true},
		{"display name", "Ana <ana@example.com>", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
