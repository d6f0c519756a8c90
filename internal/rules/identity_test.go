package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "display name", in: "Maicon Nascimento", want: "maicon.nascimento@starbank.com.br"},
		{name: "already canonical", in: "maicon@starbank.com.br", want: "maicon@starbank.com.br"},
		{name: "foreign domain rejected", in: "maicon@gmail.com", wantErr: true},
		{name: "single word name", in: "Fernanda", want: "fernanda@starbank.com.br"},
		{name: "surrounding spaces trimmed", in: "  Brunno Leonard ", want: "brunno.leonard@starbank.com.br"},
		{name: "empty input rejected", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidIdentity)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDenormalize(t *testing.T) {
	assert.Equal(t, "Maicon Nascimento", Denormalize("maicon.nascimento@starbank.com.br"))
	assert.Equal(t, "Fernanda", Denormalize("fernanda@starbank.com.br"))
}

// Denormalize must be a best-effort inverse of Normalize for names
// without literal dots or digits.
func TestIdentityRoundTrip(t *testing.T) {
	names := []string{
		"Maicon Nascimento",
		"Brunno Leonard",
		"Fernanda Gomes",
		"Christian Serello",
	}
	for _, name := range names {
		canonical, err := Normalize(name)
		require.NoError(t, err)
		assert.Equal(t, name, Denormalize(canonical))
	}
}
