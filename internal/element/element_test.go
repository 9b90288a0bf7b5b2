package element

import (
	"testing"

	"github.com/stretchr/testify/require"

	fberrors "github.com/alexisbeaulieu97/formbuilder/pkg/errors"
)

func TestParseTypeRoundTrip(t *testing.T) {
	t.Parallel()

	for _, typ := range Types() {
		parsed, err := ParseType(typ.String())
		require.NoError(t, err)
		require.Equal(t, typ, parsed)
	}
}

func TestParseTypeRejectsUnknownTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"unknown type", "address"},
		{"wrong case", "FullName"},
		{"padded", " email"},
		{"display label", "Full Name"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			typ, err := ParseType(tt.token)
			require.Error(t, err)
			require.False(t, typ.Valid())

			var decodeErr *fberrors.DecodeError
			require.ErrorAs(t, err, &decodeErr)
			require.Equal(t, TransferKey, decodeErr.Channel)
			require.Equal(t, tt.token, decodeErr.Token)
		})
	}
}

func TestTypeStringForZeroValue(t *testing.T) {
	t.Parallel()

	var zero Type
	require.False(t, zero.Valid())
	require.Equal(t, "unknown", zero.String())
}
