package culture

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	normalizer := NewIdentifierNormalizer(defaultTableProvider(t))

	tests := []struct {
		name        string
		id          LocaleID
		want        LocaleID
		wantNeutral bool
		wantErr     bool
	}{
		{name: "invariant", id: Invariant, want: Invariant},
		{name: "specific", id: 0x0407, want: 0x0407},
		{name: "neutral", id: 0x0007, want: 0x0007, wantNeutral: true},
		{name: "user default", id: UserDefault, want: EnglishUS},
		{name: "system default", id: SystemDefault, want: EnglishUS},
		{name: "custom", id: CustomUnspecified, want: CustomUnspecified},
		{name: "unknown", id: 0x0419, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, neutral, err := normalizer.Normalize(tt.id)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidLocaleIdentifier)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
			assert.Equal(t, tt.wantNeutral, neutral)
		})
	}
}

func TestCheckNameLength(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "short", input: "en-US"},
		{name: "254", input: strings.Repeat("a", 254)},
		{name: "255 with dot", input: strings.Repeat("a", 254) + "."},
		{name: "255 without dot", input: strings.Repeat("a", 255), wantErr: true},
		{name: "256", input: strings.Repeat("a", 256), wantErr: true},
		{name: "multibyte counts characters", input: strings.Repeat("é", 200)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkNameLength(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNameTooLong)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNormalizeWithoutProvider(t *testing.T) {
	normalizer := NewIdentifierNormalizer(nil)

	id, _, err := normalizer.Normalize(Invariant)
	require.NoError(t, err)
	assert.Equal(t, Invariant, id)

	_, _, err = normalizer.Normalize(EnglishUS)
	assert.ErrorIs(t, err, ErrInvalidLocaleIdentifier)

	_, err = normalizer.NormalizeName("en-US")
	assert.ErrorIs(t, err, ErrInvalidLocaleIdentifier)
}
