package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildVerificationURL(t *testing.T) {
	tests := []struct {
		name     string
		origin   string
		vin      string
		expected string
		wantErr  bool
	}{
		{
			name:     "plain_origin",
			origin:   "https://evote.ng",
			vin:      "abc-123",
			expected: "https://evote.ng/verify/abc-123",
		},
		{
			name:     "origin_with_trailing_slash",
			origin:   "https://evote.ng/",
			vin:      "abc-123",
			expected: "https://evote.ng/verify/abc-123",
		},
		{
			name:    "empty_vin",
			origin:  "https://evote.ng",
			vin:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, err := BuildVerificationURL(tt.origin, tt.vin)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, url)
		})
	}
}

func TestCardID(t *testing.T) {
	assert.Equal(t, "VC-EV-2026-000123", CardID("EV-2026-000123"))
}
