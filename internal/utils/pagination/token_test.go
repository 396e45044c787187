package pagination_test

import (
	"testing"
	"time"

	"github.com/carrocomidas/pos_backend/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	at := time.Date(2025, 7, 14, 18, 32, 5, 123456789, time.UTC)
	token := pagination.EncodeToken(at, "venta-42")

	gotAt, gotID, err := pagination.DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, at.Equal(gotAt))
	assert.Equal(t, "venta-42", gotID)
}

func TestDecodeTokenInvalid(t *testing.T) {
	cases := map[string]string{
		"not base64":    "%%%",
		"no separator":  "bm8gc2VwYXJhdG9y", // "no separator"
		"bad timestamp": "bm90LWEtdGltZXxpZA==", // "not-a-time|id"
	}

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := pagination.DecodeToken(token)
			assert.Error(t, err)
		})
	}
}

func TestDecodeTokenEmptyID(t *testing.T) {
	token := pagination.EncodeToken(time.Now().UTC(), "")
	_, _, err := pagination.DecodeToken(token)
	assert.Error(t, err)
}
