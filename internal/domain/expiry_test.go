package domain_test

import (
	"testing"

	"github.com/paywrap/ezidebit-gateway/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCardExpiry_Valid(t *testing.T) {
	expiry, err := domain.ParseCardExpiry("04/27")

	require.NoError(t, err)
	assert.Equal(t, 4, expiry.Month)
	assert.Equal(t, 2027, expiry.Year)
}

func TestParseCardExpiry_SingleDigitMonth(t *testing.T) {
	expiry, err := domain.ParseCardExpiry("9/30")

	require.NoError(t, err)
	assert.Equal(t, 9, expiry.Month)
	assert.Equal(t, 2030, expiry.Year)
}

func TestParseCardExpiry_Invalid(t *testing.T) {
	cases := map[string]string{
		"missing separator": "0427",
		"non-numeric month": "ab/27",
		"non-numeric year":  "04/cd",
		"empty year":        "4/",
		"month zero":        "00/27",
		"month too large":   "13/27",
		"negative year":     "04/-1",
		"empty":             "",
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := domain.ParseCardExpiry(input)

			require.Error(t, err)
			assert.True(t, domain.IsKind(err, domain.KindValidation))
		})
	}
}

func TestCardExpiryString(t *testing.T) {
	assert.Equal(t, "04/27", domain.CardExpiry{Month: 4, Year: 2027}.String())
}
