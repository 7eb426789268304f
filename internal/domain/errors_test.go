package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/paywrap/ezidebit-gateway/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestConnectionErrorHidesCause(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.1:443: i/o timeout")
	err := domain.NewConnectionError(cause)

	assert.Equal(t, domain.ConnectionErrorMessage, err.Error())
	assert.NotContains(t, err.Error(), "dial tcp")
	assert.ErrorIs(t, err, cause)
}

func TestGatewayErrorPassesMessageThrough(t *testing.T) {
	err := domain.NewGatewayError("Invalid Digital Key")

	assert.Equal(t, "Invalid Digital Key", err.Error())
	assert.True(t, domain.IsKind(err, domain.KindGateway))
}

func TestIsKind(t *testing.T) {
	err := domain.NewValidationError("bad input")

	assert.True(t, domain.IsKind(err, domain.KindValidation))
	assert.False(t, domain.IsKind(err, domain.KindConnection))
	assert.False(t, domain.IsKind(errors.New("plain"), domain.KindValidation))

	wrapped := fmt.Errorf("add card debit: %w", err)
	assert.True(t, domain.IsKind(wrapped, domain.KindValidation))
}
