package utils_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"todotree.dev/todotree/internal/engine"
	"todotree.dev/todotree/internal/errors"
	"todotree.dev/todotree/internal/utils"
)

func TestValidateTitle(t *testing.T) {
	require.NoError(t, utils.ValidateTitle("Buy milk"))
	require.ErrorIs(t, utils.ValidateTitle(""), errors.ErrEmptyTitle)
	require.ErrorIs(t, utils.ValidateTitle("   "), errors.ErrEmptyTitle)
}

func TestContainsID(t *testing.T) {
	ids := []engine.NodeID{1, 3, 5}
	require.True(t, utils.ContainsID(ids, 3))
	require.False(t, utils.ContainsID(ids, 2))
	require.False(t, utils.ContainsID(nil, 1))
}
