package idgen

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator(t *testing.T) {
	t.Run("with prefix", func(t *testing.T) {
		id := NewUUID("eq").Generate()

		require.True(t, strings.HasPrefix(id, "eq_"))
		_, err := uuid.Parse(strings.TrimPrefix(id, "eq_"))
		assert.NoError(t, err)
	})

	t.Run("without prefix", func(t *testing.T) {
		id := NewUUID("").Generate()

		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	})

	t.Run("unique", func(t *testing.T) {
		g := NewUUID("mat")
		assert.NotEqual(t, g.Generate(), g.Generate())
	})
}

func TestSequentialGenerator(t *testing.T) {
	g := NewSequential("forge")

	assert.Equal(t, "forge_1", g.Generate())
	assert.Equal(t, "forge_2", g.Generate())
	assert.Equal(t, "1", NewSequential("").Generate())
}
