package toast

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequentialID(t *testing.T) {
	t.Parallel()

	gen := SequentialID()
	assert.Equal(t, "t-1", gen())
	assert.Equal(t, "t-2", gen())
	assert.Equal(t, "t-3", gen())

	// Each generator carries its own counter
	other := SequentialID()
	assert.Equal(t, "t-1", other())
}

func TestNanoID(t *testing.T) {
	t.Parallel()

	gen := NanoID()
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := gen()
		require.Len(t, id, nanoidLength)
		_, dup := seen[id]
		require.False(t, dup, "nanoid collision: %q", id)
		seen[id] = struct{}{}
	}
}

func TestUUID(t *testing.T) {
	t.Parallel()

	gen := UUID()
	id := gen()
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.NotEqual(t, id, gen())
}
