package sequence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextRejectsEmptyName(t *testing.T) {
	// An empty name is rejected before the pool is touched, so a nil
	// pool is safe here.
	gen := NewPostgresGenerator(nil)

	value, err := gen.Next(context.Background(), "")
	assert.Error(t, err)
	assert.Zero(t, value)
}
