package observability

import (
	"context"
	"testing"

	"wordheist/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnabled(t *testing.T) {
	assert.False(t, Enabled(""))
	assert.False(t, Enabled("  "))
	assert.True(t, Enabled("stdout"))
	assert.True(t, Enabled(" OTLP "))
}

func TestSetup(t *testing.T) {
	ctx := context.Background()

	t.Run("off", func(t *testing.T) {
		shutdown, err := Setup(ctx, "", testutil.NewTestLogger())
		require.NoError(t, err)
		assert.NoError(t, shutdown(ctx))
	})

	t.Run("stdout", func(t *testing.T) {
		shutdown, err := Setup(ctx, "stdout", testutil.NewTestLogger())
		require.NoError(t, err)
		assert.NoError(t, shutdown(ctx))
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, err := Setup(ctx, "jaeger", testutil.NewTestLogger())
		assert.Error(t, err)
	})
}
