package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	t.Run("returns the logger stored on the context", func(t *testing.T) {
		stored := New()
		ctx := context.WithValue(context.Background(), ContextKey, stored)

		require.Same(t, stored, FromContext(ctx))
	})

	t.Run("falls back to a fresh logger when none is stored", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})
}
