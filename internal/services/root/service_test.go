package root_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"checkpoints/internal/domain"
	"checkpoints/internal/services/root"
)

func TestSquareRoot(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	svc := root.New(zap.New(core))
	ctx := context.Background()

	r, err := svc.SquareRoot(ctx, 16)
	require.NoError(t, err)
	assert.Equal(t, 4, r)

	r, err = svc.SquareRoot(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, 3, r)

	_, err = svc.SquareRoot(ctx, 0)
	assert.ErrorIs(t, err, domain.OutOfBounds)
	_, err = svc.SquareRoot(ctx, 10_001)
	assert.ErrorIs(t, err, domain.OutOfBounds)
	_, err = svc.SquareRoot(ctx, 2)
	assert.ErrorIs(t, err, domain.NoRoot)

	assert.Equal(t, 2, logs.FilterMessage("root found").Len())
	assert.Equal(t, 3, logs.FilterMessage("no root").Len())
}

func TestSquareRoot_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := root.New(nil).SquareRoot(ctx, 16)
	assert.ErrorIs(t, err, context.Canceled)
}
