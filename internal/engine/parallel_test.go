package engine

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatch(t *testing.T) {
	var running, peak int32
	errOdd := errors.New("odd")

	out, err := Batch(context.Background(), 3, 20, func(i int) (int, error) {
		n := atomic.AddInt32(&running, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		defer atomic.AddInt32(&running, -1)
		if i%2 == 1 {
			return 0, errOdd
		}
		return i * i, nil
	})
	require.NoError(t, err)
	require.Len(t, out, 20)
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(3))

	for i, o := range out {
		assert.Equal(t, i, o.Index)
		if i%2 == 1 {
			assert.ErrorIs(t, o.Err, errOdd)
		} else {
			assert.NoError(t, o.Err)
			assert.Equal(t, i*i, o.Value)
		}
	}
}

func TestBatchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Batch(ctx, 2, 5, func(i int) (int, error) { return i, nil })
	assert.ErrorIs(t, err, context.Canceled)
}
