package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameTimingBuffer(t *testing.T) {
	b := NewFrameTimingBuffer(3)
	assert.Nil(t, b.Samples())
	assert.Zero(t, b.Average())

	b.Add(1 * time.Millisecond)
	b.Add(2 * time.Millisecond)
	assert.Equal(t, []time.Duration{time.Millisecond, 2 * time.Millisecond}, b.Samples())

	b.Add(3 * time.Millisecond)
	b.Add(4 * time.Millisecond)
	assert.Equal(t, 3, b.Count())
	assert.Equal(t, []time.Duration{2 * time.Millisecond, 3 * time.Millisecond, 4 * time.Millisecond}, b.Samples())
	assert.Equal(t, 3*time.Millisecond, b.Average())

	assert.Equal(t, 60, NewFrameTimingBuffer(0).capacity)
}
