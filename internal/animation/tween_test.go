package animation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	values  []float64
	started int
	ended   int
	cancels int
}

func (r *recorder) listener() Listener {
	return Listener{
		OnStart:  func() { r.started++ },
		OnEnd:    func() { r.ended++ },
		OnCancel: func() { r.cancels++ },
	}
}

func (r *recorder) set(v float64) { r.values = append(r.values, v) }

func TestTweenInterpolatesLinearly(t *testing.T) {
	rec := &recorder{}
	tw := NewTween(-40, 0, 200*time.Millisecond, rec.set, rec.listener())

	tw.Start()
	require.True(t, tw.Running())
	assert.Equal(t, 1, rec.started)

	tw.Advance(50 * time.Millisecond)
	assert.InDelta(t, -30, tw.Value(), 1e-9)
	assert.InDelta(t, 0.25, tw.Fraction(), 1e-9)

	tw.Advance(100 * time.Millisecond)
	assert.InDelta(t, -10, tw.Value(), 1e-9)

	tw.Advance(100 * time.Millisecond)
	assert.Equal(t, 0.0, tw.Value())
	assert.False(t, tw.Running())
	assert.Equal(t, 1, rec.ended)
	assert.Equal(t, 0, rec.cancels)
	assert.Equal(t, []float64{-30, -10, 0}, rec.values)
}

func TestTweenCancelKeepsCurrentValue(t *testing.T) {
	rec := &recorder{}
	tw := NewTween(0, -100, 200*time.Millisecond, rec.set, rec.listener())

	tw.Start()
	tw.Advance(100 * time.Millisecond)
	tw.Cancel()

	assert.False(t, tw.Running())
	assert.Equal(t, -50.0, tw.Value())
	assert.Equal(t, 1, rec.cancels)
	assert.Equal(t, 1, rec.ended)

	tw.Advance(100 * time.Millisecond)
	assert.Equal(t, -50.0, tw.Value())
	assert.Len(t, rec.values, 1)
}

func TestTweenCancelFromOnStart(t *testing.T) {
	var tw *Tween
	ended := 0
	tw = NewTween(0, 10, time.Second, nil, Listener{
		OnStart: func() { tw.Cancel() },
		OnEnd:   func() { ended++ },
	})

	tw.Start()

	assert.False(t, tw.Running())
	assert.Equal(t, 1, ended)
	assert.Equal(t, 0.0, tw.Value())
}

func TestTweenZeroDurationCompletesOnStart(t *testing.T) {
	rec := &recorder{}
	tw := NewTween(5, 9, 0, rec.set, rec.listener())

	tw.Start()

	assert.False(t, tw.Running())
	assert.Equal(t, 9.0, tw.Value())
	assert.Equal(t, 1.0, tw.Fraction())
	assert.Equal(t, 1, rec.ended)
}

func TestTweenIgnoresAdvanceBeforeStart(t *testing.T) {
	rec := &recorder{}
	tw := NewTween(0, 10, time.Second, rec.set, rec.listener())

	tw.Advance(time.Second)
	tw.Cancel()

	assert.Empty(t, rec.values)
	assert.Equal(t, 0, rec.cancels)
	assert.Equal(t, 10.0, tw.Target())
}
