package headerscroll

import (
	"bytes"
	"testing"

	"github.com/cristianoliveira/headerscroll/internal/logging"
	"github.com/cristianoliveira/headerscroll/internal/pointer"
	"github.com/cristianoliveira/headerscroll/internal/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializationWaitsForLayout(t *testing.T) {
	header := surface.NewRect(0)
	c := New(header, 0, WithLogger(logging.Discard()))
	content := surface.NewLaidOutRect(0, 300)
	resizes := 0
	c.RegisterContent("list", content, CallbackFuncs{Resize: func(float64) { resizes++ }})

	assert.False(t, c.Initialized())
	assert.Equal(t, 1, header.Listeners())

	c.ContentTouch("list", pointer.Down(100))
	c.RootTouch(pointer.Down(100))
	c.RootTouch(pointer.Move(50))
	c.RootTouch(pointer.Up(50))
	c.AnimateUp()

	assert.Equal(t, 0, resizes)
	assert.Equal(t, 0.0, header.Y())
	assert.Equal(t, StateIdle, c.State())

	header.MarkLaidOut(56)

	require.True(t, c.Initialized())
	assert.Equal(t, 56.0, c.HeaderHeight())
	assert.Equal(t, -56.0, c.Bounds().Min)
	assert.Equal(t, 0.0, c.Bounds().Max)
	assert.Equal(t, 0, header.Listeners())
}

func TestInitializationHappensOnce(t *testing.T) {
	header := surface.NewRect(0)
	c := New(header, 0, WithLogger(logging.Discard()))

	header.MarkLaidOut(40)
	c.NotifyLayoutReady()
	header.SetY(0)
	header.MarkLaidOut(90)
	c.NotifyLayoutReady()

	assert.Equal(t, 40.0, c.HeaderHeight())
	assert.Equal(t, -40.0, c.Bounds().Min)
}

func TestZeroHeightLayoutKeepsWaiting(t *testing.T) {
	header := surface.NewRect(0)
	c := New(header, 0, WithLogger(logging.Discard()))

	header.MarkLaidOut(0)
	assert.False(t, c.Initialized())
	assert.Equal(t, 1, header.Listeners())

	header.MarkLaidOut(30)
	assert.True(t, c.Initialized())
}

func TestYOffsetBounds(t *testing.T) {
	header := surface.NewRect(10)
	c := New(header, 10, WithLogger(logging.Discard()))
	header.MarkLaidOut(50)

	assert.Equal(t, -40.0, c.Bounds().Min)
	assert.Equal(t, 10.0, c.Bounds().Max)

	neg := New(surface.NewLaidOutRect(0, 20), -5, WithLogger(logging.Discard()))
	neg.NotifyLayoutReady()
	assert.Equal(t, 0.0, neg.Bounds().Max)
	assert.Equal(t, -20.0, neg.Bounds().Min)
}

func TestAlreadyLaidOutHeaderInitializesImmediately(t *testing.T) {
	header := surface.NewLaidOutRect(0, 100)
	c := New(header, 0, WithLogger(logging.Discard()))
	content := surface.NewLaidOutRect(0, 300)
	var tops []float64
	c.RegisterContent("list", content, CallbackFuncs{Resize: func(top float64) { tops = append(tops, top) }})

	require.True(t, c.Initialized())
	assert.Equal(t, 100.0, c.HeaderHeight())
	assert.Equal(t, -100.0, c.Bounds().Min)
	assert.Equal(t, 0, header.Listeners())

	c.ContentTouch("list", pointer.Down(200))
	c.RootTouch(pointer.Down(200))
	c.RootTouch(pointer.Move(170))

	assert.Equal(t, -30.0, header.Y())
	assert.Equal(t, []float64{-30}, tops)

	header.MarkLaidOut(40)
	assert.Equal(t, 100.0, c.HeaderHeight())
}

func TestNilHeaderNeverInitializes(t *testing.T) {
	c := New(nil, 0, WithLogger(logging.Discard()))
	c.NotifyLayoutReady()
	c.RootTouch(pointer.Down(1))

	assert.False(t, c.Initialized())
	assert.Equal(t, 0.0, c.HeaderY())
}

func TestRegisterContentIsIdempotent(t *testing.T) {
	f := newFixture(t, 100)
	rect := surface.NewLaidOutRect(100, 300)
	first := 0
	second := 0
	f.c.RegisterContent("list", rect, CallbackFuncs{Resize: func(float64) { first++ }})

	rect.SetY(42)
	f.c.RegisterContent("list", rect, CallbackFuncs{Resize: func(float64) { second++ }})

	regs := f.c.Registrations()
	require.Len(t, regs, 1)
	assert.Equal(t, 100.0, regs[0].BaselineY)

	f.c.ContentTouch("list", pointer.Down(300))
	f.c.RootTouch(pointer.Down(300))
	f.c.RootTouch(pointer.Move(290))
	assert.Equal(t, 1, first)
	assert.Equal(t, 0, second)
}

func TestRegisterRejectsNilArguments(t *testing.T) {
	f := newFixture(t, 100)

	f.c.RegisterContent("nil-surface", nil, CallbackFuncs{})
	f.c.RegisterContent("nil-callbacks", surface.NewRect(0), nil)

	assert.Empty(t, f.c.Registrations())
	_, ok := f.c.Registration("nil-surface")
	assert.False(t, ok)
}

func TestRegistrationsKeepInsertionOrder(t *testing.T) {
	f := newFixture(t, 100, 0, 0, 0)

	regs := f.c.Registrations()
	require.Len(t, regs, 3)
	assert.Equal(t, []surface.ID{"a", "b", "c"}, []surface.ID{regs[0].ID, regs[1].ID, regs[2].ID})
}

func TestUnregisterClearsActiveContent(t *testing.T) {
	f := newFixture(t, 100, 0, 0)
	f.press(0, 300)
	require.Equal(t, surface.ID("a"), f.c.Snapshot().Active)

	f.c.UnregisterContent("a")
	f.move(280)

	assert.Empty(t, f.c.Snapshot().Active)
	assert.Empty(t, f.contents[0].resizes)
	assert.Empty(t, f.contents[1].resizes)
	assert.Len(t, f.c.Registrations(), 1)

	f.c.UnregisterContent("missing")
	assert.Len(t, f.c.Registrations(), 1)
}

func TestContentTouchIgnoresUnknownAndNonDown(t *testing.T) {
	f := newFixture(t, 100, 0)

	f.c.ContentTouch("missing", pointer.Down(10))
	assert.Empty(t, f.c.Snapshot().Active)

	f.c.ContentTouch("a", pointer.Move(10))
	assert.Empty(t, f.c.Snapshot().Active)

	f.c.ContentTouch("a", pointer.Down(10))
	assert.Equal(t, surface.ID("a"), f.c.Snapshot().Active)
}

func TestReentrantCallbackIsIgnored(t *testing.T) {
	var buf bytes.Buffer
	header := surface.NewRect(0)
	c := New(header, 0, WithLogger(logging.New(&buf, logging.Config{Level: "warn"}, true)))
	header.MarkLaidOut(100)

	content := surface.NewLaidOutRect(0, 300)
	c.RegisterContent("list", content, CallbackFuncs{Resize: func(top float64) {
		content.SetY(top)
		c.AnimateUp()
	}})

	c.ContentTouch("list", pointer.Down(300))
	c.RootTouch(pointer.Down(300))
	c.RootTouch(pointer.Move(280))

	assert.False(t, c.Animating())
	assert.Equal(t, -20.0, header.Y())
	assert.Contains(t, buf.String(), ErrReentrant.Error())

	// The guard is released afterwards.
	c.AnimateUp()
	assert.True(t, c.Animating())
}

func TestPanickingCallbackIsRecovered(t *testing.T) {
	var buf bytes.Buffer
	header := surface.NewRect(0)
	c := New(header, 0, WithLogger(logging.New(&buf, logging.Config{Level: "error"}, true)))
	header.MarkLaidOut(100)
	c.RegisterContent("list", surface.NewLaidOutRect(0, 300), CallbackFuncs{Resize: func(float64) {
		panic("host exploded")
	}})

	c.ContentTouch("list", pointer.Down(300))
	c.RootTouch(pointer.Down(300))
	assert.NotPanics(t, func() { c.RootTouch(pointer.Move(240)) })

	assert.Contains(t, buf.String(), "recovered panic")
	assert.Contains(t, buf.String(), "host exploded")

	c.RootTouch(pointer.Up(240))
	assert.Equal(t, StateSettling, c.State())
}

func TestCloseUnsubscribesAndCancels(t *testing.T) {
	header := surface.NewRect(0)
	c := New(header, 0, WithLogger(logging.Discard()))
	require.Equal(t, 1, header.Listeners())

	c.Close()
	assert.Equal(t, 0, header.Listeners())

	header.MarkLaidOut(100)
	assert.False(t, c.Initialized())
}

func TestDirectionParsing(t *testing.T) {
	for _, d := range []Direction{DirectionUseDefault, DirectionUp, DirectionDown} {
		got, ok := ParseDirection(d.String())
		assert.True(t, ok)
		assert.Equal(t, d, got)
	}
	got, ok := ParseDirection("")
	assert.True(t, ok)
	assert.Equal(t, DirectionUseDefault, got)
	_, ok = ParseDirection("sideways")
	assert.False(t, ok)
}

func TestCallbackFuncsDefaults(t *testing.T) {
	var cb CallbackFuncs
	assert.NotPanics(t, func() {
		cb.OnResize(1)
		cb.OnHeaderAfterAnimation(true, 2)
	})
	assert.Equal(t, DirectionUseDefault, cb.OnHeaderBeforeAnimation(true, 3))
}
