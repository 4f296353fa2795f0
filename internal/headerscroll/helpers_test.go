package headerscroll

import (
	"testing"

	"github.com/cristianoliveira/headerscroll/internal/logging"
	"github.com/cristianoliveira/headerscroll/internal/pointer"
	"github.com/cristianoliveira/headerscroll/internal/surface"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type afterCall struct {
	up    bool
	delta float64
}

// fakeContent behaves like a host scroller: it moves its surface to every
// reported top.
type fakeContent struct {
	id      surface.ID
	rect    *surface.Rect
	resizes []float64
	befores int
	after   []afterCall
	force   Direction
}

func (f *fakeContent) callbacks() Callbacks {
	return CallbackFuncs{
		Resize: func(top float64) {
			f.resizes = append(f.resizes, top)
			f.rect.SetY(top)
		},
		BeforeAnimation: func(bool, float64) Direction {
			f.befores++
			return f.force
		},
		AfterAnimation: func(up bool, delta float64) {
			f.after = append(f.after, afterCall{up: up, delta: delta})
		},
	}
}

type fixture struct {
	c        *Controller
	header   *surface.Rect
	contents []*fakeContent
}

func newFixture(t *testing.T, height float64, contentYs ...float64) *fixture {
	t.Helper()

	header := surface.NewRect(0)
	c := New(header, 0, WithLogger(logging.Discard()))
	header.MarkLaidOut(height)
	require.True(t, c.Initialized())

	f := &fixture{c: c, header: header}
	for i, y := range contentYs {
		fc := &fakeContent{id: surface.ID(string(rune('a' + i))), rect: surface.NewLaidOutRect(y, 400)}
		c.RegisterContent(fc.id, fc.rect, fc.callbacks())
		f.contents = append(f.contents, fc)
	}
	return f
}

// press starts a drag on content i at y.
func (f *fixture) press(i int, y float64) {
	f.c.ContentTouch(f.contents[i].id, pointer.Down(y))
	f.c.RootTouch(pointer.Down(y))
}

func (f *fixture) move(y float64) { f.c.RootTouch(pointer.Move(y)) }

func (f *fixture) release(y float64) { f.c.RootTouch(pointer.Up(y)) }

type mockCallbacks struct {
	mock.Mock
}

func (m *mockCallbacks) OnResize(top float64) {
	m.Called(top)
}

func (m *mockCallbacks) OnHeaderBeforeAnimation(scrollingUp bool, scrollDelta float64) Direction {
	args := m.Called(scrollingUp, scrollDelta)
	return args.Get(0).(Direction)
}

func (m *mockCallbacks) OnHeaderAfterAnimation(animatedUp bool, scrollDelta float64) {
	m.Called(animatedUp, scrollDelta)
}
