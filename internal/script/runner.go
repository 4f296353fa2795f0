package script

import (
	"time"

	"github.com/cristianoliveira/headerscroll/internal/headerscroll"
	"github.com/cristianoliveira/headerscroll/internal/logging"
	"github.com/cristianoliveira/headerscroll/internal/surface"
)

// Trace event names.
const (
	EventResize          = "resize"
	EventBeforeAnimation = "before_animation"
	EventAfterAnimation  = "after_animation"
	EventStep            = "step"
)

// Entry is one line of a replay trace.
type Entry struct {
	Step    int     `json:"step"`
	Event   string  `json:"event"`
	Detail  string  `json:"detail,omitempty"`
	Content string  `json:"content,omitempty"`
	Value   float64 `json:"value"`
	Up      bool    `json:"up,omitempty"`
	HeaderY float64 `json:"header_y"`
	State   string  `json:"state"`
}

// Result is the outcome of a replay.
type Result struct {
	Name     string                `json:"name,omitempty"`
	Entries  []Entry               `json:"entries"`
	Final    headerscroll.Snapshot `json:"-"`
	Contents map[string]float64    `json:"contents"`
	HeaderY  float64               `json:"header_y"`
}

// Options tune a replay.
type Options struct {
	Logger logging.Logger
	// SettleDuration applies when the script does not set one.
	SettleDuration time.Duration
	// FlingThreshold applies when the script does not set one.
	FlingThreshold float64
}

type runner struct {
	doc     *Document
	ctrl    *headerscroll.Controller
	header  *surface.Rect
	rects   map[string]*surface.Rect
	step    int
	entries []Entry
}

// Run replays doc against a fresh controller with in-memory surfaces.
// When the script has no layout step the header is laid out first.
func Run(doc *Document, opts Options) Result {
	settle := opts.SettleDuration
	if doc.SettleDurationMS > 0 {
		settle = time.Duration(doc.SettleDurationMS) * time.Millisecond
	}
	if settle == 0 {
		settle = headerscroll.DefaultSettleDuration
	}
	fling := opts.FlingThreshold
	if doc.FlingThreshold > 0 {
		fling = doc.FlingThreshold
	}
	if fling == 0 {
		fling = headerscroll.DefaultFlingThreshold
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}

	r := &runner{
		doc:    doc,
		header: surface.NewRect(doc.YOffset),
		rects:  make(map[string]*surface.Rect, len(doc.Contents)),
	}
	r.ctrl = headerscroll.New(r.header, doc.YOffset,
		headerscroll.WithLogger(log.With("script", doc.Name)),
		headerscroll.WithSettleDuration(settle),
		headerscroll.WithFlingThreshold(fling),
	)

	if !doc.hasLayoutStep() {
		r.header.MarkLaidOut(doc.HeaderHeight)
	}
	for _, c := range doc.Contents {
		r.register(c)
	}
	for i, s := range doc.Steps {
		r.step = i + 1
		r.apply(s)
		r.record(EventStep, describe(s), s.Content, 0, false)
	}

	res := Result{
		Name:     doc.Name,
		Entries:  r.entries,
		Final:    r.ctrl.Snapshot(),
		Contents: make(map[string]float64, len(r.rects)),
		HeaderY:  r.header.Y(),
	}
	for id, rect := range r.rects {
		res.Contents[id] = rect.Y()
	}
	return res
}

func (r *runner) register(c Content) {
	rect := surface.NewLaidOutRect(c.Y, 0)
	r.rects[c.ID] = rect
	force, _ := headerscroll.ParseDirection(c.Force)
	id := c.ID
	r.ctrl.RegisterContent(surface.ID(id), rect, headerscroll.CallbackFuncs{
		Resize: func(top float64) {
			rect.SetY(top)
			r.record(EventResize, "", id, top, false)
		},
		BeforeAnimation: func(up bool, delta float64) headerscroll.Direction {
			r.record(EventBeforeAnimation, force.String(), id, delta, up)
			return force
		},
		AfterAnimation: func(up bool, delta float64) {
			r.record(EventAfterAnimation, "", id, delta, up)
		},
	})
}

func (r *runner) apply(s Step) {
	switch s.Kind {
	case KindLayout:
		r.header.MarkLaidOut(r.doc.HeaderHeight)
	case KindContent:
		r.ctrl.ContentTouch(surface.ID(s.Content), s.event())
	case KindRoot:
		r.ctrl.RootTouch(s.event())
	case KindTick:
		r.ctrl.Tick(time.Duration(s.MS) * time.Millisecond)
	case KindAnimate:
		if s.Direction == "up" {
			r.ctrl.AnimateUp()
		} else {
			r.ctrl.AnimateDown()
		}
	case KindCancel:
		r.ctrl.CancelAnimation()
	}
}

// record reads the header directly: callbacks run while the controller is
// inside an entry point.
func (r *runner) record(event, detail, content string, value float64, up bool) {
	r.entries = append(r.entries, Entry{
		Step:    r.step,
		Event:   event,
		Detail:  detail,
		Content: content,
		Value:   value,
		Up:      up,
		HeaderY: r.header.Y(),
		State:   r.ctrl.State().String(),
	})
}
