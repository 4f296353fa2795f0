// Package script loads and replays pointer scripts against a header controller.
//
// A script is a TOML document:
//
//	header_height = 100
//	y_offset = 0
//
//	[[content]]
//	id = "inbox"
//	y = 100
//
//	[[step]]
//	kind = "content"
//	content = "inbox"
//	phase = "down"
//	y = 500
//
// Step kinds are layout, content, root, tick, animate and cancel.
package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cristianoliveira/headerscroll/internal/headerscroll"
	"github.com/cristianoliveira/headerscroll/internal/pointer"
	"github.com/pelletier/go-toml/v2"
)

// Step kinds.
const (
	KindLayout  = "layout"
	KindContent = "content"
	KindRoot    = "root"
	KindTick    = "tick"
	KindAnimate = "animate"
	KindCancel  = "cancel"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid script")

// Document is a parsed script.
type Document struct {
	Name             string    `toml:"name"`
	HeaderHeight     float64   `toml:"header_height"`
	YOffset          float64   `toml:"y_offset"`
	SettleDurationMS int       `toml:"settle_duration_ms"`
	FlingThreshold   float64   `toml:"fling_threshold"`
	Contents         []Content `toml:"content"`
	Steps            []Step    `toml:"step"`
}

// Content declares a scroller.
type Content struct {
	ID string  `toml:"id"`
	Y  float64 `toml:"y"`
	// Force overrides the settle direction: "up", "down" or "default".
	Force string `toml:"force"`
}

// Step is one scripted input.
type Step struct {
	Kind    string  `toml:"kind"`
	Content string  `toml:"content"`
	Phase   string  `toml:"phase"`
	Y       float64 `toml:"y"`
	Fling   bool    `toml:"fling"`
	MS      int     `toml:"ms"`
	// Direction is used by animate steps: "up" or "down".
	Direction string `toml:"direction"`
}

// Parse decodes and validates a script. Unknown keys are rejected.
func Parse(r io.Reader) (*Document, error) {
	var doc Document
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("%w: %s", ErrInvalid, strings.TrimSpace(strict.String()))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ParseBytes is Parse over a byte slice.
func ParseBytes(data []byte) (*Document, error) {
	return Parse(bytes.NewReader(data))
}

// Load reads and parses the script at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer f.Close()
	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Validate checks the document for structural errors.
func (d *Document) Validate() error {
	if d.HeaderHeight <= 0 {
		return fmt.Errorf("%w: header_height must be positive", ErrInvalid)
	}
	if d.YOffset < 0 {
		return fmt.Errorf("%w: y_offset must not be negative", ErrInvalid)
	}
	if d.SettleDurationMS < 0 {
		return fmt.Errorf("%w: settle_duration_ms must not be negative", ErrInvalid)
	}
	seen := make(map[string]bool, len(d.Contents))
	for i, c := range d.Contents {
		if c.ID == "" {
			return fmt.Errorf("%w: content %d has no id", ErrInvalid, i)
		}
		if seen[c.ID] {
			return fmt.Errorf("%w: duplicate content id %q", ErrInvalid, c.ID)
		}
		seen[c.ID] = true
		if _, ok := headerscroll.ParseDirection(c.Force); !ok {
			return fmt.Errorf("%w: content %q has invalid force %q", ErrInvalid, c.ID, c.Force)
		}
	}
	for i, s := range d.Steps {
		if err := s.validate(); err != nil {
			return fmt.Errorf("%w: step %d: %v", ErrInvalid, i+1, err)
		}
	}
	return nil
}

func (s Step) validate() error {
	switch s.Kind {
	case KindLayout, KindCancel:
		return nil
	case KindContent, KindRoot:
		if _, ok := pointer.ParsePhase(s.Phase); !ok {
			return fmt.Errorf("unknown phase %q", s.Phase)
		}
		if s.Kind == KindContent && s.Content == "" {
			return errors.New("content step needs a content id")
		}
		if s.Fling && s.Phase != "move" {
			return errors.New("fling is only valid on move")
		}
		return nil
	case KindTick:
		if s.MS <= 0 {
			return errors.New("tick needs a positive ms")
		}
		return nil
	case KindAnimate:
		if s.Direction != "up" && s.Direction != "down" {
			return fmt.Errorf("animate direction must be up or down, got %q", s.Direction)
		}
		return nil
	default:
		return fmt.Errorf("unknown kind %q", s.Kind)
	}
}

// event converts a content or root step to a pointer event.
func (s Step) event() pointer.Event {
	phase, _ := pointer.ParsePhase(s.Phase)
	return pointer.Event{Phase: phase, Y: s.Y, Fling: s.Fling}
}

func (d *Document) hasLayoutStep() bool {
	for _, s := range d.Steps {
		if s.Kind == KindLayout {
			return true
		}
	}
	return false
}
