// Package session holds the per-connection element cache that binds scan ids
// to on-screen elements.
package session

import (
	"errors"
	"fmt"

	"github.com/agentbridge/agentbridge/internal/device"
	"github.com/agentbridge/agentbridge/internal/hierarchy"
	"github.com/agentbridge/agentbridge/internal/model"
)

// ErrElementNotFound is returned when an id is absent from the cache, even
// after an implicit scan.
var ErrElementNotFound = errors.New("element not found")

// ErrNoBounds is returned when a cached element carries no usable bounds.
var ErrNoBounds = errors.New("element has no bounds")

// SnapshotError wraps a failure to fetch or parse the UI hierarchy. The
// cache is never mutated when one occurs.
type SnapshotError struct {
	Err error
}

func (e *SnapshotError) Error() string {
	return fmt.Sprintf("ui hierarchy snapshot failed: %v", e.Err)
}

func (e *SnapshotError) Unwrap() error { return e.Err }

// Session owns one device connection and the element cache built by the most
// recent scan. It is not safe for concurrent use; callers that share a
// session across goroutines (the MCP server) serialize access themselves.
type Session struct {
	dev      device.Device
	entries  map[int]hierarchy.Entry
	lastScan []model.Element
}

// New returns a Session with an empty cache.
func New(dev device.Device) *Session {
	return &Session{dev: dev}
}

// Device exposes the underlying device for pass-through operations.
func (s *Session) Device() device.Device { return s.dev }

// Scan captures the current screen, compresses its elements, and replaces
// the cache wholesale. On failure the previous cache is left untouched and a
// *SnapshotError is returned. includeAll disables the interactivity filter.
func (s *Session) Scan(includeAll bool) ([]model.Element, error) {
	xml, err := s.dev.DumpHierarchy()
	if err != nil {
		return nil, &SnapshotError{Err: err}
	}
	root, err := hierarchy.Parse(xml)
	if err != nil {
		return nil, &SnapshotError{Err: err}
	}

	scanned := hierarchy.Scan(root, includeAll)

	entries := make(map[int]hierarchy.Entry, len(scanned))
	elements := make([]model.Element, 0, len(scanned))
	for _, e := range scanned {
		entries[e.Element.ID] = e
		elements = append(elements, e.Element)
	}

	s.entries = entries
	s.lastScan = elements
	return elements, nil
}

// Lookup returns the cached record for an id. An empty cache triggers one
// implicit filtered scan first — the only implicit-scan trigger; a prior
// full scan that found elements is never repeated.
func (s *Session) Lookup(id int) (model.Element, error) {
	if len(s.entries) == 0 {
		if _, err := s.Scan(false); err != nil {
			return model.Element{}, err
		}
	}
	entry, ok := s.entries[id]
	if !ok {
		return model.Element{}, fmt.Errorf("%w: id %d (run 'scan' first)", ErrElementNotFound, id)
	}
	return entry.Element, nil
}

// CenterOf resolves an id to the center point of its bounds, the actuation
// coordinate for taps. Elements whose bounds failed to parse yield
// ErrNoBounds; zero-area bounds still yield a valid center.
func (s *Session) CenterOf(id int) (x, y int, err error) {
	el, err := s.Lookup(id)
	if err != nil {
		return 0, 0, err
	}
	if el.Bounds == nil {
		return 0, 0, fmt.Errorf("%w: id %d", ErrNoBounds, id)
	}
	x, y = el.Bounds.Center()
	return x, y, nil
}

// LastScan returns the element list from the most recent successful scan.
func (s *Session) LastScan() []model.Element { return s.lastScan }
