package engine

import (
	"fmt"

	"github.com/kbukum/knife/buffer"
	"github.com/kbukum/knife/errors"
)

// DefaultMaxSnapshots bounds a History created without a limit.
const DefaultMaxSnapshots = 5

// History keeps bounded copies of Source for Undo and Rollback.
type History struct {
	max       int
	snapshots []buffer.Buffer
	baseline  buffer.Buffer
	original  buffer.Buffer
}

// NewHistory creates a History keeping at most max snapshots. A
// non-positive max selects DefaultMaxSnapshots.
func NewHistory(max int) *History {
	if max <= 0 {
		max = DefaultMaxSnapshots
	}
	return &History{max: max}
}

// Max reports the snapshot limit.
func (h *History) Max() int { return h.max }

// Len reports how many snapshots are held.
func (h *History) Len() int { return len(h.snapshots) }

// SetOriginal records the construction contents used by Rollback when no
// baseline exists.
func (h *History) SetOriginal(b buffer.Buffer) {
	release(h.original)
	h.original = b.Fork()
}

// Snapshot pushes a copy of b, evicting the oldest beyond the limit.
func (h *History) Snapshot(b buffer.Buffer) {
	h.snapshots = append(h.snapshots, b.Fork())
	for len(h.snapshots) > h.max {
		release(h.snapshots[0])
		h.snapshots[0] = nil
		h.snapshots = h.snapshots[1:]
	}
}

// Baseline records a copy of b as the Rollback target.
func (h *History) Baseline(b buffer.Buffer) {
	release(h.baseline)
	h.baseline = b.Fork()
}

// Undo returns the steps-th most recent snapshot (1 is the latest) and
// discards every newer one. The caller owns the returned buffer.
func (h *History) Undo(steps int) (buffer.Buffer, error) {
	if steps < 1 {
		return nil, errors.InvalidInput("steps", "must be at least 1")
	}
	if steps > len(h.snapshots) {
		return nil, errors.NotFound("snapshot", fmt.Sprint(steps))
	}
	idx := len(h.snapshots) - steps
	snap := h.snapshots[idx]
	for _, newer := range h.snapshots[idx+1:] {
		release(newer)
	}
	clear(h.snapshots[idx:])
	h.snapshots = h.snapshots[:idx]
	return snap, nil
}

// Rollback returns the baseline, or the original contents when no
// baseline was recorded. The returned buffer stays owned by the History
// and must only be read.
func (h *History) Rollback() (buffer.Buffer, error) {
	switch {
	case h.baseline != nil:
		return h.baseline, nil
	case h.original != nil:
		return h.original, nil
	default:
		return nil, errors.NotFound("baseline", "")
	}
}

// Clear drops every snapshot, the baseline and the original.
func (h *History) Clear() {
	for _, s := range h.snapshots {
		release(s)
	}
	h.snapshots = nil
	release(h.baseline)
	release(h.original)
	h.baseline = nil
	h.original = nil
}

func release(b buffer.Buffer) {
	if b != nil {
		b.Clear()
	}
}
