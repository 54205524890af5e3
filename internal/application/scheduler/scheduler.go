// Package scheduler keeps the registry of scheduled callbacks so the whole
// set can be detached from the live clock and later restored verbatim.
package scheduler

import (
	"fmt"

	"github.com/younwookim/framekit/internal/application/clock"
)

// Timer is the live timing mechanism. *clock.Clock implements it.
type Timer interface {
	Schedule(cb *clock.Callback, args clock.Args)
	ScheduleInterval(cb *clock.Callback, interval float64, args clock.Args) error
	Unschedule(cb *clock.Callback)
}

// Record is one registration. Interval is zero for per-frame records.
type Record struct {
	Callback *clock.Callback
	Interval float64
	Args     clock.Args
}

// Scheduler mirrors every registration made through it in two ordered
// registries, which stay the ground truth while paused.
type Scheduler struct {
	timer     Timer
	frames    []Record
	intervals []Record
	paused    bool
}

// New creates a running scheduler on top of timer.
func New(timer Timer) *Scheduler {
	return &Scheduler{timer: timer}
}

// Schedule registers cb to run every frame with args. While paused the
// record is kept and goes live on Resume.
func (s *Scheduler) Schedule(cb *clock.Callback, args clock.Args) {
	if !s.paused {
		s.timer.Schedule(cb, args)
	}
	s.frames = append(s.frames, Record{Callback: cb, Args: args})
}

// ScheduleInterval registers cb to run every interval seconds. Intervals that
// are not positive and finite are rejected and nothing is recorded.
func (s *Scheduler) ScheduleInterval(cb *clock.Callback, interval float64, args clock.Args) error {
	if !clock.ValidInterval(interval) {
		return fmt.Errorf("schedule %s: %w", cb, clock.ErrInvalidInterval)
	}
	if !s.paused {
		if err := s.timer.ScheduleInterval(cb, interval, args); err != nil {
			return fmt.Errorf("schedule %s: %w", cb, err)
		}
	}
	s.intervals = append(s.intervals, Record{Callback: cb, Interval: interval, Args: args})
	return nil
}

// Unschedule removes every record of cb from both registries and detaches
// it from the timer. Unknown callbacks are a no-op.
func (s *Scheduler) Unschedule(cb *clock.Callback) {
	s.frames = without(s.frames, cb)
	s.intervals = without(s.intervals, cb)
	s.timer.Unschedule(cb)
}

// Pause detaches every registered callback from the timer. The registries
// are untouched. Pausing twice is the same as pausing once.
func (s *Scheduler) Pause() {
	if s.paused {
		return
	}
	s.paused = true
	for _, cb := range s.callbacks() {
		s.timer.Unschedule(cb)
	}
}

// Resume re-attaches every record with its original interval and args,
// interval records first. Resuming a running scheduler does nothing, so
// records are never attached twice.
func (s *Scheduler) Resume() error {
	if !s.paused {
		return nil
	}
	s.paused = false
	for _, r := range s.intervals {
		if err := s.timer.ScheduleInterval(r.Callback, r.Interval, r.Args); err != nil {
			return fmt.Errorf("resume %s: %w", r.Callback, err)
		}
	}
	for _, r := range s.frames {
		s.timer.Schedule(r.Callback, r.Args)
	}
	return nil
}

// Paused reports whether the scheduler is paused.
func (s *Scheduler) Paused() bool {
	return s.paused
}

// Frames returns a copy of the per-frame registry.
func (s *Scheduler) Frames() []Record {
	return append([]Record(nil), s.frames...)
}

// Intervals returns a copy of the interval registry.
func (s *Scheduler) Intervals() []Record {
	return append([]Record(nil), s.intervals...)
}

// Len returns the total number of records.
func (s *Scheduler) Len() int {
	return len(s.frames) + len(s.intervals)
}

// callbacks returns each registered callback once, in first-seen order.
func (s *Scheduler) callbacks() []*clock.Callback {
	seen := make(map[*clock.Callback]struct{}, s.Len())
	var out []*clock.Callback
	for _, list := range [][]Record{s.intervals, s.frames} {
		for _, r := range list {
			if _, ok := seen[r.Callback]; ok {
				continue
			}
			seen[r.Callback] = struct{}{}
			out = append(out, r.Callback)
		}
	}
	return out
}

func without(records []Record, cb *clock.Callback) []Record {
	kept := records[:0]
	for _, r := range records {
		if r.Callback != cb {
			kept = append(kept, r)
		}
	}
	clear(records[len(kept):])
	return kept
}
