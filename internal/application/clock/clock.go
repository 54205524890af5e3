// Package clock is the live timing mechanism ticked by the host. It fires
// per-frame callbacks on every tick and interval callbacks when they are due.
package clock

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInterval is returned for intervals that are not positive and
// finite.
var ErrInvalidInterval = errors.New("clock: interval must be positive")

// ValidInterval reports whether interval is positive and finite.
func ValidInterval(interval float64) bool {
	return interval > 0 && !math.IsInf(interval, 1)
}

// Func is the body of a scheduled callback. dt is the time in seconds since
// the callback last ran (since it was scheduled, for the first call).
type Func func(dt float64, args Args)

// Callback is a schedulable function with pointer identity, so the same
// callback can be registered, compared and removed even though Go funcs are
// not comparable.
type Callback struct {
	Name string
	fn   Func
}

// NewCallback wraps fn. Each call returns a distinct identity.
func NewCallback(name string, fn Func) *Callback {
	return &Callback{Name: name, fn: fn}
}

// Call invokes the callback directly.
func (c *Callback) Call(dt float64, args Args) {
	if c.fn != nil {
		c.fn(dt, args)
	}
}

func (c *Callback) String() string {
	if c.Name == "" {
		return fmt.Sprintf("callback(%p)", c)
	}
	return c.Name
}

// Args carries the extra arguments given at registration time.
type Args struct {
	Values []any
	Named  map[string]any
}

// NewArgs builds positional arguments.
func NewArgs(values ...any) Args {
	return Args{Values: values}
}

// With returns a copy of a with name set to v.
func (a Args) With(name string, v any) Args {
	named := make(map[string]any, len(a.Named)+1)
	for k, old := range a.Named {
		named[k] = old
	}
	named[name] = v
	return Args{Values: a.Values, Named: named}
}

// Get returns a named argument.
func (a Args) Get(name string) (any, bool) {
	v, ok := a.Named[name]
	return v, ok
}

// Entry is one live registration.
type Entry struct {
	Callback *Callback
	// Interval is zero for per-frame entries.
	Interval float64
	Args     Args

	next float64
	last float64
}

// Clock holds live entries and the running time.
type Clock struct {
	now     float64
	entries []*Entry
}

// New creates an empty clock at time zero.
func New() *Clock {
	return &Clock{}
}

// Now returns the accumulated time in seconds.
func (c *Clock) Now() float64 {
	return c.now
}

// Schedule registers cb to run on every tick.
func (c *Clock) Schedule(cb *Callback, args Args) {
	c.entries = append(c.entries, &Entry{Callback: cb, Args: args, last: c.now})
}

// ScheduleInterval registers cb to run every interval seconds.
func (c *Clock) ScheduleInterval(cb *Callback, interval float64, args Args) error {
	if !ValidInterval(interval) {
		return fmt.Errorf("%w: %v", ErrInvalidInterval, interval)
	}
	c.entries = append(c.entries, &Entry{
		Callback: cb,
		Interval: interval,
		Args:     args,
		next:     c.now + interval,
		last:     c.now,
	})
	return nil
}

// Unschedule removes every entry for cb. Unknown callbacks are ignored.
func (c *Clock) Unschedule(cb *Callback) {
	kept := c.entries[:0]
	for _, e := range c.entries {
		if e.Callback == cb {
			e.Callback = nil
			continue
		}
		kept = append(kept, e)
	}
	clear(c.entries[len(kept):])
	c.entries = kept
}

// Len returns the number of live entries.
func (c *Clock) Len() int {
	return len(c.entries)
}

// Active returns a copy of the live entries in registration order.
func (c *Clock) Active() []Entry {
	out := make([]Entry, len(c.entries))
	for i, e := range c.entries {
		out[i] = *e
	}
	return out
}

// Tick advances time by dt and fires due callbacks in registration order.
// Callbacks may schedule or unschedule during the tick; new entries first
// run on the next tick and removed entries do not run again.
func (c *Clock) Tick(dt float64) {
	if dt < 0 {
		dt = 0
	}
	c.now += dt

	snapshot := make([]*Entry, len(c.entries))
	copy(snapshot, c.entries)

	for _, e := range snapshot {
		if e.Callback == nil {
			continue
		}
		if e.Interval == 0 {
			elapsed := c.now - e.last
			e.last = c.now
			e.Callback.Call(elapsed, e.Args)
			continue
		}
		if c.now < e.next {
			continue
		}
		elapsed := c.now - e.last
		e.last = c.now
		e.next += e.Interval
		if e.next <= c.now {
			// Fell more than one interval behind; skip the missed calls.
			e.next = c.now + e.Interval
		}
		e.Callback.Call(elapsed, e.Args)
	}
}
