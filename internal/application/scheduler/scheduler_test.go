package scheduler

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/framekit/internal/application/clock"
)

// fakeTimer records the live registrations without running anything.
type fakeTimer struct {
	live        []Record
	unscheduled []*clock.Callback
	failNext    error
}

func (f *fakeTimer) Schedule(cb *clock.Callback, args clock.Args) {
	f.live = append(f.live, Record{Callback: cb, Args: args})
}

func (f *fakeTimer) ScheduleInterval(cb *clock.Callback, interval float64, args clock.Args) error {
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return err
	}
	f.live = append(f.live, Record{Callback: cb, Interval: interval, Args: args})
	return nil
}

func (f *fakeTimer) Unschedule(cb *clock.Callback) {
	f.unscheduled = append(f.unscheduled, cb)
	kept := f.live[:0]
	for _, r := range f.live {
		if r.Callback != cb {
			kept = append(kept, r)
		}
	}
	f.live = kept
}

func noop(name string) *clock.Callback {
	return clock.NewCallback(name, func(float64, clock.Args) {})
}

func TestSchedule_AttachesAndRecords(t *testing.T) {
	timer := &fakeTimer{}
	s := New(timer)
	cb := noop("cb")

	s.Schedule(cb, clock.NewArgs("a"))
	require.NoError(t, s.ScheduleInterval(cb, 0.5, clock.Args{}))

	assert.Len(t, timer.live, 2)
	assert.Len(t, s.Frames(), 1)
	assert.Len(t, s.Intervals(), 1)
	assert.Equal(t, 2, s.Len())
}

func TestScheduleInterval_InvalidIntervalRecordsNothing(t *testing.T) {
	tests := []struct {
		name     string
		interval float64
	}{
		{"zero", 0},
		{"negative", -0.5},
		{"NaN", math.NaN()},
		{"positive infinity", math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timer := &fakeTimer{}
			s := New(timer)

			err := s.ScheduleInterval(noop("bad"), tt.interval, clock.Args{})

			assert.ErrorIs(t, err, clock.ErrInvalidInterval)
			assert.Empty(t, timer.live)
			assert.Equal(t, 0, s.Len())
		})
	}
}

func TestScheduleInterval_NaNNeverReachesLiveClock(t *testing.T) {
	c := clock.New()
	s := New(c)
	fired := 0
	cb := clock.NewCallback("nan", func(float64, clock.Args) { fired++ })

	err := s.ScheduleInterval(cb, math.NaN(), clock.Args{})
	for range 5 {
		c.Tick(0.001)
	}

	assert.ErrorIs(t, err, clock.ErrInvalidInterval)
	assert.Equal(t, 0, fired)
}

func TestScheduleInterval_TimerErrorRecordsNothing(t *testing.T) {
	boom := errors.New("boom")
	timer := &fakeTimer{failNext: boom}
	s := New(timer)

	err := s.ScheduleInterval(noop("cb"), 1, clock.Args{})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, s.Len())
}

func TestScheduleThenUnschedule_LeavesEverythingEmpty(t *testing.T) {
	timer := &fakeTimer{}
	s := New(timer)
	f := noop("f")

	s.Schedule(f, clock.NewArgs(1))
	s.Unschedule(f)

	assert.Empty(t, s.Frames())
	assert.Empty(t, s.Intervals())
	assert.Empty(t, timer.live)
	assert.Equal(t, []*clock.Callback{f}, timer.unscheduled)
}

func TestUnschedule_RemovesAllMatchingRecords(t *testing.T) {
	timer := &fakeTimer{}
	s := New(timer)
	f, g := noop("f"), noop("g")

	s.Schedule(f, clock.NewArgs(1))
	s.Schedule(g, clock.Args{})
	s.Schedule(f, clock.NewArgs(2))
	require.NoError(t, s.ScheduleInterval(f, 1, clock.Args{}))

	s.Unschedule(f)

	require.Len(t, s.Frames(), 1)
	assert.Same(t, g, s.Frames()[0].Callback)
	assert.Empty(t, s.Intervals())
}

func TestUnschedule_UnknownAndTwiceAreNoops(t *testing.T) {
	timer := &fakeTimer{}
	s := New(timer)
	f := noop("f")
	s.Schedule(f, clock.Args{})

	assert.NotPanics(t, func() {
		s.Unschedule(noop("never"))
		s.Unschedule(f)
		s.Unschedule(f)
	})
	assert.Equal(t, 0, s.Len())
}

func TestPause_DetachesEachCallbackOnce(t *testing.T) {
	timer := &fakeTimer{}
	s := New(timer)
	f, g := noop("f"), noop("g")
	s.Schedule(f, clock.NewArgs(1))
	s.Schedule(f, clock.NewArgs(2))
	require.NoError(t, s.ScheduleInterval(g, 1, clock.Args{}))

	s.Pause()
	s.Pause()

	assert.True(t, s.Paused())
	assert.Empty(t, timer.live)
	assert.Equal(t, []*clock.Callback{g, f}, timer.unscheduled)
	assert.Equal(t, 3, s.Len(), "registries survive a pause")
}

func TestPauseResume_RestoresExactRegistrations(t *testing.T) {
	timer := &fakeTimer{}
	s := New(timer)
	f, g := noop("f"), noop("g")

	s.Schedule(f, clock.NewArgs(1))
	s.Schedule(f, clock.NewArgs(2))
	require.NoError(t, s.ScheduleInterval(g, 0.5, clock.NewArgs("x")))
	require.NoError(t, s.ScheduleInterval(g, 2, clock.Args{}))
	before := append([]Record(nil), timer.live...)

	s.Pause()
	require.NoError(t, s.Resume())

	assert.False(t, s.Paused())
	assert.ElementsMatch(t, before, timer.live)
}

func TestResume_WhenRunningDoesNotDuplicate(t *testing.T) {
	timer := &fakeTimer{}
	s := New(timer)
	s.Schedule(noop("f"), clock.Args{})

	require.NoError(t, s.Resume())
	require.NoError(t, s.Resume())

	assert.Len(t, timer.live, 1)
}

func TestSchedule_WhilePausedGoesLiveOnResume(t *testing.T) {
	timer := &fakeTimer{}
	s := New(timer)
	f := noop("f")

	s.Pause()
	s.Schedule(f, clock.NewArgs(7))
	assert.Empty(t, timer.live)

	require.NoError(t, s.Resume())
	require.Len(t, timer.live, 1)
	assert.Equal(t, []any{7}, timer.live[0].Args.Values)
}

func TestScenarioC_WithLiveClock(t *testing.T) {
	c := clock.New()
	s := New(c)
	var frameArgs []clock.Args
	var intervalCalls int
	cb1 := clock.NewCallback("cb1", func(_ float64, a clock.Args) { frameArgs = append(frameArgs, a) })
	cb2 := clock.NewCallback("cb2", func(float64, clock.Args) { intervalCalls++ })

	s.Schedule(cb1, clock.Args{}.With("x", 1))
	require.NoError(t, s.ScheduleInterval(cb2, 0.5, clock.Args{}))

	s.Pause()
	assert.Equal(t, 0, c.Len())
	c.Tick(1)
	assert.Empty(t, frameArgs)
	assert.Zero(t, intervalCalls)

	require.NoError(t, s.Resume())
	active := c.Active()
	require.Len(t, active, 2)

	byName := map[string]clock.Entry{}
	for _, e := range active {
		byName[e.Callback.Name] = e
	}
	assert.Equal(t, 0.0, byName["cb1"].Interval)
	x, ok := byName["cb1"].Args.Get("x")
	assert.True(t, ok)
	assert.Equal(t, 1, x)
	assert.Equal(t, 0.5, byName["cb2"].Interval)

	c.Tick(0.5)
	assert.Len(t, frameArgs, 1)
	assert.Equal(t, 1, intervalCalls)
}
