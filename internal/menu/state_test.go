package menu

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEvent struct {
	prevented bool
	stopped   bool
}

func (e *fakeEvent) PreventDefault()  { e.prevented = true }
func (e *fakeEvent) StopPropagation() { e.stopped = true }

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time { return c.now }

func (c *clock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestStateOpenConsumesEvent(t *testing.T) {
	reg := NewRegistry()
	s := NewState[testRow](reg)
	ev := &fakeEvent{}
	d := ForRow(testRow{key: "a"}, nil, Point{X: 10, Y: 20})

	s.Open(ev, d, Build(d, Callbacks[testRow]{}))

	require.True(t, s.IsOpen())
	assert.True(t, ev.prevented)
	assert.True(t, ev.stopped)
	got, ok := s.Descriptor()
	require.True(t, ok)
	assert.Equal(t, Point{X: 10, Y: 20}, got.Position)
	assert.Len(t, s.Items(), 6)
	assert.Equal(t, 2, reg.Len())
}

func TestStateEscapeCloses(t *testing.T) {
	reg := NewRegistry()
	s := NewState[testRow](reg)
	d := ForTable[testRow](nil, Point{})
	s.Open(&fakeEvent{}, d, Build(d, Callbacks[testRow]{}))

	require.True(t, reg.Fire(ListenEscape))

	assert.False(t, s.IsOpen())
	assert.Empty(t, s.Items())
	_, ok := s.Descriptor()
	assert.False(t, ok)
	assert.Zero(t, reg.Len())
}

func TestStateOutsidePointerCloses(t *testing.T) {
	reg := NewRegistry()
	s := NewState[testRow](reg)
	d := ForColumn[testRow]("id", nil, Point{})
	s.Open(&fakeEvent{}, d, Build(d, Callbacks[testRow]{}))

	reg.Fire(ListenOutsidePointer)

	assert.False(t, s.IsOpen())
	assert.Zero(t, reg.Len())
}

func TestStateReplaceKeepsListenersBounded(t *testing.T) {
	reg := NewRegistry()
	s := NewState[testRow](reg)
	row := ForRow(testRow{key: "a"}, nil, Point{})
	col := ForColumn[testRow]("status", nil, Point{})

	s.Open(&fakeEvent{}, row, Build(row, Callbacks[testRow]{}))
	s.Open(&fakeEvent{}, col, Build(col, Callbacks[testRow]{}))
	s.Open(&fakeEvent{}, row, Build(row, Callbacks[testRow]{}))

	assert.Equal(t, 1, reg.Count(ListenEscape))
	assert.Equal(t, 1, reg.Count(ListenOutsidePointer))
	got, _ := s.Descriptor()
	assert.Equal(t, TargetRow, got.Kind())
}

func TestStateCloseIsIdempotent(t *testing.T) {
	reg := NewRegistry()
	s := NewState[testRow](reg)
	s.Close()
	assert.False(t, s.IsOpen())

	d := ForTable[testRow](nil, Point{})
	s.Open(nil, d, nil)
	s.Close()
	s.Close()
	assert.False(t, s.IsOpen())
	assert.Zero(t, reg.Len())
}

func TestStateExecuteRecordsAndSurvivesFailures(t *testing.T) {
	c := &clock{now: time.Date(2024, 2, 15, 9, 0, 0, 0, time.UTC)}
	s := NewState[testRow](NewRegistry(), WithClock(c.Now))
	d := ForTable[testRow](nil, Point{})
	s.Open(&fakeEvent{}, d, nil)

	s.Execute(func() error { return errors.New("boom") }, "refresh-table")
	last, ok := s.LastAction()
	require.True(t, ok)
	assert.Equal(t, "refresh-table", last.Data)
	assert.EqualError(t, last.Err, "boom")
	assert.Equal(t, c.now, last.Timestamp)
	assert.True(t, s.IsOpen())

	s.Execute(func() error { panic("bad") }, "save-view")
	last, _ = s.LastAction()
	assert.Equal(t, "save-view", last.Data)
	require.Error(t, last.Err)
	assert.True(t, s.IsOpen())

	ran := false
	s.Execute(func() error { ran = true; return nil }, "edit-row")
	last, _ = s.LastAction()
	assert.True(t, ran)
	assert.NoError(t, last.Err)
}

func TestStateUndoWindow(t *testing.T) {
	c := &clock{now: time.Date(2024, 2, 15, 9, 0, 0, 0, time.UTC)}
	s := NewState[testRow](nil, WithClock(c.Now))

	assert.False(t, s.Undo())
	assert.False(t, s.CanUndo())

	s.Execute(noop, "duplicate-row")
	c.Advance(29 * time.Second)
	assert.True(t, s.CanUndo())
	assert.True(t, s.Undo())

	c.Advance(2 * time.Second)
	assert.False(t, s.CanUndo())
	assert.False(t, s.Undo())
}

func TestStateDispose(t *testing.T) {
	reg := NewRegistry()
	s := NewState[testRow](reg)
	d := ForTable[testRow](nil, Point{})
	s.Open(&fakeEvent{}, d, nil)

	s.Dispose()

	assert.False(t, s.IsOpen())
	assert.Zero(t, reg.Len())
	assert.False(t, reg.Fire(ListenEscape))
}

func TestRegistryRemoveIsSafeTwice(t *testing.T) {
	reg := NewRegistry()
	calls := 0
	remove := reg.Listen(ListenEscape, func() { calls++ })
	reg.Listen(ListenEscape, func() { calls++ })

	remove()
	remove()
	reg.Fire(ListenEscape)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, reg.Len())
	reg.Clear()
	assert.Zero(t, reg.Len())
}
