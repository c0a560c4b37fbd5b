package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueDeliversOnceInOrder(t *testing.T) {
	q := NewQueue()
	q.Push(SelectEvent{Kind: SelectStart})
	q.Push(SelectEvent{Kind: SelectEnd})
	q.Push(SelectEvent{Kind: Select})

	var got []SelectKind
	n := q.Drain(func(ev SelectEvent) { got = append(got, ev.Kind) })
	assert.Equal(t, 3, n)
	assert.Equal(t, []SelectKind{SelectStart, SelectEnd, Select}, got)

	assert.Zero(t, q.Drain(func(SelectEvent) { t.Fatalf("event delivered twice") }))
}

func TestQueueDropsWhenFull(t *testing.T) {
	q := NewQueue()
	for i := 0; i < QueueCapacity; i++ {
		assert.True(t, q.Push(SelectEvent{Kind: Select}))
	}
	assert.False(t, q.Push(SelectEvent{Kind: Select}))
	assert.Equal(t, QueueCapacity, q.Drain(func(SelectEvent) {}))
}

func TestQueueEventsPushedDuringDrainWait(t *testing.T) {
	q := NewQueue()
	q.Push(SelectEvent{Kind: Select})
	n := q.Drain(func(SelectEvent) { q.Push(SelectEvent{Kind: SelectStart}) })
	assert.Equal(t, 1, n)

	var next []SelectKind
	q.Drain(func(ev SelectEvent) { next = append(next, ev.Kind) })
	assert.Equal(t, []SelectKind{SelectStart}, next)
}

func TestSelectKindString(t *testing.T) {
	assert.Equal(t, "select", Select.String())
	assert.Equal(t, "unknown", SelectKind(0).String())
}
