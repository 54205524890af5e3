// Package render provides the draw batch owned by the game loop.
//
// Scenes and hooks do not draw directly; they queue DrawFuncs into the Batch
// during the draw phase. Each queued item captures the transform that was
// current when it was added, so camera push/pop brackets apply even though
// the host only rasterizes the batch when the frame is presented.
package render

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// Group orders items within a frame. Lower groups draw first.
type Group int

const (
	GroupBase   Group = 2
	GroupFringe Group = 4
	GroupObject Group = 8
	GroupText   Group = 16
)

// DrawFunc rasterizes one item. geo maps the item's local coordinates to dst.
type DrawFunc func(dst *ebiten.Image, geo ebiten.GeoM)

type item struct {
	group Group
	geo   ebiten.GeoM
	draw  DrawFunc
}

// Batch collects draw items for one frame and owns the transform stack.
type Batch struct {
	items   []item
	current ebiten.GeoM
	stack   []ebiten.GeoM
}

// NewBatch creates an empty batch with an identity transform.
func NewBatch() *Batch {
	return &Batch{
		items: make([]item, 0, 256),
	}
}

// Add queues fn in group g under the current transform.
func (b *Batch) Add(g Group, fn DrawFunc) {
	if fn == nil {
		return
	}
	b.items = append(b.items, item{group: g, geo: b.current, draw: fn})
}

// Len returns the number of queued items.
func (b *Batch) Len() int {
	return len(b.items)
}

// PushTransform saves the current transform.
func (b *Batch) PushTransform() {
	b.stack = append(b.stack, b.current)
}

// PopTransform restores the most recently pushed transform. Popping an empty
// stack resets to identity.
func (b *Batch) PopTransform() {
	if len(b.stack) == 0 {
		b.current.Reset()
		return
	}
	b.current = b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
}

// MultTransform applies m before the current transform, so coordinates given
// to later items go through m first.
func (b *Batch) MultTransform(m ebiten.GeoM) {
	m.Concat(b.current)
	b.current = m
}

// Transform returns the current transform.
func (b *Batch) Transform() ebiten.GeoM {
	return b.current
}

// Depth returns how many transforms are pushed.
func (b *Batch) Depth() int {
	return len(b.stack)
}

// Flush draws every queued item onto dst, by group then insertion order,
// with base applied after each item's own transform. The batch is emptied
// and its transform stack reset.
func (b *Batch) Flush(dst *ebiten.Image, base ebiten.GeoM) {
	b.sort()
	for i := range b.items {
		it := &b.items[i]
		geo := it.geo
		geo.Concat(base)
		it.draw(dst, geo)
	}
	b.Discard()
}

// Discard drops queued items without drawing them.
func (b *Batch) Discard() {
	clear(b.items)
	b.items = b.items[:0]
	b.stack = b.stack[:0]
	b.current.Reset()
}

func (b *Batch) sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		return b.items[i].group < b.items[j].group
	})
}
