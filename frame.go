package coverflow

import "image"

// Cover is the content a Frame holds. *ebiten.Image satisfies it.
type Cover interface {
	Bounds() image.Rectangle
}

// LayoutSizer is implemented by covers that carry their own layout size. A
// frame adopts that size when the cover is set.
type LayoutSizer interface {
	LayoutSize() (w, h float64)
}

// ItemSource supplies the covers of a carousel. CoverAt may reuse recycled,
// the cover the frame showed before, or return a fresh one. recycled is nil
// for new frames.
type ItemSource interface {
	Count() int
	CoverAt(index int, recycled Cover) Cover
}

// RecycledPool hands out frames that left the screen.
type RecycledPool interface {
	Acquire() (*Frame, bool)
	Release(f *Frame)
}

// frameInset is the margin in pixels between a frame's edge and its cover.
const frameInset = 1

// Frame wraps the cover of one carousel item. Frames are recycled: when an
// item scrolls out of view its frame goes back to the pool and is later
// refilled with another item's cover.
type Frame struct {
	// Index is the item currently shown, or -1 while pooled.
	Index int
	// Width and Height are the layout size of the frame.
	Width, Height float64

	// Pose written by Pose.Apply each frame.
	RotationY    float64 // degrees about the vertical axis
	ScaleX       float64
	ScaleY       float64
	TranslationX float64

	cover Cover
	rank  int
}

// NewFrame creates a frame around c.
func NewFrame(c Cover) *Frame {
	f := &Frame{Index: -1}
	f.resetPose()
	f.SetCover(c)
	return f
}

// Cover returns the content of the frame.
func (f *Frame) Cover() Cover {
	return f.cover
}

// SetCover replaces the content of the frame. If the new cover carries a
// layout size the frame takes it over.
func (f *Frame) SetCover(c Cover) {
	f.cover = c
	if s, ok := c.(LayoutSizer); ok {
		w, h := s.LayoutSize()
		if w > 0 && h > 0 {
			f.Width, f.Height = w, h
		}
	}
}

// ContentRect returns the area of the frame, in frame-local pixels, that the
// cover is drawn into.
func (f *Frame) ContentRect() Rect {
	w := nonNegative(f.Width - 2*frameInset)
	h := nonNegative(f.Height - 2*frameInset)
	return Rect{X: frameInset, Y: frameInset, Width: w, Height: h}
}

func (f *Frame) resetPose() {
	f.RotationY = 0
	f.ScaleX = 1
	f.ScaleY = 1
	f.TranslationX = 0
	f.rank = 0
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// FramePool is a LIFO free list of frames. After warmup, Acquire and Release
// do not allocate.
type FramePool struct {
	free    []*Frame
	created int
}

// NewFramePool creates an empty pool.
func NewFramePool() *FramePool {
	return &FramePool{}
}

// Acquire pops the most recently released frame.
func (p *FramePool) Acquire() (*Frame, bool) {
	n := len(p.free)
	if n == 0 {
		return nil, false
	}
	f := p.free[n-1]
	p.free[n-1] = nil
	p.free = p.free[:n-1]
	return f, true
}

// Release returns a frame to the pool. The cover is kept so the item source
// can reuse it.
func (p *FramePool) Release(f *Frame) {
	if f == nil {
		return
	}
	f.Index = -1
	f.resetPose()
	p.free = append(p.free, f)
}

// Len returns the number of pooled frames.
func (p *FramePool) Len() int {
	return len(p.free)
}

// Created returns how many frames were built because the pool was empty.
func (p *FramePool) Created() int {
	return p.created
}

// obtainFrame returns a frame showing item index, reusing a pooled frame and
// its cover when one is available.
func obtainFrame(src ItemSource, pool RecycledPool, index int) *Frame {
	if f, ok := pool.Acquire(); ok {
		f.SetCover(src.CoverAt(index, f.Cover()))
		f.Index = index
		return f
	}
	if fp, ok := pool.(*FramePool); ok {
		fp.created++
	}
	f := NewFrame(src.CoverAt(index, nil))
	f.Index = index
	return f
}
