package coverflow

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// cardQuad is a frame's cover ready to be projected onto the screen.
type cardQuad struct {
	cx, cy float64 // screen position of the card center
	w, h   float64 // unscaled cover size
	rotY   float64 // rotation about the vertical axis, degrees
	sx, sy float64
	camera float64 // eye distance; <= 0 draws without perspective
	strips int
	src    image.Rectangle
	tint   Color
}

// project maps a card-local point (origin at the card center) to the screen.
// The card turns about its vertical axis; positive z points away from the
// viewer, so a negative rotation brings the right edge closer.
func (q *cardQuad) project(lx, ly float64) (x, y float64) {
	sin, cos := math.Sincos(degToRad(q.rotY))
	x0 := lx * q.sx
	xr := x0 * cos
	z := x0 * sin

	f := 1.0
	if q.camera > 0 {
		d := q.camera + z
		if d < 1 {
			d = 1
		}
		f = q.camera / d
	}
	return q.cx + xr*f, q.cy + ly*q.sy*f
}

// bounds returns the screen-space AABB of the projected card.
func (q *cardQuad) bounds() Rect {
	hw, hh := q.w/2, q.h/2
	x0, y0 := q.project(-hw, -hh)
	x1, y1 := q.project(hw, -hh)
	x2, y2 := q.project(hw, hh)
	x3, y3 := q.project(-hw, hh)

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// buildCardMesh writes the projected card into verts and inds, reusing their
// capacity. The card is split into q.strips vertical strips so the affine
// texture mapping of each triangle stays close to the perspective one.
//
// Vertex layout: column k has its top vertex at 2k and its bottom at 2k+1.
func buildCardMesh(q *cardQuad, verts []ebiten.Vertex, inds []uint16) ([]ebiten.Vertex, []uint16) {
	strips := q.strips
	if strips < 1 {
		strips = 1
	}
	verts = verts[:0]
	inds = inds[:0]

	ca := float32(q.tint.A)
	cr := float32(q.tint.R) * ca
	cg := float32(q.tint.G) * ca
	cb := float32(q.tint.B) * ca

	srcW := float64(q.src.Dx())
	hh := q.h / 2
	for k := 0; k <= strips; k++ {
		u := float64(k) / float64(strips)
		lx := (u - 0.5) * q.w
		tx, ty := q.project(lx, -hh)
		bx, by := q.project(lx, hh)
		srcX := float32(float64(q.src.Min.X) + u*srcW)
		verts = append(verts,
			ebiten.Vertex{
				DstX: float32(tx), DstY: float32(ty),
				SrcX: srcX, SrcY: float32(q.src.Min.Y),
				ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
			},
			ebiten.Vertex{
				DstX: float32(bx), DstY: float32(by),
				SrcX: srcX, SrcY: float32(q.src.Max.Y),
				ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
			},
		)
	}

	for k := 0; k < strips; k++ {
		tl := uint16(2 * k)
		bl := tl + 1
		tr := tl + 2
		br := tl + 3
		inds = append(inds, tl, bl, tr, tr, bl, br)
	}
	return verts, inds
}

// --- White pixel singleton (no sync.Once, the package is single-threaded) ---

var whitePixelImage *ebiten.Image

func whitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(ColorWhite.toRGBA())
	}
	return whitePixelImage
}

// coverImage returns the ebiten image behind a cover. Covers that are not
// images are drawn as a blank card.
func coverImage(c Cover) *ebiten.Image {
	switch v := c.(type) {
	case *ebiten.Image:
		return v
	case interface{ Image() *ebiten.Image }:
		if img := v.Image(); img != nil {
			return img
		}
	}
	return whitePixel()
}
