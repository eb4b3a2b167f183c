package draw

import (
	"image"
	"iter"
)

// Point is a single point.
func Point(p image.Point) iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		yield(p)
	}
}

// Line between two points, both ends included.
func Line(a, b image.Point) iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		bresenham(a, b, yield)
	}
}

// HorizontalLine between (x,y) and (x+w-1,y).
func HorizontalLine(x, y, w int) iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		for i := 0; i < w; i++ {
			if !yield(image.Pt(x+i, y)) {
				return
			}
		}
	}
}

// VerticalLine between (x,y) and (x,y+h-1).
func VerticalLine(x, y, h int) iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		for i := 0; i < h; i++ {
			if !yield(image.Pt(x, y+i)) {
				return
			}
		}
	}
}

// Rectangle outline. Every point is produced once.
func Rectangle(rect image.Rectangle) iter.Seq[image.Point] {
	rect = rect.Canon()
	return func(yield func(image.Point) bool) {
		if rect.Empty() {
			return
		}
		var (
			x0, y0 = rect.Min.X, rect.Min.Y
			x1, y1 = rect.Max.X - 1, rect.Max.Y - 1
		)
		for x := x0; x <= x1; x++ {
			if !yield(image.Pt(x, y0)) {
				return
			}
		}
		for y := y0 + 1; y < y1; y++ {
			if !yield(image.Pt(x0, y)) {
				return
			}
			if x1 != x0 && !yield(image.Pt(x1, y)) {
				return
			}
		}
		if y1 == y0 {
			return
		}
		for x := x0; x <= x1; x++ {
			if !yield(image.Pt(x, y1)) {
				return
			}
		}
	}
}

// Box is a filled rectangle.
func Box(rect image.Rectangle) iter.Seq[image.Point] {
	rect = rect.Canon()
	return func(yield func(image.Point) bool) {
		for y := rect.Min.Y; y < rect.Max.Y; y++ {
			for x := rect.Min.X; x < rect.Max.X; x++ {
				if !yield(image.Pt(x, y)) {
					return
				}
			}
		}
	}
}

// Circle outline around center. Points on the octant boundaries may be produced more than once.
func Circle(center image.Point, radius int) iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		switch {
		case radius < 0:
			return
		case radius == 0:
			yield(center)
			return
		}
		arc(radius, func(x, y int) bool {
			return yield(image.Pt(center.X+x, center.Y+y)) &&
				yield(image.Pt(center.X-x, center.Y+y)) &&
				yield(image.Pt(center.X+x, center.Y-y)) &&
				yield(image.Pt(center.X-x, center.Y-y))
		})
	}
}

// RoundedRectangle outline with radius pixels rounded corners. The radius is limited so
// that opposite corners don't overlap.
func RoundedRectangle(rect image.Rectangle, radius int) iter.Seq[image.Point] {
	rect = rect.Canon()
	radius = cornerRadius(rect, radius)
	if radius <= 0 {
		return Rectangle(rect)
	}
	var (
		r  = radius
		x0 = rect.Min.X
		y0 = rect.Min.Y
		x1 = rect.Max.X - 1
		y1 = rect.Max.Y - 1
	)
	return func(yield func(image.Point) bool) {
		for _, edge := range []iter.Seq[image.Point]{
			HorizontalLine(x0+r, y0, rect.Dx()-2*r),
			HorizontalLine(x0+r, y1, rect.Dx()-2*r),
			VerticalLine(x0, y0+r, rect.Dy()-2*r),
			VerticalLine(x1, y0+r, rect.Dy()-2*r),
		} {
			for p := range edge {
				if !yield(p) {
					return
				}
			}
		}

		// Corner centers, clockwise from the top left.
		var (
			tl = image.Pt(x0+r, y0+r)
			tr = image.Pt(x1-r, y0+r)
			br = image.Pt(x1-r, y1-r)
			bl = image.Pt(x0+r, y1-r)
		)
		arc(r, func(x, y int) bool {
			return yield(image.Pt(tl.X-x, tl.Y-y)) &&
				yield(image.Pt(tr.X+x, tr.Y-y)) &&
				yield(image.Pt(br.X+x, br.Y+y)) &&
				yield(image.Pt(bl.X-x, bl.Y+y))
		})
	}
}

// RoundedBox is a filled rectangle with radius pixels rounded corners. It covers the
// [RoundedRectangle] outline of the same rect and radius, every point is produced once.
func RoundedBox(rect image.Rectangle, radius int) iter.Seq[image.Point] {
	rect = rect.Canon()
	radius = cornerRadius(rect, radius)
	if radius <= 0 {
		return Box(rect)
	}
	var (
		r  = radius
		x0 = rect.Min.X
		y0 = rect.Min.Y
		x1 = rect.Max.X - 1
		y1 = rect.Max.Y - 1
	)
	// Widest corner offset per row offset from the corner center.
	span := make([]int, r+1)
	arc(r, func(x, y int) bool {
		span[y] = max(span[y], x)
		return true
	})
	return func(yield func(image.Point) bool) {
		row := func(y, dx int) bool {
			for x := x0 + r - dx; x <= x1-r+dx; x++ {
				if !yield(image.Pt(x, y)) {
					return false
				}
			}
			return true
		}
		for dy := r; dy > 0; dy-- {
			if !row(y0+r-dy, span[dy]) {
				return
			}
		}
		for y := y0 + r; y <= y1-r; y++ {
			if !row(y, r) {
				return
			}
		}
		for dy := 1; dy <= r; dy++ {
			if !row(y1-r+dy, span[dy]) {
				return
			}
		}
	}
}

// cornerRadius limits radius so the corner centers of rect don't cross.
func cornerRadius(rect image.Rectangle, radius int) int {
	return min(radius, (min(rect.Dx(), rect.Dy())-1)/2)
}

// arc calls f with the offsets of one quadrant of a midpoint circle, both x and y are >= 0.
func arc(radius int, f func(x, y int) bool) {
	var (
		x = radius
		y = 0
		e = 1 - radius
	)
	for x >= y {
		if !f(x, y) || !f(y, x) {
			return
		}
		y++
		if e < 0 {
			e += 2*y + 1
		} else {
			x--
			e += 2*(y-x) + 1
		}
	}
}

func bresenham(a, b image.Point, yield func(image.Point) bool) {
	var (
		dx = abs(b.X - a.X)
		dy = -abs(b.Y - a.Y)
		sx = 1
		sy = 1
		e  = dx + dy
		p  = a
	)
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}
	for {
		if !yield(p) || p == b {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			p.X += sx
		}
		if e2 <= dx {
			e += dx
			p.Y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
