package ripple

// Surface is the write-only monochrome display the engine draws on.
// Implementations must ignore coordinates outside their bounds.
type Surface interface {
	Plot(x, y uint8, on bool)
	Clear()
}

// Rasterizer draws dithered circles on a Surface of fixed size.
//
// A Rasterizer holds no drawing state between calls and never allocates.
type Rasterizer struct {
	surface Surface
	random  Random
	width   int
	height  int
}

// NewRasterizer binds a rasterizer to a surface of the given size.
func NewRasterizer(s Surface, r Random, width, height int) *Rasterizer {
	return &Rasterizer{surface: s, random: r, width: width, height: height}
}

// DrawCircle plots a midpoint circle. Each group of eight mirrored points is
// skipped with probability dapple/100. With on false the same geometry is
// erased without consulting the random source.
func (d *Rasterizer) DrawCircle(xc, yc, radius, dapple int, on bool) {
	if radius < 0 {
		return
	}

	x, y := 0, radius
	e := 3 - 2*radius

	for y >= x {
		if !on || int(d.random.Percent()) >= dapple {
			d.octants(xc, yc, x, y, on)
		}
		x++

		if e > 0 {
			y--
			e += 4*(x-y) + 10
		} else {
			e += 4*x + 6
		}
	}
}

func (d *Rasterizer) octants(xc, yc, x, y int, on bool) {
	d.pixel(xc+x, yc+y, on)
	d.pixel(xc-x, yc+y, on)
	d.pixel(xc+x, yc-y, on)
	d.pixel(xc-x, yc-y, on)
	d.pixel(xc+y, yc+x, on)
	d.pixel(xc-y, yc+x, on)
	d.pixel(xc+y, yc-x, on)
	d.pixel(xc-y, yc-x, on)
}

func (d *Rasterizer) pixel(x, y int, on bool) {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return
	}
	d.surface.Plot(uint8(x), uint8(y), on)
}

// Clear blanks the whole surface.
func (d *Rasterizer) Clear() {
	d.surface.Clear()
}

// Point is an integer offset from a circle center.
type Point struct {
	X, Y int
}

// Points returns the first-octant offsets the midpoint traversal visits for
// radius, from (0, radius) until x passes y.
func Points(radius int) []Point {
	if radius < 0 {
		return nil
	}
	var pts []Point
	x, y := 0, radius
	e := 3 - 2*radius
	for y >= x {
		pts = append(pts, Point{x, y})
		x++
		if e > 0 {
			y--
			e += 4*(x-y) + 10
		} else {
			e += 4*x + 6
		}
	}
	return pts
}
