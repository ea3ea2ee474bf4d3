package ripple

// KeyEvent is a key-matrix transition.
type KeyEvent struct {
	Col, Row uint8
	Pressed  bool
}

// Mapper spreads matrix positions evenly over the surface.
type Mapper struct {
	Width, Height int
	Cols, Rows    int
}

// Map converts a matrix position to a pixel coordinate. Out-of-range
// positions are clamped to the matrix and the result to the surface.
func (m Mapper) Map(col, row uint8) (x, y uint8) {
	return axis(int(col), m.Cols, m.Width), axis(int(row), m.Rows, m.Height)
}

func axis(i, cells, size int) uint8 {
	if cells <= 0 || size <= 0 {
		return 0
	}
	if i >= cells {
		i = cells - 1
	}
	v := i * (size / cells)
	if v >= size {
		v = size - 1
	}
	if v > 255 {
		v = 255
	}
	return uint8(v)
}
