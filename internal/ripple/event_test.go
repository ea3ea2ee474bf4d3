package ripple

import "testing"

func TestMapperMap(t *testing.T) {
	m := Mapper{Width: 128, Height: 64, Cols: 8, Rows: 4}
	tests := []struct {
		col, row uint8
		x, y     uint8
	}{
		{0, 0, 0, 0},
		{1, 1, 16, 16},
		{7, 3, 112, 48},
		{20, 9, 112, 48},
	}
	for _, tt := range tests {
		x, y := m.Map(tt.col, tt.row)
		if x != tt.x || y != tt.y {
			t.Errorf("Map(%d, %d) = (%d, %d), want (%d, %d)", tt.col, tt.row, x, y, tt.x, tt.y)
		}
	}
}

func TestMapperDegenerate(t *testing.T) {
	var m Mapper
	if x, y := m.Map(3, 3); x != 0 || y != 0 {
		t.Errorf("zero Mapper.Map = (%d, %d), want (0, 0)", x, y)
	}

	// more columns than pixels collapses onto column 0
	m = Mapper{Width: 4, Height: 4, Cols: 8, Rows: 2}
	if x, y := m.Map(5, 1); x != 0 || y != 2 {
		t.Errorf("Map = (%d, %d), want (0, 2)", x, y)
	}
}
