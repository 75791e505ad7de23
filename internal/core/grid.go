package core

import "fmt"

// Axis selects the direction of a toroidal shift.
type Axis int

const (
	// AxisX shifts along a row, wrapping on the grid width.
	AxisX Axis = iota
	// AxisY shifts along a column, wrapping on the grid height.
	AxisY
)

// Grid stores a 2D field of float32 cell values in row-major order with
// toroidal topology: indices wrap, so every cell has four orthogonal
// neighbors and there are no edge cells.
type Grid struct {
	w, h int
	data []float32
}

// NewGrid allocates a grid with the given dimensions. Dimensions below 2 in
// either axis make wraparound ill-defined and are rejected.
func NewGrid(w, h int) (*Grid, error) {
	if w < 2 || h < 2 {
		return nil, fmt.Errorf("grid dimensions must be at least 2x2, got %dx%d", w, h)
	}
	return &Grid{w: w, h: h, data: make([]float32, w*h)}, nil
}

// W returns the grid width.
func (g *Grid) W() int { return g.w }

// H returns the grid height.
func (g *Grid) H() int { return g.h }

// Values exposes the backing slice so callers can read/write values directly.
func (g *Grid) Values() []float32 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// At reads the value at (x, y) without wrapping.
func (g *Grid) At(x, y int) float32 { return g.data[y*g.w+x] }

// Set writes the value at (x, y) without wrapping.
func (g *Grid) Set(x, y int, v float32) { g.data[y*g.w+x] = v }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.w + g.w) % g.w
	y = (y%g.h + g.h) % g.h
	return x, y
}

// Fill sets every cell to v.
func (g *Grid) Fill(v float32) {
	for i := range g.data {
		g.data[i] = v
	}
}

// FillRect sets every cell inside the w*h rectangle anchored at (x, y),
// wrapping coordinates that fall outside the grid.
func (g *Grid) FillRect(x, y, w, h int, v float32) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			cx, cy := g.Wrap(x+dx, y+dy)
			g.data[cy*g.w+cx] = v
		}
	}
}

// CopyFrom overwrites this grid's values with those of src. The grids must
// share dimensions.
func (g *Grid) CopyFrom(src *Grid) {
	copy(g.data, src.data)
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	dup := &Grid{w: g.w, h: g.h, data: make([]float32, len(g.data))}
	copy(dup.data, g.data)
	return dup
}

// Shift returns a new grid where every cell holds the value offset cells away
// along the given axis, wrapping toroidally. The offset may be negative; its
// magnitude must stay below the grid dimension along that axis (a single
// wrap, not multiple).
func (g *Grid) Shift(offset int, axis Axis) *Grid {
	out := &Grid{w: g.w, h: g.h, data: make([]float32, len(g.data))}
	switch axis {
	case AxisX:
		for y := 0; y < g.h; y++ {
			row := y * g.w
			for x := 0; x < g.w; x++ {
				sx := (x + offset + g.w) % g.w
				out.data[row+x] = g.data[row+sx]
			}
		}
	case AxisY:
		for y := 0; y < g.h; y++ {
			sy := (y + offset + g.h) % g.h
			copy(out.data[y*g.w:(y+1)*g.w], g.data[sy*g.w:(sy+1)*g.w])
		}
	}
	return out
}

// Laplacian writes the five-point discrete Laplacian of src into dst, scaled
// by 1/dx². Neighbor values wrap toroidally. Every cell is derived from src
// alone, so dst must not alias src. Equivalent to summing the four unit
// shifts of src minus four times src, without materializing the shifts.
func Laplacian(dst, src *Grid, dx float32) {
	w, h := src.w, src.h
	inv := 1 / (dx * dx)
	for y := 0; y < h; y++ {
		up := ((y-1+h)%h) * w
		down := ((y+1)%h) * w
		row := y * w
		for x := 0; x < w; x++ {
			left := (x - 1 + w) % w
			right := (x + 1) % w
			sum := src.data[row+left] + src.data[row+right] + src.data[up+x] + src.data[down+x] - 4*src.data[row+x]
			dst.data[row+x] = sum * inv
		}
	}
}
