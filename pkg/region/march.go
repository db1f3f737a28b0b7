package region

import (
	"math"

	"github.com/lucentlab/lucent/pkg/colour"
	"github.com/lucentlab/lucent/pkg/contrast"
	"github.com/lucentlab/lucent/pkg/gamut"
)

// grid is the sampled contrast field. Vertex (i, j) sits at lightness l[i]
// and chroma c[i][j], per-row scaled to the gamut boundary so the lattice
// is a tent in the plane rather than a rectangle, and carries the contrast
// ratio against the reference in v[i][j].
type grid struct {
	rows, cols int
	l          []float64
	c          [][]float64
	v          [][]float64
	threshold  float64
}

func buildGrid(reference colour.Color, hue float64, threshold float64, opts Options) *grid {
	alpha := opts.Alpha
	if alpha == 0 {
		alpha = 1
	}
	clip := gamut.Options{
		Gamut:         opts.Gamut,
		Tolerance:     opts.Tolerance,
		MaxIterations: opts.MaxIterations,
		MaxChroma:     opts.MaxChroma,
		Alpha:         alpha,
	}

	g := &grid{
		rows:      opts.LightnessSteps,
		cols:      opts.ChromaSteps,
		l:         make([]float64, opts.LightnessSteps),
		c:         make([][]float64, opts.LightnessSteps),
		v:         make([][]float64, opts.LightnessSteps),
		threshold: threshold,
	}
	for i := 0; i < g.rows; i++ {
		l := float64(i) / float64(g.rows-1)
		rowMax := gamut.MaxChromaAt(l, hue, clip)
		g.l[i] = l
		g.c[i] = make([]float64, g.cols)
		g.v[i] = make([]float64, g.cols)
		for j := 0; j < g.cols; j++ {
			ch := rowMax * float64(j) / float64(g.cols-1)
			g.c[i][j] = ch
			g.v[i][j] = contrast.Ratio(colour.New(l, ch, hue, alpha), reference)
		}
	}
	return g
}

func (g *grid) pass(i, j int) bool { return g.v[i][j] >= g.threshold }

// segment is one straight boundary piece inside a single cell.
type segment struct {
	a, b Point
}

// march walks the cells in row-major order and emits a boundary segment for
// every corner disagreement, two for the saddle cases.
func (g *grid) march(interp Interp) []segment {
	var segs []segment
	for i := 0; i < g.rows-1; i++ {
		for j := 0; j < g.cols-1; j++ {
			segs = g.cell(segs, i, j, interp)
		}
	}
	return segs
}

// cell classifies the four corners of cell (i, j) into the standard sixteen
// marching-squares cases. Corner bits: 1=(i,j), 2=(i,j+1), 4=(i+1,j+1),
// 8=(i+1,j). The two saddle cases are split by the cell-centre average of
// the corner values.
func (g *grid) cell(segs []segment, i, j int, interp Interp) []segment {
	code := 0
	if g.pass(i, j) {
		code |= 1
	}
	if g.pass(i, j+1) {
		code |= 2
	}
	if g.pass(i+1, j+1) {
		code |= 4
	}
	if g.pass(i+1, j) {
		code |= 8
	}
	if code == 0 || code == 15 {
		return segs
	}

	// Crossings on the cell's edges, computed only where the endpoints
	// disagree: low and high run along the rows i and i+1, left and right
	// along the columns j and j+1.
	var low, high, left, right Point
	if (code&1 != 0) != (code&2 != 0) {
		low = g.crossingRow(i, j, interp)
	}
	if (code&2 != 0) != (code&4 != 0) {
		right = g.crossingColumn(i, j+1, interp)
	}
	if (code&8 != 0) != (code&4 != 0) {
		high = g.crossingRow(i+1, j, interp)
	}
	if (code&1 != 0) != (code&8 != 0) {
		left = g.crossingColumn(i, j, interp)
	}

	switch code {
	case 1, 14:
		segs = append(segs, segment{left, low})
	case 2, 13:
		segs = append(segs, segment{low, right})
	case 3, 12:
		segs = append(segs, segment{left, right})
	case 4, 11:
		segs = append(segs, segment{right, high})
	case 6, 9:
		segs = append(segs, segment{low, high})
	case 7, 8:
		segs = append(segs, segment{left, high})
	case 5:
		// Passing corners sit on the low-left/high-right diagonal; the
		// centre average decides whether the passing region connects
		// through the cell.
		if g.centre(i, j) >= g.threshold {
			segs = append(segs, segment{low, right}, segment{left, high})
		} else {
			segs = append(segs, segment{left, low}, segment{right, high})
		}
	case 10:
		if g.centre(i, j) >= g.threshold {
			segs = append(segs, segment{left, low}, segment{right, high})
		} else {
			segs = append(segs, segment{low, right}, segment{left, high})
		}
	}
	return segs
}

func (g *grid) centre(i, j int) float64 {
	return (g.v[i][j] + g.v[i][j+1] + g.v[i+1][j+1] + g.v[i+1][j]) / 4
}

// crossingRow places the crossing on the row edge (i,j)-(i,j+1). Both cells
// sharing the edge compute it from the same operands, so the result is
// identical on either side.
func (g *grid) crossingRow(i, j int, interp Interp) Point {
	t := crossParam(g.v[i][j], g.v[i][j+1], g.threshold, interp)
	return Point{
		L: g.l[i],
		C: g.c[i][j] + t*(g.c[i][j+1]-g.c[i][j]),
	}
}

// crossingColumn places the crossing on the column edge (i,j)-(i+1,j).
func (g *grid) crossingColumn(i, j int, interp Interp) Point {
	t := crossParam(g.v[i][j], g.v[i+1][j], g.threshold, interp)
	return Point{
		L: g.l[i] + t*(g.l[i+1]-g.l[i]),
		C: g.c[i][j] + t*(g.c[i+1][j]-g.c[i][j]),
	}
}

// crossParam is the crossing position from the first endpoint toward the
// second, as a fraction of the edge.
func crossParam(v0, v1, threshold float64, interp Interp) float64 {
	if interp == InterpMidpoint {
		return 0.5
	}
	d := v1 - v0
	if d == 0 {
		return 0.5
	}
	return math.Max(0, math.Min(1, (threshold-v0)/d))
}

// stitchQuantum keys segment endpoints for joining. Crossings shared by two
// cells are bit-identical, so the quantum only has to separate distinct
// crossings, never bridge rounding gaps.
const stitchQuantum = 1e-9

type endpointKey struct {
	l, c int64
}

func quantizePoint(p Point) endpointKey {
	return endpointKey{
		l: int64(math.Round(p.L / stitchQuantum)),
		c: int64(math.Round(p.C / stitchQuantum)),
	}
}

// stitch joins segments sharing endpoints into polylines. Each path starts
// at the first unconsumed segment in emission order, which preserves the
// row-major scan order of first encounter. A chain that wraps back onto its
// starting point comes out as a closed loop with the first point repeated.
func stitch(segs []segment) []Path {
	paths := []Path{}
	if len(segs) == 0 {
		return paths
	}

	adjacent := make(map[endpointKey][]int, 2*len(segs))
	for idx, s := range segs {
		adjacent[quantizePoint(s.a)] = append(adjacent[quantizePoint(s.a)], idx)
		adjacent[quantizePoint(s.b)] = append(adjacent[quantizePoint(s.b)], idx)
	}
	used := make([]bool, len(segs))

	// extend follows the chain from a point, consuming segments until the
	// chain ends, and returns the points visited along the way.
	extend := func(from Point) []Point {
		var pts []Point
		at := quantizePoint(from)
		for {
			next := -1
			for _, idx := range adjacent[at] {
				if !used[idx] {
					next = idx
					break
				}
			}
			if next < 0 {
				return pts
			}
			used[next] = true
			far := segs[next].b
			if quantizePoint(segs[next].a) != at {
				far = segs[next].a
			}
			pts = append(pts, far)
			at = quantizePoint(far)
		}
	}

	for idx, s := range segs {
		if used[idx] {
			continue
		}
		used[idx] = true
		forward := extend(s.b)
		backward := extend(s.a)

		path := make(Path, 0, len(backward)+len(forward)+2)
		for k := len(backward) - 1; k >= 0; k-- {
			path = append(path, backward[k])
		}
		path = append(path, s.a, s.b)
		path = append(path, forward...)
		paths = append(paths, path)
	}
	return paths
}
