package layout

import (
	"math"
	"slices"

	"github.com/matzehuels/callirhoe/pkg/calendar"
	"github.com/matzehuels/callirhoe/pkg/errors"
)

// GridOrder is the traversal used to assign months to grid positions.
type GridOrder string

const (
	RowMajor    GridOrder = "row"
	ColumnMajor GridOrder = "column"
)

// ZOrder decides whether later months (in grid order) lie above or below
// earlier ones.
type ZOrder string

const (
	ZAuto       ZOrder = "auto"
	ZIncreasing ZOrder = "increasing"
	ZDecreasing ZOrder = "decreasing"
)

// ResolveZOrder turns ZAuto into a concrete order: increasing when boxes are
// drawn sloppy (rotated boxes must cast shadows onto their predecessors),
// decreasing otherwise.
func ResolveZOrder(z ZOrder, sloppy bool) ZOrder {
	if z == ZIncreasing || z == ZDecreasing {
		return z
	}
	if sloppy {
		return ZIncreasing
	}
	return ZDecreasing
}

// Position is a cell of the month grid.
type Position struct {
	Row, Col int
}

// Slot assigns a month to a grid position.
type Slot struct {
	Month calendar.MonthSpec
	Pos   Position
}

// Page lists the months of one page in grid order.
type Page struct {
	Index int
	Slots []Slot
}

// DrawOrder returns the slots in paint order: grid order for increasing z,
// reversed for decreasing z.
func (p Page) DrawOrder(z ZOrder) []Slot {
	out := slices.Clone(p.Slots)
	if z == ZDecreasing {
		slices.Reverse(out)
	}
	return out
}

// GridOptions are the inputs of the grid planner.
type GridOptions struct {
	// Rows and Cols force the grid shape; 0 means auto.
	Rows, Cols int
	Landscape  bool
	// PageRatio is the usable page height divided by its width.
	PageRatio float64
	GridOrder GridOrder
	ZOrder    ZOrder
	// Sloppy feeds the automatic z-order.
	Sloppy bool
}

// Plan is the planned grid shape and the months of each page.
type Plan struct {
	Rows, Cols int
	GridOrder  GridOrder
	ZOrder     ZOrder // resolved, never ZAuto
	Pages      []Page
}

// Months returns the number of months planned.
func (p *Plan) Months() int {
	n := 0
	for _, pg := range p.Pages {
		n += len(pg.Slots)
	}
	return n
}

// PlanGrid computes the grid shape and assigns months to pages.
//
// With rows and cols both 0 the shape is chosen to fit everything on one
// page: fewest unused cells first, then the rows/cols ratio closest to the
// page ratio. With one of them 0 the other is derived so one page holds all
// months. With both set the grid is fixed and months spill onto further
// pages.
func PlanGrid(months []calendar.MonthSpec, opts GridOptions) (*Plan, error) {
	n := len(months)
	if n == 0 {
		return nil, errors.New(errors.ErrCodeEmptyRange, "empty calendar requested")
	}
	rows, cols, err := Shape(n, opts.Rows, opts.Cols, opts.PageRatio, opts.Landscape)
	if err != nil {
		return nil, err
	}
	order := opts.GridOrder
	switch order {
	case "":
		order = RowMajor
	case RowMajor, ColumnMajor:
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown grid order %q (must be row or column)", order)
	}
	switch opts.ZOrder {
	case "", ZAuto, ZIncreasing, ZDecreasing:
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown z-order %q (must be auto, increasing or decreasing)", opts.ZOrder)
	}

	p := &Plan{
		Rows:      rows,
		Cols:      cols,
		GridOrder: order,
		ZOrder:    ResolveZOrder(opts.ZOrder, opts.Sloppy),
	}
	perPage := rows * cols
	for start := 0; start < n; start += perPage {
		page := Page{Index: len(p.Pages)}
		for i, m := range months[start:min(n, start+perPage)] {
			page.Slots = append(page.Slots, Slot{Month: m, Pos: position(i, rows, cols, order)})
		}
		p.Pages = append(p.Pages, page)
	}
	return p, nil
}

// Shape resolves the effective grid shape for n months.
func Shape(n, rows, cols int, pageRatio float64, landscape bool) (int, int, error) {
	if rows < 0 || cols < 0 {
		return 0, 0, errors.New(errors.ErrCodeUnresolvedGrid, "grid %dx%d: rows and cols must not be negative", rows, cols)
	}
	if n <= 0 {
		return 0, 0, errors.New(errors.ErrCodeEmptyRange, "empty calendar requested")
	}
	switch {
	case rows > 0 && cols > 0:
		return rows, cols, nil
	case rows > 0:
		return rows, ceilDiv(n, rows), nil
	case cols > 0:
		return ceilDiv(n, cols), cols, nil
	}
	if pageRatio <= 0 || math.IsNaN(pageRatio) || math.IsInf(pageRatio, 0) {
		return 0, 0, errors.New(errors.ErrCodeUnresolvedGrid, "cannot fit %d months on a page with ratio %v", n, pageRatio)
	}
	r, c := autoShape(n, pageRatio, landscape)
	return r, c, nil
}

// autoShape picks the shape with the least waste, then the rows/cols ratio
// closest to pageRatio. Remaining ties prefer fewer rows in landscape and
// more rows in portrait.
func autoShape(n int, pageRatio float64, landscape bool) (int, int) {
	bestR, bestC := 0, 0
	bestWaste, bestDev := math.MaxInt, math.Inf(1)
	for r := 1; r <= n; r++ {
		c := ceilDiv(n, r)
		waste := r*c - n
		dev := math.Abs(float64(r)/float64(c) - pageRatio)
		better := waste < bestWaste ||
			(waste == bestWaste && dev < bestDev-1e-12) ||
			(waste == bestWaste && math.Abs(dev-bestDev) <= 1e-12 && (r < bestR) == landscape)
		if better {
			bestR, bestC, bestWaste, bestDev = r, c, waste, dev
		}
	}
	return bestR, bestC
}

func position(i, rows, cols int, order GridOrder) Position {
	if order == ColumnMajor {
		return Position{Row: i % rows, Col: i / rows}
	}
	return Position{Row: i / cols, Col: i % cols}
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }
