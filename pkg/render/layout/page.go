package layout

import (
	"math/rand/v2"

	"github.com/matzehuels/callirhoe/pkg/calendar"
	"github.com/matzehuels/callirhoe/pkg/errors"
	"github.com/matzehuels/callirhoe/pkg/geom"
	"github.com/matzehuels/callirhoe/pkg/holiday"
	"github.com/matzehuels/callirhoe/pkg/theme"
)

// PageFrame divides a page into the month grid and the footer band.
type PageFrame struct {
	Page    geom.Page
	Content geom.Rect // page minus border
	Grid    geom.Rect
	Footer  geom.Rect // empty without footer
}

// Frame computes the page regions. The footer band takes footerRatio of the
// content height at the bottom.
func Frame(pg geom.Page, footerRatio float64, noFooter bool) PageFrame {
	f := PageFrame{Page: pg, Content: pg.Content(), Grid: pg.Content()}
	if noFooter || footerRatio <= 0 {
		return f
	}
	fh := f.Content.H * min(footerRatio, 1)
	f.Grid = geom.R(f.Content.X, f.Content.Y, f.Content.W, f.Content.H-fh)
	f.Footer = geom.R(f.Content.X, f.Grid.Bottom(), f.Content.W, fh)
	return f
}

// Ratio returns the usable height over width, the page ratio the grid
// planner fits to.
func (f PageFrame) Ratio() float64 {
	if f.Grid.W <= 0 {
		return 0
	}
	return f.Grid.H / f.Grid.W
}

// Cells partitions the grid area into rows x cols month boxes, row-major,
// leaving padding between neighbours and half of it along the edges.
func (f PageFrame) Cells(rows, cols int, padding float64) ([]geom.Rect, error) {
	cells, err := geom.Grid(f.Grid, rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range cells {
		cells[i] = cells[i].Inset(padding / 2)
	}
	return cells, nil
}

// Options are the layout choices of a render.
type Options struct {
	Rows, Cols int
	GridOrder  GridOrder
	ZOrder     ZOrder
	Landscape  bool
	NoFooter   bool
}

// Jitter displaces a box drawn in sloppy style.
type Jitter struct {
	Angle  float64 // degrees
	DX, DY float64
}

// PlacedBox is a composed month box at its grid position.
type PlacedBox struct {
	Slot
	Box    MonthBox
	Jitter Jitter
}

// PageLayout is a fully planned page. Boxes are in paint order.
type PageLayout struct {
	Index int
	Frame PageFrame
	Boxes []PlacedBox
}

// Document is a fully planned calendar, ready to be drawn.
type Document struct {
	Plan  *Plan
	Theme *theme.Theme
	Pages []PageLayout
}

// Build plans the grid, composes every month box and resolves draw order.
// Every error a render can hit is returned here, so drawing a returned
// Document never fails halfway through a page.
func Build(months []calendar.MonthSpec, th *theme.Theme, pg geom.Page, opts Options, hp holiday.Provider) (*Document, error) {
	if len(months) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyRange, "empty calendar requested")
	}
	if !geom.Finite(pg.Width) || !geom.Finite(pg.Height) || !geom.Finite(pg.Border) {
		return nil, errors.New(errors.ErrCodeInvalidPaper, "page %vx%v with border %v is not finite", pg.Width, pg.Height, pg.Border)
	}
	if pg.Width <= 0 || pg.Height <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidPaper, "page %.1fx%.1f has no area", pg.Width, pg.Height)
	}
	frame := Frame(pg, th.Geometry.Page.FooterRatio, opts.NoFooter)
	if frame.Grid.Empty() {
		return nil, errors.New(errors.ErrCodeInvalidPaper, "border %.1f leaves no room on a %.1fx%.1f page", pg.Border, pg.Width, pg.Height)
	}

	plan, err := PlanGrid(months, GridOptions{
		Rows:      opts.Rows,
		Cols:      opts.Cols,
		Landscape: opts.Landscape,
		PageRatio: frame.Ratio(),
		GridOrder: opts.GridOrder,
		ZOrder:    opts.ZOrder,
		Sloppy:    th.Style.Sloppy.Enabled,
	})
	if err != nil {
		return nil, err
	}

	cells, err := frame.Cells(plan.Rows, plan.Cols, pg.Dots(th.Geometry.Month.Padding))
	if err != nil {
		return nil, err
	}

	jitter := newJitterer(th.Style.Sloppy)
	doc := &Document{Plan: plan, Theme: th}
	for _, page := range plan.Pages {
		pl := PageLayout{Index: page.Index, Frame: frame}
		placed := make(map[Position]PlacedBox, len(page.Slots))
		// compose in grid order so sloppy jitter does not depend on z-order
		for _, slot := range page.Slots {
			r := cells[slot.Pos.Row*plan.Cols+slot.Pos.Col]
			box, err := Compose(slot.Month, r, th, th.Geometry.Month.Symmetric, hp)
			if err != nil {
				return nil, err
			}
			placed[slot.Pos] = PlacedBox{Slot: slot, Box: box, Jitter: jitter.next(r)}
		}
		for _, slot := range page.DrawOrder(plan.ZOrder) {
			pl.Boxes = append(pl.Boxes, placed[slot.Pos])
		}
		doc.Pages = append(doc.Pages, pl)
	}
	return doc, nil
}

type jitterer struct {
	style theme.SloppyStyle
	rng   *rand.Rand
}

func newJitterer(s theme.SloppyStyle) *jitterer {
	j := &jitterer{style: s}
	if s.Enabled {
		j.rng = rand.New(rand.NewPCG(s.Seed, s.Seed^0xdeadbeef))
	}
	return j
}

func (j *jitterer) next(r geom.Rect) Jitter {
	if j.rng == nil {
		return Jitter{}
	}
	sym := func() float64 { return j.rng.Float64()*2 - 1 }
	return Jitter{
		Angle: sym() * j.style.MaxAngle,
		DX:    sym() * j.style.MaxOffset * r.W,
		DY:    sym() * j.style.MaxOffset * r.H,
	}
}
