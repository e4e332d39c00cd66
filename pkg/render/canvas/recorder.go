package canvas

import (
	"fmt"

	"github.com/matzehuels/callirhoe/pkg/geom"
)

// OpKind identifies a recorded call.
type OpKind int

const (
	OpBeginPage OpKind = iota
	OpBox
	OpStr
	OpPush
	OpPop
	OpEndPage
	OpClose
)

func (k OpKind) String() string {
	switch k {
	case OpBeginPage:
		return "begin"
	case OpBox:
		return "box"
	case OpStr:
		return "str"
	case OpPush:
		return "push"
	case OpPop:
		return "pop"
	case OpEndPage:
		return "end"
	case OpClose:
		return "close"
	}
	return fmt.Sprintf("op(%d)", int(k))
}

// Op is one recorded call.
type Op struct {
	Kind      OpKind
	Page      int // zero-based page index, -1 outside pages
	Rect      geom.Rect
	Text      string
	Box       BoxPaint
	Str       TextPaint
	Transform Transform
}

// Recorder is a Canvas that records every call. It checks call nesting and
// reports the first misuse from EndPage or Close.
type Recorder struct {
	Ops   []Op
	pages int
	open  bool
	depth int
	err   error
}

var _ Canvas = (*Recorder)(nil)

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) page() int {
	if !r.open {
		return -1
	}
	return r.pages - 1
}

func (r *Recorder) fail(format string, args ...any) {
	if r.err == nil {
		r.err = fmt.Errorf(format, args...)
	}
}

func (r *Recorder) record(op Op) {
	op.Page = r.page()
	r.Ops = append(r.Ops, op)
}

// BeginPage implements Canvas.
func (r *Recorder) BeginPage(width, height float64) error {
	if r.open {
		r.fail("BeginPage inside page %d", r.pages-1)
	}
	r.pages++
	r.open = true
	r.record(Op{Kind: OpBeginPage, Rect: geom.R(0, 0, width, height)})
	return r.err
}

// DrawBox implements Canvas.
func (r *Recorder) DrawBox(rect geom.Rect, p BoxPaint) {
	if !r.open {
		r.fail("DrawBox outside a page")
	}
	r.record(Op{Kind: OpBox, Rect: rect, Box: p})
}

// DrawStr implements Canvas.
func (r *Recorder) DrawStr(text string, rect geom.Rect, p TextPaint) {
	if !r.open {
		r.fail("DrawStr outside a page")
	}
	r.record(Op{Kind: OpStr, Rect: rect, Text: text, Str: p})
}

// Push implements Canvas.
func (r *Recorder) Push(t Transform) {
	r.depth++
	r.record(Op{Kind: OpPush, Transform: t})
}

// Pop implements Canvas.
func (r *Recorder) Pop() {
	if r.depth == 0 {
		r.fail("Pop without Push")
	} else {
		r.depth--
	}
	r.record(Op{Kind: OpPop})
}

// EndPage implements Canvas.
func (r *Recorder) EndPage() error {
	if !r.open {
		r.fail("EndPage without BeginPage")
	}
	if r.depth != 0 {
		r.fail("EndPage with %d unbalanced Push calls", r.depth)
	}
	r.record(Op{Kind: OpEndPage})
	r.open = false
	return r.err
}

// Close implements Canvas.
func (r *Recorder) Close() error {
	if r.open {
		r.fail("Close inside page %d", r.pages-1)
	}
	r.record(Op{Kind: OpClose})
	return r.err
}

// Pages returns the number of pages begun.
func (r *Recorder) Pages() int { return r.pages }

// Draws returns the box and string operations, in call order.
func (r *Recorder) Draws() []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == OpBox || op.Kind == OpStr {
			out = append(out, op)
		}
	}
	return out
}

// Texts returns the strings drawn on page, in call order.
func (r *Recorder) Texts(page int) []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpStr && op.Page == page {
			out = append(out, op.Text)
		}
	}
	return out
}
