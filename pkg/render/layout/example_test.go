package layout_test

import (
	"fmt"

	"github.com/matzehuels/callirhoe/pkg/calendar"
	"github.com/matzehuels/callirhoe/pkg/render/layout"
)

func ExampleShape() {
	// A year on a portrait A4 page.
	rows, cols, _ := layout.Shape(12, 0, 0, 1.41, false)
	fmt.Println(rows, cols)
	// Output: 4 3
}

func ExamplePlanGrid() {
	plan, _ := layout.PlanGrid(calendar.Range(2024, 1, 6), layout.GridOptions{Rows: 2, Cols: 2})
	fmt.Println(plan.Rows, plan.Cols, len(plan.Pages))
	for _, s := range plan.Pages[0].DrawOrder(layout.ZDecreasing) {
		fmt.Println(s.Month, s.Pos.Row, s.Pos.Col)
	}
	// Output:
	// 2 2 2
	// 2024-04 1 1
	// 2024-03 1 0
	// 2024-02 0 1
	// 2024-01 0 0
}
