// Package layout plans calendar pages without drawing anything.
//
// Planning runs in three steps:
//
//  1. [PlanGrid] picks the grid shape (rows x cols) and assigns months to
//     pages and grid positions in row- or column-major order.
//  2. [Compose] splits each month box into a title band, an optional
//     weekday row and one cell per day.
//  3. [Build] ties both together for a concrete page: it frames the page,
//     pads the grid cells, composes all boxes and sorts them into paint
//     order according to the z-order.
//
// The result is a [Document] the classic renderer draws verbatim. Because
// all validation happens while building it, an empty month range or an
// impossible grid is reported before the first drawing call.
//
// # Z-Order
//
// Canvases paint in call order, so the z-order decides which box's shadow
// falls onto its neighbour. Increasing z paints boxes in grid order,
// decreasing z in reverse. [ZAuto] resolves to increasing exactly when the
// style draws sloppy boxes.
package layout
