// Package classic draws planned calendar documents in the classic look:
// framed month boxes with a colored title band, an optional weekday row and
// day cells that carry the day number, the day name and holiday labels.
//
// Geometry comes fully resolved from the layout package; this package only
// turns it into canvas calls, in the draw order the plan dictates:
//
//	doc, err := layout.Build(months, &th, page, layout.Options{}, holidays)
//	if err != nil {
//		return err
//	}
//	err = classic.New(&th, classic.WithMonthYear()).Draw(cv, doc)
//
// Day cells switch between two layouts depending on their shape. Cells whose
// width/height ratio is below the geometry's short ratio stack the number
// and the first letter of the day name and squeeze holiday labels into thin
// bands along the top and bottom edges. Wider cells put number and full day
// name side by side and reserve a side column for the labels.
package classic
