// Package listview provides a selectable list component for Bubble Tea views.
//
// The list holds the rows of the current page, tracks a selection cursor and
// renders each row through a caller-supplied RenderFunc, joining rows with an
// optional separator line.
package listview
