// Package viz renders computed results in the terminal.
//
//   - [Plot] and [PlotMany]: asciigraph line charts of curves
//   - [Canvas]: Braille pixel canvas for geometric paths such as field lines
//   - [ResultTable]: lipgloss table of output scalars
//   - [Viewer]: Bubble Tea program cycling through a result's curves
//
// Colors come from the current [Theme]; five schemes are built in.
//
// # Viewer Key Bindings
//
//	←/→, h/l - Previous/next curve
//	p        - Toggle the path canvas
//	t        - Cycle color themes
//	q        - Quit
package viz
