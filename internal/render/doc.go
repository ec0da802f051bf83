// Package render draws computed trajectories, in the terminal and to
// files. It owns all drawing state; trajectory data flows in read-only
// and nothing here integrates.
//
//   - [Canvas]: Braille dot matrix for terminal frames
//   - [DrawPendulum], [DrawOrbit]: one trajectory frame onto a canvas
//   - [Player]: Bubble Tea playback of a whole trajectory
//   - [SeriesPlot]: asciigraph line charts for diagnostics
//   - [SaveSeriesPNG], [SaveOrbitPNG], [SavePendulumPNG]: PNG export
//   - [CanvasSVG], [PathSVG]: SVG export
//
// # Key Bindings
//
//	Space - Pause/Resume playback
//	R     - Restart from the first frame
//	[ ]   - Step backward/forward while paused
//	Q     - Quit
package render
