// Package analysis derives diagnostics from computed trajectories.
//
// Everything here is read-only over trajectory data; nothing in this
// package integrates or mutates state:
//
//   - [ComponentDivergence], [StateSeparation]: how fast two nearby
//     runs drift apart, the raw material of a sensitivity check
//   - [Series], [Drift], [MaxStepChange]: conserved-quantity tracking
//     (energy, momentum) along one run
//   - [DominantPeriod], [PowerSpectrum]: spectral estimates for
//     periodic signals such as an orbital separation
//
// # Sensitivity
//
// A chaotic system amplifies a tiny initial perturbation until the two
// runs decorrelate:
//
//	gap, _ := analysis.ComponentDivergence(a, b, 0)
//	t, ok := analysis.FirstExceed(a.Times, gap, 0.1)
package analysis
