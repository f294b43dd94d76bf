// Package render composes comparison figures: empirical magnetization
// records overlaid on their closed-form theoretical references.
//
// Each figure is two side-by-side panels, one per magnetization component.
// Composition is synchronous and side-effect free until Save, which writes
// exactly one PNG artifact. Alongside the drawable panels every build
// records a Plan, a renderer-independent description of the composed
// overlay, so ordering, colors and labels can be pinned by golden tests
// without comparing pixels.
package render
