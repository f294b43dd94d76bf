// Package physics provides closed-form magnetization predictions for a
// two-level system in longitudinal and transverse fields.
//
// This package is the foundational layer: every other internal package may
// import physics; physics imports nothing internal. Everything here is a
// pure function of its inputs and may be re-evaluated any number of times.
package physics
