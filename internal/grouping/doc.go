// Package grouping partitions sweep records by transverse-field value and
// assigns each partition a deterministic visual encoding.
//
// Group discovery runs in first-appearance order, not numeric order: the
// ordinal a Γ value receives, and therefore its color, depends only on
// where it first occurs in the dataset. Re-running on the same input
// reproduces identical groups and identical colors.
package grouping
