// Package dataset loads tabular measurement results into typed records.
//
// Input files are produced by the Monte Carlo sampler, either a delimited
// text file or a SQLite results database. Loading validates the schema once:
// column presence and cell parsing failures surface as typed LoadErrors at
// read time instead of late lookup failures deep in a pipeline.
//
// The loaded Table owns the in-memory data for the lifetime of one pipeline
// run; records and extracted parameters are read-only derivations.
package dataset
