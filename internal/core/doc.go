// Package core loads semicolon-delimited data files into typed tables.
//
// # Schemas
//
// A [Schema] maps column names to a declared type ([FieldText], [FieldFloat],
// [FieldInt]). It is passed to the loader as a value, so different schemas can
// be loaded concurrently without shared state:
//
//	schema := core.Schema{Name: "scores", Fields: []core.FieldSpec{
//	    {Name: "SCHOOL_ID", Type: core.FieldText},
//	    {Name: "PUNT_GLOBAL", Type: core.FieldFloat},
//	}}
//	tbl, err := core.LoadFirst(ctx, "scores.csv", schema, 5)
//
// The schema filters, it does not require: declared columns missing from the
// file are skipped, and undeclared file columns are kept as raw text.
//
// # Missing values
//
// Every cell is a pgtype value. Valid=false is the missing marker: empty cells,
// NA tokens and cells that fail numeric coercion all end up missing. Coercion
// never returns an error.
//
// # Errors
//
// A load fails only when the file cannot be opened ([ErrAccess]) or cannot be
// split into rows and fields ([ErrMalformed]). Rows shorter than the header
// are padded with missing values; rows longer than the header are rejected.
//
// # Datasets
//
// Named datasets pair a schema with a default file path and are registered at
// init time with [Register]; see the datasets subpackage.
package core
