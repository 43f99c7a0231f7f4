// Package tablediff is a tabular diff and transformation engine. It models
// two-dimensional tables of typed scalar cells with a synchronized column
// view, lazy column and header transformation pipelines, read-only
// conversion views (Hashes, SymbolicHashes, RowsHash and friends), and a
// longest-common-subsequence aligner that compares two tables and produces
// an annotated, renderable diff.
//
// Tables are persistent values: MapColumn, MapHeaders and their variants
// return new tables and never touch the receiver, so a table can safely be
// diffed against a mapped view of itself. Transforms run lazily, once per
// affected cell each time a view is materialized, and strictness failures
// (an absent mapped column, an ambiguous header pattern) surface only at
// materialization time.
//
// Diff tolerates configurable divergence classes via DiffOptions: missing
// and surplus rows and columns, column reordering, and a trailing run of
// surplus rows. Cells whose printed forms agree while their types differ
// (the string "true" against the boolean true) align in place but are
// flagged as type mismatches. A failed comparison returns a DifferentError
// carrying the fully annotated table, which Render turns into aligned,
// optionally colorized pipe-separated text.
package tablediff
