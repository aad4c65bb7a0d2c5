// Package parser turns spreadsheet and CSV input into a cell grid and
// extracts per-entity numeric series from that grid.
//
// The extraction is a best-effort heuristic. It locates a header row within
// the first few rows, picks the columns after the first one as series, and
// reads one entity per remaining data row. Malformed or sparse input never
// produces an error: unreadable cells become absent values, and rows with
// nothing to plot are dropped.
package parser
