// Package textfold provides the Unicode case and accent folding used when
// comparing player names.
//
// The PostgreSQL backend leans on ILIKE and the unaccent extension for the
// same comparisons; the SQLite backend registers these helpers as scalar SQL
// functions so both engines agree on what "equal ignoring case" and "equal
// ignoring accents" mean.
package textfold
