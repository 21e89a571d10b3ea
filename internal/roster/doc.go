// Package roster reads the CSV inputs: headerless (first, last) rosters and
// the header-keyed results sheet, plus the lenient value coercions the sheet
// needs (blank or malformed numbers become zero, D/M/YYYY dates become ISO).
package roster
