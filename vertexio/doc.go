// Package vertexio reads polygon vertices from text, one "x,y" pair per line.
//
// Whitespace around either number is tolerated, blank lines are ignored and any
// other malformed line is skipped with a warning on the shared logger. Only I/O
// failures abort a read.
package vertexio
