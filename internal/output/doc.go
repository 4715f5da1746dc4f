// Package output renders extraction results as plain text, JSON, or styled
// terminal output.
package output
