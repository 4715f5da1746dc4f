// Package hivescript defines the public types, interfaces, errors and exit
// codes shared by the hivescript command and its internal packages.
//
// The extraction algorithm itself lives in internal/preprocessor; the
// file-backed StatementExtractor lives in internal/services.
package hivescript
