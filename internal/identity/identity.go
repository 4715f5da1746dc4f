// Package identity derives stable statement identifiers.
package identity

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// NamespaceStatementIdentity is the UUID v5 namespace for statement identities,
// derived from the URL namespace and "hivescript/statement-identity/v1".
var NamespaceStatementIdentity = uuid.NewSHA1(uuid.NameSpaceURL, []byte("hivescript/statement-identity/v1"))

// StatementID creates a deterministic UUID v5 for a statement.
//
// The name hashed is "<normalized path>\n<index>\n<text>", so the same
// statement at the same position of the same script always gets the same ID,
// and any change to its resolved text produces a new one.
//
// Examples:
//   - StatementID("./etl/load.hql", 0, "SET a=1") == StatementID("ETL/load.hql", 0, "SET a=1")
//   - StatementID("etl/load.hql", 1, "SET a=1") differs from the above
func StatementID(path string, index int, text string) uuid.UUID {
	var b strings.Builder
	b.WriteString(normalizePath(path))
	b.WriteByte('\n')
	b.WriteString(strconv.Itoa(index))
	b.WriteByte('\n')
	b.WriteString(text)
	return uuid.NewSHA1(NamespaceStatementIdentity, []byte(b.String()))
}

// normalizePath converts a path to canonical form: forward slashes,
// lowercase, no leading "./".
func normalizePath(path string) string {
	normalized := strings.ReplaceAll(path, "\\", "/")
	normalized = strings.ToLower(normalized)
	return strings.TrimPrefix(normalized, "./")
}
