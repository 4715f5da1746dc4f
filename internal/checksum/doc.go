// Package checksum provides script content hashing.
//
// Two checksums are computed per script:
//
//   - Raw checksum: hash of the exact file content (detects all changes)
//   - Statements checksum: hash of the extracted statements after whitespace
//     normalization (changes only when what would be executed changes)
//
// Comments, excluded lines and indentation therefore affect the raw checksum
// but not the statements checksum.
//
// # Example Usage
//
//	calculator := checksum.New()
//	raw := calculator.CalculateRaw(content)
//	effective := calculator.CalculateStatements(statements)
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
