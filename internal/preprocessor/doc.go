// Package preprocessor turns the raw text of a Hive script into the ordered
// list of statements the Hive CLI would execute.
//
// Processing runs in four passes over the script's physical lines:
//
//  1. Whole-line "--" comments are removed.
//  2. Lines listed in the exclusion set are removed, compared after trimming
//     and before any substitution.
//  3. ${name} placeholders are replaced in a single non-recursive scan.
//     Names without a binding are left as written.
//  4. The lines are split into statements. Directive lines (SET, ADD JAR,
//     ADD FILE, ADD ARCHIVE, DFS) stand alone; everything else accumulates
//     until a ';' outside a quoted literal.
//
// Every pass is pure. A Pipeline can be shared between goroutines.
package preprocessor
