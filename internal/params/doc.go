// Package params builds the placeholder parameter map and the exclusion set
// from command-line values and files.
//
// # Parameters
//
// Parameters bind ${name} placeholders in scripts. Sources, lowest precedence first:
//   - params in hivescript.yaml
//   - .env files (params_files in hivescript.yaml, then --params-file flags, in order)
//   - --param key=value flags
//
// .env files are parsed with godotenv, so quoting, escapes and export prefixes
// behave the way they do for the rest of the tool chain.
//
// # Exclusions
//
// Exclusion files hold one exact script line per line. Blank lines and lines
// starting with # are ignored; everything else is kept verbatim, including a
// trailing terminator.
//
// # Thread Safety
//
// All functions are safe for concurrent use.
package params
