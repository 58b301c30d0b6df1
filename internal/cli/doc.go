// Package cli splits raw command-line arguments into the quiet flag and
// the time-expression tokens.
//
// The quiet flag is detected by membership, not position: `-q` or
// `--quiet` anywhere among the arguments enables quiet mode and is
// removed before the remaining tokens are handed to the parser. This
// keeps flag handling out of the time-expression grammar, where tokens
// like `-5m` are legitimate input.
package cli
