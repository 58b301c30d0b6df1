package cli

// Quiet flag spellings. Matched case-sensitively.
const (
	quietShort = "-q"
	quietLong  = "--quiet"
)

// Split separates the quiet flag from time-expression tokens. The flag
// may appear anywhere among the arguments; remaining tokens keep their
// original relative order. The returned slice is freshly allocated.
func Split(args []string) (quiet bool, tokens []string) {
	tokens = make([]string, 0, len(args))
	for _, arg := range args {
		if arg == quietShort || arg == quietLong {
			quiet = true
			continue
		}
		tokens = append(tokens, arg)
	}
	return quiet, tokens
}
