package matcher

import "fmt"

// PatternError reports a query whose pattern failed to compile.
// Only regex queries can produce it; literal queries are always escaped.
type PatternError struct {
	Pattern string
	Engine  Engine
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid %s pattern %q: %v", e.Engine, e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}
