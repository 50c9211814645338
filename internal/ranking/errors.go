package ranking

import "fmt"

// ParseError reports a salary range spec that does not parse as "min-max".
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("bad salary range %q: %s", e.Input, e.Reason)
}
