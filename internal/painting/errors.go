package painting

import "fmt"

// Error wraps an algorithm failure with the run that produced it.
type Error struct {
	Algorithm string
	Seed      int64
	Height    int
	Width     int
	Wrapped   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("painting %s at %dx%d: %v", ArtifactName(e.Algorithm, e.Seed), e.Height, e.Width, e.Wrapped)
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}
