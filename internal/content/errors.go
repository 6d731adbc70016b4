package content

import "fmt"

// GenerationError indicates content generation failed entirely and no
// usable content was produced. The session must not be created.
type GenerationError struct {
	Kind string // "quiz" or "lesson"
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Kind, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// DataIntegrityError indicates generated content arrived malformed in a
// way that was detected and repaired at the boundary. It is reported
// alongside the usable remainder, not instead of it.
type DataIntegrityError struct {
	Dropped int
	Reasons []string
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("dropped %d malformed question(s): %v", e.Dropped, e.Reasons)
}
