package processor

import "fmt"

// SheetError reports a failure tied to a single sheet so callers can name
// the sheet in diagnostics.
type SheetError struct {
	Sheet string
	Err   error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q: %v", e.Sheet, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}
