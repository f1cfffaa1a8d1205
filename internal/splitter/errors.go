package splitter

import (
	"errors"
	"fmt"

	"github.com/nconklindev/platesplit/internal/types"
)

// ErrRowOutOfRange indicates a block read past the end of the sheet.
var ErrRowOutOfRange = types.ErrRowOutOfRange

// ErrLayoutMismatch indicates a block whose shape differs from the fixed export layout.
var ErrLayoutMismatch = errors.New("unexpected block layout")

// BlockError reports a malformed section.
type BlockError struct {
	Section Marker
	Row     int
	Err     error
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("malformed %s block at row %d: %v", e.Section, e.Row, e.Err)
}

func (e *BlockError) Unwrap() error {
	return e.Err
}

func newBlockError(section Marker, row int, err error) *BlockError {
	return &BlockError{
		Section: section,
		Row:     row,
		Err:     err,
	}
}
