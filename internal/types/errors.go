package types

import "errors"

// ErrRowOutOfRange is returned when a row is read past the implicit blank row
// that terminates a sheet.
var ErrRowOutOfRange = errors.New("row out of range")
