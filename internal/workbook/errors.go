package workbook

import "errors"

// ErrLegacyFormat is returned for pre-2007 .xls exports.
var ErrLegacyFormat = errors.New("legacy .xls format is not supported, re-export as .xlsx")

// ErrUnsupportedFormat is returned for any other input extension.
var ErrUnsupportedFormat = errors.New("unsupported file type")
