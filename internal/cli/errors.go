package cli

// UsageError marks a failure caused by how the command was invoked. The
// caller prints usage for it; no files have been touched.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

func usageError(err error) error {
	return &UsageError{Err: err}
}
