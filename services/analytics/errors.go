package analytics

import (
	"errors"
	"fmt"
)

// ErrSuperseded is returned to a dashboard selection whose result arrived
// after a newer selection was made.
var ErrSuperseded = errors.New("selection superseded by a newer one")

// DataSourceError reports a failed read or a row that violates the row contract.
// No snapshot is produced when one occurs.
type DataSourceError struct {
	Read string
	Err  error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("analytics read %q failed: %v", e.Read, e.Err)
}

func (e *DataSourceError) Unwrap() error { return e.Err }

func readError(read string, err error) error {
	if err == nil {
		return nil
	}
	return &DataSourceError{Read: read, Err: err}
}

func rowError(read string, format string, args ...any) error {
	return &DataSourceError{Read: read, Err: fmt.Errorf("malformed row: "+format, args...)}
}
