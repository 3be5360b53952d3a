package domain

import (
	"errors"
	"fmt"
)

// InvalidSportError reports a sport key outside the supported enum.
// It is a client error: handlers map it to 404, never to a fetch.
type InvalidSportError struct {
	Sport string
}

func (e *InvalidSportError) Error() string {
	return fmt.Sprintf("unsupported sport %q", e.Sport)
}

// AsInvalidSportError attempts to unwrap an error into an InvalidSportError.
func AsInvalidSportError(err error) (*InvalidSportError, bool) {
	var sportErr *InvalidSportError
	if errors.As(err, &sportErr) {
		return sportErr, true
	}
	return nil, false
}
