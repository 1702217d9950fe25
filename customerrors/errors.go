package customerrors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrUpstream        = errors.New("upstream provider error")
	ErrDataUnavailable = errors.New("data unavailable")

	// ErrNoData is returned when a fetch succeeded but nothing survived filtering.
	ErrNoData = fmt.Errorf("no data: %w", ErrNotFound)
)

// Upstream wraps err as an upstream failure unless it already carries a
// NotFound or InvalidInput meaning.
func Upstream(provider string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrUpstream) {
		return err
	}
	return fmt.Errorf("%s: %w: %v", provider, ErrUpstream, err)
}
