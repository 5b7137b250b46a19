package generator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMethod is matched by every *UnknownMethodError.
var ErrUnknownMethod = errors.New("unknown operation")

// UnknownMethodError reports path item keys that are neither path item fields
// nor supported HTTP methods. It aborts the whole run.
type UnknownMethodError struct {
	Path    string
	Methods []string
}

func (e *UnknownMethodError) Error() string {
	return fmt.Sprintf("unknown operation(s) found for %s: %s", e.Path, strings.Join(e.Methods, ", "))
}

// Is lets errors.Is match ErrUnknownMethod.
func (e *UnknownMethodError) Is(target error) bool { return target == ErrUnknownMethod }
