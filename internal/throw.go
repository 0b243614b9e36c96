package internal

import "github.com/pkg/errors"

// Preconditions deep inside classification (an empty polygon, mostly) are not
// worth threading errors through every geometric helper. Instead, we panic, and
// the public API recovers to convert to an error.
//
// ClassifyError is a distinct struct rather than a plain error so that runtime
// errors (index out of range and friends) are never mistaken for ours.
type ClassifyError struct {
	error
}

func (e ClassifyError) Cause() error { return e.error }

func (e ClassifyError) Unwrap() error { return e.error }

// Panic with a ClassifyError.
func fatalf(format string, args ...interface{}) {
	panic(ClassifyError{errors.Errorf(format, args...)})
}

// Panic with a ClassifyError wrapping a sentinel, so callers can still match it
// with errors.Cause.
func fatalWrap(err error, message string) {
	panic(ClassifyError{errors.Wrap(err, message)})
}

func HandleClassifyPanicRecover(r interface{}) error {
	if r != nil {
		if classifyError, ok := r.(ClassifyError); ok {
			return classifyError.error
		}
		panic(r)
	}
	return nil
}
