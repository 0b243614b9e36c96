package internal

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestHandleClassifyPanicRecover(t *testing.T) {
	testFn := func(shouldThrow bool, shouldPanic bool) (err error) {
		defer func() {
			recoveredErr := HandleClassifyPanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			fatalf("kaboom!")
		}

		if shouldPanic {
			panic("true panic")
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false)
		assert.EqualError(t, err, "kaboom!")
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, true)
		})
	})

	t.Run("with runtime error", func(t *testing.T) {
		assert.Panics(t, func() {
			func() (err error) {
				defer func() {
					err = HandleClassifyPanicRecover(recover())
				}()
				var points []Point
				_ = points[3]
				return nil
			}()
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false)
		assert.NoError(t, err)
	})

	t.Run("wrapped sentinel", func(t *testing.T) {
		err := func() (err error) {
			defer func() {
				err = HandleClassifyPanicRecover(recover())
			}()
			fatalWrap(ErrEmptyPolygon, "context")
			return nil
		}()
		assert.EqualError(t, err, "context: polygon has no vertices")
		assert.Equal(t, ErrEmptyPolygon, errors.Cause(err))
	})
}
