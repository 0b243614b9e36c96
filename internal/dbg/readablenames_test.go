package dbg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunName(t *testing.T) {
	name := RunName()
	parts := strings.Split(name, "-")
	assert.Len(t, parts, 2)
	for _, part := range parts {
		assert.NotEmpty(t, part)
	}
}
