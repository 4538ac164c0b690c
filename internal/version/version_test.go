package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	assert.Equal(t, "dev", String())

	original := Commit
	Commit = "abc123"
	t.Cleanup(func() { Commit = original })
	assert.Equal(t, "dev (abc123)", String())
}
