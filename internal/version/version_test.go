package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShort(t *testing.T) {
	assert.Equal(t, Version, Short())
}

func TestInfo(t *testing.T) {
	info := Info()
	assert.True(t, strings.HasPrefix(info, "groupmix "))
	assert.Contains(t, info, "Commit:")
	assert.Contains(t, info, "Go: go")
}
