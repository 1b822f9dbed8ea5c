package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTrimmed(t *testing.T) {
	assert.Nil(t, SplitTrimmed(""))
	assert.Equal(t, []string{"hiking"}, SplitTrimmed("hiking"))
	assert.Equal(t, []string{"hiking", "coffee"}, SplitTrimmed(" hiking , coffee "))
	assert.Equal(t, []string{"hiking"}, SplitTrimmed("hiking,,  ,"))
}
