package util

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestIsNumber(t *testing.T) {
	assert.True(t, IsNumber('0'))
	assert.True(t, IsNumber('9'))
	assert.False(t, IsNumber('a'))
	assert.False(t, IsNumber('٣'))
}

func TestIsLetterOrUnderscore(t *testing.T) {
	testData := []struct {
		r        rune
		expected bool
	}{
		{'a', true},
		{'Z', true},
		{'_', true},
		{'é', true},
		{'1', false},
		{'-', false},
	}
	for _, data := range testData {
		assert.Equal(t, data.expected, IsLetterOrUnderscore(data.r), string(data.r))
	}
}

func TestIsLetterOrUnderscoreOrNumber(t *testing.T) {
	assert.True(t, IsLetterOrUnderscoreOrNumber('7'))
	assert.True(t, IsLetterOrUnderscoreOrNumber('_'))
	assert.True(t, IsLetterOrUnderscoreOrNumber('k'))
	assert.False(t, IsLetterOrUnderscoreOrNumber(':'))
	assert.False(t, IsLetterOrUnderscoreOrNumber('٣'))
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(' '))
	assert.True(t, IsBlank('\t'))
	assert.True(t, IsBlank('\r'))
	assert.False(t, IsBlank('\n'))
	assert.False(t, IsBlank('x'))
}
