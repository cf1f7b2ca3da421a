package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFor(t *testing.T) {
	assert.Equal(t, "dark", For(true).Name)
	assert.Equal(t, "light", For(false).Name)
	assert.NotEqual(t, Dark.Text, Light.Text)
}
