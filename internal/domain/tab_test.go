package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTab(t *testing.T) {
	for _, tab := range Tabs {
		parsed, err := ParseTab(string(tab))
		require.NoError(t, err)
		assert.Equal(t, tab, parsed)
		assert.NotEmpty(t, parsed.Label())
	}

	_, err := ParseTab("settings")
	assert.Error(t, err)

	_, err = ParseTab("")
	assert.Error(t, err)
}
