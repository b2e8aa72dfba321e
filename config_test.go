package webreduce_test

import (
	"testing"

	"github.com/fwojciec/webreduce"
	"github.com/stretchr/testify/assert"
)

func TestConfig_Classify(t *testing.T) {
	t.Parallel()

	t.Run("default classes", func(t *testing.T) {
		t.Parallel()

		cfg := webreduce.DefaultConfig()

		assert.Equal(t, webreduce.ClassRetain, cfg.Classify("h1"))
		assert.Equal(t, webreduce.ClassRetain, cfg.Classify("a"))
		assert.Equal(t, webreduce.ClassSkip, cfg.Classify("script"))
		assert.Equal(t, webreduce.ClassTable, cfg.Classify("table"))
		assert.Equal(t, webreduce.ClassTransparent, cfg.Classify("div"))
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		t.Parallel()

		cfg := webreduce.DefaultConfig()

		assert.Equal(t, webreduce.ClassRetain, cfg.Classify("H1"))
		assert.Equal(t, webreduce.ClassSkip, cfg.Classify("SCRIPT"))
		assert.Equal(t, webreduce.ClassTable, cfg.Classify("Table"))
	})

	t.Run("skip wins when a tag is in both sets", func(t *testing.T) {
		t.Parallel()

		cfg := &webreduce.Config{
			RetainTags: []string{"p"},
			SkipTags:   []string{"p"},
		}

		assert.Equal(t, webreduce.ClassSkip, cfg.Classify("p"))
	})

	t.Run("skip wins over the table tag", func(t *testing.T) {
		t.Parallel()

		cfg := &webreduce.Config{
			SkipTags: []string{"table"},
			TableTag: "table",
		}

		assert.Equal(t, webreduce.ClassSkip, cfg.Classify("table"))
	})
}

func TestConfig_AllowsScheme(t *testing.T) {
	t.Parallel()

	cfg := webreduce.DefaultConfig()

	assert.True(t, cfg.AllowsScheme("http"))
	assert.True(t, cfg.AllowsScheme("https"))
	assert.True(t, cfg.AllowsScheme("HTTPS"))
	assert.False(t, cfg.AllowsScheme("mailto"))
	assert.False(t, cfg.AllowsScheme("javascript"))
	assert.False(t, cfg.AllowsScheme(""))
}
