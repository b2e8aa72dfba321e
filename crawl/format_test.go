package crawl_test

import (
	"testing"

	"github.com/fwojciec/webreduce/crawl"
	"github.com/stretchr/testify/assert"
)

func TestTruncateURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		url    string
		maxLen int
		want   string
	}{
		{"short URL unchanged", "https://example.com", 30, "https://example.com"},
		{"long URL keeps the end", "https://example.com/docs/deeply/nested/page", 20, "...eeply/nested/page"},
		{"zero max", "https://example.com", 0, ""},
		{"tiny max", "https://example.com", 3, "htt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, crawl.TruncateURL(tt.url, tt.maxLen))
		})
	}
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "512 B", crawl.FormatBytes(512))
	assert.Equal(t, "1.5 KB", crawl.FormatBytes(1536))
	assert.Equal(t, "2.0 MB", crawl.FormatBytes(2*1024*1024))
}
