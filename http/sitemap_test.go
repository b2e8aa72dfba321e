package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/fwojciec/webreduce"
	whttp "github.com/fwojciec/webreduce/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemapService_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("discovers URLs via robots.txt directive", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("User-agent: *\nSitemap: " + srv.URL + "/map.xml\n"))
		})
		mux.HandleFunc("/map.xml", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<?xml version="1.0"?>
<urlset><url><loc>` + srv.URL + `/a</loc></url><url><loc>` + srv.URL + `/b</loc></url></urlset>`))
		})

		s := whttp.NewSitemapService(nil)
		urls, err := s.DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/a", srv.URL + "/b"}, urls)
	})

	t.Run("falls back to /sitemap.xml", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<urlset><url><loc>` + srv.URL + `/only</loc></url></urlset>`))
		})

		s := whttp.NewSitemapService(nil)
		urls, err := s.DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/only"}, urls)
	})

	t.Run("resolves sitemap indexes recursively", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<sitemapindex><sitemap><loc>` + srv.URL + `/child.xml</loc></sitemap></sitemapindex>`))
		})
		mux.HandleFunc("/child.xml", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<urlset><url><loc>` + srv.URL + `/nested</loc></url></urlset>`))
		})

		s := whttp.NewSitemapService(nil)
		urls, err := s.DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/nested"}, urls)
	})

	t.Run("applies the URL filter", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<urlset>
<url><loc>` + srv.URL + `/docs/x</loc></url>
<url><loc>` + srv.URL + `/blog/y</loc></url>
</urlset>`))
		})

		filter := &webreduce.URLFilter{Include: []*regexp.Regexp{regexp.MustCompile(`/docs/`)}}
		s := whttp.NewSitemapService(nil)
		urls, err := s.DiscoverURLs(context.Background(), srv.URL, filter)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/docs/x"}, urls)
	})

	t.Run("returns an empty slice when no sitemap exists", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()

		s := whttp.NewSitemapService(nil)
		urls, err := s.DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.NotNil(t, urls)
		assert.Empty(t, urls)
	})
}
