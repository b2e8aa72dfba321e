package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/fwojciec/webreduce"
	"github.com/fwojciec/webreduce/crawl"
	"github.com/fwojciec/webreduce/fs"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	urls := c.URLs

	if c.Sitemap != "" {
		// Compile filters early so a bad pattern fails before any fetch.
		var urlFilter *webreduce.URLFilter
		if len(c.Filter) > 0 {
			urlFilter = &webreduce.URLFilter{}
			for _, pattern := range c.Filter {
				re, err := regexp.Compile(pattern)
				if err != nil {
					fmt.Fprintf(deps.Stderr, "error: invalid filter pattern %q: %v\n", pattern, err)
					return err
				}
				urlFilter.Include = append(urlFilter.Include, re)
			}
		}

		discovered, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.Sitemap, urlFilter)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", webreduce.ErrorMessage(err))
			return err
		}
		urls = append(urls, discovered...)
	}

	if len(urls) == 0 {
		return fmt.Errorf("no URLs to convert. Pass URLs or use --sitemap")
	}

	writer := fs.NewWriter(c.Out)

	progress := func(p webreduce.ConvertProgress) {
		if p.Error != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", p.URL, webreduce.ErrorMessage(p.Error))
			return
		}
		fmt.Fprintf(deps.Stdout, "  [%d/%d] %s\n", p.Completed, p.Total, crawl.TruncateURL(p.URL, 70))
	}

	pages, err := deps.Converter.ConvertAll(deps.Ctx, urls, progress)
	if err != nil {
		return err
	}

	var bytes int
	for _, page := range pages {
		name, err := writer.WritePage(deps.Ctx, page)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "  write %s: %s\n", page.URL, webreduce.ErrorMessage(err))
			continue
		}
		if info, err := os.Stat(filepath.Join(c.Out, name)); err == nil {
			bytes += int(info.Size())
		}
		fmt.Fprintf(deps.Stdout, "Wrote %s\n", name)
	}

	fmt.Fprintf(deps.Stdout, "Converted %d of %d pages (%s)\n", len(pages), len(urls), crawl.FormatBytes(bytes))

	return nil
}
