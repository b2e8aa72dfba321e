package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/webreduce"
)

// Ensure LoggingConverter implements webreduce.PageConverter.
var _ webreduce.PageConverter = (*LoggingConverter)(nil)

// LoggingConverter wraps a PageConverter with per-conversion logging.
type LoggingConverter struct {
	next   webreduce.PageConverter
	logger *slog.Logger
}

// NewLoggingConverter creates a new LoggingConverter.
func NewLoggingConverter(next webreduce.PageConverter, logger *slog.Logger) *LoggingConverter {
	return &LoggingConverter{next: next, logger: logger}
}

// Convert delegates to the wrapped converter and logs the operation.
func (c *LoggingConverter) Convert(ctx context.Context, url string) (page *webreduce.Page, err error) {
	defer func(begin time.Time) {
		c.logger.Info("convert",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Convert(ctx, url)
}

// ConvertAll delegates to the wrapped converter and logs the batch.
func (c *LoggingConverter) ConvertAll(ctx context.Context, urls []string, progress webreduce.ConvertProgressFunc) (pages []*webreduce.Page, err error) {
	defer func(begin time.Time) {
		c.logger.Info("convert batch",
			"urls", len(urls),
			"converted", len(pages),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.ConvertAll(ctx, urls, progress)
}
