// Package slog provides logging decorators for domain interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/lisaross/site2context"
)

// Ensure LoggingExtractor implements site2context.Extractor.
var _ site2context.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor and logs low-confidence extractions,
// i.e. pages where no content selector matched and the whole body was used.
type LoggingExtractor struct {
	next   site2context.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next site2context.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(html string) (*site2context.ExtractResult, error) {
	begin := time.Now()
	result, err := e.next.Extract(html)
	if err != nil {
		return nil, err
	}
	if result.UsedBodyFallback {
		e.logger.Warn("low-confidence extraction: no content selector matched, using body",
			"title", result.Title,
			"duration", time.Since(begin),
		)
	}
	return result, nil
}
