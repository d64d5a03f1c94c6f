package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sharh"
)

// Ensure LoggingSectionExtractor implements sharh.SectionExtractor.
var _ sharh.SectionExtractor = (*LoggingSectionExtractor)(nil)

// LoggingSectionExtractor wraps a SectionExtractor. It logs a summary at
// info level and one line per matched section at debug level, so sections
// that were silently omitted or overwritten can be traced.
type LoggingSectionExtractor struct {
	next   sharh.SectionExtractor
	logger *slog.Logger
}

// NewLoggingSectionExtractor creates a new LoggingSectionExtractor.
func NewLoggingSectionExtractor(next sharh.SectionExtractor, logger *slog.Logger) *LoggingSectionExtractor {
	return &LoggingSectionExtractor{next: next, logger: logger}
}

// ExtractSections delegates to the wrapped extractor and logs the result.
func (e *LoggingSectionExtractor) ExtractSections(pages []*sharh.Page) (result *sharh.Result, err error) {
	defer func(begin time.Time) {
		missing := 0
		for _, p := range pages {
			if p == nil {
				missing++
			}
		}
		if result == nil {
			e.logger.Error("extract sections",
				"pages", len(pages),
				"missing", missing,
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}

		for _, d := range result.Diagnostics {
			e.logger.Debug("section",
				"label", d.Label,
				"status", string(d.Status),
				"anchors", d.Anchors,
				"paragraphs", d.Paragraphs,
				"footnotes", d.Footnotes,
				"overwrote", d.Overwrote,
			)
		}
		e.logger.Info("extract sections",
			"pages", len(pages),
			"missing", missing,
			"sections", result.Stats.Sections,
			"emitted", result.Stats.Emitted,
			"omitted", result.Stats.Omitted(),
			"overwritten", result.Stats.Overwritten,
			"discarded", result.Stats.Discarded,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.ExtractSections(pages)
}

// LogResult logs the totals of a merged result at info level.
func LogResult(ctx context.Context, logger *slog.Logger, msg string, result *sharh.Result) {
	logger.InfoContext(ctx, msg,
		"sections", len(result.Sections),
		"emitted", result.Stats.Emitted,
		"no_anchor", result.Stats.OmittedNoAnchor,
		"empty", result.Stats.OmittedEmpty,
		"overwritten", result.Stats.Overwritten,
		"footnotes_dropped", result.Stats.FootnotesDropped,
	)
}
