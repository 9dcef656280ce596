// Package convert orchestrates the walk → extract → convert → write
// pipeline and the consolidation of its outputs.
package convert

import (
	"context"
	"os"

	"github.com/lisaross/site2context"
)

// ProgressType identifies the kind of progress event.
type ProgressType int

// Progress event types emitted during a pipeline run.
const (
	ProgressConverted ProgressType = iota
	ProgressFallback
	ProgressFailed
)

// ProgressEvent reports per-file progress during a run.
type ProgressEvent struct {
	Type ProgressType
	Path string
	Err  error
}

// ProgressFunc is called once per processed file, in walk order.
type ProgressFunc func(ProgressEvent)

// Pipeline processes every HTML file under the input root sequentially,
// one file at a time in walk order. Per-file failures are recorded in the
// corresponding PageResult and never abort the walk.
type Pipeline struct {
	Walker    site2context.Walker
	Extractor site2context.Extractor
	Converter site2context.Converter
	Writer    site2context.ResultWriter
}

// Run executes the pipeline. It returns one PageResult per walked file and
// the aggregated report. The returned error covers walk-level problems
// (e.g. a missing input root), not per-file failures.
func (p *Pipeline) Run(ctx context.Context, progress ProgressFunc) ([]*site2context.PageResult, *Report, error) {
	var results []*site2context.PageResult
	report := &Report{}

	err := p.Walker.Walk(ctx, func(entry site2context.WalkEntry) error {
		result := p.processFile(ctx, entry)
		results = append(results, result)
		report.Add(result)

		if progress != nil {
			switch {
			case result.Err != nil:
				progress(ProgressEvent{Type: ProgressFailed, Path: result.SourcePath, Err: result.Err})
			case result.LowConfidence:
				progress(ProgressEvent{Type: ProgressFallback, Path: result.SourcePath})
			default:
				progress(ProgressEvent{Type: ProgressConverted, Path: result.SourcePath})
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return results, report, nil
}

// processFile converts one HTML file. Any failure is recorded on the
// result rather than returned.
func (p *Pipeline) processFile(ctx context.Context, entry site2context.WalkEntry) *site2context.PageResult {
	result := &site2context.PageResult{
		SourcePath: entry.RelPath,
		OutputPath: entry.OutPath,
	}

	raw, err := os.ReadFile(entry.Path)
	if err != nil {
		result.Err = err
		return result
	}

	extracted, err := p.Extractor.Extract(string(raw))
	if err != nil {
		result.Err = err
		return result
	}
	result.Title = extracted.Title
	result.Fields = extracted.Fields
	result.LowConfidence = extracted.UsedBodyFallback

	markdown, err := p.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		result.Err = err
		return result
	}
	result.Markdown = markdown

	if p.Writer != nil {
		if err := p.Writer.WriteResult(ctx, result); err != nil {
			result.Err = err
		}
	}

	return result
}
