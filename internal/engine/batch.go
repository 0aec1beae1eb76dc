package engine

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/match-engine/internal/types"
)

// batchParallelism bounds concurrent matches inside one batch call; each
// match already fans out twelve tasks of its own.
const batchParallelism = 4

// BatchRequest represents an ordered list of candidate/job pairs sharing one
// set of options
type BatchRequest struct {
	Items         []BatchItem        `json:"items" validate:"required,min=1"`
	Options       types.MatchOptions `json:"options"`
	AllowParallel bool               `json:"allow_parallel"`
}

// BatchItem is one candidate/job pair inside a batch
type BatchItem struct {
	Candidate *types.CandidateProfile `json:"candidate"`
	Job       *types.JobProfile       `json:"job"`
}

// BatchItemResult carries either a response or a per-item error, never both
type BatchItemResult struct {
	Index    int                     `json:"index"`
	Response *types.MatchingResponse `json:"response,omitempty"`
	Error    string                  `json:"error,omitempty"`
}

// BatchSummary aggregates outcomes across the batch
type BatchSummary struct {
	Total               int     `json:"total"`
	Succeeded           int     `json:"succeeded"`
	Failed              int     `json:"failed"`
	SuccessRate         float64 `json:"success_rate"`
	ElapsedMS           float64 `json:"elapsed_ms"`
	ThroughputPerSecond float64 `json:"throughput_per_second"`
}

// BatchResult holds one result per item, in input order, plus the summary
type BatchResult struct {
	Results []BatchItemResult `json:"results"`
	Summary BatchSummary      `json:"summary"`
}

// MatchBatch scores every pair in order. A malformed item produces a per-item
// error without aborting the batch; the call itself fails only on an empty
// item list.
func (e *Engine) MatchBatch(ctx context.Context, req *BatchRequest) (*BatchResult, error) {
	if req == nil || len(req.Items) == 0 {
		return nil, &types.ConfigurationError{
			Field:   "items",
			Message: "batch requires at least one candidate/job pair",
		}
	}

	start := time.Now()
	results := make([]BatchItemResult, len(req.Items))

	scoreItem := func(i int) {
		item := req.Items[i]
		response, err := e.Match(ctx, &types.MatchingRequest{
			Candidate: item.Candidate,
			Job:       item.Job,
			Options:   req.Options,
		})
		if err != nil {
			results[i] = BatchItemResult{Index: i, Error: err.Error()}
			return
		}
		results[i] = BatchItemResult{Index: i, Response: response}
	}

	if req.AllowParallel {
		group := new(errgroup.Group)
		group.SetLimit(batchParallelism)
		for i := range req.Items {
			i := i
			group.Go(func() error {
				scoreItem(i)
				return nil
			})
		}
		_ = group.Wait()
	} else {
		for i := range req.Items {
			scoreItem(i)
		}
	}

	succeeded := 0
	for _, r := range results {
		if r.Error == "" {
			succeeded++
		}
	}
	elapsed := time.Since(start)

	summary := BatchSummary{
		Total:       len(results),
		Succeeded:   succeeded,
		Failed:      len(results) - succeeded,
		SuccessRate: float64(succeeded) / float64(len(results)),
		ElapsedMS:   float64(elapsed.Microseconds()) / 1000,
	}
	if elapsed > 0 {
		summary.ThroughputPerSecond = float64(len(results)) / elapsed.Seconds()
	}

	e.logger.Info("batch completed",
		zap.Int("total", summary.Total),
		zap.Int("failed", summary.Failed),
		zap.Float64("success_rate", summary.SuccessRate),
	)

	return &BatchResult{Results: results, Summary: summary}, nil
}
