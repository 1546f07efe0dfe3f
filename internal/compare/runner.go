package compare

import (
	"context"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/toonlab/toonbench/internal/cost"
	"github.com/toonlab/toonbench/internal/dataset"
	"github.com/toonlab/toonbench/internal/encoding"
	"github.com/toonlab/toonbench/internal/prompt"
	"github.com/toonlab/toonbench/pkg/azopenai"
)

const defaultPreviewChars = 400

// Runner executes the encode → build → complete → estimate pipeline once per
// notation and assembles the comparison.
type Runner struct {
	Client       azopenai.Client
	Calc         *cost.Calculator
	Question     string
	PreviewChars int
	// Parallel runs the two variants concurrently. They are causally
	// independent and share only the read-only dataset, so either ordering
	// is sound; sequential (JSON first) is the default.
	Parallel bool
}

// Run executes both variants against the same dataset and compares them.
// A comparison requires both runs to succeed; any failure aborts with no
// partial result.
func (r *Runner) Run(ctx context.Context, ds dataset.Dataset) (*Result, error) {
	runID := uuid.NewString()

	var jsonRes, toonRes RunResult
	if r.Parallel {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			res, err := r.runOne(gctx, runID, ds, encoding.KindJSON)
			jsonRes = res
			return err
		})
		g.Go(func() error {
			res, err := r.runOne(gctx, runID, ds, encoding.KindTOON)
			toonRes = res
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		var err error
		if jsonRes, err = r.runOne(ctx, runID, ds, encoding.KindJSON); err != nil {
			return nil, err
		}
		if toonRes, err = r.runOne(ctx, runID, ds, encoding.KindTOON); err != nil {
			return nil, err
		}
	}

	return Compare(jsonRes, toonRes), nil
}

func (r *Runner) runOne(ctx context.Context, runID string, ds dataset.Dataset, kind encoding.Kind) (RunResult, error) {
	payload, err := encoding.Encode(ds, kind)
	if err != nil {
		return RunResult{}, eris.Wrapf(err, "compare: encode %s variant", kind)
	}

	req := prompt.Build(r.Question, payload)

	zap.L().Info("running variant",
		zap.String("run_id", runID),
		zap.String("mode", string(kind)),
		zap.Int("payload_bytes", len(payload.Text)),
	)

	resp, err := r.Client.ChatCompletion(ctx, req)
	if err != nil {
		return RunResult{}, eris.Wrapf(err, "compare: complete %s variant", kind)
	}

	if !resp.Usage.Consistent() {
		// The service owns this invariant; a violation taints the counters
		// but not the comparison itself.
		zap.L().Warn("usage counters inconsistent",
			zap.String("run_id", runID),
			zap.String("mode", string(kind)),
			zap.Int64("prompt_tokens", resp.Usage.PromptTokens),
			zap.Int64("completion_tokens", resp.Usage.CompletionTokens),
			zap.Int64("total_tokens", resp.Usage.TotalTokens),
		)
	}

	estimated := r.Calc.Estimate(resp.Usage)

	zap.L().Info("variant complete",
		zap.String("run_id", runID),
		zap.String("mode", string(kind)),
		zap.Int64("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int64("completion_tokens", resp.Usage.CompletionTokens),
		zap.Int64("total_tokens", resp.Usage.TotalTokens),
		zap.Float64("estimated_cost_usd", estimated),
	)

	return RunResult{
		Mode:    kind,
		Usage:   resp.Usage,
		Cost:    estimated,
		Preview: truncate(resp.Text, r.previewChars()),
	}, nil
}

func (r *Runner) previewChars() int {
	if r.PreviewChars <= 0 {
		return defaultPreviewChars
	}
	return r.PreviewChars
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "...\n[truncated]"
}
