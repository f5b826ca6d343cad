// orchestrator.go - Per-document extraction with failure isolation.

package recon

import (
	"context"
	"sync"

	"github.com/taxmitra/tax-doc-recon/internal/model"
)

// Extractor turns one uploaded PDF into its structured record. Each method
// makes a single attempt and returns a descriptive error on failure.
type Extractor interface {
	ExtractForm16(ctx context.Context, pdf []byte) (model.Form16Record, error)
	ExtractForm26AS(ctx context.Context, pdf []byte) (model.Form26ASRecord, error)
	ExtractAIS(ctx context.Context, pdf []byte) (model.AISRecord, error)
}

// Documents carries the raw bytes of the uploaded PDFs. A nil slice means
// the document was not supplied.
type Documents struct {
	Form16   []byte
	Form26AS []byte
	AIS      []byte
}

// Orchestrator runs the per-document extractions and the reconciliation
// engine for one request. It is stateless and safe for concurrent use.
type Orchestrator struct {
	extractor Extractor
}

// NewOrchestrator creates an orchestrator backed by the given extractor.
func NewOrchestrator(extractor Extractor) *Orchestrator {
	return &Orchestrator{extractor: extractor}
}

// Run extracts every supplied document concurrently, then reconciles the
// resulting records. Each extraction is isolated: a failure in one slot is
// downgraded to a Warning and leaves that slot's record zero-valued, while
// the other slots proceed untouched. Each goroutine writes to a distinct
// slot, so the only synchronization needed is the join.
//
// Warnings come out in the fixed kind order (Form 16, Form 26AS, AIS)
// regardless of which extraction finished or failed first. Called with no
// documents at all, Run returns an all-default result with no warnings.
func (o *Orchestrator) Run(ctx context.Context, docs Documents) model.CombinedResult {
	var result model.CombinedResult
	failures := make([]error, len(model.AllKinds))

	var wg sync.WaitGroup
	if docs.Form16 != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec, err := o.extractor.ExtractForm16(ctx, docs.Form16)
			if err != nil {
				failures[model.KindForm16] = err
				return
			}
			result.Form16 = rec
		}()
	}
	if docs.Form26AS != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec, err := o.extractor.ExtractForm26AS(ctx, docs.Form26AS)
			if err != nil {
				failures[model.KindForm26AS] = err
				return
			}
			result.Form26AS = rec
		}()
	}
	if docs.AIS != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec, err := o.extractor.ExtractAIS(ctx, docs.AIS)
			if err != nil {
				failures[model.KindAIS] = err
				return
			}
			result.AIS = rec
		}()
	}
	wg.Wait()

	result.Warnings = make([]model.Warning, 0, len(model.AllKinds))
	for _, kind := range model.AllKinds {
		if err := failures[kind]; err != nil {
			result.Warnings = append(result.Warnings, model.Warning{
				Document: kind.Label(),
				Message:  err.Error(),
			})
		}
	}

	result.Findings = Reconcile(result.Form16, result.Form26AS, result.AIS)
	return result
}
