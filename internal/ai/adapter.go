// adapter.go - Typed extraction of the three record shapes from provider output

package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/taxmitra/tax-doc-recon/internal/model"
)

// defaultStandardDeduction is the standard deduction applied when a Form 16
// parsed successfully but the extractor returned 0 for the field.
const defaultStandardDeduction = 50000

// ExtractionError reports that one document's extraction failed. The
// orchestrator downgrades it to a per-document warning; it never fails the
// whole request.
type ExtractionError struct {
	Kind   model.DocumentKind
	Reason string
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s extraction failed: %s", e.Kind.Label(), e.Reason)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// Adapter wraps the provider with a fixed schema prompt per document kind
// and parses the returned payload into the matching record shape. It makes
// a single attempt per call and keeps nothing between calls.
type Adapter struct {
	provider Provider
}

// NewAdapter creates an adapter over the given provider.
func NewAdapter(provider Provider) *Adapter {
	return &Adapter{provider: provider}
}

// ExtractForm16 extracts a Form16Record from the PDF bytes.
func (a *Adapter) ExtractForm16(ctx context.Context, pdf []byte) (model.Form16Record, error) {
	var rec model.Form16Record
	if err := a.extract(ctx, model.KindForm16, pdf, &rec); err != nil {
		return model.Form16Record{}, err
	}
	clampNonNegative(
		&rec.GrossSalary, &rec.BasicSalary, &rec.HRA, &rec.SpecialAllowance,
		&rec.ProfessionalTax, &rec.EmployeePF, &rec.EmployerPF,
		&rec.Section80C, &rec.Section80D, &rec.Section80CCD1B,
		&rec.StandardDeduction, &rec.TDSDeducted, &rec.TotalIncome, &rec.TaxableIncome,
	)
	if rec.StandardDeduction == 0 {
		rec.StandardDeduction = defaultStandardDeduction
	}
	return rec, nil
}

// ExtractForm26AS extracts a Form26ASRecord from the PDF bytes.
func (a *Adapter) ExtractForm26AS(ctx context.Context, pdf []byte) (model.Form26ASRecord, error) {
	var rec model.Form26ASRecord
	if err := a.extract(ctx, model.KindForm26AS, pdf, &rec); err != nil {
		return model.Form26ASRecord{}, err
	}
	clampNonNegative(
		&rec.TotalTDS, &rec.AdvanceTax, &rec.SelfAssessmentTax,
		&rec.SalaryIncome, &rec.InterestIncome,
	)
	for i := range rec.TDSEntries {
		clampNonNegative(&rec.TDSEntries[i].AmountPaid, &rec.TDSEntries[i].TDSDeposited)
	}
	return rec, nil
}

// ExtractAIS extracts an AISRecord from the PDF bytes.
func (a *Adapter) ExtractAIS(ctx context.Context, pdf []byte) (model.AISRecord, error) {
	var rec model.AISRecord
	if err := a.extract(ctx, model.KindAIS, pdf, &rec); err != nil {
		return model.AISRecord{}, err
	}
	clampNonNegative(
		&rec.SalaryIncome, &rec.InterestIncome, &rec.DividendIncome,
		&rec.RentalIncome, &rec.LTCG, &rec.STCG, &rec.MutualFundTxns,
		&rec.ForeignIncome, &rec.TotalTDS,
	)
	return rec, nil
}

// extract makes the provider call for one document and unmarshals the
// cleaned payload into out.
func (a *Adapter) extract(ctx context.Context, kind model.DocumentKind, pdf []byte, out interface{}) error {
	raw, err := a.provider.GenerateJSON(ctx, promptFor(kind), pdf)
	if err != nil {
		return &ExtractionError{Kind: kind, Reason: err.Error(), Err: err}
	}

	cleaned := stripCodeFence(raw)

	// The response must be a non-empty JSON object before it is trusted as
	// a record. A bare parse into the target struct would accept "null",
	// "[]" or "{}" silently.
	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &probe); err != nil || len(probe) == 0 {
		return &ExtractionError{Kind: kind, Reason: "empty or invalid response", Err: err}
	}

	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return &ExtractionError{Kind: kind, Reason: "empty or invalid response", Err: err}
	}
	return nil
}

// stripCodeFence removes a markdown code fence wrapping the payload, a
// formatting quirk the model produces despite the prompt. Tolerant
// normalization only; unfenced payloads pass through untouched.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func clampNonNegative(fields ...*int64) {
	for _, f := range fields {
		if *f < 0 {
			*f = 0
		}
	}
}
