package recon

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxmitra/tax-doc-recon/internal/model"
)

// stubExtractor lets each test script the three extraction outcomes.
type stubExtractor struct {
	f16      model.Form16Record
	f16Err   error
	as26     model.Form26ASRecord
	as26Err  error
	ais      model.AISRecord
	aisErr   error
	f16Delay time.Duration
}

func (s *stubExtractor) ExtractForm16(ctx context.Context, pdf []byte) (model.Form16Record, error) {
	if s.f16Delay > 0 {
		time.Sleep(s.f16Delay)
	}
	return s.f16, s.f16Err
}

func (s *stubExtractor) ExtractForm26AS(ctx context.Context, pdf []byte) (model.Form26ASRecord, error) {
	return s.as26, s.as26Err
}

func (s *stubExtractor) ExtractAIS(ctx context.Context, pdf []byte) (model.AISRecord, error) {
	return s.ais, s.aisErr
}

func TestRunWithNoDocuments(t *testing.T) {
	o := NewOrchestrator(&stubExtractor{})

	result := o.Run(context.Background(), Documents{})

	assert.Equal(t, model.Form16Record{}, result.Form16)
	assert.Equal(t, model.Form26ASRecord{}, result.Form26AS)
	assert.Equal(t, model.AISRecord{}, result.AIS)
	assert.Empty(t, result.Warnings)
	assert.Empty(t, result.Findings)
}

func TestRunSingleFailureIsIsolated(t *testing.T) {
	o := NewOrchestrator(&stubExtractor{
		f16:     model.Form16Record{PAN: "ABCPD1234E", TDSDeducted: 50000},
		as26Err: errors.New("upstream error: model overloaded"),
		ais:     model.AISRecord{PAN: "ABCPD1234E", SalaryIncome: 900000},
	})

	result := o.Run(context.Background(), Documents{
		Form16:   []byte("%PDF-1"),
		Form26AS: []byte("%PDF-2"),
		AIS:      []byte("%PDF-3"),
	})

	// The failed slot defaults to zero values; siblings keep their data.
	assert.Equal(t, int64(50000), result.Form16.TDSDeducted)
	assert.Equal(t, model.Form26ASRecord{}, result.Form26AS)
	assert.Equal(t, int64(900000), result.AIS.SalaryIncome)

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "Form 26AS", result.Warnings[0].Document)
	assert.Contains(t, result.Warnings[0].Message, "model overloaded")

	// No rule pairing Form 16 or AIS against the zeroed 26AS can trigger.
	for _, f := range result.Findings {
		assert.NotContains(t, f.Title, "TDS mismatch")
		assert.NotContains(t, f.Title, "Interest income")
	}
}

func TestRunWarningsFollowKindOrder(t *testing.T) {
	o := NewOrchestrator(&stubExtractor{
		f16Err:   errors.New("form 16 failed"),
		as26Err:  errors.New("26as failed"),
		aisErr:   errors.New("ais failed"),
		f16Delay: 20 * time.Millisecond, // finish Form 16 last on purpose
	})

	result := o.Run(context.Background(), Documents{
		Form16:   []byte("a"),
		Form26AS: []byte("b"),
		AIS:      []byte("c"),
	})

	require.Len(t, result.Warnings, 3)
	assert.Equal(t, "Form 16", result.Warnings[0].Document)
	assert.Equal(t, "Form 26AS", result.Warnings[1].Document)
	assert.Equal(t, "AIS", result.Warnings[2].Document)
}

func TestRunOnlyForm16Supplied(t *testing.T) {
	o := NewOrchestrator(&stubExtractor{
		f16: model.Form16Record{TDSDeducted: 50000},
	})

	result := o.Run(context.Background(), Documents{Form16: []byte("%PDF")})

	assert.Equal(t, int64(50000), result.Form16.TDSDeducted)
	assert.Equal(t, model.Form26ASRecord{}, result.Form26AS)
	assert.Equal(t, model.AISRecord{}, result.AIS)
	assert.Empty(t, result.Warnings)
	// Every cross-document rule needs the counterpart field nonzero, so a
	// lone Form 16 never produces findings.
	assert.Empty(t, result.Findings)
}

func TestRunComputesFindingsAcrossSuccessfulRecords(t *testing.T) {
	o := NewOrchestrator(&stubExtractor{
		f16:  model.Form16Record{TDSDeducted: 60000},
		as26: model.Form26ASRecord{TotalTDS: 55000},
	})

	result := o.Run(context.Background(), Documents{
		Form16:   []byte("a"),
		Form26AS: []byte("b"),
	})

	require.Len(t, result.Findings, 1)
	assert.Equal(t, model.SeverityCritical, result.Findings[0].SeverityClass)
	assert.Contains(t, result.Findings[0].Description, "₹60,000")
	assert.Contains(t, result.Findings[0].Description, "₹55,000")
	assert.Contains(t, result.Findings[0].Description, "₹5,000")
}

func TestRunSkipsAbsentSlots(t *testing.T) {
	// The stub would fail all three, but only the AIS slot is present.
	o := NewOrchestrator(&stubExtractor{
		f16Err:  errors.New("should not be called"),
		as26Err: errors.New("should not be called"),
		ais:     model.AISRecord{DividendIncome: 25000},
	})

	result := o.Run(context.Background(), Documents{AIS: []byte("%PDF")})

	assert.Empty(t, result.Warnings)
	require.Len(t, result.Findings, 1)
	assert.Contains(t, result.Findings[0].Title, "Dividend income")
}
