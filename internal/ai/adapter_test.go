package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxmitra/tax-doc-recon/internal/model"
)

// fakeProvider returns a scripted response or error for every call.
type fakeProvider struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeProvider) GenerateJSON(ctx context.Context, prompt string, pdf []byte) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func (f *fakeProvider) Name() string { return "fake" }

func TestExtractForm16ParsesPlainJSON(t *testing.T) {
	adapter := NewAdapter(&fakeProvider{
		response: `{"name":"Priya Sharma","pan":"ABCPS1234F","gross_salary":1200000,"tds_deducted":95000,"standard_deduction":50000}`,
	})

	rec, err := adapter.ExtractForm16(context.Background(), []byte("%PDF"))
	require.NoError(t, err)
	assert.Equal(t, "Priya Sharma", rec.Name)
	assert.Equal(t, int64(1200000), rec.GrossSalary)
	assert.Equal(t, int64(95000), rec.TDSDeducted)
}

func TestExtractForm16StripsCodeFence(t *testing.T) {
	adapter := NewAdapter(&fakeProvider{
		response: "```json\n{\"name\":\"Priya Sharma\",\"gross_salary\":1200000}\n```",
	})

	rec, err := adapter.ExtractForm16(context.Background(), []byte("%PDF"))
	require.NoError(t, err)
	assert.Equal(t, "Priya Sharma", rec.Name)
	assert.Equal(t, int64(1200000), rec.GrossSalary)
}

func TestExtractForm16AppliesStandardDeductionDefault(t *testing.T) {
	adapter := NewAdapter(&fakeProvider{
		response: `{"name":"Priya Sharma","standard_deduction":0}`,
	})

	rec, err := adapter.ExtractForm16(context.Background(), []byte("%PDF"))
	require.NoError(t, err)
	assert.Equal(t, int64(50000), rec.StandardDeduction)
}

func TestExtractForm16ClampsNegativeAmounts(t *testing.T) {
	adapter := NewAdapter(&fakeProvider{
		response: `{"gross_salary":-500,"tds_deducted":1000}`,
	})

	rec, err := adapter.ExtractForm16(context.Background(), []byte("%PDF"))
	require.NoError(t, err)
	assert.Equal(t, int64(0), rec.GrossSalary)
	assert.Equal(t, int64(1000), rec.TDSDeducted)
}

func TestExtractSurfacesUpstreamFailure(t *testing.T) {
	upstream := errors.New("503 model overloaded")
	adapter := NewAdapter(&fakeProvider{err: upstream})

	_, err := adapter.ExtractForm26AS(context.Background(), []byte("%PDF"))
	require.Error(t, err)

	var extErr *ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.Equal(t, model.KindForm26AS, extErr.Kind)
	assert.Contains(t, extErr.Reason, "model overloaded")
	assert.ErrorIs(t, err, upstream)
}

func TestExtractRejectsUnparsablePayloads(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"prose instead of JSON", "I could not read this document, sorry."},
		{"empty object", "{}"},
		{"JSON array", `[{"pan":"ABCPS1234F"}]`},
		{"JSON null", "null"},
		{"empty string", ""},
		{"fenced empty object", "```json\n{}\n```"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := NewAdapter(&fakeProvider{response: tt.response})

			_, err := adapter.ExtractAIS(context.Background(), []byte("%PDF"))
			require.Error(t, err)

			var extErr *ExtractionError
			require.ErrorAs(t, err, &extErr)
			assert.Equal(t, "empty or invalid response", extErr.Reason)
			assert.Equal(t, model.KindAIS, extErr.Kind)
		})
	}
}

func TestExtractUsesKindSpecificPrompt(t *testing.T) {
	provider := &fakeProvider{response: `{"pan":"ABCPS1234F"}`}
	adapter := NewAdapter(provider)

	_, err := adapter.ExtractForm26AS(context.Background(), []byte("%PDF"))
	require.NoError(t, err)
	_, err = adapter.ExtractAIS(context.Background(), []byte("%PDF"))
	require.NoError(t, err)

	require.Len(t, provider.prompts, 2)
	assert.Contains(t, provider.prompts[0], "tds_entries")
	assert.Contains(t, provider.prompts[1], "mutual_fund_transactions")
	assert.NotEqual(t, provider.prompts[0], provider.prompts[1])
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence(`{"a":1}`))
	assert.Equal(t, `{"a":1}`, stripCodeFence("  {\"a\":1}\n"))
}
