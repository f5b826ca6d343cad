// prompts.go - Fixed schema prompts, one per document kind

package ai

import "github.com/taxmitra/tax-doc-recon/internal/model"

// Each prompt instructs the model to return a single JSON object with an
// exact, enumerated key set matching the corresponding record shape. Rules
// shared by all three: amounts are whole rupees without separators or
// symbols, 0 for missing numeric fields, "" for missing string fields,
// and no prose around the JSON.

const promptRules = `
Rules:
- Return ONLY one JSON object. No explanation, no markdown, no surrounding prose.
- Every key listed above MUST be present.
- All amounts are whole rupees as plain numbers: no commas, no currency symbols, no decimals.
- Use 0 for any numeric field the document does not show.
- Use "" for any string field the document does not show.`

const form16Prompt = `You are reading an Indian Form 16 (employer-issued salary and TDS certificate) PDF.
Extract the following fields into a JSON object with exactly these keys:

{
  "name": "employee name",
  "pan": "employee PAN",
  "employer_name": "employer name",
  "gross_salary": 0,
  "basic_salary": 0,
  "hra": 0,
  "special_allowance": 0,
  "professional_tax": 0,
  "employee_pf": 0,
  "employer_pf": 0,
  "section_80c": 0,
  "section_80d": 0,
  "section_80ccd_1b": 0,
  "standard_deduction": 0,
  "tds_deducted": 0,
  "total_income": 0,
  "taxable_income": 0
}
` + promptRules

const form26ASPrompt = `You are reading an Indian Form 26AS (consolidated tax credit statement) PDF.
Extract the following fields into a JSON object with exactly these keys:

{
  "pan": "taxpayer PAN",
  "tds_entries": [
    {
      "deductor_name": "name of the deductor",
      "amount_paid": 0,
      "tds_deposited": 0,
      "deductor_pan": "deductor PAN, or \"\" if the statement does not show one"
    }
  ],
  "total_tds": 0,
  "advance_tax": 0,
  "self_assessment_tax": 0,
  "salary_income": 0,
  "interest_income": 0
}

List every row of the TDS table as one element of tds_entries, in document
order. If the statement prints "PAN not available" for a deductor, copy
that literal text into deductor_pan.
` + promptRules

const aisPrompt = `You are reading an Indian AIS (Annual Information Statement) PDF.
Extract the following fields into a JSON object with exactly these keys:

{
  "pan": "taxpayer PAN",
  "salary_income": 0,
  "interest_income": 0,
  "dividend_income": 0,
  "rental_income": 0,
  "ltcg": 0,
  "stcg": 0,
  "mutual_fund_transactions": 0,
  "foreign_income": 0,
  "total_tds": 0
}

mutual_fund_transactions is the COUNT of mutual fund transactions reported,
not an amount. ltcg and stcg are long-term and short-term capital gains.
` + promptRules

// promptFor returns the fixed schema prompt for the given document kind.
func promptFor(kind model.DocumentKind) string {
	switch kind {
	case model.KindForm16:
		return form16Prompt
	case model.KindForm26AS:
		return form26ASPrompt
	default:
		return aisPrompt
	}
}
