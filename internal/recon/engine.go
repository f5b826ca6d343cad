// engine.go - Cross-document reconciliation rules.

package recon

import (
	"fmt"
	"strings"

	"github.com/taxmitra/tax-doc-recon/internal/currency"
	"github.com/taxmitra/tax-doc-recon/internal/model"
)

// Comparison thresholds in rupees. Differences must be strictly greater
// than the threshold to trigger; a difference of exactly the threshold
// does not.
const (
	tdsMismatchThreshold      = 1000
	salaryMismatchThreshold   = 5000
	interestMismatchThreshold = 2000
	capitalGainsThreshold     = 10000
	dividendThreshold         = 5000
)

// missingPANSentinel is the literal Form 26AS prints when a deductor's PAN
// is not on record.
const missingPANSentinel = "pan not available"

// rule inspects the three records and returns one finding, or nil when its
// trigger condition does not hold. Rules never see partial records: absent
// or failed documents arrive as zero values, so a rule comparing a field
// against a missing document can never trigger.
type rule func(f16 model.Form16Record, as26 model.Form26ASRecord, ais model.AISRecord) *model.Finding

// rules run in this fixed order; the findings list preserves it.
var rules = []rule{
	checkTDSMismatch,
	checkSalaryMismatch,
	checkMissingDeductorPAN,
	checkInterestMismatch,
	checkCapitalGains,
	checkDividendIncome,
}

// Reconcile runs every rule against the three records and returns the
// findings in rule order. It is pure and safe to call concurrently on
// different inputs; rules are independent and one triggering never
// suppresses another.
func Reconcile(f16 model.Form16Record, as26 model.Form26ASRecord, ais model.AISRecord) []model.Finding {
	findings := make([]model.Finding, 0, len(rules))
	for _, r := range rules {
		if f := r(f16, as26, ais); f != nil {
			findings = append(findings, *f)
		}
	}
	return findings
}

func checkTDSMismatch(f16 model.Form16Record, as26 model.Form26ASRecord, _ model.AISRecord) *model.Finding {
	if f16.TDSDeducted <= 0 || as26.TotalTDS <= 0 {
		return nil
	}
	diff := absDiff(f16.TDSDeducted, as26.TotalTDS)
	if diff <= tdsMismatchThreshold {
		return nil
	}
	return &model.Finding{
		SeverityClass: model.SeverityCritical,
		Title:         "TDS mismatch between Form 16 and Form 26AS",
		Description: fmt.Sprintf("Form 16 shows TDS of %s but Form 26AS shows %s, a difference of %s.",
			currency.Rupees(f16.TDSDeducted), currency.Rupees(as26.TotalTDS), currency.Rupees(diff)),
		RecommendedAction: "Contact your employer's payroll team to correct the deposit. TDS that is not reflected in Form 26AS cannot be claimed as credit.",
		SeverityColor:     model.ColorRed,
	}
}

func checkSalaryMismatch(f16 model.Form16Record, _ model.Form26ASRecord, ais model.AISRecord) *model.Finding {
	if f16.GrossSalary <= 0 || ais.SalaryIncome <= 0 {
		return nil
	}
	diff := absDiff(f16.GrossSalary, ais.SalaryIncome)
	if diff <= salaryMismatchThreshold {
		return nil
	}
	return &model.Finding{
		SeverityClass: model.SeverityWarning,
		Title:         "Salary mismatch between Form 16 and AIS",
		Description: fmt.Sprintf("Form 16 reports gross salary of %s while AIS reports %s, a difference of %s.",
			currency.Rupees(f16.GrossSalary), currency.Rupees(ais.SalaryIncome), currency.Rupees(diff)),
		RecommendedAction: "Declare the correct salary figure in your return. AIS may include perquisites or benefits not shown in Form 16.",
		SeverityColor:     model.ColorAmber,
	}
}

func checkMissingDeductorPAN(_ model.Form16Record, as26 model.Form26ASRecord, _ model.AISRecord) *model.Finding {
	if len(as26.TDSEntries) == 0 {
		return nil
	}
	missing := 0
	for _, e := range as26.TDSEntries {
		pan := strings.TrimSpace(e.DeductorPAN)
		if pan == "" || strings.EqualFold(pan, missingPANSentinel) {
			missing++
		}
	}
	if missing == 0 {
		return nil
	}
	noun := "entries"
	if missing == 1 {
		noun = "entry"
	}
	return &model.Finding{
		SeverityClass:     model.SeverityWarning,
		Title:             "TDS entries with missing deductor PAN",
		Description:       fmt.Sprintf("%d TDS %s in Form 26AS %s no deductor PAN on record.", missing, noun, verbFor(missing)),
		RecommendedAction: "Ask the deductor to file a TDS correction statement so the credit maps to a valid PAN.",
		SeverityColor:     model.ColorAmber,
	}
}

func checkInterestMismatch(_ model.Form16Record, as26 model.Form26ASRecord, ais model.AISRecord) *model.Finding {
	if ais.InterestIncome <= 0 || as26.InterestIncome <= 0 {
		return nil
	}
	diff := absDiff(ais.InterestIncome, as26.InterestIncome)
	if diff <= interestMismatchThreshold {
		return nil
	}
	return &model.Finding{
		SeverityClass: model.SeverityWarning,
		Title:         "Interest income discrepancy between AIS and Form 26AS",
		Description: fmt.Sprintf("AIS reports interest income of %s while Form 26AS reports %s, a difference of %s.",
			currency.Rupees(ais.InterestIncome), currency.Rupees(as26.InterestIncome), currency.Rupees(diff)),
		RecommendedAction: "Declare the higher of the two figures to avoid a mismatch notice from the department.",
		SeverityColor:     model.ColorAmber,
	}
}

func checkCapitalGains(_ model.Form16Record, _ model.Form26ASRecord, ais model.AISRecord) *model.Finding {
	total := ais.LTCG + ais.STCG
	if total <= capitalGainsThreshold || (ais.LTCG <= 0 && ais.STCG <= 0) {
		return nil
	}
	return &model.Finding{
		SeverityClass: model.SeverityInfo,
		Title:         "Capital gains reported in AIS",
		Description: fmt.Sprintf("AIS shows capital gains of %s (LTCG %s, STCG %s).",
			currency.Rupees(total), currency.Rupees(ais.LTCG), currency.Rupees(ais.STCG)),
		RecommendedAction: "Cross-check these figures against your broker's capital gains statement before filing.",
		SeverityColor:     model.ColorBlue,
	}
}

func checkDividendIncome(_ model.Form16Record, _ model.Form26ASRecord, ais model.AISRecord) *model.Finding {
	if ais.DividendIncome <= dividendThreshold {
		return nil
	}
	return &model.Finding{
		SeverityClass:     model.SeverityInfo,
		Title:             "Dividend income reported in AIS",
		Description:       fmt.Sprintf("AIS shows dividend income of %s.", currency.Rupees(ais.DividendIncome)),
		RecommendedAction: "Declare this under income from other sources and verify any TDS deducted on the dividend.",
		SeverityColor:     model.ColorBlue,
	}
}

func absDiff(a, b int64) int64 {
	if a > b {
		return a - b
	}
	return b - a
}

func verbFor(n int) string {
	if n == 1 {
		return "has"
	}
	return "have"
}
