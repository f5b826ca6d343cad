// records.go - Canonical shapes of the three extracted tax documents.

package model

// DocumentKind identifies which of the three supported tax documents a
// record or warning refers to. The declared order is the stable output
// order used everywhere (warnings, logs).
type DocumentKind int

const (
	KindForm16 DocumentKind = iota
	KindForm26AS
	KindAIS
)

// Label returns the user-facing name of the document kind.
func (k DocumentKind) Label() string {
	switch k {
	case KindForm16:
		return "Form 16"
	case KindForm26AS:
		return "Form 26AS"
	case KindAIS:
		return "AIS"
	default:
		return "unknown"
	}
}

// AllKinds lists the document kinds in their fixed processing order.
var AllKinds = []DocumentKind{KindForm16, KindForm26AS, KindAIS}

// Form16Record holds the fields extracted from an employer-issued Form 16.
// All amounts are whole rupees; a field the document did not carry is zero.
type Form16Record struct {
	Name              string `json:"name"`
	PAN               string `json:"pan"`
	EmployerName      string `json:"employer_name"`
	GrossSalary       int64  `json:"gross_salary"`
	BasicSalary       int64  `json:"basic_salary"`
	HRA               int64  `json:"hra"`
	SpecialAllowance  int64  `json:"special_allowance"`
	ProfessionalTax   int64  `json:"professional_tax"`
	EmployeePF        int64  `json:"employee_pf"`
	EmployerPF        int64  `json:"employer_pf"`
	Section80C        int64  `json:"section_80c"`
	Section80D        int64  `json:"section_80d"`
	Section80CCD1B    int64  `json:"section_80ccd_1b"`
	StandardDeduction int64  `json:"standard_deduction"`
	TDSDeducted       int64  `json:"tds_deducted"`
	TotalIncome       int64  `json:"total_income"`
	TaxableIncome     int64  `json:"taxable_income"`
}

// TDSEntry is one deductor row from the Form 26AS TDS table. DeductorPAN
// may be empty or the literal "PAN not available" when the statement does
// not carry it.
type TDSEntry struct {
	DeductorName string `json:"deductor_name"`
	AmountPaid   int64  `json:"amount_paid"`
	TDSDeposited int64  `json:"tds_deposited"`
	DeductorPAN  string `json:"deductor_pan"`
}

// Form26ASRecord holds the fields extracted from the tax department's
// consolidated Form 26AS statement.
type Form26ASRecord struct {
	PAN               string     `json:"pan"`
	TDSEntries        []TDSEntry `json:"tds_entries"`
	TotalTDS          int64      `json:"total_tds"`
	AdvanceTax        int64      `json:"advance_tax"`
	SelfAssessmentTax int64      `json:"self_assessment_tax"`
	SalaryIncome      int64      `json:"salary_income"`
	InterestIncome    int64      `json:"interest_income"`
}

// AISRecord holds the fields extracted from the Annual Information
// Statement.
type AISRecord struct {
	PAN            string `json:"pan"`
	SalaryIncome   int64  `json:"salary_income"`
	InterestIncome int64  `json:"interest_income"`
	DividendIncome int64  `json:"dividend_income"`
	RentalIncome   int64  `json:"rental_income"`
	LTCG           int64  `json:"ltcg"`
	STCG           int64  `json:"stcg"`
	MutualFundTxns int64  `json:"mutual_fund_transactions"`
	ForeignIncome  int64  `json:"foreign_income"`
	TotalTDS       int64  `json:"total_tds"`
}

// Warning reports that one document's extraction failed and why. The
// request still succeeds; the affected record is left zero-valued.
type Warning struct {
	Document string `json:"documentLabel"`
	Message  string `json:"message"`
}

// CombinedResult is the per-request output: the three records (zero-valued
// where a document was absent or failed), the reconciliation findings, and
// per-document extraction warnings. It holds no state beyond one request.
type CombinedResult struct {
	Form16   Form16Record   `json:"f16Data"`
	Form26AS Form26ASRecord `json:"as26Data"`
	AIS      AISRecord      `json:"aisData"`
	Findings []Finding      `json:"findings"`
	Warnings []Warning      `json:"warnings"`
}
