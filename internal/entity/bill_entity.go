// FILE: internal/entity/bill_entity.go
package entity

// BillRecord is one congress session's STEM bill counts.
// Row is the record's position in the source file and survives sorting.
type BillRecord struct {
	Row                        int `validate:"gte=0"`
	Congress                   int `validate:"gt=0"`
	IntroBills                 int `validate:"gte=0"`
	PassedHouse                int `validate:"gte=0"`
	PassedSenate               int `validate:"gte=0"`
	EnactedSignedByPres        int `validate:"gte=0"`
	EnactedIncludedInOtherBill int `validate:"gte=0"`
}

// CombinedPassed is the passage count shown next to introduced bills in the stage chart.
func (r BillRecord) CombinedPassed() int {
	return r.PassedHouse + r.PassedSenate + r.EnactedSignedByPres
}

// BillTotals holds column sums over every session.
type BillTotals struct {
	Congress                   int `json:"congress"`
	IntroBills                 int `json:"Intro_bills"`
	PassedHouse                int `json:"passed_house"`
	PassedSenate               int `json:"paassed_senate"`
	EnactedSignedByPres        int `json:"enacted_signed_by_pres"`
	EnactedIncludedInOtherBill int `json:"enacted_included_in_other_bill"`
}

func (t *BillTotals) Add(r BillRecord) {
	t.Congress += r.Congress
	t.IntroBills += r.IntroBills
	t.PassedHouse += r.PassedHouse
	t.PassedSenate += r.PassedSenate
	t.EnactedSignedByPres += r.EnactedSignedByPres
	t.EnactedIncludedInOtherBill += r.EnactedIncludedInOtherBill
}
