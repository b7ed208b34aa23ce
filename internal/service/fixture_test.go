package service

import (
	"strings"
	"testing"

	"stembills-dashboard/internal/repository/contract"
	"stembills-dashboard/internal/repository/implementation"

	"github.com/stretchr/testify/require"
)

// Rows are deliberately out of congress order so row ids differ from sorted positions.
const fixtureCSV = `congress,Intro_bills,passed_house,paassed_senate,enacted_signed_by_pres,enacted_included_in_other_bill
94,60,12,9,7,3
93,50,10,8,5,2
95,40,20,4,1,0
`

func newFixtureRepo(t *testing.T) contract.BillRepository {
	t.Helper()
	repo, err := implementation.NewBillRepositoryFromReader(strings.NewReader(fixtureCSV))
	require.NoError(t, err)
	return repo
}

// governmentRepo adds the term and split-government columns the real table lacks.
type governmentRepo struct {
	contract.BillRepository
	terms    []int
	splitGov []int
}

func (r *governmentRepo) Column(name string) ([]int, error) {
	switch name {
	case "congressional_term":
		return r.terms, nil
	case "Split_Gov":
		return r.splitGov, nil
	}
	return r.BillRepository.Column(name)
}
