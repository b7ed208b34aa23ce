package implementation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"stembills-dashboard/internal/constant"
	"stembills-dashboard/internal/entity"
	"stembills-dashboard/internal/pkg/logger"
	"stembills-dashboard/internal/repository/contract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `congress,Intro_bills,passed_house,paassed_senate,enacted_signed_by_pres,enacted_included_in_other_bill
95,70,14,9,6,3
93,50,10,8,5,2
94,61,12,7,4,1
`

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bills.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewCSVBillRepositorySortsByCongress(t *testing.T) {
	repo, err := NewCSVBillRepository(writeCSV(t, sampleCSV), logger.NewNopLogger())
	require.NoError(t, err)

	records := repo.All()
	require.Len(t, records, 3)
	assert.Equal(t, []int{93, 94, 95}, []int{records[0].Congress, records[1].Congress, records[2].Congress})

	// Row keeps the file position.
	assert.Equal(t, []int{1, 2, 0}, []int{records[0].Row, records[1].Row, records[2].Row})

	assert.Equal(t, entity.BillRecord{
		Row: 1, Congress: 93, IntroBills: 50, PassedHouse: 10, PassedSenate: 8,
		EnactedSignedByPres: 5, EnactedIncludedInOtherBill: 2,
	}, records[0])
}

func TestRepositoryDomainValues(t *testing.T) {
	repo, err := NewBillRepositoryFromReader(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	first, last := repo.CongressRange()
	assert.Equal(t, 93, first)
	assert.Equal(t, 95, last)
	assert.Equal(t, []int{93, 94, 95}, repo.Congresses())
	assert.Equal(t, 3, repo.Len())

	totals := repo.Totals()
	assert.Equal(t, 181, totals.IntroBills)
	assert.Equal(t, 15, totals.EnactedSignedByPres)
	assert.Equal(t, 6, totals.EnactedIncludedInOtherBill)

	top, err := repo.MaxOf(constant.ColumnIntroBills)
	require.NoError(t, err)
	assert.Equal(t, 70, top)

	col, err := repo.Column(constant.ColumnPassedSenate)
	require.NoError(t, err)
	assert.Equal(t, []int{8, 7, 9}, col)
}

func TestColumnUnknownName(t *testing.T) {
	repo, err := NewBillRepositoryFromReader(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	_, err = repo.Column(constant.ColumnSplitGov)
	assert.ErrorIs(t, err, contract.ErrColumnNotFound)

	_, err = repo.MaxOf("pop")
	assert.ErrorIs(t, err, contract.ErrColumnNotFound)
}

func TestDuplicateCongressKeepsFileOrder(t *testing.T) {
	csv := "congress,Intro_bills,passed_house,paassed_senate,enacted_signed_by_pres,enacted_included_in_other_bill\n" +
		"94,1,0,0,0,0\n93,2,0,0,0,0\n94,3,0,0,0,0\n"
	repo, err := NewBillRepositoryFromReader(strings.NewReader(csv))
	require.NoError(t, err)

	intro, err := repo.Column(constant.ColumnIntroBills)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 3}, intro)
	assert.Equal(t, []int{93, 94}, repo.Congresses())
}

func TestExtraColumnsAreIgnored(t *testing.T) {
	csv := "notes,congress,Intro_bills,passed_house,paassed_senate,enacted_signed_by_pres,enacted_included_in_other_bill\n" +
		"x,100,1,2,3,4,5\n"
	repo, err := NewBillRepositoryFromReader(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 100, repo.All()[0].Congress)
}

func TestLoadFailures(t *testing.T) {
	header := "congress,Intro_bills,passed_house,paassed_senate,enacted_signed_by_pres,enacted_included_in_other_bill\n"
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"empty file", "", ErrEmptyDataset},
		{"header only", header, ErrEmptyDataset},
		{"missing column", "congress,Intro_bills\n93,1\n", ErrMissingColumn},
		{"non numeric", header + "93,lots,1,1,1,1\n", ErrInvalidValue},
		{"negative count", header + "93,-1,1,1,1,1\n", ErrInvalidValue},
		{"zero congress", header + "0,1,1,1,1,1\n", ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBillRepositoryFromReader(strings.NewReader(tt.content))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewCSVBillRepositoryMissingFile(t *testing.T) {
	_, err := NewCSVBillRepository(filepath.Join(t.TempDir(), "nope.csv"), logger.NewNopLogger())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
