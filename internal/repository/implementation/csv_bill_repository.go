package implementation

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"stembills-dashboard/internal/constant"
	"stembills-dashboard/internal/entity"
	"stembills-dashboard/internal/pkg/logger"
	"stembills-dashboard/internal/repository/contract"

	"github.com/go-playground/validator/v10"
)

var (
	ErrMissingColumn = errors.New("required column missing")
	ErrInvalidValue  = errors.New("invalid cell value")
	ErrEmptyDataset  = errors.New("dataset has no rows")
)

type csvBillRepository struct {
	records    []entity.BillRecord
	totals     entity.BillTotals
	congresses []int
}

// NewCSVBillRepository reads the bill table once. Any problem with the file aborts
// construction; there is no partially loaded table.
func NewCSVBillRepository(path string, log logger.ILogger) (contract.BillRepository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	repo, err := NewBillRepositoryFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", path, err)
	}

	first, last := repo.CongressRange()
	log.Info("Dataset", "Bill table loaded", map[string]interface{}{
		"path":          path,
		"rows":          repo.Len(),
		"congress_from": first,
		"congress_to":   last,
	})
	return repo, nil
}

func NewBillRepositoryFromReader(r io.Reader) (contract.BillRepository, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDataset
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	validate := validator.New()
	var records []entity.BillRecord
	for row := 0; ; row++ {
		line, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", row, err)
		}

		rec, err := parseRecord(row, line, index)
		if err != nil {
			return nil, err
		}
		if err := validate.Struct(rec); err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrInvalidValue, row, err)
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	return newBillRepository(records), nil
}

func newBillRepository(records []entity.BillRecord) *csvBillRepository {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Congress < records[j].Congress
	})

	repo := &csvBillRepository{records: records}
	for _, r := range records {
		repo.totals.Add(r)
		if n := len(repo.congresses); n == 0 || repo.congresses[n-1] != r.Congress {
			repo.congresses = append(repo.congresses, r.Congress)
		}
	}
	return repo
}

func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		index[name] = i
	}

	var missing []string
	for _, col := range constant.RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return index, nil
}

func parseRecord(row int, line []string, index map[string]int) (entity.BillRecord, error) {
	values := make(map[string]int, len(constant.RequiredColumns))
	for _, col := range constant.RequiredColumns {
		i := index[col]
		if i >= len(line) {
			return entity.BillRecord{}, fmt.Errorf("%w: row %d: %s is empty", ErrInvalidValue, row, col)
		}
		v, err := strconv.Atoi(strings.TrimSpace(line[i]))
		if err != nil {
			return entity.BillRecord{}, fmt.Errorf("%w: row %d: %s=%q", ErrInvalidValue, row, col, line[i])
		}
		values[col] = v
	}

	return entity.BillRecord{
		Row:                        row,
		Congress:                   values[constant.ColumnCongress],
		IntroBills:                 values[constant.ColumnIntroBills],
		PassedHouse:                values[constant.ColumnPassedHouse],
		PassedSenate:               values[constant.ColumnPassedSenate],
		EnactedSignedByPres:        values[constant.ColumnEnactedSignedByPres],
		EnactedIncludedInOtherBill: values[constant.ColumnEnactedIncludedInOtherBill],
	}, nil
}

func (r *csvBillRepository) All() []entity.BillRecord {
	out := make([]entity.BillRecord, len(r.records))
	copy(out, r.records)
	return out
}

func (r *csvBillRepository) Len() int {
	return len(r.records)
}

func (r *csvBillRepository) Column(name string) ([]int, error) {
	get, ok := columnGetters[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", contract.ErrColumnNotFound, name)
	}

	out := make([]int, len(r.records))
	for i, rec := range r.records {
		out[i] = get(rec)
	}
	return out, nil
}

func (r *csvBillRepository) MaxOf(name string) (int, error) {
	values, err := r.Column(name)
	if err != nil {
		return 0, err
	}

	top := values[0]
	for _, v := range values[1:] {
		if v > top {
			top = v
		}
	}
	return top, nil
}

func (r *csvBillRepository) Totals() entity.BillTotals {
	return r.totals
}

func (r *csvBillRepository) CongressRange() (int, int) {
	return r.congresses[0], r.congresses[len(r.congresses)-1]
}

func (r *csvBillRepository) Congresses() []int {
	out := make([]int, len(r.congresses))
	copy(out, r.congresses)
	return out
}

var columnGetters = map[string]func(entity.BillRecord) int{
	constant.ColumnCongress:                   func(r entity.BillRecord) int { return r.Congress },
	constant.ColumnIntroBills:                 func(r entity.BillRecord) int { return r.IntroBills },
	constant.ColumnPassedHouse:                func(r entity.BillRecord) int { return r.PassedHouse },
	constant.ColumnPassedSenate:               func(r entity.BillRecord) int { return r.PassedSenate },
	constant.ColumnEnactedSignedByPres:        func(r entity.BillRecord) int { return r.EnactedSignedByPres },
	constant.ColumnEnactedIncludedInOtherBill: func(r entity.BillRecord) int { return r.EnactedIncludedInOtherBill },
}
