package contract

import (
	"errors"

	"stembills-dashboard/internal/entity"
)

var ErrColumnNotFound = errors.New("column not found")

// BillRepository is the read-only, in-memory bill table shared by every callback.
type BillRepository interface {
	All() []entity.BillRecord
	Len() int
	Column(name string) ([]int, error)
	MaxOf(name string) (int, error)
	Totals() entity.BillTotals
	CongressRange() (min, max int)
	Congresses() []int
}
