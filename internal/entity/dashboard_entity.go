// FILE: internal/entity/dashboard_entity.go
package entity

import (
	"errors"
	"fmt"
)

var ErrUnknownDisplayMode = errors.New("unknown display mode")

type DisplayMode string

const (
	DisplayModeOverall        DisplayMode = "Total Bills"
	DisplayModePerCongress    DisplayMode = "Bills Passed Per Congress"
	DisplayModeRolledIntoOne  DisplayMode = "Bills Rolled Into One"
	DisplayModeTermComparison DisplayMode = "One Term President vs. Two Term President"
)

// DisplayModes lists the dropdown options in display order.
var DisplayModes = []DisplayMode{
	DisplayModeOverall,
	DisplayModePerCongress,
	DisplayModeRolledIntoOne,
	DisplayModeTermComparison,
}

func ParseDisplayMode(value string) (DisplayMode, error) {
	for _, m := range DisplayModes {
		if string(m) == value {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDisplayMode, value)
}

// Implemented reports whether the mode has its own rendering path.
// Only the per-congress breakdown does today.
func (m DisplayMode) Implemented() bool {
	return m == DisplayModePerCongress
}

func (m DisplayMode) Label() string {
	switch m {
	case DisplayModeOverall:
		return "STEM Bills Passed: Overall"
	case DisplayModePerCongress:
		return "STEM Bills Passed: Per Congress"
	case DisplayModeRolledIntoOne:
		return "STEM Bills Passed: Included in Another Bill"
	case DisplayModeTermComparison:
		return "STEM Bills Passed: One Term President vs. Two Term President"
	}
	return string(m)
}

type GradientScheme string

const (
	GradientSchemeSplit   GradientScheme = "Split"
	GradientSchemeUnified GradientScheme = "Unified"
)

func (g GradientScheme) Label() string {
	switch g {
	case GradientSchemeSplit:
		return "Split Government"
	case GradientSchemeUnified:
		return "Unified Government"
	}
	return string(g)
}
