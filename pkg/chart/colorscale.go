package chart

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrUnknownColorScale = errors.New("unknown color scale")

// Government scales mirror the radio button values and match exactly.
var governmentScales = map[string][]string{
	"Split":   {"#2166ac", "#67a9cf", "#d1e5f0", "#fddbc7", "#ef8a62", "#b2182b"},
	"Unified": {"#3f007d", "#6a51a3", "#9e9ac8", "#c7e9c0", "#74c476", "#006d2c"},
}

// Standard continuous scales, low to high, keyed lowercase.
var colorScales = map[string][]string{
	"viridis": {"#440154", "#482878", "#3e4989", "#31688e", "#26828e", "#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"},
	"plasma":  {"#0d0887", "#46039f", "#7201a8", "#9c179e", "#bd3786", "#d8576b", "#ed7953", "#fb9f3a", "#fdca26", "#f0f921"},
	"inferno": {"#000004", "#1b0c41", "#4a0c6b", "#781c6d", "#a52c60", "#cf4446", "#ed6925", "#fb9b06", "#f7d13d", "#fcffa4"},
	"magma":   {"#000004", "#180f3d", "#440f76", "#721f81", "#9e2f7f", "#cd4071", "#f1605d", "#fd9668", "#feca8d", "#fcfdbf"},
	"cividis": {"#00224e", "#123570", "#3b496c", "#575d6d", "#707173", "#8a8678", "#a59c74", "#c3b369", "#e1cc55", "#fee838"},
	"turbo":   {"#30123b", "#4145ab", "#4675ed", "#39a2fc", "#1bcfd4", "#24eca6", "#61fc6c", "#a4fc3b", "#d1e834", "#f3c63a", "#fe9b2d", "#f36315", "#d93806", "#b11901", "#7a0402"},
	"blues":   {"#f7fbff", "#deebf7", "#c6dbef", "#9ecae1", "#6baed6", "#4292c6", "#2171b5", "#08519c", "#08306b"},
	"reds":    {"#fff5f0", "#fee0d2", "#fcbba1", "#fc9272", "#fb6a4a", "#ef3b2c", "#cb181d", "#a50f15", "#67000d"},
	"greens":  {"#f7fcf5", "#e5f5e0", "#c7e9c0", "#a1d99b", "#74c476", "#41ab5d", "#238b45", "#006d2c", "#00441b"},
	"rdbu":    {"#67001f", "#b2182b", "#d6604d", "#f4a582", "#fddbc7", "#f7f7f7", "#d1e5f0", "#92c5de", "#4393c3", "#2166ac", "#053061"},
	"bluered": {"#0000ff", "#ff0000"},
}

// ResolveColorScale returns the colors of a named scale. Government scales match
// exactly, standard scales ignore case. Unknown names fail; there is no fallback.
func ResolveColorScale(name string) ([]string, error) {
	colors, ok := governmentScales[name]
	if !ok {
		colors, ok = colorScales[strings.ToLower(name)]
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColorScale, name)
	}
	out := make([]string, len(colors))
	copy(out, colors)
	return out, nil
}

func ColorScaleNames() []string {
	names := make([]string, 0, len(governmentScales)+len(colorScales))
	for name := range governmentScales {
		names = append(names, name)
	}
	for name := range colorScales {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
