package person

import (
	"regexp"
	"strconv"
)

// HeightConstraints is returned when a height fails validation.
const HeightConstraints = "Heights can only take decimals (float)"

var heightRegex = regexp.MustCompile(`^([0-9]+([.][0-9]*)?|[.][0-9]+)$`)

// Height is a client's height in centimetres. Zero means unset.
type Height float64

// IsValidHeight reports whether s is a non-negative decimal.
func IsValidHeight(s string) bool { return heightRegex.MatchString(s) }

// IsSet reports whether a height has been recorded.
func (h Height) IsSet() bool { return h != 0 }

// InRange reports whether h lies within r, bounds inclusive.
func (h Height) InRange(r HeightRange) bool {
	return float64(h) >= r.Min && float64(h) <= r.Max
}

func (h Height) String() string {
	return strconv.FormatFloat(float64(h), 'f', -1, 64)
}

// Formatted renders the height for display, "N/A" when unset.
func (h Height) Formatted() string {
	if !h.IsSet() {
		return "N/A"
	}
	return "Height: " + h.String()
}

// HeightRange is an inclusive [Min, Max] interval. Min <= Max is
// guaranteed by the parser.
type HeightRange struct {
	Min float64
	Max float64
}
