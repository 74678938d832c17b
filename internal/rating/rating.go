package rating

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	Min  = 0.0
	Max  = 5.0
	Step = 0.5

	// PickerMin is the lowest value the star pickers offer. Stored ratings
	// may still be 0.0 (a record nobody rated yet).
	PickerMin = 0.5

	// Default seeds the add form's picker.
	Default = 3.0
)

// Valid reports whether v is a storable rating. Half steps are conventional,
// not required.
func Valid(v float64) bool {
	return !math.IsNaN(v) && v >= Min && v <= Max
}

// Clamp forces v into [Min, Max].
func Clamp(v float64) float64 {
	if math.IsNaN(v) || v < Min {
		return Min
	}
	if v > Max {
		return Max
	}
	return v
}

// Snap rounds v to the nearest half step within [Min, Max].
func Snap(v float64) float64 {
	return Clamp(math.Round(Clamp(v)/Step) * Step)
}

// Incr moves one half step up within the picker range.
func Incr(v float64) float64 {
	v = Snap(v) + Step
	if v < PickerMin {
		return PickerMin
	}
	if v > Max {
		return Max
	}
	return v
}

// Decr moves one half step down, stopping at the picker floor.
func Decr(v float64) float64 {
	v = Snap(v) - Step
	if v < PickerMin {
		return PickerMin
	}
	return v
}

// Parse reads a rating from a CLI argument.
func Parse(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty rating")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid rating %q", s)
	}
	if !Valid(v) {
		return 0, fmt.Errorf("rating %s out of range [0, 5]", Format(v))
	}
	return v, nil
}

// Format renders v with at least one decimal: "4.0", "3.5", "4.25".
func Format(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Split breaks a snapped rating into full stars plus an optional half star.
func Split(v float64) (full int, half bool) {
	snapped := Snap(v)
	full = int(snapped)
	half = snapped-float64(full) > 0.25
	return full, half
}
