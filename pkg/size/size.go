package size

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ErrInvalidSpec is returned when a size spec cannot be parsed.
var ErrInvalidSpec = errors.New("size: invalid size spec")

// Binary units.
const (
	KiB int64 = 1 << 10
	MiB int64 = 1 << 20
	GiB int64 = 1 << 30
)

// Parse converts a size spec into a byte count.
// The spec is an unsigned integer optionally followed by a single unit
// letter (k, m or g, any case).
func Parse(spec string) (int64, error) {
	if spec == "" {
		return 0, fmt.Errorf("%w: size should not be empty", ErrInvalidSpec)
	}

	unitPos := strings.IndexFunc(spec, unicode.IsLetter)
	if unitPos < 0 {
		unitPos = len(spec)
	}

	n, err := strconv.ParseUint(spec[:unitPos], 10, 63)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidSpec, spec, err)
	}

	unit, err := parseUnit(spec[unitPos:])
	if err != nil {
		return 0, err
	}

	if n > uint64(math.MaxInt64/unit) {
		return 0, fmt.Errorf("%w: %q overflows", ErrInvalidSpec, spec)
	}
	return int64(n) * unit, nil
}

func parseUnit(s string) (int64, error) {
	switch s {
	case "":
		return 1, nil
	case "k", "K":
		return KiB, nil
	case "m", "M":
		return MiB, nil
	case "g", "G":
		return GiB, nil
	}
	return 0, fmt.Errorf("%w: unknown unit %q", ErrInvalidSpec, s)
}

// Format renders n using the largest unit that divides it exactly.
func Format(n int64) string {
	switch {
	case n != 0 && n%GiB == 0:
		return strconv.FormatInt(n/GiB, 10) + "G"
	case n != 0 && n%MiB == 0:
		return strconv.FormatInt(n/MiB, 10) + "M"
	case n != 0 && n%KiB == 0:
		return strconv.FormatInt(n/KiB, 10) + "K"
	}
	return strconv.FormatInt(n, 10)
}
