package curtail

import (
	"fmt"
	"os"
)

// Strategy selects how the head of the log file is removed.
type Strategy string

const (
	// StrategyAuto uses range collapse where the platform has it and the
	// copy fallback elsewhere.
	StrategyAuto Strategy = "auto"
	// StrategyCollapse always uses fallocate(2) range collapse.
	StrategyCollapse Strategy = "collapse"
	// StrategyCopy always uses the read-copy-truncate fallback.
	StrategyCopy Strategy = "copy"
)

// ParseStrategy validates a strategy name. The empty string means auto.
func ParseStrategy(s string) (Strategy, error) {
	switch st := Strategy(s); st {
	case "":
		return StrategyAuto, nil
	case StrategyAuto, StrategyCollapse, StrategyCopy:
		return st, nil
	}
	return "", fmt.Errorf("%w: unknown strategy %q", ErrInvalidConfig, s)
}

func newCollapser(f *os.File, s Strategy) (Collapser, error) {
	switch s {
	case StrategyCopy:
		return NewCopyCollapser(f), nil
	case StrategyCollapse:
		return newFallocateCollapser(f)
	case StrategyAuto, "":
		if c, err := newFallocateCollapser(f); err == nil {
			return c, nil
		}
		return NewCopyCollapser(f), nil
	}
	return nil, fmt.Errorf("%w: unknown strategy %q", ErrInvalidConfig, s)
}
