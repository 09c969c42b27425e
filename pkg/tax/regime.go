package tax

import (
	"fmt"
	"strings"
)

// Regime selects one of the two mutually exclusive tax schemes.
type Regime string

const (
	// RegimeOld allows itemized exemptions and deductions with higher slab rates.
	RegimeOld Regime = "old"
	// RegimeNew applies only the standard deduction with lower slab rates.
	RegimeNew Regime = "new"
)

// ParseRegime converts a case-insensitive name into a Regime.
func ParseRegime(value string) (Regime, error) {
	switch Regime(strings.ToLower(strings.TrimSpace(value))) {
	case RegimeOld:
		return RegimeOld, nil
	case RegimeNew:
		return RegimeNew, nil
	default:
		return "", fmt.Errorf("unknown tax regime %q, expected %q or %q", value, RegimeOld, RegimeNew)
	}
}

// Valid reports whether r is one of the known regimes.
func (r Regime) Valid() bool {
	return r == RegimeOld || r == RegimeNew
}

func (r Regime) String() string {
	return string(r)
}

// MarshalText implements encoding.TextMarshaler.
func (r Regime) MarshalText() ([]byte, error) {
	return []byte(r), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Regime) UnmarshalText(text []byte) error {
	parsed, err := ParseRegime(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
