package domain

import (
	"strings"
)

// CoverageType is the geographic scope a campaign is bought for. It is a
// closed set; every switch over it must handle all three variants.
type CoverageType int

const (
	// CoverageRadius30 covers a fixed 30-mile (~48 km) radius.
	CoverageRadius30 CoverageType = iota + 1
	// CoverageState covers a single state or province.
	CoverageState
	// CoverageCountry covers an entire country.
	CoverageCountry
)

// RadiusMiles is the radius of CoverageRadius30.
const RadiusMiles = 30.0

// Valid reports whether c is one of the declared variants.
func (c CoverageType) Valid() bool {
	switch c {
	case CoverageRadius30, CoverageState, CoverageCountry:
		return true
	default:
		return false
	}
}

// String returns the canonical storage name of the coverage type.
func (c CoverageType) String() string {
	switch c {
	case CoverageRadius30:
		return "radius_30"
	case CoverageState:
		return "state"
	case CoverageCountry:
		return "country"
	default:
		return "invalid"
	}
}

// Multiplier returns the fixed price multiplier for the coverage type.
func (c CoverageType) Multiplier() (float64, error) {
	switch c {
	case CoverageRadius30:
		return 1.0, nil
	case CoverageState:
		return 2.5, nil
	case CoverageCountry:
		return 5.0, nil
	default:
		return 0, ErrInvalidCoverageType
	}
}

// coverageAliases maps every spelling seen in campaign payloads to a variant.
// Keys are lower case with '-' and ' ' folded to '_'.
var coverageAliases = map[string]CoverageType{
	"radius_30":      CoverageRadius30,
	"radius30":       CoverageRadius30,
	"radius":         CoverageRadius30,
	"30_mile":        CoverageRadius30,
	"30_mile_radius": CoverageRadius30,
	"30mile":         CoverageRadius30,
	"local":          CoverageRadius30,
	"state":          CoverageState,
	"state_wide":     CoverageState,
	"statewide":      CoverageState,
	"province":       CoverageState,
	"regional":       CoverageState,
	"country":        CoverageCountry,
	"country_wide":   CoverageCountry,
	"countrywide":    CoverageCountry,
	"national":       CoverageCountry,
	"nationwide":     CoverageCountry,
}

// ParseCoverageType resolves a user supplied coverage name. Unknown values
// return ErrInvalidCoverageType; there is no silent default.
func ParseCoverageType(s string) (CoverageType, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	if c, ok := coverageAliases[key]; ok {
		return c, nil
	}
	return 0, ErrInvalidCoverageType
}

// MarshalText implements encoding.TextMarshaler.
func (c CoverageType) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, ErrInvalidCoverageType
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseCoverageType.
func (c *CoverageType) UnmarshalText(b []byte) error {
	parsed, err := ParseCoverageType(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
