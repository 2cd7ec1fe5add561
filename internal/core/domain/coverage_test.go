package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoverageMultiplierTable(t *testing.T) {
	radius, err := CoverageRadius30.Multiplier()
	require.NoError(t, err)
	state, err := CoverageState.Multiplier()
	require.NoError(t, err)
	country, err := CoverageCountry.Multiplier()
	require.NoError(t, err)

	assert.Equal(t, 1.0, radius)
	assert.Equal(t, 2.5, state)
	assert.Equal(t, 5.0, country)
	assert.Less(t, radius, state)
	assert.Less(t, state, country)
}

func TestCoverageMultiplier_Invalid(t *testing.T) {
	_, err := CoverageType(0).Multiplier()
	assert.ErrorIs(t, err, ErrInvalidCoverageType)

	_, err = CoverageType(42).Multiplier()
	assert.ErrorIs(t, err, ErrInvalidCoverageType)
}

func TestParseCoverageType(t *testing.T) {
	cases := map[string]CoverageType{
		"radius_30":      CoverageRadius30,
		"RADIUS_30":      CoverageRadius30,
		"30-mile":        CoverageRadius30,
		"30 mile radius": CoverageRadius30,
		"radius":         CoverageRadius30,
		"State":          CoverageState,
		"state-wide":     CoverageState,
		"province":       CoverageState,
		" country ":      CoverageCountry,
		"national":       CoverageCountry,
		"Nationwide":     CoverageCountry,
	}
	for in, want := range cases {
		got, err := ParseCoverageType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseCoverageType_Unknown(t *testing.T) {
	for _, in := range []string{"", "global", "city", "50-mile"} {
		_, err := ParseCoverageType(in)
		assert.ErrorIs(t, err, ErrInvalidCoverageType, in)
	}
}

func TestCoverageType_JSON(t *testing.T) {
	var v struct {
		Coverage CoverageType `json:"coverage"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"coverage":"national"}`), &v))
	assert.Equal(t, CoverageCountry, v.Coverage)

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"coverage":"country"}`, string(out))

	err = json.Unmarshal([]byte(`{"coverage":"galaxy"}`), &v)
	assert.ErrorIs(t, err, ErrInvalidCoverageType)
}

func TestDefaultRateEntry(t *testing.T) {
	want := map[CoverageType]float64{
		CoverageRadius30: 100.0,
		CoverageState:    500.0,
		CoverageCountry:  2000.0,
	}
	for c, base := range want {
		e, err := DefaultRateEntry("Retail", "display", c)
		require.NoError(t, err)
		assert.Equal(t, base, e.BaseRate)
		assert.Equal(t, 1.0, e.Multiplier)
		assert.Equal(t, 10.0, e.StateDiscountPct)
		assert.Equal(t, 15.0, e.NationalDiscountPct)
		assert.Nil(t, e.CountryCode)
	}

	_, err := DefaultRateEntry("Retail", "display", CoverageType(9))
	assert.ErrorIs(t, err, ErrInvalidCoverageType)
}
