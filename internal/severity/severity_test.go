package severity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name string
		raw  int
		want Level
	}{
		{name: "negative", raw: -5, want: Standard},
		{name: "zero", raw: 0, want: Standard},
		{name: "in range", raw: 2, want: Cautionary},
		{name: "max", raw: 3, want: Critical},
		{name: "above range", raw: 10, want: Critical},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Clamp(tc.raw))
		})
	}
}

func TestLevel_Badge(t *testing.T) {
	assert.Equal(t, BadgeSafe, Standard.Badge())
	assert.Equal(t, BadgeNotable, Notable.Badge())
	assert.Equal(t, BadgeCaution, Cautionary.Badge())
	assert.Equal(t, BadgeDanger, Critical.Badge())
}

func TestLevel_Name(t *testing.T) {
	assert.Equal(t, "Standard", Standard.Name())
	assert.Equal(t, "Critical", Critical.Name())

	// out-of-range values degrade to the baseline tier
	assert.Equal(t, "Standard", Level(9).Name())
}

func TestNormalizeClauseCategory(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want ClauseCategory
	}{
		{name: "known category", raw: "ARBITRATION", want: ClauseArbitration},
		{name: "empty", raw: "", want: ClauseOther},
		{name: "unknown", raw: "SOMETHING_NEW", want: ClauseOther},
		{name: "wrong case", raw: "arbitration", want: ClauseOther},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeClauseCategory(tc.raw))
		})
	}
}

func TestNormalizeServiceCategory(t *testing.T) {
	assert.Equal(t, ServiceVPN, NormalizeServiceCategory("vpn"))
	assert.Equal(t, ServiceUnknown, NormalizeServiceCategory(""))

	// unrecognized values pass through for forward compatibility
	assert.Equal(t, ServiceCategory("quantum_email"), NormalizeServiceCategory("quantum_email"))
}

func TestClauseCategory_Label(t *testing.T) {
	assert.Equal(t, "Data Selling/Sharing", ClauseDataSelling.Label())
	assert.Equal(t, "Concerning Clause", ClauseCategory("BOGUS").Label())
}
