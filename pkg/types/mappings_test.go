package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	gender := DefaultMappings().Gender

	str := func(s string) *string { return &s }

	tests := []struct {
		name string
		raw  *string
		want string
	}{
		{"exact code", str("M"), "Male"},
		{"full word", str("FEMALE"), "Female"},
		{"lower case", str("f"), "Female"},
		{"padded", str("  male "), "Male"},
		{"unmatched", str("X"), NotAvailable},
		{"empty", str(""), NotAvailable},
		{"whitespace only", str("   "), NotAvailable},
		{"nil", nil, NotAvailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Lookup(gender, tt.raw))
		})
	}
}

func TestDefaultMappingsCoverKnownCodes(t *testing.T) {
	m := DefaultMappings()

	assert.Equal(t, "Single", m.MaritalStatus["S"])
	assert.Equal(t, "Married", m.MaritalStatus["M"])
	assert.Equal(t, "Road", m.ProductLine["R"])
	assert.Equal(t, "Touring", m.ProductLine["T"])
	assert.Equal(t, "USA", m.Country["US"])
	assert.Equal(t, "Germany", m.Country["DE"])
}
