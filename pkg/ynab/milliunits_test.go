package ynab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMilliunits_Format(t *testing.T) {
	tests := []struct {
		name  string
		value Milliunits
		want  string
	}{
		{"whole dollars", 10000, "$10.00"},
		{"dollars and cents", 10500, "$10.50"},
		{"negative keeps sign after symbol", -10500, "$-10.50"},
		{"zero", 0, "$0.00"},
		{"sub-dollar", 500, "$0.50"},
		{"negative sub-dollar", -400, "$-0.40"},
		{"large amount", 1234567890, "$1234567.89"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.Format())
		})
	}
}

func TestMilliunits_Float(t *testing.T) {
	assert.Equal(t, 10.5, Milliunits(10500).Float())
	assert.Equal(t, -10.5, Milliunits(-10500).Float())
}

func TestAccountType_Valid(t *testing.T) {
	assert.Len(t, AccountTypes(), 11)
	for _, at := range AccountTypes() {
		assert.True(t, at.Valid(), "expected %q to be valid", at)
	}
	assert.False(t, AccountType("bogus").Valid())
	assert.False(t, AccountType("").Valid())
	assert.False(t, AccountType("Checking").Valid(), "validation is case-sensitive")
}

func TestClearedStatus_Valid(t *testing.T) {
	assert.Len(t, ClearedStatuses(), 3)
	for _, cs := range ClearedStatuses() {
		assert.True(t, cs.Valid())
	}
	assert.False(t, ClearedStatus("pending").Valid())
}

func TestFlagColor_Valid(t *testing.T) {
	assert.Len(t, FlagColors(), 6)
	for _, fc := range FlagColors() {
		assert.True(t, fc.Valid())
	}
	assert.False(t, FlagColor("pink").Valid())
}
