package hrm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextEmployeeIDIncrements(t *testing.T) {
	cases := map[string]string{
		"EMP0007":   "EMP0008",
		"EMP0000":   "EMP0001",
		"EMP0099":   "EMP0100",
		"EMP9999":   "EMP10000",
		"EMP10000":  "EMP10001",
		"EMP7":      "EMP0008",
		" EMP0041 ": "EMP0042",
		"EMP99999999999999999999": "EMP100000000000000000000",
	}
	for current, want := range cases {
		assert.Equal(t, want, NextEmployeeID(current), "after %q", current)
	}
}

func TestNextEmployeeIDFallsBackToRandom(t *testing.T) {
	for _, current := range []string{"", "EMP", "EMPX12", "E0001", "emp0001", "EMP-001", "EMP12a"} {
		for range 20 {
			assert.Regexp(t, `^EMP\d{4}$`, NextEmployeeID(current), "after %q", current)
		}
	}
}

func TestRandomEmployeeIDUsesEveryDigit(t *testing.T) {
	seen := map[rune]bool{}
	for range 500 {
		for _, r := range NextEmployeeID("")[len(EmployeeIDPrefix):] {
			seen[r] = true
		}
	}
	assert.Len(t, seen, 10)
}
