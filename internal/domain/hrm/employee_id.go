package hrm

import (
	"math/big"
	"math/rand/v2"
	"strings"
)

const EmployeeIDPrefix = "EMP"

// NextEmployeeID suggests the identifier after currentMax. Anything that is
// not the prefix followed by digits falls back to four random digits; the
// unique constraint on employees.employee_id settles collisions.
func NextEmployeeID(currentMax string) string {
	suffix, ok := strings.CutPrefix(strings.TrimSpace(currentMax), EmployeeIDPrefix)
	if !ok || suffix == "" || strings.TrimLeft(suffix, "0123456789") != "" {
		return randomEmployeeID()
	}
	n, ok := new(big.Int).SetString(suffix, 10)
	if !ok {
		return randomEmployeeID()
	}
	digits := n.Add(n, big.NewInt(1)).String()
	if len(digits) < 4 {
		digits = strings.Repeat("0", 4-len(digits)) + digits
	}
	return EmployeeIDPrefix + digits
}

func randomEmployeeID() string {
	var b strings.Builder
	b.WriteString(EmployeeIDPrefix)
	for range 4 {
		b.WriteByte(byte('0' + rand.IntN(10)))
	}
	return b.String()
}
