package hrm_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oleeahmmed/UniworldHrm/internal/domain/audit"
	"github.com/oleeahmmed/UniworldHrm/internal/domain/hrm"
)

func sensitiveEmployee() *hrm.Employee {
	salary := decimal.RequireFromString("52000")
	return &hrm.Employee{
		EmployeeID:        "EMP0007",
		FirstName:         "Rahim",
		NationalID:        "1990123456789",
		BankAccountNumber: "0011-2233-4455",
		GrossSalary:       &salary,
		BasicSalary:       &salary,
	}
}

func TestRedactEmployee(t *testing.T) {
	e := sensitiveEmployee()
	hrm.RedactEmployee(e)

	assert.Empty(t, e.NationalID)
	assert.Empty(t, e.BankAccountNumber)
	assert.Nil(t, e.GrossSalary)
	assert.Nil(t, e.BasicSalary)
	assert.Equal(t, "Rahim", e.FirstName)

	hrm.RedactEmployee(nil)
}

type capturedExec struct {
	args []any
}

func (c *capturedExec) Exec(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
	c.args = args
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func TestAuditTrailMasksEncryptedColumns(t *testing.T) {
	e := sensitiveEmployee()
	exec := &capturedExec{}

	err := audit.Record(context.Background(), exec, audit.Entry{
		Action: "hrm.employee.update",
		Before: []hrm.Employee{*e},
		After:  e,
	})
	require.NoError(t, err)

	for _, arg := range exec.args[4:6] {
		body := string(arg.([]byte))
		assert.NotContains(t, body, "1990123456789")
		assert.NotContains(t, body, "0011-2233-4455")
		assert.Contains(t, body, `"nationalId":"[redacted]"`)
		assert.Contains(t, body, "EMP0007")
	}
	assert.Equal(t, "1990123456789", e.NationalID, "the record itself is left alone")
}
