package hrm

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEmployee() *Employee {
	e := NewEmployee()
	e.EmployeeID = "EMP0001"
	e.FirstName = "Rahim"
	e.LastName = "Uddin"
	e.JoiningDate = NewDate(2024, time.January, 15)
	return e
}

func fields(issues []FieldIssue) []string {
	out := make([]string, 0, len(issues))
	for _, i := range issues {
		out = append(out, i.Field)
	}
	return out
}

func TestValidEmployeePasses(t *testing.T) {
	assert.Empty(t, Validate(validEmployee()))
}

func TestMissingRequiredFieldsAreFlagged(t *testing.T) {
	e := validEmployee()
	e.FirstName = ""
	e.JoiningDate = Date{}

	issues := Validate(e)
	assert.Equal(t, []string{"firstName", "joiningDate"}, fields(issues))
	assert.Equal(t, "this field is required", issues[0].Reason)
}

func TestUnparseableDateIsAFieldError(t *testing.T) {
	var e Employee
	require.NoError(t, json.Unmarshal([]byte(`{"dateOfBirth":"15/01/1990"}`), &e))
	assert.False(t, e.DateOfBirth.Valid())

	full := validEmployee()
	full.DateOfBirth = e.DateOfBirth
	issues := Validate(full)
	require.Len(t, issues, 1)
	assert.Equal(t, FieldIssue{Field: "dateOfBirth", Reason: "must be a valid date in YYYY-MM-DD format"}, issues[0])
}

func TestEnumAndNestedFields(t *testing.T) {
	e := validEmployee()
	e.EmploymentStatus = "sacked"
	e.BloodGroup = "C+"
	e.PresentAddress.PostalCode = "12AB"

	assert.Equal(t, []string{"bloodGroup", "employmentStatus", "presentAddress.postalCode"}, fields(Validate(e)))
}

func TestNegativeSalaryRejected(t *testing.T) {
	e := validEmployee()
	neg := decimal.NewFromInt(-5)
	e.GrossSalary = &neg

	issues := Validate(e)
	require.Len(t, issues, 1)
	assert.Equal(t, "grossSalary", issues[0].Field)
}

func TestCrossFieldDateOrder(t *testing.T) {
	e := validEmployee()
	e.ContractStartDate = NewDate(2024, time.June, 1)
	e.ContractEndDate = NewDate(2024, time.May, 1)
	assert.Equal(t, []string{"contractEndDate", "contractStartDate"}, fields(Validate(e)))

	j := NewJobExperience()
	j.EmployeeID = "9b2f6a5e-1c1a-4c47-9d55-0d8f7c1e2a10"
	j.CompanyName = "Acme"
	j.JobTitle = "Clerk"
	j.StartDate = NewDate(2020, time.March, 1)
	j.EndDate = NewDate(2020, time.March, 1)
	assert.Empty(t, Validate(j), "same-day end is allowed")

	j.EndDate = NewDate(2019, time.March, 1)
	assert.Equal(t, []string{"endDate", "startDate"}, fields(Validate(j)))
}

func TestShiftTimesAndUUIDs(t *testing.T) {
	s := NewShift()
	s.Name, s.Code, s.StartTime, s.EndTime = "Day", "D", "09:00", "25:00"
	assert.Equal(t, []string{"endTime"}, fields(Validate(s)))

	d := NewEmployeeDocument()
	d.EmployeeID = "not-a-uuid"
	d.DocumentTypeID = "9b2f6a5e-1c1a-4c47-9d55-0d8f7c1e2a10"
	d.DocumentName = "Passport"
	assert.Equal(t, []string{"employee"}, fields(Validate(d)))
}

func TestFilterValidation(t *testing.T) {
	assert.Empty(t, Validate(EmployeeFilter{IsActive: "true"}))
	assert.Equal(t, []string{"is_active"}, fields(Validate(EmployeeFilter{IsActive: "yes"})))
	assert.Equal(t, []string{"employee"}, fields(Validate(FamilyMemberFilter{Employee: "7"})))
}

func TestParseDate(t *testing.T) {
	assert.Equal(t, "2024-02-29", ParseDate("2024-02-29").String())
	assert.Equal(t, "2024-02-29", ParseDate("2024-02-29T23:30:00+06:00").String())
	assert.True(t, ParseDate("").IsZero())
	assert.False(t, ParseDate("2024-02-30").Valid())

	out, err := json.Marshal(struct {
		A Date `json:"a"`
		B Date `json:"b"`
	}{A: NewDate(2001, time.December, 3)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"2001-12-03","b":null}`, string(out))
}
