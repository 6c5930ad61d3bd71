package shared

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oleeahmmed/UniworldHrm/internal/domain/hrm"
)

func TestDecodeFormEmployee(t *testing.T) {
	body := url.Values{
		"employee_id":           {"EMP0001"},
		"first_name":            {"Rahim"},
		"last_name":             {"Uddin"},
		"joining_date":          {"2024-01-15"},
		"date_of_birth":         {""},
		"gross_salary":          {"55000.50"},
		"present.village_house": {"House 12"},
		"present.postal_code":   {"1207"},
		"is_active":             {"true"},
	}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var e hrm.Employee
	issues, err := DecodeForm(req, &e)
	require.NoError(t, err)
	assert.Empty(t, issues)
	assert.Equal(t, "EMP0001", e.EmployeeID)
	assert.Equal(t, hrm.NewDate(2024, time.January, 15), e.JoiningDate)
	assert.True(t, e.DateOfBirth.IsZero())
	require.NotNil(t, e.GrossSalary)
	assert.Equal(t, "55000.5", e.GrossSalary.String())
	assert.Equal(t, "House 12", e.PresentAddress.VillageHouse)
	assert.Equal(t, "1207", e.PresentAddress.PostalCode)
	assert.True(t, e.IsActive)
	assert.Nil(t, e.BasicSalary)
}

func TestDecodeFormReportsBadValues(t *testing.T) {
	body := url.Values{"gross_salary": {"lots"}, "overtime_grace_minutes": {"ten"}, "joining_date": {"15/01/2024"}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var e hrm.Employee
	issues, err := DecodeForm(req, &e)
	require.NoError(t, err)
	assert.Equal(t, []ValidationIssue{
		{Field: "grossSalary", Reason: "has an invalid value"},
		{Field: "overtimeGraceMinutes", Reason: "has an invalid value"},
	}, issues)
	assert.False(t, e.JoiningDate.Valid(), "bad dates are left for validation")
}

func TestDecodeMultipartWithFile(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("document_name", "Passport"))
	fw, err := mw.CreateFormFile("document_file", "passport.pdf")
	require.NoError(t, err)
	_, err = fw.Write([]byte("%PDF-1.4"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	assert.True(t, IsFormBody(req))

	var d hrm.EmployeeDocument
	issues, err := DecodeForm(req, &d)
	require.NoError(t, err)
	assert.Empty(t, issues)
	assert.Equal(t, "Passport", d.DocumentName)

	file, header, ok := FormFile(req, "document_file")
	require.True(t, ok)
	defer file.Close()
	assert.Equal(t, "passport.pdf", header.Filename)

	_, _, ok = FormFile(req, "other")
	assert.False(t, ok)
}

func TestDecodeValuesForFilters(t *testing.T) {
	var f hrm.EmployeeFilter
	issues := DecodeValues(url.Values{"search": {"rah"}, "is_active": {"false"}, "page": {"2"}}, &f)
	assert.Empty(t, issues)
	assert.Equal(t, hrm.EmployeeFilter{Search: "rah", IsActive: "false"}, f)
}

func TestDecodeJSONRejectsMalformed(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	assert.False(t, IsFormBody(req))
	var e hrm.Employee
	assert.ErrorIs(t, DecodeJSON(req, &e), ErrInvalidBody)
}
