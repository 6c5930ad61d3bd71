package hrmhandler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oleeahmmed/UniworldHrm/internal/domain/audit"
	"github.com/oleeahmmed/UniworldHrm/internal/domain/auth"
	"github.com/oleeahmmed/UniworldHrm/internal/domain/hrm"
	"github.com/oleeahmmed/UniworldHrm/internal/domain/hrm/hrmtest"
	"github.com/oleeahmmed/UniworldHrm/internal/platform/storage"
	"github.com/oleeahmmed/UniworldHrm/internal/transport/http/middleware"
	"github.com/oleeahmmed/UniworldHrm/internal/transport/http/shared"
)

type permSet map[string]bool

func (p permSet) HasPermission(_ context.Context, _ string, permission string) (bool, error) {
	return p[permission], nil
}

func allPermissions() permSet {
	out := permSet{}
	for _, p := range auth.DefaultPermissions {
		out[p] = true
	}
	return out
}

type fixture struct {
	router      http.Handler
	employees   *hrmtest.Employees
	departments *hrmtest.Memory[hrm.Department, *hrm.Department]
	levels      *hrmtest.Memory[hrm.EducationLevel, *hrm.EducationLevel]
	documents   *hrmtest.Memory[hrm.EmployeeDocument, *hrm.EmployeeDocument]
	education   *hrmtest.Memory[hrm.EducationQualification, *hrm.EducationQualification]
}

func newFixture(t *testing.T, perms permSet) *fixture {
	t.Helper()
	files, err := storage.NewLocal(t.TempDir())
	require.NoError(t, err)

	f := &fixture{
		employees:   hrmtest.NewEmployees(),
		departments: hrmtest.NewMemory[hrm.Department, *hrm.Department](map[string]string{"dep.code": "code", "dep.name": "name"}),
		levels:      hrmtest.NewMemory[hrm.EducationLevel, *hrm.EducationLevel](nil),
		documents:   hrmtest.NewMemory[hrm.EmployeeDocument, *hrm.EmployeeDocument](nil),
		education:   hrmtest.NewMemory[hrm.EducationQualification, *hrm.EducationQualification](nil),
	}
	repos := Repositories{
		Employees:       f.employees,
		Departments:     f.departments,
		Designations:    hrmtest.NewMemory[hrm.Designation, *hrm.Designation](nil),
		Shifts:          hrmtest.NewMemory[hrm.Shift, *hrm.Shift](nil),
		EducationLevels: f.levels,
		DocumentTypes:   hrmtest.NewMemory[hrm.DocumentType, *hrm.DocumentType](nil),
		Education:       f.education,
		Experience:      hrmtest.NewMemory[hrm.JobExperience, *hrm.JobExperience](nil),
		Documents:       f.documents,
		Family:          hrmtest.NewMemory[hrm.FamilyMember, *hrm.FamilyMember](nil),
	}

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			p := auth.Principal{UserID: "8f0c7a44-3c55-4d8e-9a51-8d2f3f2f6b10", RoleID: "role-1"}
			next.ServeHTTP(w, req.WithContext(middleware.WithUser(req.Context(), p)))
		})
	})
	NewHandler(repos, perms, files, "/api/v1").RegisterRoutes(r)
	f.router = r
	return f
}

func (f *fixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) get(target string) *httptest.ResponseRecorder {
	return f.do(httptest.NewRequest(http.MethodGet, target, nil))
}

func (f *fixture) postForm(target string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return f.do(req)
}

func (f *fixture) sendJSON(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return f.do(req)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details struct {
			Fields []shared.ValidationIssue `json:"fields"`
		} `json:"details"`
	} `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func fieldsOf(env envelope) []string {
	if env.Error == nil {
		return nil
	}
	out := make([]string, 0, len(env.Error.Details.Fields))
	for _, f := range env.Error.Details.Fields {
		out = append(out, f.Field)
	}
	return out
}

func employeeForm() url.Values {
	return url.Values{
		"employee_id":       {"EMP0001"},
		"first_name":        {"Jane"},
		"last_name":         {"Doe"},
		"joining_date":      {"2024-03-01"},
		"employment_status": {"probation"},
		"is_active":         {"true"},
		"present.district":  {"Dhaka"},
	}
}

func seedDepartments(t *testing.T, f *fixture, n int) []string {
	t.Helper()
	ids := make([]string, 0, n)
	for i := range n {
		d := &hrm.Department{Name: fmt.Sprintf("Dept %02d", i), Code: fmt.Sprintf("D%02d", i), IsActive: true}
		require.NoError(t, f.departments.Create(context.Background(), d, audit.Entry{}))
		ids = append(ids, d.ID)
	}
	return ids
}

func TestCreateEmployeeMissingFieldPersistsNothing(t *testing.T) {
	f := newFixture(t, allPermissions())
	values := employeeForm()
	values.Del("first_name")

	rec := f.postForm("/employees", values)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "validation_error", env.Error.Code)
	assert.Contains(t, fieldsOf(env), "firstName")
	assert.Equal(t, 0, f.employees.Len())
	assert.Empty(t, f.employees.Events)
}

func TestCreateEmployeeStampsCreatorAndRedirectsToDetail(t *testing.T) {
	f := newFixture(t, allPermissions())

	rec := f.postForm("/employees", employeeForm())

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var out mutationResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &out))
	assert.Equal(t, "Employee Jane Doe created successfully.", out.Message)
	assert.Equal(t, "/api/v1/employees/"+out.ID, out.Redirect)
	assert.Equal(t, out.Redirect, rec.Header().Get("Location"))

	stored, err := f.employees.Get(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, "8f0c7a44-3c55-4d8e-9a51-8d2f3f2f6b10", stored.CreatedBy)
	assert.Equal(t, "Dhaka", stored.PresentAddress.District)
	require.Len(t, f.employees.Events, 1)
	assert.Equal(t, "hrm.employee.create", f.employees.Events[0].Action)
	assert.Equal(t, out.ID, f.employees.Events[0].EntityID)
}

func TestCreateLookupRedirectsToList(t *testing.T) {
	f := newFixture(t, allPermissions())

	rec := f.sendJSON(http.MethodPost, "/education-levels", `{"name":"Masters","code":"MSC","level":7}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var out mutationResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &out))
	assert.Equal(t, "Education Level created successfully.", out.Message)
	assert.Equal(t, "/api/v1/education-levels", out.Redirect)
}

func TestConcurrentDuplicateEmployeeID(t *testing.T) {
	f := newFixture(t, allPermissions())
	body := `{"employeeId":"EMP0042","firstName":"A","lastName":"B","joiningDate":"2024-01-01"}`

	var wg sync.WaitGroup
	codes := make([]int, 2)
	bodies := make([]*httptest.ResponseRecorder, 2)
	for i := range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bodies[i] = f.sendJSON(http.MethodPost, "/employees", body)
			codes[i] = bodies[i].Code
		}()
	}
	wg.Wait()

	assert.ElementsMatch(t, []int{http.StatusCreated, http.StatusBadRequest}, codes)
	for _, rec := range bodies {
		if rec.Code == http.StatusBadRequest {
			assert.Equal(t, []string{"employeeId"}, fieldsOf(decode(t, rec)))
		}
	}
	assert.Equal(t, 1, f.employees.Len())
}

func TestMissingCapabilityIsForbidden(t *testing.T) {
	perms := permSet{auth.Capability(auth.ActionView, auth.EntityEmployee): true}
	f := newFixture(t, perms)

	rec := f.postForm("/employees", employeeForm())
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, 0, f.employees.Len())

	rec = f.get("/employees")
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Permissions permissionFlags `json:"permissions"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &list))
	assert.Equal(t, permissionFlags{CanView: true}, list.Permissions)
}

func TestBulkDeleteNeedsConfirmation(t *testing.T) {
	f := newFixture(t, allPermissions())
	ids := seedDepartments(t, f, 3)
	payload := fmt.Sprintf(`{"ids":[%q,%q]}`, ids[0], ids[1])

	rec := f.sendJSON(http.MethodPost, "/departments/bulk-delete", payload)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var preview struct {
		Count   int    `json:"count"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &preview))
	assert.Equal(t, 2, preview.Count)
	assert.Equal(t, "Confirm deletion of 2 departments.", preview.Message)
	assert.Equal(t, 3, f.departments.Len())

	confirmed := fmt.Sprintf(`{"ids":[%q,%q],"confirm":true}`, ids[0], ids[1])
	rec = f.sendJSON(http.MethodPost, "/departments/bulk-delete", confirmed)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var out mutationResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &out))
	assert.EqualValues(t, 2, out.Deleted)
	assert.Equal(t, 1, f.departments.Len())
	assert.Equal(t, "hrm.department.bulk_delete", f.departments.Events[len(f.departments.Events)-1].Action)
}

func TestBulkDeleteRejectsBadIDs(t *testing.T) {
	f := newFixture(t, allPermissions())

	rec := f.sendJSON(http.MethodPost, "/departments/bulk-delete", `{"ids":["nope"],"confirm":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.sendJSON(http.MethodPost, "/departments/bulk-delete", `{"ids":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListPagination(t *testing.T) {
	f := newFixture(t, allPermissions())
	seedDepartments(t, f, 11)

	tests := []struct {
		query  string
		status int
		items  int
		page   int
	}{
		{query: "", status: http.StatusOK, items: 10, page: 1},
		{query: "?page=2", status: http.StatusOK, items: 1, page: 2},
		{query: "?page=last", status: http.StatusOK, items: 1, page: 2},
		{query: "?page=3", status: http.StatusNotFound},
		{query: "?page=abc", status: http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			rec := f.get("/departments" + tc.query)
			require.Equal(t, tc.status, rec.Code)
			if tc.status != http.StatusOK {
				return
			}
			var list struct {
				Items      []hrm.Department `json:"items"`
				Pagination shared.Page      `json:"pagination"`
			}
			require.NoError(t, json.Unmarshal(decode(t, rec).Data, &list))
			assert.Len(t, list.Items, tc.items)
			assert.Equal(t, tc.page, list.Pagination.Number)
			assert.Equal(t, 11, list.Pagination.Total)
		})
	}
}

func TestEmptyListIsNotAnError(t *testing.T) {
	f := newFixture(t, allPermissions())
	assert.Equal(t, http.StatusOK, f.get("/employees").Code)
	assert.Equal(t, http.StatusOK, f.get("/employees/cards?page=1").Code)
}

func TestListFiltersAndRejectsBadFilters(t *testing.T) {
	f := newFixture(t, allPermissions())
	seedDepartments(t, f, 3)

	rec := f.get("/departments?search=dept%2001")
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Items []hrm.Department `json:"items"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &list))
	require.Len(t, list.Items, 1)
	assert.Equal(t, "D01", list.Items[0].Code)

	rec = f.get("/employees?employment_status=sleeping")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"employment_status"}, fieldsOf(decode(t, rec)))
}

func TestNewEmployeeFormSuggestsID(t *testing.T) {
	f := newFixture(t, allPermissions())
	require.Equal(t, http.StatusCreated, f.postForm("/employees", employeeForm()).Code)

	rec := f.get("/employees/new")
	require.Equal(t, http.StatusOK, rec.Code)
	var form struct {
		Schema struct {
			Entity string `json:"entity"`
		} `json:"schema"`
		Initial hrm.Employee `json:"initial"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &form))
	assert.Equal(t, "EMP0002", form.Initial.EmployeeID)
	assert.Equal(t, hrm.EmploymentStatusProbation, form.Initial.EmploymentStatus)
}

func TestUpdateKeepsImmutableColumns(t *testing.T) {
	f := newFixture(t, allPermissions())
	rec := f.postForm("/employees", employeeForm())
	require.Equal(t, http.StatusCreated, rec.Code)
	var created mutationResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &created))

	values := employeeForm()
	values.Set("employee_id", "EMP9999")
	values.Set("last_name", "Smith")
	rec = f.postForm("/employees/"+created.ID, values)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	stored, err := f.employees.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "EMP0001", stored.EmployeeID)
	assert.Equal(t, "Smith", stored.LastName)
	assert.Equal(t, "8f0c7a44-3c55-4d8e-9a51-8d2f3f2f6b10", stored.CreatedBy)
	assert.Equal(t, "8f0c7a44-3c55-4d8e-9a51-8d2f3f2f6b10", stored.UpdatedBy)
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestDetailNotFound(t *testing.T) {
	f := newFixture(t, allPermissions())
	assert.Equal(t, http.StatusNotFound, f.get("/employees/not-a-uuid").Code)
	assert.Equal(t, http.StatusNotFound, f.get("/employees/3d7b0f8e-5b0e-4a43-8c39-7e0b0e6b8a11").Code)
	assert.Equal(t, http.StatusNotFound, f.sendJSON(http.MethodDelete, "/departments/3d7b0f8e-5b0e-4a43-8c39-7e0b0e6b8a11", "").Code)
}

func TestEmployeeDetailIncludesRelatedRecords(t *testing.T) {
	f := newFixture(t, allPermissions())
	rec := f.postForm("/employees", employeeForm())
	require.Equal(t, http.StatusCreated, rec.Code)
	var created mutationResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &created))

	level := &hrm.EducationLevel{Name: "Bachelors", Code: "BSC"}
	require.NoError(t, f.levels.Create(context.Background(), level, audit.Entry{}))
	body := fmt.Sprintf(`{"employee":%q,"educationLevel":%q,"institutionName":"BUET","degreeTitle":"BSc CSE"}`, created.ID, level.ID)
	require.Equal(t, http.StatusCreated, f.sendJSON(http.MethodPost, "/education-qualifications", body).Code)

	rec = f.get("/employees/" + created.ID)
	require.Equal(t, http.StatusOK, rec.Code)
	var detail struct {
		EmployeeID string                       `json:"employeeId"`
		Education  []hrm.EducationQualification `json:"educationQualifications"`
		Family     []hrm.FamilyMember           `json:"familyMembers"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &detail))
	assert.Equal(t, "EMP0001", detail.EmployeeID)
	require.Len(t, detail.Education, 1)
	assert.Equal(t, "BSc CSE", detail.Education[0].DegreeTitle)
	assert.Empty(t, detail.Family)
}

func TestDeleteDepartment(t *testing.T) {
	f := newFixture(t, allPermissions())
	ids := seedDepartments(t, f, 1)

	rec := f.sendJSON(http.MethodDelete, "/departments/"+ids[0], "")
	require.Equal(t, http.StatusOK, rec.Code)
	var out mutationResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &out))
	assert.Equal(t, "Department deleted successfully.", out.Message)
	assert.Equal(t, "/api/v1/departments", out.Redirect)
	assert.Equal(t, 0, f.departments.Len())
}

func TestExport(t *testing.T) {
	f := newFixture(t, allPermissions())
	seedDepartments(t, f, 2)

	rec := f.get("/departments/export?format=csv&search=D01")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/csv"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "departments-")
	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Name,Code,Description,Active", lines[0])

	rec = f.get("/departments/export?format=xlsx")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")))

	rec = f.get("/departments/export?format=doc")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"format"}, fieldsOf(decode(t, rec)))
}

func TestDocumentUploadAndDownload(t *testing.T) {
	f := newFixture(t, allPermissions())
	employee := "3d7b0f8e-5b0e-4a43-8c39-7e0b0e6b8a11"
	docType := "b1a8e3c2-2d43-4f4e-8a7b-1f0c2d3e4f50"

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range map[string]string{
		"employee":        employee,
		"document_type":   docType,
		"document_name":   "Passport",
		"document_number": "A1234567",
		"status":          "pending",
	} {
		require.NoError(t, mw.WriteField(k, v))
	}
	part, err := mw.CreateFormFile(documentFileField, "passport.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4\n%fake\n"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/employee-documents", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := f.do(req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created mutationResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &created))
	assert.Equal(t, "Employee Document created successfully.", created.Message)

	stored, err := f.documents.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "passport.pdf", stored.FileName)
	assert.Equal(t, "application/pdf", stored.ContentType)
	assert.Equal(t, "8f0c7a44-3c55-4d8e-9a51-8d2f3f2f6b10", stored.UploadedBy)

	rec = f.get("/employee-documents/" + created.ID + "/file")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	content, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4\n%fake\n", string(content))

	update := url.Values{
		"employee":      {employee},
		"document_type": {docType},
		"document_name": {"Passport (renewed)"},
		"status":        {"approved"},
	}
	rec = f.postForm("/employee-documents/"+created.ID, update)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	stored, err = f.documents.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "passport.pdf", stored.FileName, "file kept when none uploaded")
	assert.Equal(t, "8f0c7a44-3c55-4d8e-9a51-8d2f3f2f6b10", stored.UploadedBy)
}

func createEmployeeJSON(t *testing.T, f *fixture, body string) string {
	t.Helper()
	rec := f.sendJSON(http.MethodPost, "/employees", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created mutationResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &created))
	return created.ID
}

func TestJSONUpdateKeepsAuditBeforeSnapshot(t *testing.T) {
	f := newFixture(t, allPermissions())
	id := createEmployeeJSON(t, f, `{"employeeId":"EMP0001","firstName":"A","lastName":"B","joiningDate":"2024-01-01","grossSalary":"1000"}`)

	rec := f.sendJSON(http.MethodPut, "/employees/"+id, `{"grossSalary":"2000"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	require.Len(t, f.employees.Events, 2)
	before, ok := f.employees.Events[1].Before.(*hrm.Employee)
	require.True(t, ok)
	require.NotNil(t, before.GrossSalary)
	assert.Equal(t, "1000", before.GrossSalary.String())
	after, ok := f.employees.Events[1].After.(*hrm.Employee)
	require.True(t, ok)
	assert.Equal(t, "2000", after.GrossSalary.String())

	rec = f.sendJSON(http.MethodPut, "/employees/"+id, `{"grossSalary":"-5"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	stored, err := f.employees.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "2000", stored.GrossSalary.String(), "rejected update leaves the stored row alone")
}

func seedSensitiveEmployee(t *testing.T, f *fixture) string {
	t.Helper()
	salary := decimal.RequireFromString("1000")
	e := hrm.NewEmployee()
	e.EmployeeID, e.FirstName, e.LastName = "EMP0001", "A", "B"
	e.NationalID, e.BankAccountNumber = "1990123456789", "0011-2233"
	e.GrossSalary, e.BasicSalary = &salary, &salary
	require.NoError(t, f.employees.Create(context.Background(), e, audit.Entry{}))
	return e.ID
}

func TestSensitiveEmployeeFieldsNeedCapability(t *testing.T) {
	viewOnly := permSet{auth.Capability(auth.ActionView, auth.EntityEmployee): true}
	withSensitive := permSet{
		auth.Capability(auth.ActionView, auth.EntityEmployee): true,
		auth.PermEmployeeSensitive:                             true,
	}
	tests := []struct {
		name    string
		perms   permSet
		visible bool
	}{
		{name: "without capability", perms: viewOnly, visible: false},
		{name: "with capability", perms: withSensitive, visible: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, tc.perms)
			id := seedSensitiveEmployee(t, f)

			for _, target := range []string{"/employees", "/employees/cards", "/employees/all", "/employees/" + id} {
				rec := f.get(target)
				require.Equal(t, http.StatusOK, rec.Code, target)
				body := rec.Body.String()
				if tc.visible {
					assert.Contains(t, body, "1990123456789", target)
					assert.Contains(t, body, "0011-2233", target)
					continue
				}
				assert.NotContains(t, body, "1990123456789", target)
				assert.NotContains(t, body, "0011-2233", target)
				assert.NotContains(t, body, `"grossSalary":"1000"`, target)
				assert.Contains(t, body, `"grossSalary":null`, target)
			}

			stored, err := f.employees.Get(context.Background(), id)
			require.NoError(t, err)
			assert.Equal(t, "1990123456789", stored.NationalID, "redaction never touches the stored row")
		})
	}
}

func TestReferenceFiltersCheckSyntaxOnly(t *testing.T) {
	f := newFixture(t, allPermissions())
	seedSensitiveEmployee(t, f)

	rec := f.get("/employees?department=3d7b0f8e-5b0e-4a43-8c39-7e0b0e6b8a11")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var list struct {
		Items []hrm.Employee `json:"items"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &list))
	assert.Empty(t, list.Items, "unknown id matches nothing")

	rec = f.get("/employees?department=finance")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"department"}, fieldsOf(decode(t, rec)))
}
