package hrm

import (
	"strings"

	"github.com/oleeahmmed/UniworldHrm/internal/platform/query"
)

// A filter adds one predicate per non-empty field. With every field empty it
// hands back the base query untouched.
type Filter interface {
	Apply(base query.Query) query.Query
}

func search(q query.Query, text string, columns ...string) query.Query {
	text = strings.TrimSpace(text)
	if text == "" {
		return q
	}
	return q.Filter(query.ContainsAny(text, columns...))
}

func exact(q query.Query, column, value string) query.Query {
	value = strings.TrimSpace(value)
	if value == "" {
		return q
	}
	return q.Filter(query.Eq(column, value))
}

// triState maps "" to no predicate and "true"/"false" to an equality test.
func triState(q query.Query, column, value string) query.Query {
	switch strings.TrimSpace(value) {
	case "true":
		return q.Filter(query.Eq(column, true))
	case "false":
		return q.Filter(query.Eq(column, false))
	}
	return q
}

type EmployeeFilter struct {
	Search           string `form:"search" json:"search" validate:"max=100"`
	Department       string `form:"department" json:"department" validate:"omitempty,uuid"`
	Designation      string `form:"designation" json:"designation" validate:"omitempty,uuid"`
	EmploymentStatus string `form:"employment_status" json:"employment_status" validate:"omitempty,oneof=probation confirmed contract intern resigned terminated retired"`
	IsActive         string `form:"is_active" json:"is_active" validate:"omitempty,oneof=true false"`
}

func (f EmployeeFilter) Apply(q query.Query) query.Query {
	q = search(q, f.Search, "emp.employee_id", "emp.first_name", "emp.last_name", "emp.email")
	q = exact(q, "emp.department_id", f.Department)
	q = exact(q, "emp.designation_id", f.Designation)
	q = exact(q, "emp.employment_status", f.EmploymentStatus)
	return triState(q, "emp.is_active", f.IsActive)
}

type DepartmentFilter struct {
	Search   string `form:"search" json:"search" validate:"max=100"`
	IsActive string `form:"is_active" json:"is_active" validate:"omitempty,oneof=true false"`
}

func (f DepartmentFilter) Apply(q query.Query) query.Query {
	q = search(q, f.Search, "dep.name", "dep.code")
	return triState(q, "dep.is_active", f.IsActive)
}

type DesignationFilter struct {
	Search     string `form:"search" json:"search" validate:"max=100"`
	Department string `form:"department" json:"department" validate:"omitempty,uuid"`
	IsActive   string `form:"is_active" json:"is_active" validate:"omitempty,oneof=true false"`
}

func (f DesignationFilter) Apply(q query.Query) query.Query {
	q = search(q, f.Search, "des.name", "des.code")
	q = exact(q, "des.department_id", f.Department)
	return triState(q, "des.is_active", f.IsActive)
}

type ShiftFilter struct {
	Search   string `form:"search" json:"search" validate:"max=100"`
	IsActive string `form:"is_active" json:"is_active" validate:"omitempty,oneof=true false"`
}

func (f ShiftFilter) Apply(q query.Query) query.Query {
	q = search(q, f.Search, "sh.name", "sh.code")
	return triState(q, "sh.is_active", f.IsActive)
}

type EducationLevelFilter struct {
	Search string `form:"search" json:"search" validate:"max=100"`
}

func (f EducationLevelFilter) Apply(q query.Query) query.Query {
	return search(q, f.Search, "lvl.name", "lvl.code")
}

type DocumentTypeFilter struct {
	Search string `form:"search" json:"search" validate:"max=100"`
}

func (f DocumentTypeFilter) Apply(q query.Query) query.Query {
	return search(q, f.Search, "dt.name", "dt.code")
}

type EducationQualificationFilter struct {
	Search         string `form:"search" json:"search" validate:"max=100"`
	Employee       string `form:"employee" json:"employee" validate:"omitempty,uuid"`
	EducationLevel string `form:"education_level" json:"education_level" validate:"omitempty,uuid"`
}

func (f EducationQualificationFilter) Apply(q query.Query) query.Query {
	q = search(q, f.Search, "e.first_name", "e.last_name", "eq.degree_title", "eq.institution_name")
	q = exact(q, "eq.education_level_id", f.EducationLevel)
	return exact(q, "eq.employee_id", f.Employee)
}

type JobExperienceFilter struct {
	Search         string `form:"search" json:"search" validate:"max=100"`
	Employee       string `form:"employee" json:"employee" validate:"omitempty,uuid"`
	EmploymentType string `form:"employment_type" json:"employment_type" validate:"omitempty,oneof=full_time part_time contract internship freelance"`
}

func (f JobExperienceFilter) Apply(q query.Query) query.Query {
	q = search(q, f.Search, "e.first_name", "e.last_name", "je.company_name", "je.job_title")
	q = exact(q, "je.employee_id", f.Employee)
	return exact(q, "je.employment_type", f.EmploymentType)
}

type EmployeeDocumentFilter struct {
	Search       string `form:"search" json:"search" validate:"max=100"`
	Employee     string `form:"employee" json:"employee" validate:"omitempty,uuid"`
	DocumentType string `form:"document_type" json:"document_type" validate:"omitempty,uuid"`
	Status       string `form:"status" json:"status" validate:"omitempty,oneof=pending approved rejected expired"`
}

func (f EmployeeDocumentFilter) Apply(q query.Query) query.Query {
	q = search(q, f.Search, "e.first_name", "e.last_name", "doc.document_name", "doc.document_number")
	q = exact(q, "doc.employee_id", f.Employee)
	q = exact(q, "doc.document_type_id", f.DocumentType)
	return exact(q, "doc.status", f.Status)
}

type FamilyMemberFilter struct {
	Search       string `form:"search" json:"search" validate:"max=100"`
	Employee     string `form:"employee" json:"employee" validate:"omitempty,uuid"`
	Relationship string `form:"relationship" json:"relationship" validate:"omitempty,oneof=spouse father mother son daughter brother sister other"`
}

func (f FamilyMemberFilter) Apply(q query.Query) query.Query {
	q = search(q, f.Search, "e.first_name", "e.last_name", "fm.name")
	q = exact(q, "fm.employee_id", f.Employee)
	return exact(q, "fm.relationship", f.Relationship)
}

// ForEmployee scopes a related collection to one employee.
func ForEmployee(alias, employeeID string) query.Predicate {
	return query.Eq(alias+".employee_id", employeeID)
}
