package hrmhandler

import (
	"context"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/oleeahmmed/UniworldHrm/internal/domain/auth"
	"github.com/oleeahmmed/UniworldHrm/internal/domain/hrm"
	"github.com/oleeahmmed/UniworldHrm/internal/transport/http/middleware"
)

// Repositories are the stores behind each resource.
type Repositories struct {
	Employees       hrm.EmployeeRepository
	Departments     hrm.Repository[hrm.Department]
	Designations    hrm.Repository[hrm.Designation]
	Shifts          hrm.Repository[hrm.Shift]
	EducationLevels hrm.Repository[hrm.EducationLevel]
	DocumentTypes   hrm.Repository[hrm.DocumentType]
	Education       hrm.Repository[hrm.EducationQualification]
	Experience      hrm.Repository[hrm.JobExperience]
	Documents       hrm.Repository[hrm.EmployeeDocument]
	Family          hrm.Repository[hrm.FamilyMember]
}

// FromStore picks the Postgres repositories out of a store.
func FromStore(s *hrm.Store) Repositories {
	return Repositories{
		Employees:       s.Employees,
		Departments:     s.Departments,
		Designations:    s.Designations,
		Shifts:          s.Shifts,
		EducationLevels: s.EducationLevels,
		DocumentTypes:   s.DocumentTypes,
		Education:       s.Education,
		Experience:      s.Experience,
		Documents:       s.Documents,
		Family:          s.Family,
	}
}

type Handler struct {
	Repos   Repositories
	Service *hrm.Service
	Perms   middleware.PermissionStore
	Files   FileStore
	// BasePath prefixes the Location and redirect URLs, e.g. /api/v1.
	BasePath string
}

func NewHandler(repos Repositories, perms middleware.PermissionStore, files FileStore, basePath string) *Handler {
	return &Handler{
		Repos: repos,
		Service: &hrm.Service{
			Employees:  repos.Employees,
			Education:  repos.Education,
			Experience: repos.Experience,
			Documents:  repos.Documents,
			Family:     repos.Family,
		},
		Perms:    perms,
		Files:    files,
		BasePath: basePath,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	h.employees().mount(r)
	h.educationLevels().mount(r)
	h.educationQualifications().mount(r)
	h.jobExperiences().mount(r)
	h.documentTypes().mount(r)
	h.employeeDocuments().mount(r)
	h.familyMembers().mount(r)
	h.departments().mount(r)
	h.designations().mount(r)
	h.shifts().mount(r)
}

func (h *Handler) employees() *resource[hrm.Employee, *hrm.Employee, hrm.EmployeeFilter] {
	res := &resource[hrm.Employee, *hrm.Employee, hrm.EmployeeFilter]{
		path:     "employees",
		entity:   auth.EntityEmployee,
		label:    "Employee",
		base:     h.BasePath,
		repo:     h.Repos.Employees,
		perms:    h.Perms,
		defaults: hrm.NewEmployee,
		header:   []string{"Employee ID", "First Name", "Last Name", "Email", "Department", "Designation", "Joining Date", "Status", "Active"},
		row: func(e *hrm.Employee) []string {
			return []string{e.EmployeeID, e.FirstName, e.LastName, e.Email, e.DepartmentName, e.DesignationName,
				e.JoiningDate.String(), e.EmploymentStatus, yesNo(e.IsActive)}
		},
		subject:        func(e *hrm.Employee) string { return "Employee " + e.FullName() },
		redirectDetail: true,
		initial: func(ctx context.Context) *hrm.Employee {
			e := hrm.NewEmployee()
			e.EmployeeID = h.Service.SuggestEmployeeID(ctx)
			return e
		},
		detail: func(ctx context.Context, id string, hide func(*hrm.Employee)) (any, error) {
			d, err := h.Service.EmployeeDetail(ctx, id)
			if err != nil {
				return nil, err
			}
			if hide != nil {
				hide(d.Employee)
			}
			return d, nil
		},
		sensitive: auth.PermEmployeeSensitive,
		redact:    hrm.RedactEmployee,
	}
	res.extra = func(r chi.Router) {
		view := res.capability(auth.ActionView)
		r.Get("/cards", middleware.Require(h.Perms, view, res.paged(cardPageSize)))
		r.Get("/all", middleware.Require(h.Perms, view, res.all))
	}
	return res
}

func (h *Handler) educationLevels() *resource[hrm.EducationLevel, *hrm.EducationLevel, hrm.EducationLevelFilter] {
	return &resource[hrm.EducationLevel, *hrm.EducationLevel, hrm.EducationLevelFilter]{
		path:     "education-levels",
		entity:   auth.EntityEducationLevel,
		label:    "Education Level",
		base:     h.BasePath,
		repo:     h.Repos.EducationLevels,
		perms:    h.Perms,
		defaults: hrm.NewEducationLevel,
		header:   []string{"Name", "Code", "Level", "Description"},
		row: func(l *hrm.EducationLevel) []string {
			return []string{l.Name, l.Code, strconv.Itoa(l.Level), l.Description}
		},
	}
}

func (h *Handler) educationQualifications() *resource[hrm.EducationQualification, *hrm.EducationQualification, hrm.EducationQualificationFilter] {
	return &resource[hrm.EducationQualification, *hrm.EducationQualification, hrm.EducationQualificationFilter]{
		path:     "education-qualifications",
		entity:   auth.EntityEducationQualification,
		label:    "Education Qualification",
		base:     h.BasePath,
		repo:     h.Repos.Education,
		perms:    h.Perms,
		defaults: hrm.NewEducationQualification,
		header:   []string{"Employee", "Education Level", "Degree", "Institution", "Graduation Date"},
		row: func(q *hrm.EducationQualification) []string {
			return []string{employeeName(q.EmployeeRef), q.EducationLevelName, q.DegreeTitle, q.InstitutionName, q.GraduationDate.String()}
		},
	}
}

func (h *Handler) jobExperiences() *resource[hrm.JobExperience, *hrm.JobExperience, hrm.JobExperienceFilter] {
	return &resource[hrm.JobExperience, *hrm.JobExperience, hrm.JobExperienceFilter]{
		path:     "job-experiences",
		entity:   auth.EntityJobExperience,
		label:    "Job Experience",
		base:     h.BasePath,
		repo:     h.Repos.Experience,
		perms:    h.Perms,
		defaults: hrm.NewJobExperience,
		header:   []string{"Employee", "Company", "Job Title", "Start Date", "End Date", "Type"},
		row: func(j *hrm.JobExperience) []string {
			return []string{employeeName(j.EmployeeRef), j.CompanyName, j.JobTitle, j.StartDate.String(), j.EndDate.String(), j.EmploymentType}
		},
	}
}

func (h *Handler) documentTypes() *resource[hrm.DocumentType, *hrm.DocumentType, hrm.DocumentTypeFilter] {
	return &resource[hrm.DocumentType, *hrm.DocumentType, hrm.DocumentTypeFilter]{
		path:     "document-types",
		entity:   auth.EntityDocumentType,
		label:    "Document Type",
		base:     h.BasePath,
		repo:     h.Repos.DocumentTypes,
		perms:    h.Perms,
		defaults: hrm.NewDocumentType,
		header:   []string{"Name", "Code", "Description"},
		row: func(t *hrm.DocumentType) []string {
			return []string{t.Name, t.Code, t.Description}
		},
	}
}

func (h *Handler) employeeDocuments() *resource[hrm.EmployeeDocument, *hrm.EmployeeDocument, hrm.EmployeeDocumentFilter] {
	res := &resource[hrm.EmployeeDocument, *hrm.EmployeeDocument, hrm.EmployeeDocumentFilter]{
		path:     "employee-documents",
		entity:   auth.EntityEmployeeDocument,
		label:    "Employee Document",
		base:     h.BasePath,
		repo:     h.Repos.Documents,
		perms:    h.Perms,
		defaults: hrm.NewEmployeeDocument,
		header:   []string{"Employee", "Document Type", "Document Name", "Document Number", "Status", "File"},
		row: func(d *hrm.EmployeeDocument) []string {
			return []string{employeeName(d.EmployeeRef), d.DocumentTypeName, d.DocumentName, d.DocumentNumber, d.Status, d.FileName}
		},
		attach: h.attachDocumentFile,
		detach: h.discardDocumentFile,
	}
	res.itemExtra = func(r chi.Router) {
		r.Get("/file", middleware.Require(h.Perms, res.capability(auth.ActionView), h.documentFile(res)))
	}
	return res
}

func (h *Handler) familyMembers() *resource[hrm.FamilyMember, *hrm.FamilyMember, hrm.FamilyMemberFilter] {
	return &resource[hrm.FamilyMember, *hrm.FamilyMember, hrm.FamilyMemberFilter]{
		path:     "family-members",
		entity:   auth.EntityFamilyMember,
		label:    "Family Member",
		base:     h.BasePath,
		repo:     h.Repos.Family,
		perms:    h.Perms,
		defaults: hrm.NewFamilyMember,
		header:   []string{"Employee", "Name", "Relationship", "Phone", "Dependent", "Emergency Contact", "Nominee"},
		row: func(f *hrm.FamilyMember) []string {
			return []string{employeeName(f.EmployeeRef), f.Name, f.Relationship, f.Phone,
				yesNo(f.IsDependent), yesNo(f.IsEmergencyContact), yesNo(f.IsNominee)}
		},
	}
}

func (h *Handler) departments() *resource[hrm.Department, *hrm.Department, hrm.DepartmentFilter] {
	return &resource[hrm.Department, *hrm.Department, hrm.DepartmentFilter]{
		path:     "departments",
		entity:   auth.EntityDepartment,
		label:    "Department",
		base:     h.BasePath,
		repo:     h.Repos.Departments,
		perms:    h.Perms,
		defaults: hrm.NewDepartment,
		header:   []string{"Name", "Code", "Description", "Active"},
		row: func(d *hrm.Department) []string {
			return []string{d.Name, d.Code, d.Description, yesNo(d.IsActive)}
		},
	}
}

func (h *Handler) designations() *resource[hrm.Designation, *hrm.Designation, hrm.DesignationFilter] {
	return &resource[hrm.Designation, *hrm.Designation, hrm.DesignationFilter]{
		path:     "designations",
		entity:   auth.EntityDesignation,
		label:    "Designation",
		base:     h.BasePath,
		repo:     h.Repos.Designations,
		perms:    h.Perms,
		defaults: hrm.NewDesignation,
		header:   []string{"Name", "Code", "Department", "Active"},
		row: func(d *hrm.Designation) []string {
			return []string{d.Name, d.Code, d.DepartmentName, yesNo(d.IsActive)}
		},
	}
}

func (h *Handler) shifts() *resource[hrm.Shift, *hrm.Shift, hrm.ShiftFilter] {
	return &resource[hrm.Shift, *hrm.Shift, hrm.ShiftFilter]{
		path:     "shifts",
		entity:   auth.EntityShift,
		label:    "Shift",
		base:     h.BasePath,
		repo:     h.Repos.Shifts,
		perms:    h.Perms,
		defaults: hrm.NewShift,
		header:   []string{"Name", "Code", "Start", "End", "Active"},
		row: func(s *hrm.Shift) []string {
			return []string{s.Name, s.Code, s.StartTime, s.EndTime, yesNo(s.IsActive)}
		},
	}
}

func employeeName(ref hrm.EmployeeRef) string {
	if ref.EmployeeLastName == "" {
		return ref.EmployeeFirstName
	}
	return ref.EmployeeFirstName + " " + ref.EmployeeLastName
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
