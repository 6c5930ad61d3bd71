package hrm

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/oleeahmmed/UniworldHrm/internal/platform/query"
)

type Timestamps struct {
	CreatedAt time.Time `json:"createdAt" form:"-"`
	UpdatedAt time.Time `json:"updatedAt" form:"-"`
}

func baseColumns(alias string, id *string, ts *Timestamps) query.Columns {
	return query.Columns{
		{Table: alias, Name: "id", Ref: id, Mode: query.Key},
		{Table: alias, Name: "created_at", Ref: &ts.CreatedAt, Mode: query.Generated},
		{Table: alias, Name: "updated_at", Ref: &ts.UpdatedAt, Mode: query.Generated},
	}
}

// Address is one Bangladesh postal address block.
type Address struct {
	VillageHouse  string `json:"villageHouse" form:"village_house" validate:"max=255"`
	RoadBlock     string `json:"roadBlock" form:"road_block" validate:"max=255"`
	PostOffice    string `json:"postOffice" form:"post_office" validate:"max=100"`
	PoliceStation string `json:"policeStation" form:"police_station" validate:"max=100"`
	District      string `json:"district" form:"district" validate:"max=100"`
	Division      string `json:"division" form:"division" validate:"max=100"`
	PostalCode    string `json:"postalCode" form:"postal_code" validate:"omitempty,max=10,numeric"`
}

func (a *Address) columns(alias, prefix string) query.Columns {
	return query.Columns{
		{Table: alias, Name: prefix + "village_house", Ref: &a.VillageHouse},
		{Table: alias, Name: prefix + "road_block", Ref: &a.RoadBlock},
		{Table: alias, Name: prefix + "post_office", Ref: &a.PostOffice},
		{Table: alias, Name: prefix + "police_station", Ref: &a.PoliceStation},
		{Table: alias, Name: prefix + "district", Ref: &a.District},
		{Table: alias, Name: prefix + "division", Ref: &a.Division},
		{Table: alias, Name: prefix + "postal_code", Ref: &a.PostalCode},
	}
}

type Employee struct {
	ID         string `json:"id" form:"-"`
	EmployeeID string `json:"employeeId" form:"employee_id" validate:"required,max=20"`
	FirstName  string `json:"firstName" form:"first_name" validate:"required,max=100"`
	LastName   string `json:"lastName" form:"last_name" validate:"required,max=100"`
	Email      string `json:"email" form:"email" validate:"omitempty,email,max=254"`

	Gender        string `json:"gender" form:"gender" validate:"omitempty,oneof=male female other"`
	DateOfBirth   Date   `json:"dateOfBirth" form:"date_of_birth" validate:"omitempty,date"`
	NationalID    string `json:"nationalId" form:"national_id" validate:"max=50"`
	Phone         string `json:"phone" form:"phone" validate:"max=20"`
	MaritalStatus string `json:"maritalStatus" form:"marital_status" validate:"omitempty,oneof=single married divorced widowed"`
	Nationality   string `json:"nationality" form:"nationality" validate:"max=50"`
	Religion      string `json:"religion" form:"religion" validate:"max=50"`
	BloodGroup    string `json:"bloodGroup" form:"blood_group" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`

	FatherName   string           `json:"fatherName" form:"father_name" validate:"max=100"`
	MotherName   string           `json:"motherName" form:"mother_name" validate:"max=100"`
	SpouseName   string           `json:"spouseName" form:"spouse_name" validate:"max=100"`
	PlaceOfBirth string           `json:"placeOfBirth" form:"place_of_birth" validate:"max=100"`
	MarriageDate Date             `json:"marriageDate" form:"marriage_date" validate:"omitempty,date"`
	Height       *decimal.Decimal `json:"height" form:"height" validate:"omitempty,gte=0"`
	Weight       *decimal.Decimal `json:"weight" form:"weight" validate:"omitempty,gte=0"`

	PersonalEmail string `json:"personalEmail" form:"personal_email" validate:"omitempty,email,max=254"`
	Mobile        string `json:"mobile" form:"mobile" validate:"max=20"`
	HomePhone     string `json:"homePhone" form:"home_phone" validate:"max=20"`
	WorkPhone     string `json:"workPhone" form:"work_phone" validate:"max=20"`

	PresentAddress   Address `json:"presentAddress" form:"present"`
	PermanentAddress Address `json:"permanentAddress" form:"permanent"`

	DepartmentID       string `json:"department" form:"department" validate:"omitempty,uuid"`
	DesignationID      string `json:"designation" form:"designation" validate:"omitempty,uuid"`
	DefaultShiftID     string `json:"defaultShift" form:"default_shift" validate:"omitempty,uuid"`
	ReportingManagerID string `json:"reportingManager" form:"reporting_manager" validate:"omitempty,uuid"`

	JoiningDate       Date   `json:"joiningDate" form:"joining_date" validate:"required,date"`
	ProbationEndDate  Date   `json:"probationEndDate" form:"probation_end_date" validate:"omitempty,date"`
	ConfirmationDate  Date   `json:"confirmationDate" form:"confirmation_date" validate:"omitempty,date"`
	ContractStartDate Date   `json:"contractStartDate" form:"contract_start_date" validate:"omitempty,date"`
	ContractEndDate   Date   `json:"contractEndDate" form:"contract_end_date" validate:"omitempty,date"`
	TerminationDate   Date   `json:"terminationDate" form:"termination_date" validate:"omitempty,date"`
	TerminationReason string `json:"terminationReason" form:"termination_reason" validate:"max=2000"`
	EmploymentStatus  string `json:"employmentStatus" form:"employment_status" validate:"required,oneof=probation confirmed contract intern resigned terminated retired"`
	EmploymentType    string `json:"employmentType" form:"employment_type" validate:"omitempty,oneof=full_time part_time contract intern consultant"`
	EmployeeGrade     string `json:"employeeGrade" form:"employee_grade" validate:"max=20"`
	EmployeeLevel     string `json:"employeeLevel" form:"employee_level" validate:"max=20"`
	WorkLocation      string `json:"workLocation" form:"work_location" validate:"max=100"`

	ExpectedWorkHours    *decimal.Decimal `json:"expectedWorkHours" form:"expected_work_hours" validate:"omitempty,gte=0,lte=24"`
	OvertimeGraceMinutes int              `json:"overtimeGraceMinutes" form:"overtime_grace_minutes" validate:"gte=0,lte=600"`
	GrossSalary          *decimal.Decimal `json:"grossSalary" form:"gross_salary" validate:"omitempty,gte=0"`
	BasicSalary          *decimal.Decimal `json:"basicSalary" form:"basic_salary" validate:"omitempty,gte=0"`
	Currency             string           `json:"currency" form:"currency" validate:"omitempty,len=3,alpha"`

	BankName          string `json:"bankName" form:"bank_name" validate:"max=100"`
	BankBranch        string `json:"bankBranch" form:"bank_branch" validate:"max=100"`
	BankAccountNumber string `json:"bankAccountNumber" form:"bank_account_number" validate:"max=50"`
	BankRoutingNumber string `json:"bankRoutingNumber" form:"bank_routing_number" validate:"max=20"`
	BankSwiftCode     string `json:"bankSwiftCode" form:"bank_swift_code" validate:"max=11"`

	IsActive  bool   `json:"isActive" form:"is_active"`
	CreatedBy string `json:"createdBy" form:"-"`
	UpdatedBy string `json:"updatedBy" form:"-"`

	DepartmentName  string `json:"departmentName,omitempty" form:"-"`
	DesignationName string `json:"designationName,omitempty" form:"-"`
	Timestamps
}

func NewEmployee() *Employee {
	return &Employee{
		IsActive:         true,
		EmploymentStatus: EmploymentStatusProbation,
		Currency:         DefaultCurrency,
	}
}

func (e *Employee) Key() string { return e.ID }

func (e *Employee) StampCreator(userID string) { e.CreatedBy = userID }

func (e *Employee) StampUpdater(userID string) { e.UpdatedBy = userID }

func (e *Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

func (e *Employee) Columns() query.Columns {
	const a = "emp"
	cols := baseColumns(a, &e.ID, &e.Timestamps)
	cols = append(cols, query.Columns{
		{Table: a, Name: "employee_id", Ref: &e.EmployeeID, Mode: query.Immutable},
		{Table: a, Name: "first_name", Ref: &e.FirstName},
		{Table: a, Name: "last_name", Ref: &e.LastName},
		{Table: a, Name: "email", Ref: &e.Email, Mode: query.NullIfEmpty},
		{Table: a, Name: "gender", Ref: &e.Gender},
		{Table: a, Name: "date_of_birth", Ref: &e.DateOfBirth},
		{Table: a, Name: "national_id", Ref: &e.NationalID, Mode: query.Encrypted},
		{Table: a, Name: "phone", Ref: &e.Phone},
		{Table: a, Name: "marital_status", Ref: &e.MaritalStatus},
		{Table: a, Name: "nationality", Ref: &e.Nationality},
		{Table: a, Name: "religion", Ref: &e.Religion},
		{Table: a, Name: "blood_group", Ref: &e.BloodGroup},
		{Table: a, Name: "father_name", Ref: &e.FatherName},
		{Table: a, Name: "mother_name", Ref: &e.MotherName},
		{Table: a, Name: "spouse_name", Ref: &e.SpouseName},
		{Table: a, Name: "place_of_birth", Ref: &e.PlaceOfBirth},
		{Table: a, Name: "marriage_date", Ref: &e.MarriageDate},
		{Table: a, Name: "height", Ref: &e.Height},
		{Table: a, Name: "weight", Ref: &e.Weight},
		{Table: a, Name: "personal_email", Ref: &e.PersonalEmail},
		{Table: a, Name: "mobile", Ref: &e.Mobile},
		{Table: a, Name: "home_phone", Ref: &e.HomePhone},
		{Table: a, Name: "work_phone", Ref: &e.WorkPhone},
	}...)
	cols = append(cols, e.PresentAddress.columns(a, "present_")...)
	cols = append(cols, e.PermanentAddress.columns(a, "permanent_")...)
	cols = append(cols, query.Columns{
		{Table: a, Name: "department_id", Ref: &e.DepartmentID, Mode: query.NullIfEmpty},
		{Table: a, Name: "designation_id", Ref: &e.DesignationID, Mode: query.NullIfEmpty},
		{Table: a, Name: "default_shift_id", Ref: &e.DefaultShiftID, Mode: query.NullIfEmpty},
		{Table: a, Name: "reporting_manager_id", Ref: &e.ReportingManagerID, Mode: query.NullIfEmpty},
		{Table: a, Name: "joining_date", Ref: &e.JoiningDate},
		{Table: a, Name: "probation_end_date", Ref: &e.ProbationEndDate},
		{Table: a, Name: "confirmation_date", Ref: &e.ConfirmationDate},
		{Table: a, Name: "contract_start_date", Ref: &e.ContractStartDate},
		{Table: a, Name: "contract_end_date", Ref: &e.ContractEndDate},
		{Table: a, Name: "termination_date", Ref: &e.TerminationDate},
		{Table: a, Name: "termination_reason", Ref: &e.TerminationReason},
		{Table: a, Name: "employment_status", Ref: &e.EmploymentStatus},
		{Table: a, Name: "employment_type", Ref: &e.EmploymentType},
		{Table: a, Name: "employee_grade", Ref: &e.EmployeeGrade},
		{Table: a, Name: "employee_level", Ref: &e.EmployeeLevel},
		{Table: a, Name: "work_location", Ref: &e.WorkLocation},
		{Table: a, Name: "expected_work_hours", Ref: &e.ExpectedWorkHours},
		{Table: a, Name: "overtime_grace_minutes", Ref: &e.OvertimeGraceMinutes},
		{Table: a, Name: "gross_salary", Ref: &e.GrossSalary},
		{Table: a, Name: "basic_salary", Ref: &e.BasicSalary},
		{Table: a, Name: "currency", Ref: &e.Currency},
		{Table: a, Name: "bank_name", Ref: &e.BankName},
		{Table: a, Name: "bank_branch", Ref: &e.BankBranch},
		{Table: a, Name: "bank_account_number", Ref: &e.BankAccountNumber, Mode: query.Encrypted},
		{Table: a, Name: "bank_routing_number", Ref: &e.BankRoutingNumber},
		{Table: a, Name: "bank_swift_code", Ref: &e.BankSwiftCode},
		{Table: a, Name: "is_active", Ref: &e.IsActive},
		{Table: a, Name: "created_by", Ref: &e.CreatedBy, Mode: query.Immutable | query.NullIfEmpty},
		{Table: a, Name: "updated_by", Ref: &e.UpdatedBy, Mode: query.NullIfEmpty},
		{Table: "d", Name: "name", Ref: &e.DepartmentName, Mode: query.Joined | query.NullIfEmpty},
		{Table: "g", Name: "name", Ref: &e.DesignationName, Mode: query.Joined | query.NullIfEmpty},
	}...)
	return cols
}

func (e *Employee) CrossCheck() []FieldIssue {
	return dateOrder(
		dateSpan{"joiningDate", e.JoiningDate, "probationEndDate", e.ProbationEndDate},
		dateSpan{"contractStartDate", e.ContractStartDate, "contractEndDate", e.ContractEndDate},
		dateSpan{"joiningDate", e.JoiningDate, "terminationDate", e.TerminationDate},
	)
}

// EmployeeDetail is an employee with its four related collections.
type EmployeeDetail struct {
	*Employee
	Education  []EducationQualification `json:"educationQualifications"`
	Experience []JobExperience          `json:"jobExperiences"`
	Documents  []EmployeeDocument       `json:"documents"`
	Family     []FamilyMember           `json:"familyMembers"`
}

type Department struct {
	ID          string `json:"id" form:"-"`
	Name        string `json:"name" form:"name" validate:"required,max=100"`
	Code        string `json:"code" form:"code" validate:"required,max=20"`
	Description string `json:"description" form:"description" validate:"max=2000"`
	IsActive    bool   `json:"isActive" form:"is_active"`
	Timestamps
}

func NewDepartment() *Department { return &Department{IsActive: true} }

func (d *Department) Key() string { return d.ID }

func (d *Department) Columns() query.Columns {
	return append(baseColumns("dep", &d.ID, &d.Timestamps), query.Columns{
		{Table: "dep", Name: "name", Ref: &d.Name},
		{Table: "dep", Name: "code", Ref: &d.Code},
		{Table: "dep", Name: "description", Ref: &d.Description},
		{Table: "dep", Name: "is_active", Ref: &d.IsActive},
	}...)
}

type Designation struct {
	ID             string `json:"id" form:"-"`
	Name           string `json:"name" form:"name" validate:"required,max=100"`
	Code           string `json:"code" form:"code" validate:"required,max=20"`
	DepartmentID   string `json:"department" form:"department" validate:"omitempty,uuid"`
	Description    string `json:"description" form:"description" validate:"max=2000"`
	IsActive       bool   `json:"isActive" form:"is_active"`
	DepartmentName string `json:"departmentName,omitempty" form:"-"`
	Timestamps
}

func NewDesignation() *Designation { return &Designation{IsActive: true} }

func (d *Designation) Key() string { return d.ID }

func (d *Designation) Columns() query.Columns {
	return append(baseColumns("des", &d.ID, &d.Timestamps), query.Columns{
		{Table: "des", Name: "name", Ref: &d.Name},
		{Table: "des", Name: "code", Ref: &d.Code},
		{Table: "des", Name: "department_id", Ref: &d.DepartmentID, Mode: query.NullIfEmpty},
		{Table: "des", Name: "description", Ref: &d.Description},
		{Table: "des", Name: "is_active", Ref: &d.IsActive},
		{Table: "d", Name: "name", Ref: &d.DepartmentName, Mode: query.Joined | query.NullIfEmpty},
	}...)
}

type Shift struct {
	ID        string `json:"id" form:"-"`
	Name      string `json:"name" form:"name" validate:"required,max=100"`
	Code      string `json:"code" form:"code" validate:"required,max=20"`
	StartTime string `json:"startTime" form:"start_time" validate:"required,datetime=15:04"`
	EndTime   string `json:"endTime" form:"end_time" validate:"required,datetime=15:04"`
	IsActive  bool   `json:"isActive" form:"is_active"`
	Timestamps
}

func NewShift() *Shift { return &Shift{IsActive: true} }

func (s *Shift) Key() string { return s.ID }

func (s *Shift) Columns() query.Columns {
	return append(baseColumns("sh", &s.ID, &s.Timestamps), query.Columns{
		{Table: "sh", Name: "name", Ref: &s.Name},
		{Table: "sh", Name: "code", Ref: &s.Code},
		{Table: "sh", Name: "start_time", Ref: &s.StartTime},
		{Table: "sh", Name: "end_time", Ref: &s.EndTime},
		{Table: "sh", Name: "is_active", Ref: &s.IsActive},
	}...)
}

type EducationLevel struct {
	ID          string `json:"id" form:"-"`
	Name        string `json:"name" form:"name" validate:"required,max=100"`
	Code        string `json:"code" form:"code" validate:"required,max=20"`
	Level       int    `json:"level" form:"level" validate:"gte=0,lte=100"`
	Description string `json:"description" form:"description" validate:"max=2000"`
	Timestamps
}

func NewEducationLevel() *EducationLevel { return &EducationLevel{} }

func (l *EducationLevel) Key() string { return l.ID }

func (l *EducationLevel) Columns() query.Columns {
	return append(baseColumns("lvl", &l.ID, &l.Timestamps), query.Columns{
		{Table: "lvl", Name: "name", Ref: &l.Name},
		{Table: "lvl", Name: "code", Ref: &l.Code},
		{Table: "lvl", Name: "level", Ref: &l.Level},
		{Table: "lvl", Name: "description", Ref: &l.Description},
	}...)
}

type DocumentType struct {
	ID          string `json:"id" form:"-"`
	Name        string `json:"name" form:"name" validate:"required,max=100"`
	Code        string `json:"code" form:"code" validate:"required,max=20"`
	Description string `json:"description" form:"description" validate:"max=2000"`
	Timestamps
}

func NewDocumentType() *DocumentType { return &DocumentType{} }

func (t *DocumentType) Key() string { return t.ID }

func (t *DocumentType) Columns() query.Columns {
	return append(baseColumns("dt", &t.ID, &t.Timestamps), query.Columns{
		{Table: "dt", Name: "name", Ref: &t.Name},
		{Table: "dt", Name: "code", Ref: &t.Code},
		{Table: "dt", Name: "description", Ref: &t.Description},
	}...)
}

// EmployeeRef is the owning employee as shown next to related records.
type EmployeeRef struct {
	EmployeeFirstName string `json:"employeeFirstName,omitempty" form:"-"`
	EmployeeLastName  string `json:"employeeLastName,omitempty" form:"-"`
}

func (r *EmployeeRef) columns() query.Columns {
	return query.Columns{
		{Table: "e", Name: "first_name", Ref: &r.EmployeeFirstName, Mode: query.Joined | query.NullIfEmpty},
		{Table: "e", Name: "last_name", Ref: &r.EmployeeLastName, Mode: query.Joined | query.NullIfEmpty},
	}
}

type EducationQualification struct {
	ID                 string `json:"id" form:"-"`
	EmployeeID         string `json:"employee" form:"employee" validate:"required,uuid"`
	EducationLevelID   string `json:"educationLevel" form:"education_level" validate:"required,uuid"`
	InstitutionName    string `json:"institutionName" form:"institution_name" validate:"required,max=200"`
	DegreeTitle        string `json:"degreeTitle" form:"degree_title" validate:"required,max=200"`
	GraduationDate     Date   `json:"graduationDate" form:"graduation_date" validate:"omitempty,date"`
	EducationLevelName string `json:"educationLevelName,omitempty" form:"-"`
	EmployeeRef
	Timestamps
}

func NewEducationQualification() *EducationQualification { return &EducationQualification{} }

func (q *EducationQualification) Key() string { return q.ID }

func (q *EducationQualification) Columns() query.Columns {
	cols := append(baseColumns("eq", &q.ID, &q.Timestamps), query.Columns{
		{Table: "eq", Name: "employee_id", Ref: &q.EmployeeID},
		{Table: "eq", Name: "education_level_id", Ref: &q.EducationLevelID},
		{Table: "eq", Name: "institution_name", Ref: &q.InstitutionName},
		{Table: "eq", Name: "degree_title", Ref: &q.DegreeTitle},
		{Table: "eq", Name: "graduation_date", Ref: &q.GraduationDate},
		{Table: "lvl", Name: "name", Ref: &q.EducationLevelName, Mode: query.Joined | query.NullIfEmpty},
	}...)
	return append(cols, q.EmployeeRef.columns()...)
}

type JobExperience struct {
	ID             string `json:"id" form:"-"`
	EmployeeID     string `json:"employee" form:"employee" validate:"required,uuid"`
	CompanyName    string `json:"companyName" form:"company_name" validate:"required,max=200"`
	JobTitle       string `json:"jobTitle" form:"job_title" validate:"required,max=200"`
	StartDate      Date   `json:"startDate" form:"start_date" validate:"required,date"`
	EndDate        Date   `json:"endDate" form:"end_date" validate:"omitempty,date"`
	EmploymentType string `json:"employmentType" form:"employment_type" validate:"omitempty,oneof=full_time part_time contract internship freelance"`
	EmployeeRef
	Timestamps
}

func NewJobExperience() *JobExperience { return &JobExperience{} }

func (j *JobExperience) Key() string { return j.ID }

func (j *JobExperience) Columns() query.Columns {
	cols := append(baseColumns("je", &j.ID, &j.Timestamps), query.Columns{
		{Table: "je", Name: "employee_id", Ref: &j.EmployeeID},
		{Table: "je", Name: "company_name", Ref: &j.CompanyName},
		{Table: "je", Name: "job_title", Ref: &j.JobTitle},
		{Table: "je", Name: "start_date", Ref: &j.StartDate},
		{Table: "je", Name: "end_date", Ref: &j.EndDate},
		{Table: "je", Name: "employment_type", Ref: &j.EmploymentType, Mode: query.NullIfEmpty},
	}...)
	return append(cols, j.EmployeeRef.columns()...)
}

func (j *JobExperience) CrossCheck() []FieldIssue {
	return dateOrder(dateSpan{"startDate", j.StartDate, "endDate", j.EndDate})
}

type EmployeeDocument struct {
	ID               string `json:"id" form:"-"`
	EmployeeID       string `json:"employee" form:"employee" validate:"required,uuid"`
	DocumentTypeID   string `json:"documentType" form:"document_type" validate:"required,uuid"`
	DocumentName     string `json:"documentName" form:"document_name" validate:"required,max=200"`
	DocumentNumber   string `json:"documentNumber" form:"document_number" validate:"max=100"`
	Status           string `json:"status" form:"status" validate:"required,oneof=pending approved rejected expired"`
	FileName         string `json:"fileName" form:"-"`
	FilePath         string `json:"-" form:"-"`
	ContentType      string `json:"contentType" form:"-"`
	FileSize         int64  `json:"fileSize" form:"-"`
	UploadedBy       string `json:"uploadedBy" form:"-"`
	DocumentTypeName string `json:"documentTypeName,omitempty" form:"-"`
	EmployeeRef
	Timestamps
}

func NewEmployeeDocument() *EmployeeDocument {
	return &EmployeeDocument{Status: DocumentStatusPending}
}

func (d *EmployeeDocument) Key() string { return d.ID }

// StampCreator records who uploaded the document.
func (d *EmployeeDocument) StampCreator(userID string) { d.UploadedBy = userID }

func (d *EmployeeDocument) HasFile() bool { return d.FilePath != "" }

// AttachFile records where an uploaded file was stored.
func (d *EmployeeDocument) AttachFile(name, path, contentType string, size int64) {
	d.FileName, d.FilePath, d.ContentType, d.FileSize = name, path, contentType, size
}

func (d *EmployeeDocument) Columns() query.Columns {
	cols := append(baseColumns("doc", &d.ID, &d.Timestamps), query.Columns{
		{Table: "doc", Name: "employee_id", Ref: &d.EmployeeID},
		{Table: "doc", Name: "document_type_id", Ref: &d.DocumentTypeID},
		{Table: "doc", Name: "document_name", Ref: &d.DocumentName},
		{Table: "doc", Name: "document_number", Ref: &d.DocumentNumber},
		{Table: "doc", Name: "status", Ref: &d.Status},
		{Table: "doc", Name: "file_name", Ref: &d.FileName},
		{Table: "doc", Name: "file_path", Ref: &d.FilePath},
		{Table: "doc", Name: "content_type", Ref: &d.ContentType},
		{Table: "doc", Name: "file_size", Ref: &d.FileSize},
		{Table: "doc", Name: "uploaded_by", Ref: &d.UploadedBy, Mode: query.Immutable | query.NullIfEmpty},
		{Table: "dt", Name: "name", Ref: &d.DocumentTypeName, Mode: query.Joined | query.NullIfEmpty},
	}...)
	return append(cols, d.EmployeeRef.columns()...)
}

type FamilyMember struct {
	ID                 string `json:"id" form:"-"`
	EmployeeID         string `json:"employee" form:"employee" validate:"required,uuid"`
	Name               string `json:"name" form:"name" validate:"required,max=100"`
	Relationship       string `json:"relationship" form:"relationship" validate:"required,oneof=spouse father mother son daughter brother sister other"`
	DateOfBirth        Date   `json:"dateOfBirth" form:"date_of_birth" validate:"omitempty,date"`
	Gender             string `json:"gender" form:"gender" validate:"omitempty,oneof=male female other"`
	Phone              string `json:"phone" form:"phone" validate:"max=20"`
	Email              string `json:"email" form:"email" validate:"omitempty,email,max=254"`
	Address            string `json:"address" form:"address" validate:"max=1000"`
	Occupation         string `json:"occupation" form:"occupation" validate:"max=100"`
	Employer           string `json:"employer" form:"employer" validate:"max=100"`
	IsDependent        bool   `json:"isDependent" form:"is_dependent"`
	IsEmergencyContact bool   `json:"isEmergencyContact" form:"is_emergency_contact"`
	IsNominee          bool   `json:"isNominee" form:"is_nominee"`
	EmployeeRef
	Timestamps
}

func NewFamilyMember() *FamilyMember { return &FamilyMember{} }

func (f *FamilyMember) Key() string { return f.ID }

func (f *FamilyMember) Columns() query.Columns {
	cols := append(baseColumns("fm", &f.ID, &f.Timestamps), query.Columns{
		{Table: "fm", Name: "employee_id", Ref: &f.EmployeeID},
		{Table: "fm", Name: "name", Ref: &f.Name},
		{Table: "fm", Name: "relationship", Ref: &f.Relationship},
		{Table: "fm", Name: "date_of_birth", Ref: &f.DateOfBirth},
		{Table: "fm", Name: "gender", Ref: &f.Gender},
		{Table: "fm", Name: "phone", Ref: &f.Phone},
		{Table: "fm", Name: "email", Ref: &f.Email},
		{Table: "fm", Name: "address", Ref: &f.Address},
		{Table: "fm", Name: "occupation", Ref: &f.Occupation},
		{Table: "fm", Name: "employer", Ref: &f.Employer},
		{Table: "fm", Name: "is_dependent", Ref: &f.IsDependent},
		{Table: "fm", Name: "is_emergency_contact", Ref: &f.IsEmergencyContact},
		{Table: "fm", Name: "is_nominee", Ref: &f.IsNominee},
	}...)
	return append(cols, f.EmployeeRef.columns()...)
}
