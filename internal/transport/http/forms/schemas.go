package forms

import "github.com/oleeahmmed/UniworldHrm/internal/domain/hrm"

func address(prefix, jsonPrefix string) []Field {
	return []Field{
		field(prefix+".village_house", jsonPrefix+".villageHouse", "Village / House", Text),
		field(prefix+".road_block", jsonPrefix+".roadBlock", "Road / Block", Text),
		field(prefix+".post_office", jsonPrefix+".postOffice", "Post Office", Text),
		field(prefix+".police_station", jsonPrefix+".policeStation", "Police Station (Thana)", Text),
		field(prefix+".district", jsonPrefix+".district", "District", Text),
		field(prefix+".division", jsonPrefix+".division", "Division", Text),
		field(prefix+".postal_code", jsonPrefix+".postalCode", "Postal Code", Text),
	}
}

var employeeSchema = Schema{
	Entity: "employee",
	Title:  "Employee",
	Fieldsets: []Fieldset{
		{
			Title:       "Basic Information",
			Description: "Employee identification and basic details",
			Icon:        "user",
			Fields: []Field{
				field("employee_id", "employeeId", "Employee ID", Text).required(),
				field("first_name", "firstName", "First Name", Text).required(),
				field("last_name", "lastName", "Last Name", Text).required(),
				field("email", "email", "Email", Email),
				field("gender", "gender", "Gender", Select).choices(hrm.GenderChoices),
				field("date_of_birth", "dateOfBirth", "Date of Birth", Date),
				field("national_id", "nationalId", "National ID", Text),
				field("phone", "phone", "Phone", Text),
				field("marital_status", "maritalStatus", "Marital Status", Select).choices(hrm.MaritalStatusChoices),
				field("nationality", "nationality", "Nationality", Text),
				field("religion", "religion", "Religion", Text),
				field("blood_group", "bloodGroup", "Blood Group", Select).choices(hrm.BloodGroupChoices),
				field("department", "department", "Department", Select).source("departments"),
				field("designation", "designation", "Designation", Select).source("designations"),
				field("default_shift", "defaultShift", "Default Shift", Select).source("shifts"),
				field("joining_date", "joiningDate", "Joining Date", Date).required(),
				field("probation_end_date", "probationEndDate", "Probation End Date", Date),
				field("expected_work_hours", "expectedWorkHours", "Expected Work Hours", Number),
				field("overtime_grace_minutes", "overtimeGraceMinutes", "Overtime Grace Minutes", Number),
				field("gross_salary", "grossSalary", "Gross Salary", Number),
				field("basic_salary", "basicSalary", "Basic Salary", Number),
				field("currency", "currency", "Currency", Text),
			},
		},
		{
			Title:       "Personal Information",
			Description: "Personal and family details",
			Icon:        "info",
			Fields: []Field{
				field("father_name", "fatherName", "Father's Name", Text),
				field("mother_name", "motherName", "Mother's Name", Text),
				field("spouse_name", "spouseName", "Spouse's Name", Text),
				field("place_of_birth", "placeOfBirth", "Place of Birth", Text),
				field("marriage_date", "marriageDate", "Marriage Date", Date),
				field("height", "height", "Height (cm)", Number),
				field("weight", "weight", "Weight (kg)", Number),
			},
		},
		{
			Title:       "Contact Information",
			Description: "Communication details",
			Icon:        "phone",
			Fields: []Field{
				field("personal_email", "personalEmail", "Personal Email", Email),
				field("mobile", "mobile", "Mobile", Text),
				field("home_phone", "homePhone", "Home Phone", Text),
				field("work_phone", "workPhone", "Work Phone", Text),
			},
		},
		{
			Title:       "Present Address",
			Description: "Current residential address details (Bangladesh)",
			Icon:        "home",
			Fields:      address("present", "presentAddress"),
		},
		{
			Title:       "Permanent Address",
			Description: "Permanent residential address details (Bangladesh)",
			Icon:        "home",
			Fields:      address("permanent", "permanentAddress"),
		},
		{
			Title:       "Employment Details",
			Description: "Job and employment information",
			Icon:        "briefcase",
			Fields: []Field{
				field("confirmation_date", "confirmationDate", "Confirmation Date", Date),
				field("contract_start_date", "contractStartDate", "Contract Start Date", Date),
				field("contract_end_date", "contractEndDate", "Contract End Date", Date),
				field("employment_status", "employmentStatus", "Employment Status", Select).choices(hrm.EmploymentStatusChoices).required(),
				field("employment_type", "employmentType", "Employment Type", Select).choices(hrm.EmployeeTypeChoices),
				field("employee_grade", "employeeGrade", "Employee Grade", Text),
				field("employee_level", "employeeLevel", "Employee Level", Text),
				field("reporting_manager", "reportingManager", "Reporting Manager", Select).source("employees"),
				field("work_location", "workLocation", "Work Location", Text),
				field("termination_date", "terminationDate", "Termination Date", Date),
				field("termination_reason", "terminationReason", "Termination Reason", Textarea).rows(3),
				field("is_active", "isActive", "Active", Checkbox),
			},
		},
		{
			Title:       "Salary & Banking",
			Description: "Compensation and banking details",
			Icon:        "dollar-sign",
			Fields: []Field{
				field("bank_name", "bankName", "Bank Name", Text),
				field("bank_branch", "bankBranch", "Bank Branch", Text),
				field("bank_account_number", "bankAccountNumber", "Bank Account Number", Text),
				field("bank_routing_number", "bankRoutingNumber", "Bank Routing Number", Text),
				field("bank_swift_code", "bankSwiftCode", "SWIFT Code", Text),
			},
		},
	},
}

var educationLevelSchema = Schema{
	Entity: "educationlevel",
	Title:  "Education Level",
	Fieldsets: []Fieldset{{
		Title:       "Basic Information",
		Description: "Education level details",
		Icon:        "book",
		Fields: []Field{
			field("name", "name", "Name", Text).required(),
			field("code", "code", "Code", Text).required(),
			field("level", "level", "Level", Number),
			field("description", "description", "Description", Textarea).rows(3),
		},
	}},
}

var educationQualificationSchema = Schema{
	Entity: "educationqualification",
	Title:  "Education Qualification",
	Fieldsets: []Fieldset{{
		Title:       "Education Details",
		Description: "Key education qualification details",
		Icon:        "book",
		Fields: []Field{
			field("employee", "employee", "Employee", Select).source("employees").required(),
			field("education_level", "educationLevel", "Education Level", Select).source("education-levels").required(),
			field("institution_name", "institutionName", "Institution Name", Text).required(),
			field("degree_title", "degreeTitle", "Degree Title", Text).required(),
			field("graduation_date", "graduationDate", "Graduation Date", Date),
		},
	}},
}

var jobExperienceSchema = Schema{
	Entity: "jobexperience",
	Title:  "Job Experience",
	Fieldsets: []Fieldset{{
		Title:       "Job Experience Details",
		Description: "Key details of previous job experience",
		Icon:        "briefcase",
		Fields: []Field{
			field("employee", "employee", "Employee", Select).source("employees").required(),
			field("company_name", "companyName", "Company Name", Text).required(),
			field("job_title", "jobTitle", "Job Title", Text).required(),
			field("start_date", "startDate", "Start Date", Date).required(),
			field("end_date", "endDate", "End Date", Date),
			field("employment_type", "employmentType", "Employment Type", Select).choices(hrm.ExperienceTypeChoices),
		},
	}},
}

var documentTypeSchema = Schema{
	Entity: "documenttype",
	Title:  "Document Type",
	Fieldsets: []Fieldset{{
		Title:       "Basic Information",
		Description: "Document type details",
		Icon:        "file",
		Fields: []Field{
			field("name", "name", "Name", Text).required(),
			field("code", "code", "Code", Text).required(),
			field("description", "description", "Description", Textarea).rows(3),
		},
	}},
}

var employeeDocumentSchema = Schema{
	Entity:    "employeedocument",
	Title:     "Employee Document",
	Multipart: true,
	Fieldsets: []Fieldset{
		{
			Title:       "Document Information",
			Description: "Basic document details",
			Icon:        "file",
			Fields: []Field{
				field("employee", "employee", "Employee", Select).source("employees").required(),
				field("document_type", "documentType", "Document Type", Select).source("document-types").required(),
				field("document_name", "documentName", "Document Name", Text).required(),
				field("document_number", "documentNumber", "Document Number", Text),
			},
		},
		{
			Title:       "File & Status",
			Description: "Upload document and current status",
			Icon:        "upload",
			Fields: []Field{
				field("document_file", "documentFile", "Document File", File),
				field("status", "status", "Status", Select).choices(hrm.DocumentStatusChoices).required(),
			},
		},
	},
}

var familyMemberSchema = Schema{
	Entity: "familymember",
	Title:  "Family Member",
	Fieldsets: []Fieldset{
		{
			Title:       "Basic Information",
			Description: "Family member details",
			Icon:        "user",
			Fields: []Field{
				field("employee", "employee", "Employee", Select).source("employees").required(),
				field("name", "name", "Name", Text).required(),
				field("relationship", "relationship", "Relationship", Select).choices(hrm.RelationshipChoices).required(),
				field("date_of_birth", "dateOfBirth", "Date of Birth", Date),
				field("gender", "gender", "Gender", Select).choices(hrm.GenderChoices),
			},
		},
		{
			Title:       "Contact Information",
			Description: "Contact details",
			Icon:        "phone",
			Fields: []Field{
				field("phone", "phone", "Phone", Text),
				field("email", "email", "Email", Email),
				field("address", "address", "Address", Textarea).rows(3),
			},
		},
		{
			Title:       "Professional Information",
			Description: "Work and employment details",
			Icon:        "briefcase",
			Fields: []Field{
				field("occupation", "occupation", "Occupation", Text),
				field("employer", "employer", "Employer", Text),
			},
		},
		{
			Title:       "Relationship Status",
			Description: "Dependency and contact preferences",
			Icon:        "heart",
			Fields: []Field{
				field("is_dependent", "isDependent", "Dependent", Checkbox),
				field("is_emergency_contact", "isEmergencyContact", "Emergency Contact", Checkbox),
				field("is_nominee", "isNominee", "Nominee", Checkbox),
			},
		},
	},
}

var departmentSchema = Schema{
	Entity: "department",
	Title:  "Department",
	Fieldsets: []Fieldset{{
		Title:       "Basic Information",
		Description: "Department details",
		Icon:        "layers",
		Fields: []Field{
			field("name", "name", "Name", Text).required(),
			field("code", "code", "Code", Text).required(),
			field("description", "description", "Description", Textarea).rows(3),
			field("is_active", "isActive", "Active", Checkbox),
		},
	}},
}

var designationSchema = Schema{
	Entity: "designation",
	Title:  "Designation",
	Fieldsets: []Fieldset{{
		Title:       "Basic Information",
		Description: "Designation details",
		Icon:        "award",
		Fields: []Field{
			field("name", "name", "Name", Text).required(),
			field("code", "code", "Code", Text).required(),
			field("department", "department", "Department", Select).source("departments"),
			field("description", "description", "Description", Textarea).rows(3),
			field("is_active", "isActive", "Active", Checkbox),
		},
	}},
}

var shiftSchema = Schema{
	Entity: "shift",
	Title:  "Shift",
	Fieldsets: []Fieldset{{
		Title:       "Basic Information",
		Description: "Shift timing",
		Icon:        "clock",
		Fields: []Field{
			field("name", "name", "Name", Text).required(),
			field("code", "code", "Code", Text).required(),
			field("start_time", "startTime", "Start Time", Time).required(),
			field("end_time", "endTime", "End Time", Time).required(),
			field("is_active", "isActive", "Active", Checkbox),
		},
	}},
}

var schemas = map[string]Schema{
	"employee":               employeeSchema,
	"educationlevel":         educationLevelSchema,
	"educationqualification": educationQualificationSchema,
	"jobexperience":          jobExperienceSchema,
	"documenttype":           documentTypeSchema,
	"employeedocument":       employeeDocumentSchema,
	"familymember":           familyMemberSchema,
	"department":             departmentSchema,
	"designation":            designationSchema,
	"shift":                  shiftSchema,
}

// For returns the schema of an entity.
func For(entity string) (Schema, bool) {
	s, ok := schemas[entity]
	return s, ok
}
