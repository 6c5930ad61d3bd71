package hrm

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/oleeahmmed/UniworldHrm/internal/domain/audit"
	"github.com/oleeahmmed/UniworldHrm/internal/platform/pgstore"
	"github.com/oleeahmmed/UniworldHrm/internal/platform/query"
)

// Table aliases, also used as column qualifiers in filters.
const (
	AliasEmployee               = "emp"
	AliasEducationQualification = "eq"
	AliasJobExperience          = "je"
	AliasEmployeeDocument       = "doc"
	AliasFamilyMember           = "fm"
)

type record[T any] interface {
	*T
	pgstore.Record
	Key() string
}

type PgRepository[T any, P record[T]] struct {
	DB    *pgxpool.Pool
	Table *pgstore.Table[T, P]
}

func (r *PgRepository[T, P]) List(ctx context.Context, q query.Query) ([]T, error) {
	return r.Table.List(ctx, r.DB, q)
}

func (r *PgRepository[T, P]) Count(ctx context.Context, q query.Query) (int, error) {
	return r.Table.Count(ctx, r.DB, q)
}

func (r *PgRepository[T, P]) Get(ctx context.Context, id string) (*T, error) {
	return r.Table.Get(ctx, r.DB, id)
}

func (r *PgRepository[T, P]) Create(ctx context.Context, item *T, ev audit.Entry) error {
	return pgx.BeginFunc(ctx, r.DB, func(tx pgx.Tx) error {
		if err := r.Table.Insert(ctx, tx, P(item)); err != nil {
			return err
		}
		ev.EntityID = P(item).Key()
		ev.After = item
		return audit.Record(ctx, tx, ev)
	})
}

func (r *PgRepository[T, P]) Update(ctx context.Context, item *T, ev audit.Entry) error {
	return pgx.BeginFunc(ctx, r.DB, func(tx pgx.Tx) error {
		if err := r.Table.Update(ctx, tx, P(item).Key(), P(item)); err != nil {
			return err
		}
		ev.EntityID = P(item).Key()
		ev.After = item
		return audit.Record(ctx, tx, ev)
	})
}

func (r *PgRepository[T, P]) Delete(ctx context.Context, ids []string, ev audit.Entry) (int64, error) {
	var deleted int64
	err := pgx.BeginFunc(ctx, r.DB, func(tx pgx.Tx) error {
		n, err := r.Table.Delete(ctx, tx, ids)
		if err != nil {
			return err
		}
		deleted = n
		ev.EntityID = strings.Join(ids, ",")
		return audit.Record(ctx, tx, ev)
	})
	return deleted, err
}

type EmployeePgRepository struct {
	PgRepository[Employee, *Employee]
}

func (r *EmployeePgRepository) MaxEmployeeCode(ctx context.Context, prefix string) (string, error) {
	var code string
	err := r.DB.QueryRow(ctx, `
    SELECT employee_id
    FROM employees
    WHERE employee_id ~ ('^' || $1 || '[0-9]+$')
    ORDER BY CAST(substr(employee_id, $2) AS numeric) DESC
    LIMIT 1
  `, prefix, len(prefix)+1).Scan(&code)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	return code, errors.Wrap(err, "max employee code")
}

type Store struct {
	Employees       *EmployeePgRepository
	Departments     *PgRepository[Department, *Department]
	Designations    *PgRepository[Designation, *Designation]
	Shifts          *PgRepository[Shift, *Shift]
	EducationLevels *PgRepository[EducationLevel, *EducationLevel]
	DocumentTypes   *PgRepository[DocumentType, *DocumentType]
	Education       *PgRepository[EducationQualification, *EducationQualification]
	Experience      *PgRepository[JobExperience, *JobExperience]
	Documents       *PgRepository[EmployeeDocument, *EmployeeDocument]
	Family          *PgRepository[FamilyMember, *FamilyMember]
}

const employeeJoin = "JOIN employees e ON e.id = %s.employee_id"

func joinEmployee(alias string) string {
	return strings.Replace(employeeJoin, "%s", alias, 1)
}

func NewStore(db *pgxpool.Pool, cipher pgstore.Cipher) *Store {
	return &Store{
		Employees: &EmployeePgRepository{PgRepository[Employee, *Employee]{DB: db, Table: &pgstore.Table[Employee, *Employee]{
			Name:    "employees",
			Alias:   AliasEmployee,
			Joins:   "LEFT JOIN departments d ON d.id = emp.department_id LEFT JOIN designations g ON g.id = emp.designation_id",
			OrderBy: "emp.created_at DESC, emp.id",
			Cipher:  cipher,
			Constraints: map[string]string{
				"employees_employee_id_key":          "employeeId",
				"employees_email_key":                "email",
				"employees_department_id_fkey":       "department",
				"employees_designation_id_fkey":      "designation",
				"employees_default_shift_id_fkey":    "defaultShift",
				"employees_reporting_manager_id_fkey": "reportingManager",
			},
		}}},
		Departments: &PgRepository[Department, *Department]{DB: db, Table: &pgstore.Table[Department, *Department]{
			Name:    "departments",
			Alias:   "dep",
			OrderBy: "dep.name, dep.id",
			Constraints: map[string]string{
				"departments_name_key": "name",
				"departments_code_key": "code",
			},
		}},
		Designations: &PgRepository[Designation, *Designation]{DB: db, Table: &pgstore.Table[Designation, *Designation]{
			Name:    "designations",
			Alias:   "des",
			Joins:   "LEFT JOIN departments d ON d.id = des.department_id",
			OrderBy: "des.name, des.id",
			Constraints: map[string]string{
				"designations_code_key":          "code",
				"designations_department_id_fkey": "department",
			},
		}},
		Shifts: &PgRepository[Shift, *Shift]{DB: db, Table: &pgstore.Table[Shift, *Shift]{
			Name:        "shifts",
			Alias:       "sh",
			OrderBy:     "sh.start_time, sh.id",
			Constraints: map[string]string{"shifts_code_key": "code"},
		}},
		EducationLevels: &PgRepository[EducationLevel, *EducationLevel]{DB: db, Table: &pgstore.Table[EducationLevel, *EducationLevel]{
			Name:    "education_levels",
			Alias:   "lvl",
			OrderBy: "lvl.level, lvl.name, lvl.id",
			Constraints: map[string]string{
				"education_levels_name_key": "name",
				"education_levels_code_key": "code",
			},
		}},
		DocumentTypes: &PgRepository[DocumentType, *DocumentType]{DB: db, Table: &pgstore.Table[DocumentType, *DocumentType]{
			Name:    "document_types",
			Alias:   "dt",
			OrderBy: "dt.name, dt.id",
			Constraints: map[string]string{
				"document_types_name_key": "name",
				"document_types_code_key": "code",
			},
		}},
		Education: &PgRepository[EducationQualification, *EducationQualification]{DB: db, Table: &pgstore.Table[EducationQualification, *EducationQualification]{
			Name:    "education_qualifications",
			Alias:   AliasEducationQualification,
			Joins:   joinEmployee(AliasEducationQualification) + " LEFT JOIN education_levels lvl ON lvl.id = eq.education_level_id",
			OrderBy: "eq.graduation_date DESC NULLS LAST, eq.id",
			Constraints: map[string]string{
				"education_qualifications_employee_id_fkey":        "employee",
				"education_qualifications_education_level_id_fkey": "educationLevel",
			},
		}},
		Experience: &PgRepository[JobExperience, *JobExperience]{DB: db, Table: &pgstore.Table[JobExperience, *JobExperience]{
			Name:    "job_experiences",
			Alias:   AliasJobExperience,
			Joins:   joinEmployee(AliasJobExperience),
			OrderBy: "je.start_date DESC, je.id",
			Constraints: map[string]string{
				"job_experiences_employee_id_fkey": "employee",
			},
		}},
		Documents: &PgRepository[EmployeeDocument, *EmployeeDocument]{DB: db, Table: &pgstore.Table[EmployeeDocument, *EmployeeDocument]{
			Name:    "employee_documents",
			Alias:   AliasEmployeeDocument,
			Joins:   joinEmployee(AliasEmployeeDocument) + " LEFT JOIN document_types dt ON dt.id = doc.document_type_id",
			OrderBy: "doc.created_at DESC, doc.id",
			Constraints: map[string]string{
				"employee_documents_employee_id_fkey":      "employee",
				"employee_documents_document_type_id_fkey": "documentType",
			},
		}},
		Family: &PgRepository[FamilyMember, *FamilyMember]{DB: db, Table: &pgstore.Table[FamilyMember, *FamilyMember]{
			Name:    "family_members",
			Alias:   AliasFamilyMember,
			Joins:   joinEmployee(AliasFamilyMember),
			OrderBy: "fm.name, fm.id",
			Constraints: map[string]string{
				"family_members_employee_id_fkey": "employee",
			},
		}},
	}
}
