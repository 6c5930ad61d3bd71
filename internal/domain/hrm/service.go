package hrm

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/oleeahmmed/UniworldHrm/internal/platform/query"
)

// Service holds the behaviour that spans more than one repository.
type Service struct {
	Employees  EmployeeRepository
	Education  Repository[EducationQualification]
	Experience Repository[JobExperience]
	Documents  Repository[EmployeeDocument]
	Family     Repository[FamilyMember]
}

func NewService(s *Store) *Service {
	return &Service{
		Employees:  s.Employees,
		Education:  s.Education,
		Experience: s.Experience,
		Documents:  s.Documents,
		Family:     s.Family,
	}
}

// SuggestEmployeeID proposes the next employee code. A lookup failure still
// yields a usable random code.
func (s *Service) SuggestEmployeeID(ctx context.Context) string {
	current, err := s.Employees.MaxEmployeeCode(ctx, EmployeeIDPrefix)
	if err != nil {
		slog.Warn("employee code lookup failed", "err", err)
		current = ""
	}
	return NextEmployeeID(current)
}

// EmployeeDetail loads an employee together with its related records.
func (s *Service) EmployeeDetail(ctx context.Context, id string) (*EmployeeDetail, error) {
	emp, err := s.Employees.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := &EmployeeDetail{Employee: emp}

	if detail.Education, err = s.Education.List(ctx, scoped(AliasEducationQualification, emp.ID)); err != nil {
		return nil, errors.Wrap(err, "load education")
	}
	if detail.Experience, err = s.Experience.List(ctx, scoped(AliasJobExperience, emp.ID)); err != nil {
		return nil, errors.Wrap(err, "load experience")
	}
	if detail.Documents, err = s.Documents.List(ctx, scoped(AliasEmployeeDocument, emp.ID)); err != nil {
		return nil, errors.Wrap(err, "load documents")
	}
	if detail.Family, err = s.Family.List(ctx, scoped(AliasFamilyMember, emp.ID)); err != nil {
		return nil, errors.Wrap(err, "load family")
	}
	return detail, nil
}

func scoped(alias, employeeID string) query.Query {
	return query.Query{}.Filter(ForEmployee(alias, employeeID))
}
