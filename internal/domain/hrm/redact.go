package hrm

const redacted = "[redacted]"

// RedactEmployee blanks the identity, bank and salary fields for callers
// without the sensitive-field capability.
func RedactEmployee(e *Employee) {
	if e == nil {
		return
	}
	e.NationalID = ""
	e.BankAccountNumber = ""
	e.GrossSalary = nil
	e.BasicSalary = nil
}

// AuditSnapshot masks the columns stored encrypted so the audit trail does
// not hold them in clear text.
func (e Employee) AuditSnapshot() any {
	e.NationalID = mask(e.NationalID)
	e.BankAccountNumber = mask(e.BankAccountNumber)
	return e
}

func mask(v string) string {
	if v == "" {
		return ""
	}
	return redacted
}
