package hrm

// Choice is one allowed value of an enumerated field with its display label.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func values(choices []Choice) []string {
	out := make([]string, len(choices))
	for i, c := range choices {
		out[i] = c.Value
	}
	return out
}

const (
	EmploymentStatusProbation  = "probation"
	EmploymentStatusConfirmed  = "confirmed"
	EmploymentStatusContract   = "contract"
	EmploymentStatusIntern     = "intern"
	EmploymentStatusResigned   = "resigned"
	EmploymentStatusTerminated = "terminated"
	EmploymentStatusRetired    = "retired"
)

var EmploymentStatusChoices = []Choice{
	{EmploymentStatusProbation, "Probation"},
	{EmploymentStatusConfirmed, "Confirmed"},
	{EmploymentStatusContract, "Contract"},
	{EmploymentStatusIntern, "Intern"},
	{EmploymentStatusResigned, "Resigned"},
	{EmploymentStatusTerminated, "Terminated"},
	{EmploymentStatusRetired, "Retired"},
}

var EmployeeTypeChoices = []Choice{
	{"full_time", "Full Time"},
	{"part_time", "Part Time"},
	{"contract", "Contract"},
	{"intern", "Intern"},
	{"consultant", "Consultant"},
}

var ExperienceTypeChoices = []Choice{
	{"full_time", "Full Time"},
	{"part_time", "Part Time"},
	{"contract", "Contract"},
	{"internship", "Internship"},
	{"freelance", "Freelance"},
}

const (
	DocumentStatusPending  = "pending"
	DocumentStatusApproved = "approved"
	DocumentStatusRejected = "rejected"
	DocumentStatusExpired  = "expired"
)

var DocumentStatusChoices = []Choice{
	{DocumentStatusPending, "Pending"},
	{DocumentStatusApproved, "Approved"},
	{DocumentStatusRejected, "Rejected"},
	{DocumentStatusExpired, "Expired"},
}

var RelationshipChoices = []Choice{
	{"spouse", "Spouse"},
	{"father", "Father"},
	{"mother", "Mother"},
	{"son", "Son"},
	{"daughter", "Daughter"},
	{"brother", "Brother"},
	{"sister", "Sister"},
	{"other", "Other"},
}

var GenderChoices = []Choice{
	{"male", "Male"},
	{"female", "Female"},
	{"other", "Other"},
}

var MaritalStatusChoices = []Choice{
	{"single", "Single"},
	{"married", "Married"},
	{"divorced", "Divorced"},
	{"widowed", "Widowed"},
}

var BloodGroupChoices = []Choice{
	{"A+", "A+"}, {"A-", "A-"},
	{"B+", "B+"}, {"B-", "B-"},
	{"AB+", "AB+"}, {"AB-", "AB-"},
	{"O+", "O+"}, {"O-", "O-"},
}

var ActiveChoices = []Choice{
	{"", "All"},
	{"true", "Active"},
	{"false", "Inactive"},
}

const DefaultCurrency = "BDT"
