package auth

const Module = "hrm"

type Action string

const (
	ActionView   Action = "view"
	ActionAdd    Action = "add"
	ActionChange Action = "change"
	ActionDelete Action = "delete"
)

var Actions = []Action{ActionView, ActionAdd, ActionChange, ActionDelete}

// Entity names as they appear in capability keys.
const (
	EntityEmployee               = "employee"
	EntityDepartment             = "department"
	EntityDesignation            = "designation"
	EntityShift                  = "shift"
	EntityEducationLevel         = "educationlevel"
	EntityEducationQualification = "educationqualification"
	EntityJobExperience          = "jobexperience"
	EntityDocumentType           = "documenttype"
	EntityEmployeeDocument       = "employeedocument"
	EntityFamilyMember           = "familymember"
	EntityAuditEvent             = "auditevent"
)

var RecordEntities = []string{
	EntityEmployee,
	EntityEducationQualification,
	EntityJobExperience,
	EntityEmployeeDocument,
	EntityFamilyMember,
}

var LookupEntities = []string{
	EntityDepartment,
	EntityDesignation,
	EntityShift,
	EntityEducationLevel,
	EntityDocumentType,
}

// Capability builds a key of the form hrm.<action>_<entity>.
func Capability(action Action, entity string) string {
	return Module + "." + string(action) + "_" + entity
}

var PermAuditRead = Capability(ActionView, EntityAuditEvent)

// PermEmployeeSensitive unlocks national id, bank account and salary fields
// in employee lists, details and exports.
var PermEmployeeSensitive = Capability(ActionView, "sensitive_"+EntityEmployee)

const (
	RoleAdmin  = "Admin"
	RoleHR     = "HR"
	RoleViewer = "Viewer"
)

var DefaultPermissions = buildDefaultPermissions()

var RolePermissions = map[string][]string{
	RoleAdmin:  DefaultPermissions,
	RoleHR:     buildHRPermissions(),
	RoleViewer: capabilities([]Action{ActionView}, RecordEntities, LookupEntities),
}

func buildDefaultPermissions() []string {
	out := capabilities(Actions, RecordEntities, LookupEntities)
	return append(out, PermAuditRead, PermEmployeeSensitive)
}

// HR maintains employee records but only reads and edits the lookup tables.
func buildHRPermissions() []string {
	out := capabilities(Actions, RecordEntities)
	out = append(out, capabilities([]Action{ActionView, ActionAdd, ActionChange}, LookupEntities)...)
	return append(out, PermAuditRead, PermEmployeeSensitive)
}

func capabilities(actions []Action, groups ...[]string) []string {
	var out []string
	for _, group := range groups {
		for _, entity := range group {
			for _, action := range actions {
				out = append(out, Capability(action, entity))
			}
		}
	}
	return out
}
