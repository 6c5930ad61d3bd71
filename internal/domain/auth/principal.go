package auth

// Principal is the authenticated actor a handler acts on behalf of.
type Principal struct {
	UserID   string `json:"userId"`
	Email    string `json:"email"`
	RoleID   string `json:"roleId"`
	RoleName string `json:"role"`
}
