package authz

const (
	RoleOperator = 10
	RoleViewer   = 20
	RoleAdmin    = 50
)

func IsReadOnly(roleID int) bool {
	return roleID == RoleViewer
}
