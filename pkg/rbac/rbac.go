package rbac

// Permissions.
const (
	PermissionAnalyzeScope   = "scope:analyze"
	PermissionMatchServices  = "scope:match"
	PermissionGenerateWBS    = "wbs:generate"
	PermissionReadWBS        = "wbs:read"
	PermissionExportWBS      = "wbs:export"
	PermissionRefreshCatalog = "catalog:refresh"
	PermissionReplayOutbox   = "outbox:replay"
)

// Roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var rolePermissions = map[string][]string{
	RoleUser: {
		PermissionAnalyzeScope,
		PermissionMatchServices,
		PermissionGenerateWBS,
		PermissionReadWBS,
		PermissionExportWBS,
	},
	RoleAdmin: {
		PermissionAnalyzeScope,
		PermissionMatchServices,
		PermissionGenerateWBS,
		PermissionReadWBS,
		PermissionExportWBS,
		PermissionRefreshCatalog,
		PermissionReplayOutbox,
	},
}

// HasPermission checks whether a role grants a permission.
func HasPermission(role, permission string) bool {
	permissions, ok := rolePermissions[role]
	if !ok {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// CheckPermission returns an error instead of a bool, for handler use.
func CheckPermission(role, permission string) error {
	if !HasPermission(role, permission) {
		return &PermissionDeniedError{
			Role:       role,
			Permission: permission,
		}
	}
	return nil
}

// PermissionDeniedError signals insufficient permissions.
type PermissionDeniedError struct {
	Role       string
	Permission string
}

func (e *PermissionDeniedError) Error() string {
	return "insufficient permissions"
}
