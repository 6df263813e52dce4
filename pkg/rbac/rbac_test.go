package rbac

import "testing"

func TestHasPermission(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		role       string
		permission string
		want       bool
	}{
		{"user can generate", RoleUser, PermissionGenerateWBS, true},
		{"user cannot refresh catalog", RoleUser, PermissionRefreshCatalog, false},
		{"admin can refresh catalog", RoleAdmin, PermissionRefreshCatalog, true},
		{"admin can replay outbox", RoleAdmin, PermissionReplayOutbox, true},
		{"unknown role has nothing", "guest", PermissionReadWBS, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := HasPermission(tt.role, tt.permission); got != tt.want {
				t.Errorf("HasPermission(%s, %s) = %v, want %v", tt.role, tt.permission, got, tt.want)
			}
		})
	}
}

func TestCheckPermission(t *testing.T) {
	t.Parallel()

	if err := CheckPermission(RoleAdmin, PermissionRefreshCatalog); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := CheckPermission(RoleUser, PermissionRefreshCatalog); err == nil {
		t.Error("expected permission denied")
	}
}
