package domain

import "testing"

func TestValidRole(t *testing.T) {
	if !ValidRole(RoleAdmin) || !ValidRole(RoleUser) {
		t.Fatalf("expected known roles to be valid")
	}
	for _, r := range []string{"", "Admin", "superuser"} {
		if ValidRole(r) {
			t.Errorf("expected %q to be invalid", r)
		}
	}
}
