package entity

import "testing"

func TestRoleFromString(t *testing.T) {
	cases := []struct {
		in   string
		want Role
	}{
		{"seeker", RoleSeeker},
		{"facilitator", RoleFacilitator},
		{"", RoleUnknown},
		{"admin", RoleUnknown},
		{"Seeker", RoleUnknown},
	}

	for _, tc := range cases {
		if got := RoleFromString(tc.in); got != tc.want {
			t.Errorf("RoleFromString(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestUserStatusEnsure(t *testing.T) {
	if got := UserStatus(99).Ensure(); got != UserStatusUnknown {
		t.Errorf("Ensure(99) = %v, want UserStatusUnknown", got)
	}
	if got := UserStatusActive.Ensure(); got != UserStatusActive {
		t.Errorf("Ensure(Active) = %v, want UserStatusActive", got)
	}
}
