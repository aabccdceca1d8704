package role

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Role
	}{
		{name: "canonical form unchanged", raw: "SUPER_ADMIN", want: SuperAdmin},
		{name: "lowercase", raw: "treasurer", want: Treasurer},
		{name: "space separated", raw: "EC MEMBER", want: ECMember},
		{name: "hyphen separated", raw: "vice-president", want: VicePresident},
		{name: "mixed separators", raw: "General  Secretary", want: GeneralSecretary},
		{name: "leading and trailing whitespace", raw: "  member  ", want: Member},
		{name: "tab separated", raw: "joint\tsecretary", want: JointSecretary},
		{name: "empty", raw: "", want: Role("")},
		{name: "unknown passes through normalized", raw: "night watchman", want: Role("NIGHT_WATCHMAN")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"super admin", "EC-Member", "TREASURER", "random role name", ""}
	for _, raw := range inputs {
		once := Normalize(raw)
		twice := Normalize(string(once))
		assert.Equal(t, once, twice, "normalizing %q twice changed the result", raw)
	}
}

func TestKnown(t *testing.T) {
	for _, r := range All() {
		assert.True(t, Known(r), "role %s should be known", r)
	}

	assert.False(t, Known(Role("NIGHT_WATCHMAN")))
	assert.False(t, Known(Role("")))
	assert.False(t, Known(Role("super admin")), "Known expects normalized input")
}

func TestHomeRouteTotality(t *testing.T) {
	// Every known role must land somewhere real; unknown roles land on
	// the sign-in view.
	for _, r := range All() {
		home := HomeRoute(r)
		assert.NotEqual(t, Destination(""), home, "role %s has no home", r)
		assert.True(t, CanAccess(r, home), "role %s cannot access its own home %s", r, home)
	}

	assert.Equal(t, DestLogin, HomeRoute(Role("NIGHT_WATCHMAN")))
	assert.Equal(t, DestLogin, HomeRoute(Role("")))
}

func TestHomeRouteByOffice(t *testing.T) {
	assert.Equal(t, DestAdminDashboard, HomeRoute(SuperAdmin))
	assert.Equal(t, DestAdminDashboard, HomeRoute(President))
	assert.Equal(t, DestTreasurerDashboard, HomeRoute(Treasurer))
	assert.Equal(t, DestOfficeDashboard, HomeRoute(VicePresident))
	assert.Equal(t, DestOfficeDashboard, HomeRoute(GeneralSecretary))
	assert.Equal(t, DestOfficeDashboard, HomeRoute(JointSecretary))
	assert.Equal(t, DestOfficeDashboard, HomeRoute(ECMember))
	assert.Equal(t, DestOfficeDashboard, HomeRoute(Member))
	assert.Equal(t, DestOfficeDashboard, HomeRoute(Volunteer))
}

func TestCanAccess(t *testing.T) {
	tests := []struct {
		name string
		role Role
		dest Destination
		want bool
	}{
		{name: "treasurer opens funds", role: Treasurer, dest: DestFunds, want: true},
		{name: "member denied funds", role: Member, dest: DestFunds, want: false},
		{name: "volunteer denied meetings", role: Volunteer, dest: DestMeetings, want: false},
		{name: "ec member opens meetings", role: ECMember, dest: DestMeetings, want: true},
		{name: "president opens members", role: President, dest: DestMembers, want: true},
		{name: "treasurer denied members", role: Treasurer, dest: DestMembers, want: false},
		{name: "only super admin opens audit", role: President, dest: DestAuditLogs, want: false},
		{name: "super admin opens audit", role: SuperAdmin, dest: DestAuditLogs, want: true},
		{name: "everyone opens notifications", role: Volunteer, dest: DestNotifications, want: true},
		{name: "unknown role denied everywhere", role: Role("NIGHT_WATCHMAN"), dest: DestNotifications, want: false},
		{name: "unknown destination denied", role: SuperAdmin, dest: Destination("/no-such-view"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAccess(tt.role, tt.dest))
		})
	}
}

func TestIsPublic(t *testing.T) {
	assert.True(t, IsPublic(DestLogin))
	for _, dest := range Destinations() {
		if dest == DestLogin {
			continue
		}
		assert.False(t, IsPublic(dest), "%s should require authentication", dest)
	}
}

func TestNoDeadDestinations(t *testing.T) {
	// Every guarded destination must be reachable by at least one known
	// role, otherwise the view can never render for anyone.
	for _, dest := range Destinations() {
		if IsPublic(dest) {
			continue
		}
		reachable := false
		for _, r := range All() {
			if CanAccess(r, dest) {
				reachable = true
				break
			}
		}
		assert.True(t, reachable, "destination %s is reachable by no role", dest)
	}
}
