package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sabhahq/sabha/internal/api"
	"github.com/sabhahq/sabha/internal/role"
	"github.com/sabhahq/sabha/internal/session"
)

func snapFor(r string) session.Snapshot {
	return session.Snapshot{
		Token: "tok",
		User:  &api.User{ID: "u1", Name: "Asha", Role: r},
	}
}

func TestEvaluateLoading(t *testing.T) {
	snap := session.Snapshot{Token: "tok", Loading: true}

	d := Evaluate(snap, role.DestFunds)
	assert.Equal(t, Wait, d.Action)
	assert.Empty(t, d.Target)
}

func TestEvaluatePublicDestination(t *testing.T) {
	// Login renders for everyone, signed in or not.
	d := Evaluate(session.Snapshot{}, role.DestLogin)
	assert.Equal(t, Render, d.Action)

	d = Evaluate(snapFor("TREASURER"), role.DestLogin)
	assert.Equal(t, Render, d.Action)
}

func TestEvaluateUnauthenticated(t *testing.T) {
	for _, dest := range role.Destinations() {
		if role.IsPublic(dest) {
			continue
		}
		d := Evaluate(session.Snapshot{}, dest)
		assert.Equal(t, RedirectLogin, d.Action, "destination %s", dest)
		assert.Equal(t, role.DestLogin, d.Target)
	}
}

func TestEvaluateAuthorized(t *testing.T) {
	d := Evaluate(snapFor("TREASURER"), role.DestFunds)
	assert.Equal(t, Render, d.Action)
}

func TestEvaluateForbiddenRedirectsHome(t *testing.T) {
	tests := []struct {
		name string
		role string
		dest role.Destination
		home role.Destination
	}{
		{name: "member to funds", role: "MEMBER", dest: role.DestFunds, home: role.DestOfficeDashboard},
		{name: "treasurer to members", role: "TREASURER", dest: role.DestMembers, home: role.DestTreasurerDashboard},
		{name: "president to audit", role: "PRESIDENT", dest: role.DestAuditLogs, home: role.DestAdminDashboard},
		{name: "volunteer to meetings", role: "VOLUNTEER", dest: role.DestMeetings, home: role.DestOfficeDashboard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Evaluate(snapFor(tt.role), tt.dest)
			assert.Equal(t, RedirectHome, d.Action)
			assert.Equal(t, tt.home, d.Target)
		})
	}
}

func TestEvaluateUnknownRoleFailsClosed(t *testing.T) {
	// A user with an unmapped role never renders content, even on
	// destinations open to every known role.
	d := Evaluate(snapFor("NIGHT_WATCHMAN"), role.DestNotifications)
	assert.Equal(t, RedirectLogin, d.Action)
	assert.Equal(t, role.DestLogin, d.Target)
}

func TestEvaluateNormalizesRole(t *testing.T) {
	// The snapshot normalizes raw role spellings, so a backend "ec
	// member" still reaches its meetings view.
	d := Evaluate(snapFor("ec member"), role.DestMeetings)
	assert.Equal(t, Render, d.Action)
}

func TestEvaluateDeterministic(t *testing.T) {
	snap := snapFor("MEMBER")
	first := Evaluate(snap, role.DestFunds)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Evaluate(snap, role.DestFunds))
	}
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "wait", Wait.String())
	assert.Equal(t, "render", Render.String())
	assert.Equal(t, "redirect-login", RedirectLogin.String())
	assert.Equal(t, "redirect-home", RedirectHome.String())
	assert.Equal(t, "unknown", Action(99).String())
}
