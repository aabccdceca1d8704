package tui

import (
	"testing"

	"github.com/sabhahq/sabha/internal/role"
)

func TestNavigatorStartsAtRoot(t *testing.T) {
	nav := NewNavigator(role.DestLogin)

	if got := nav.Current(); got != role.DestLogin {
		t.Errorf("Current() = %s, want %s", got, role.DestLogin)
	}
	if nav.Back() {
		t.Error("Back() at the root should return false")
	}
}

func TestNavigatorPushAndBack(t *testing.T) {
	nav := NewNavigator(role.DestAdminDashboard)
	nav.Push(role.DestMembers)
	nav.Push(role.DestFunds)

	if got := nav.Current(); got != role.DestFunds {
		t.Errorf("Current() = %s, want %s", got, role.DestFunds)
	}

	if !nav.Back() {
		t.Fatal("Back() should succeed with history")
	}
	if got := nav.Current(); got != role.DestMembers {
		t.Errorf("after Back(), Current() = %s, want %s", got, role.DestMembers)
	}
}

func TestNavigatorPushDeduplicates(t *testing.T) {
	nav := NewNavigator(role.DestMembers)
	nav.Push(role.DestMembers)

	if got := nav.Depth(); got != 1 {
		t.Errorf("Depth() = %d, want 1 after pushing the current destination", got)
	}
}

func TestNavigatorReplaceLeavesNoHistory(t *testing.T) {
	nav := NewNavigator(role.DestAdminDashboard)
	nav.Push(role.DestFunds)

	// A guard redirect replaces the blocked destination, so going back
	// must not resurface it.
	nav.Replace(role.DestLogin)

	if got := nav.Current(); got != role.DestLogin {
		t.Errorf("Current() = %s, want %s", got, role.DestLogin)
	}
	if !nav.Back() {
		t.Fatal("Back() should reach the dashboard")
	}
	if got := nav.Current(); got != role.DestAdminDashboard {
		t.Errorf("after Back(), Current() = %s, want %s", got, role.DestAdminDashboard)
	}
	if nav.Back() {
		t.Error("the replaced destination must not be reachable")
	}
}
