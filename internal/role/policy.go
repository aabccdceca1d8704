package role

// Destination identifies a navigable view in the console.
type Destination string

// All navigable destinations.
const (
	DestLogin              Destination = "login"
	DestAdminDashboard     Destination = "admin-dashboard"
	DestTreasurerDashboard Destination = "treasurer-dashboard"
	DestOfficeDashboard    Destination = "office-dashboard"
	DestMembers            Destination = "members"
	DestFunds              Destination = "funds"
	DestExpenses           Destination = "expenses"
	DestContributions      Destination = "contributions"
	DestMeetings           Destination = "meetings"
	DestComplaints         Destination = "complaints"
	DestAnnouncements      Destination = "announcements"
	DestSuggestions        Destination = "suggestions"
	DestAuditLogs          Destination = "audit-logs"
	DestReports            Destination = "reports"
	DestNotifications      Destination = "notifications"
)

// entry is one row of the policy table.
type entry struct {
	public  bool
	allowed []Role
}

// officers are the roles that share the office/member landing.
var officers = []Role{VicePresident, GeneralSecretary, JointSecretary, ECMember, Member, Volunteer}

// policy is the single canonical table mapping destination to allowed
// roles. Every destination reachable from a view must have a row here;
// a non-public row with an empty allowed set is a dead route.
var policy = map[Destination]entry{
	DestLogin: {public: true},

	DestAdminDashboard:     {allowed: []Role{SuperAdmin, President}},
	DestTreasurerDashboard: {allowed: []Role{Treasurer}},
	DestOfficeDashboard:    {allowed: All()},

	DestMembers:       {allowed: []Role{SuperAdmin, President, VicePresident, GeneralSecretary, JointSecretary}},
	DestFunds:         {allowed: []Role{SuperAdmin, President, Treasurer}},
	DestExpenses:      {allowed: []Role{SuperAdmin, President, Treasurer}},
	DestContributions: {allowed: All()},

	DestMeetings: {allowed: []Role{SuperAdmin, President, Treasurer, VicePresident, GeneralSecretary, JointSecretary, ECMember}},

	DestComplaints:    {allowed: All()},
	DestAnnouncements: {allowed: All()},
	DestSuggestions:   {allowed: All()},

	DestAuditLogs: {allowed: []Role{SuperAdmin}},
	DestReports:   {allowed: []Role{SuperAdmin, President, Treasurer}},

	DestNotifications: {allowed: All()},
}

// Destinations returns every destination in the policy table.
func Destinations() []Destination {
	dests := make([]Destination, 0, len(policy))
	for d := range policy {
		dests = append(dests, d)
	}
	return dests
}

// IsPublic reports whether the destination declares no restriction.
func IsPublic(dest Destination) bool {
	e, ok := policy[dest]
	return ok && e.public
}

// AllowedRoles returns the allowed-role set for a destination.
func AllowedRoles(dest Destination) []Role {
	e, ok := policy[dest]
	if !ok {
		return nil
	}
	return e.allowed
}

// CanAccess reports whether the role may render the destination.
// A destination missing from the table denies everyone.
func CanAccess(r Role, dest Destination) bool {
	e, ok := policy[dest]
	if !ok {
		return false
	}
	if e.public {
		return true
	}
	for _, allowed := range e.allowed {
		if r == allowed {
			return true
		}
	}
	return false
}

// HomeRoute returns the landing destination for a role. Total over the
// enumeration; anything outside it lands on login so an unmapped role
// never renders content.
func HomeRoute(r Role) Destination {
	switch r {
	case SuperAdmin, President:
		return DestAdminDashboard
	case Treasurer:
		return DestTreasurerDashboard
	case VicePresident, GeneralSecretary, JointSecretary, ECMember, Member, Volunteer:
		return DestOfficeDashboard
	default:
		return DestLogin
	}
}
