package role

import "strings"

// Role identifies a member's position within the association.
//
// The backend is not consistent about separators ("EC MEMBER" vs
// "EC_MEMBER"), so every role arriving from the outside must go through
// Normalize before any comparison.
type Role string

// The closed role enumeration.
const (
	SuperAdmin       Role = "SUPER_ADMIN"
	President        Role = "PRESIDENT"
	Treasurer        Role = "TREASURER"
	VicePresident    Role = "VICE_PRESIDENT"
	GeneralSecretary Role = "GENERAL_SECRETARY"
	JointSecretary   Role = "JOINT_SECRETARY"
	ECMember         Role = "EC_MEMBER"
	Member           Role = "MEMBER"
	Volunteer        Role = "VOLUNTEER"
)

// All returns every role in the enumeration.
func All() []Role {
	return []Role{
		SuperAdmin,
		President,
		Treasurer,
		VicePresident,
		GeneralSecretary,
		JointSecretary,
		ECMember,
		Member,
		Volunteer,
	}
}

// Normalize canonicalizes a raw role identifier: uppercase, with runs of
// spaces, hyphens, and underscores collapsed to a single underscore.
// Normalize is idempotent.
func Normalize(raw string) Role {
	fields := strings.FieldsFunc(strings.ToUpper(strings.TrimSpace(raw)), func(r rune) bool {
		return r == ' ' || r == '-' || r == '_' || r == '\t'
	})
	return Role(strings.Join(fields, "_"))
}

// Known reports whether the role is part of the enumeration.
func Known(r Role) bool {
	switch r {
	case SuperAdmin, President, Treasurer, VicePresident,
		GeneralSecretary, JointSecretary, ECMember, Member, Volunteer:
		return true
	}
	return false
}

// String returns the canonical identifier.
func (r Role) String() string {
	return string(r)
}
