package domain

import "sort"

// RoleSet is an unordered set of roles.
type RoleSet map[Role]struct{}

// NewRoleSet builds a set from the given roles.
func NewRoleSet(roles ...Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}

// Has reports whether the set contains the role.
func (s RoleSet) Has(role Role) bool {
	_, ok := s[role]
	return ok
}

// Roles returns the set contents in stable lexical order.
func (s RoleSet) Roles() []Role {
	out := make([]Role, 0, len(s))
	for r := range s {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// AssignableRoles returns the roles an actor may grant when registering or
// promoting laboratory members. The table fails closed: any role not
// enumerated here receives the empty set, never elevated privilege.
func AssignableRoles(actor Role) RoleSet {
	switch actor {
	case RoleTop:
		return NewRoleSet(RoleManager, RoleStaff, RoleAssistant, RoleTeacher, RoleStudent)
	case RoleManager:
		return NewRoleSet(RoleStaff, RoleAssistant, RoleTeacher, RoleStudent)
	case RoleStaff:
		return NewRoleSet(RoleStaff, RoleAssistant, RoleTeacher, RoleStudent)
	case RoleAssistant:
		return NewRoleSet(RoleTeacher, RoleStudent)
	default:
		return NewRoleSet()
	}
}

// TaskAssignableRoles returns the member roles an actor may assign tasks
// to. This table is maintained independently of AssignableRoles: an
// assistant can be assigned tasks by staff yet may assign tasks to nobody.
// Unknown roles fail closed to the empty set.
func TaskAssignableRoles(actor Role) RoleSet {
	switch actor {
	case RoleTop:
		return NewRoleSet(RoleTop, RoleManager, RoleStaff, RoleAssistant, RoleTeacher, RoleStudent)
	case RoleManager:
		return NewRoleSet(RoleStaff, RoleAssistant)
	case RoleStaff:
		return NewRoleSet(RoleAssistant)
	case RoleAssistant:
		return NewRoleSet()
	default:
		return NewRoleSet()
	}
}
