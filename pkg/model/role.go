package model

import "strings"

// Role is a user's account role as issued by the backend.
type Role string

const (
	RoleStudent   Role = "Student"
	RoleTeacher   Role = "Teacher"
	RoleAssistant Role = "Assistant"
)

// roleAliases maps roles to the role whose access level they carry.
var roleAliases = map[Role]Role{
	RoleAssistant: RoleTeacher,
}

// EffectiveRole resolves a role to the role it grants access as.
// Assistants act with Teacher access; other roles map to themselves.
func EffectiveRole(r Role) Role {
	if alias, ok := roleAliases[r]; ok {
		return alias
	}
	return r
}

// ParseRole normalizes a role string from the backend. It is
// case-insensitive and tolerates surrounding whitespace. The second
// return value is false for empty or unrecognized input.
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "student":
		return RoleStudent, true
	case "teacher":
		return RoleTeacher, true
	case "assistant":
		return RoleAssistant, true
	default:
		return "", false
	}
}
