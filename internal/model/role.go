package model

type Role string

const (
	RoleUser      = Role("user")
	RoleAssistant = Role("assistant")
)

func ParseRole(s string) (Role, bool) {
	switch s {
	case "user":
		return RoleUser, true
	case "assistant":
		return RoleAssistant, true
	default:
		return "", false
	}
}
