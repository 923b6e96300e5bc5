package entity

type Role string

const (
	RoleStudent Role = "student"
	RoleCook    Role = "cook"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleCook, RoleAdmin:
		return true
	}
	return false
}
