// Package entity contains the core business objects of the project.
package entity

// Executor is a field technician who can be assigned to tasks.
type Executor struct {
	ExecID     int    `json:"exec_id"`
	Surname    string `json:"surname"`
	Name       string `json:"name,omitempty"`
	Phone      string `json:"phone,omitempty"`
	TelegramID *int64 `json:"id_telegram,omitempty"`
	Role       Role   `json:"role"`
}

// DisplayName returns "surname name" without empty parts.
func (e *Executor) DisplayName() string {
	return JoinNonEmpty(" ", e.Surname, e.Name)
}

// Principal is the authenticated caller attached to a request.
// In bypass mode it is synthesized from configuration.
type Principal struct {
	ExecID   int  `json:"exec_id"`
	Role     Role `json:"role"`
	Bypassed bool `json:"bypassed,omitempty"`
}

// HasAnyRole reports whether the principal holds one of the given roles.
func (p *Principal) HasAnyRole(roles ...Role) bool {
	if p == nil {
		return false
	}

	return Roles(roles).Contains(p.Role)
}
