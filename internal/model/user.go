// File: internal/model/user.go
package model

// Role names carried in the JWT roles claim.
const (
	RoleAdministrator    = "ADMINISTRATOR"
	RoleProgramCommittee = "PROGRAM_COMMITTEE"
)

type User struct {
	ID               int              `db:"id" json:"id"`
	Username         string           `db:"username" json:"username"`
	PasswordHash     string           `db:"password" json:"-"`
	FirstName        string           `db:"first_name" json:"first_name"`
	LastName         string           `db:"last_name" json:"last_name"`
	ValidAccount     bool             `db:"valid_account" json:"valid_account"`
	IsPhD            bool             `db:"is_phd" json:"is_phd"`
	EducationalTitle string           `db:"educational_title" json:"educational_title"`
	IsActive         bool             `db:"is_active" json:"is_active"`
	Roles            []RoleAssignment `db:"-" json:"roles"`
}

// RoleAssignment 使用者在某個研討會中的角色，隨使用者一併刪除
type RoleAssignment struct {
	ConferenceID int `db:"conference_id" json:"conference_id"`
	UserID       int `db:"user_id" json:"-"`
	RoleID       int `db:"role_id" json:"role_id"`
}
