package api

// swagger:model api.RoleAssignmentResponse
type RoleAssignmentResponse struct {
	ConferenceID int `json:"conference_id" example:"1"`
	RoleID       int `json:"role_id" example:"2"`
}

// swagger:model api.UserResponse
type UserResponse struct {
	ID               int                      `json:"id" example:"1"`
	Username         string                   `json:"username" example:"cosmin.popa@example.com"`
	FirstName        string                   `json:"first_name" example:"Cosmin"`
	LastName         string                   `json:"last_name" example:"Popa"`
	IsPhD            bool                     `json:"is_phd" example:"true"`
	EducationalTitle string                   `json:"educational_title" example:"Profesor Doctor Inginer"`
	Roles            []RoleAssignmentResponse `json:"roles"`
}
