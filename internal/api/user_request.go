// File: internal/api/user_request.go
package api

// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Username         *string `json:"username" validate:"required" example:"cosmin.popa@example.com"`
	Password         *string `json:"password" validate:"required" example:"cHcxMjM="`
	FirstName        *string `json:"first_name" validate:"required" example:"Cosmin"`
	LastName         *string `json:"last_name" validate:"required" example:"Popa"`
	ValidAccount     *Flag   `json:"valid_account" validate:"required" swaggertype:"boolean" example:"false"`
	IsPhD            *Flag   `json:"is_phd" validate:"required" swaggertype:"boolean" example:"true"`
	EducationalTitle *string `json:"educational_title" validate:"required" example:"Profesor Doctor Inginer"`
	Roles            []int   `json:"roles,omitempty" validate:"omitempty,dive,gt=0" example:"2,3"`
	ConferenceID     *int    `json:"conference_id,omitempty" example:"1"`
}

// swagger:model api.UpdateUserRequest
type UpdateUserRequest struct {
	Username         *string `json:"username" validate:"required" example:"cosmin.popa@example.com"`
	FirstName        *string `json:"first_name" validate:"required" example:"Cosmin"`
	LastName         *string `json:"last_name" validate:"required" example:"Popa"`
	ValidAccount     *Flag   `json:"valid_account" validate:"required" swaggertype:"boolean" example:"false"`
	IsPhD            *Flag   `json:"is_phd" validate:"required" swaggertype:"boolean" example:"true"`
	EducationalTitle *string `json:"educational_title" validate:"required" example:"Profesor Doctor Inginer"`
}

// swagger:model api.DeleteUserRequest
type DeleteUserRequest struct {
	Username *string `json:"username" validate:"required" example:"cosmin.popa@example.com"`
}
