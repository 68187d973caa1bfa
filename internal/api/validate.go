package api

import "github.com/go-playground/validator/v10"

// NewValidator 回傳已註冊跨欄位規則的 validator
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(createUserStructLevel, CreateUserRequest{})
	return v
}

// roles 非空時必須帶 conference_id；"roles": [] 視同未指定角色
func createUserStructLevel(sl validator.StructLevel) {
	req := sl.Current().Interface().(CreateUserRequest)
	if len(req.Roles) > 0 && req.ConferenceID == nil {
		sl.ReportError(req.ConferenceID, "ConferenceID", "conference_id", "required_with_roles", "")
	}
}
