package users

// UserBody is the request body shared by create and update. Field rules are
// enforced by the domain validator so every violation is reported in one
// ordered response; the tags here only document the schema. Every field is
// marked optional so an absent or null value decodes to its zero value and
// reaches the validator instead of being rejected by the schema.
type UserBody struct {
	FullName  string `json:"fullName"          required:"false" doc:"Full name"                          example:"John Doe"`
	Email     string `json:"email"             required:"false" doc:"Email address, unique"              example:"john.doe@example.com"`
	Phone     string `json:"phone"             required:"false" doc:"Phone in international format"      example:"+55 11 99999-9999"`
	BirthDate string `json:"birthDate"         required:"false" doc:"Birth date (ISO-8601, in the past)" example:"1990-05-20"`
	UserType  string `json:"userType"          required:"false" doc:"One of ADMIN, EDITOR, VIEWER"       example:"ADMIN"`
	Address   string `json:"address,omitempty" required:"false" doc:"Free-text address"                  example:"221B Baker Street"`
}

// UserCreateInput for POST /api/users
type UserCreateInput struct {
	Body UserBody
}

// UserListInput for GET /api/users (no parameters)
type UserListInput struct{}

// UserGetInput for GET /api/users/{id}
type UserGetInput struct {
	ID int64 `path:"id" doc:"Record identifier" example:"1"`
}

// UserUpdateInput for PUT /api/users/{id}
type UserUpdateInput struct {
	ID   int64 `path:"id" doc:"Record identifier" example:"1"`
	Body UserBody
}

// UserDeleteInput for DELETE /api/users/{id}
type UserDeleteInput struct {
	ID int64 `path:"id" doc:"Record identifier" example:"1"`
}
