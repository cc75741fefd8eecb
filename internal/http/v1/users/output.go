package users

// UserCreateOutput for POST /api/users (201 Created)
type UserCreateOutput struct {
	Location string `header:"Location" doc:"URL of created record"`
	Body     User
}

// UserListOutput for GET /api/users
type UserListOutput struct {
	Body []User
}

// UserGetOutput for GET /api/users/{id}
type UserGetOutput struct {
	Body User
}

// UserUpdateOutput for PUT /api/users/{id}
type UserUpdateOutput struct {
	Body User
}
