package users

import (
	"github.com/bruno-soares-web/techmanage/internal/platform/timeutil"
	"github.com/bruno-soares-web/techmanage/internal/user"
)

// User represents a user record response. Phone is rendered in the canonical
// display form.
type User struct {
	ID        int64         `json:"id"                doc:"Record identifier"       example:"1"`
	FullName  string        `json:"fullName"          doc:"Full name"               example:"John Doe"`
	Email     string        `json:"email"             doc:"Email address"           example:"john.doe@example.com"`
	Phone     string        `json:"phone"             doc:"Phone, display format"   example:"+55 11 99999-9999"`
	BirthDate timeutil.Date `json:"birthDate"         doc:"Birth date"              example:"1990-05-20"`
	UserType  string        `json:"userType"          doc:"User type"               example:"ADMIN"`
	Address   string        `json:"address,omitempty" doc:"Free-text address"       example:"221B Baker Street"`
}

func toHTTPUser(u *user.User) User {
	return User{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Phone:     user.FormatPhone(u.Phone),
		BirthDate: u.BirthDate,
		UserType:  string(u.UserType),
		Address:   u.Address,
	}
}

func toInput(b UserBody) user.Input {
	return user.Input{
		FullName:  b.FullName,
		Email:     b.Email,
		Phone:     b.Phone,
		BirthDate: b.BirthDate,
		UserType:  b.UserType,
		Address:   b.Address,
	}
}
