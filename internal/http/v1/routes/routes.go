package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/bruno-soares-web/techmanage/internal/http/v1/users"
	usersvc "github.com/bruno-soares-web/techmanage/internal/user"
)

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API, userService *usersvc.Service) {
	users.Register(api, userService)
}
