package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campusreach_backend/internals/constants"
	userController "campusreach_backend/internals/features/users/user/controller"
	authMw "campusreach_backend/internals/middlewares/auth"
)

// UserAdminRoutes: user management, admin only.
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	users := admin.Group("/users",
		authMw.OnlyRoles(constants.RoleErrorAdmin("user management"), constants.AdminOnly...),
	)
	users.Post("/", ctrl.CreateUser)
	users.Get("/", ctrl.ListUsers)
	users.Get("/:id", ctrl.GetUser)
	users.Put("/:id", ctrl.UpdateUser)
	users.Delete("/:id", ctrl.DeleteUser)
}
