package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campusreach_backend/internals/constants"
	fellowshipController "campusreach_backend/internals/features/organization/fellowships/controller"
	authMw "campusreach_backend/internals/middlewares/auth"
)

// FellowshipAdminRoutes: fellowship management, admin only.
func FellowshipAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := fellowshipController.NewFellowshipController(db)

	fellowships := admin.Group("/fellowships",
		authMw.OnlyRoles(constants.RoleErrorAdmin("fellowship management"), constants.AdminOnly...),
	)
	fellowships.Post("/", ctrl.CreateFellowship)
	fellowships.Put("/:id", ctrl.UpdateFellowship)
	fellowships.Delete("/:id", ctrl.DeleteFellowship)
}

func FellowshipUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := fellowshipController.NewFellowshipController(db)

	fellowships := user.Group("/fellowships")
	fellowships.Get("/", ctrl.ListFellowships)
	fellowships.Get("/:id", ctrl.GetFellowship)
}
