package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campusreach_backend/internals/constants"
	zoneController "campusreach_backend/internals/features/organization/zones/controller"
	authMw "campusreach_backend/internals/middlewares/auth"
)

// ZoneAdminRoutes: zone management (admin); reads stay open to every
// authenticated role via ZoneUserRoutes.
func ZoneAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := zoneController.NewZoneController(db)

	zones := admin.Group("/zones",
		authMw.OnlyRoles(constants.RoleErrorAdmin("zone management"), constants.AdminOnly...),
	)
	zones.Post("/", ctrl.CreateZone)
	zones.Put("/:id", ctrl.UpdateZone)
	zones.Delete("/:id", ctrl.DeleteZone)
}

func ZoneUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := zoneController.NewZoneController(db)

	zones := user.Group("/zones")
	zones.Get("/", ctrl.ListZones)
	zones.Get("/:id", ctrl.GetZone)
}
