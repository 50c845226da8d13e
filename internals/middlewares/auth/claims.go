package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"campusreach_backend/internals/features/reports/workflow"
)

// ActorFromLocals rebuilds the workflow actor from the claims the auth
// middleware stored. Returns a 401 fiber error when the token claims are
// missing or malformed.
func ActorFromLocals(c *fiber.Ctx) (workflow.Actor, error) {
	idStr, ok := c.Locals("user_id").(string)
	if !ok || idStr == "" {
		return workflow.Actor{}, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing user ID")
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return workflow.Actor{}, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - invalid user ID")
	}

	role, _ := c.Locals("user_role").(string)
	if role == "" {
		return workflow.Actor{}, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing role")
	}

	actor := workflow.Actor{ID: id, Role: role}

	if fidStr, ok := c.Locals("fellowship_id").(string); ok && fidStr != "" {
		if fid, err := uuid.Parse(fidStr); err == nil {
			actor.FellowshipID = &fid
		}
	}
	if zidStr, ok := c.Locals("zone_id").(string); ok && zidStr != "" {
		if zid, err := uuid.Parse(zidStr); err == nil {
			actor.ZoneID = &zid
		}
	}

	return actor, nil
}

// GetUserIDFromLocals is the small variant for endpoints that only need the id.
func GetUserIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	idStr, ok := c.Locals("user_id").(string)
	if !ok || idStr == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing user ID")
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - invalid user ID")
	}
	return id, nil
}
