package httpapi

import (
	"github.com/dmitrijs2005/adboard/internal/dbx"
	"github.com/dmitrijs2005/adboard/internal/server/models"
	"github.com/gofiber/fiber/v2"
)

func (s *HTTPServer) createUser(c *fiber.Ctx, tx dbx.DBTX) error {
	var req models.CreateUserRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}

	u, err := s.users.Create(c.UserContext(), tx, req)
	if err != nil {
		return err
	}

	s.logger.Info(c.UserContext(), "user created", "id", u.ID, "request_id", requestID(c))
	return c.JSON(userCreatedResponse{ID: u.ID, Name: u.Name, Status: statusCreated})
}

func (s *HTTPServer) getUser(c *fiber.Ctx, tx dbx.DBTX) error {
	id, err := paramID(c, "user_id")
	if err != nil {
		return err
	}

	u, err := s.users.Get(c.UserContext(), tx, id)
	if err != nil {
		return err
	}

	return c.JSON(toUserResponse(u, ""))
}

func (s *HTTPServer) updateUser(c *fiber.Ctx, tx dbx.DBTX) error {
	id, err := paramID(c, "user_id")
	if err != nil {
		return err
	}

	patch, err := models.ParseUserPatch(c.Body())
	if err != nil {
		return err
	}

	u, err := s.users.Update(c.UserContext(), tx, id, patch)
	if err != nil {
		return err
	}

	return c.JSON(toUserResponse(u, statusChanged))
}

func (s *HTTPServer) deleteUser(c *fiber.Ctx, tx dbx.DBTX) error {
	id, err := paramID(c, "user_id")
	if err != nil {
		return err
	}

	u, err := s.users.Delete(c.UserContext(), tx, id)
	if err != nil {
		return err
	}

	s.logger.Info(c.UserContext(), "user deleted", "id", u.ID, "request_id", requestID(c))
	return c.JSON(userDeletedResponse{ID: u.ID, Name: u.Name, Status: statusDeleted})
}
