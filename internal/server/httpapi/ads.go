package httpapi

import (
	"github.com/dmitrijs2005/adboard/internal/dbx"
	"github.com/dmitrijs2005/adboard/internal/server/models"
	"github.com/gofiber/fiber/v2"
)

func (s *HTTPServer) createAd(c *fiber.Ctx, tx dbx.DBTX) error {
	ownerID, err := paramID(c, "user_id")
	if err != nil {
		return err
	}

	var req models.CreateAdRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}

	ad, err := s.ads.Create(c.UserContext(), tx, ownerID, req)
	if err != nil {
		return err
	}

	return c.JSON(adCreatedResponse{
		ID:          ad.ID,
		Title:       ad.Title,
		Description: ad.Description,
		Status:      statusCreated,
		OwnerID:     ad.OwnerID,
	})
}

func (s *HTTPServer) getAd(c *fiber.Ctx, tx dbx.DBTX) error {
	id, err := paramID(c, "ads_id")
	if err != nil {
		return err
	}

	ad, err := s.ads.Get(c.UserContext(), tx, id)
	if err != nil {
		return err
	}

	return c.JSON(adResponse{
		ID:               ad.ID,
		Title:            ad.Title,
		Description:      ad.Description,
		RegistrationTime: ad.RegistrationTime.UTC(),
		OwnerID:          ad.OwnerID,
	})
}

func (s *HTTPServer) listAdsByOwner(c *fiber.Ctx, tx dbx.DBTX) error {
	ownerID, err := paramID(c, "user_id")
	if err != nil {
		return err
	}

	ads, err := s.ads.ListByOwner(c.UserContext(), tx, ownerID)
	if err != nil {
		return err
	}

	return c.JSON(toAdSummaries(ads))
}

func (s *HTTPServer) updateAd(c *fiber.Ctx, tx dbx.DBTX) error {
	id, err := paramID(c, "ads_id")
	if err != nil {
		return err
	}

	patch, err := models.ParseAdPatch(c.Body())
	if err != nil {
		return err
	}

	change, err := s.ads.Update(c.UserContext(), tx, id, patch)
	if err != nil {
		return err
	}

	return c.JSON(adChangedResponse{
		ID:             change.New.ID,
		OwnerID:        change.New.OwnerID,
		OldTitle:       change.Old.Title,
		NewTitle:       change.New.Title,
		OldDescription: change.Old.Description,
		NewDescription: change.New.Description,
		Status:         statusChanged,
	})
}

func (s *HTTPServer) deleteAd(c *fiber.Ctx, tx dbx.DBTX) error {
	id, err := paramID(c, "ads_id")
	if err != nil {
		return err
	}

	ad, err := s.ads.Delete(c.UserContext(), tx, id)
	if err != nil {
		return err
	}

	return c.JSON(adDeletedResponse{ID: ad.ID, Title: ad.Title, Status: statusDeleted})
}
