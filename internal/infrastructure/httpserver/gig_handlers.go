package httpserver

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/chefpantry/chefpantry/internal/core/domain/gig"
	"github.com/chefpantry/chefpantry/internal/infrastructure/httpserver/helpers"
)

func (s *Server) postGig(c echo.Context) error {
	userID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	var req gig.CreateGigRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Title == "" || req.Venue == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title and venue are required")
	}
	if req.StartsAt.IsZero() || req.EndsAt.IsZero() {
		return echo.NewHTTPError(http.StatusBadRequest, "starts_at and ends_at are required")
	}

	created, err := s.gigSvc.PostGig(c.Request().Context(), userID, &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, created)
}

func (s *Server) updateGig(c echo.Context) error {
	userID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	gigID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid gig ID")
	}

	var req gig.UpdateGigRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	updated, err := s.gigSvc.UpdateGig(c.Request().Context(), userID, gigID, &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, updated)
}

func (s *Server) cancelGig(c echo.Context) error {
	return s.transitionGig(c, s.gigSvc.CancelGig)
}

func (s *Server) completeGig(c echo.Context) error {
	return s.transitionGig(c, s.gigSvc.CompleteGig)
}

func (s *Server) getGig(c echo.Context) error {
	gigID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid gig ID")
	}

	found, err := s.gigSvc.GetGig(c.Request().Context(), gigID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "gig not found")
	}
	return c.JSON(http.StatusOK, found)
}

func (s *Server) listGigs(c echo.Context) error {
	var filter gig.Filter
	if err := c.Bind(&filter); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	gigs, err := s.gigSvc.ListGigs(c.Request().Context(), &filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list gigs")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"gigs":  gigs,
		"count": len(gigs),
	})
}

func (s *Server) applyToGig(c echo.Context) error {
	userID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	gigID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid gig ID")
	}

	var req gig.ApplyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	app, err := s.gigSvc.Apply(c.Request().Context(), userID, gigID, &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, app)
}

func (s *Server) withdrawApplication(c echo.Context) error {
	return s.transitionApplication(c, s.gigSvc.Withdraw)
}

func (s *Server) acceptApplication(c echo.Context) error {
	return s.transitionApplication(c, s.gigSvc.AcceptApplication)
}

func (s *Server) declineApplication(c echo.Context) error {
	return s.transitionApplication(c, s.gigSvc.DeclineApplication)
}

func (s *Server) listGigApplications(c echo.Context) error {
	userID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	gigID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid gig ID")
	}

	apps, err := s.gigSvc.ListGigApplications(c.Request().Context(), userID, gigID)
	if err != nil {
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"applications": apps,
		"count":        len(apps),
	})
}

func (s *Server) listOwnApplications(c echo.Context) error {
	userID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	apps, err := s.gigSvc.ListOwnApplications(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list applications")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"applications": apps,
		"count":        len(apps),
	})
}

func (s *Server) transitionGig(c echo.Context, op func(ctx context.Context, actorID, gigID uuid.UUID) (*gig.Gig, error)) error {
	userID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	gigID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid gig ID")
	}

	g, err := op(c.Request().Context(), userID, gigID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, g)
}

func (s *Server) transitionApplication(c echo.Context, op func(ctx context.Context, actorID, applicationID uuid.UUID) (*gig.Application, error)) error {
	userID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	appID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid application ID")
	}

	app, err := op(c.Request().Context(), userID, appID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, app)
}
