package httpserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/chefpantry/chefpantry/internal/core/domain/review"
	"github.com/chefpantry/chefpantry/internal/infrastructure/httpserver/helpers"
)

func (s *Server) createReview(c echo.Context) error {
	userID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	var req review.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.GigID == uuid.Nil || req.SubjectID == uuid.Nil {
		return echo.NewHTTPError(http.StatusBadRequest, "gig_id and subject_id are required")
	}

	r, err := s.reviewSvc.CreateReview(c.Request().Context(), userID, &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, r)
}

func (s *Server) listReviews(c echo.Context) error {
	subjectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user ID")
	}

	limit, offset := pageParams(c)
	reviews, err := s.reviewSvc.ListForSubject(c.Request().Context(), subjectID, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list reviews")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"reviews": reviews,
		"count":   len(reviews),
	})
}

func (s *Server) reviewSummary(c echo.Context) error {
	subjectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user ID")
	}

	summary, err := s.reviewSvc.Summary(c.Request().Context(), subjectID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to compute review summary")
	}
	return c.JSON(http.StatusOK, summary)
}
