package httpserver

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/chefpantry/chefpantry/internal/core/domain/invoice"
	"github.com/chefpantry/chefpantry/internal/infrastructure/httpserver/helpers"
)

func (s *Server) createInvoice(c echo.Context) error {
	userID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	var req invoice.CreateInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.GigID == uuid.Nil {
		return echo.NewHTTPError(http.StatusBadRequest, "gig_id is required")
	}

	inv, err := s.invoiceSvc.CreateDraft(c.Request().Context(), userID, &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, inv)
}

func (s *Server) updateInvoice(c echo.Context) error {
	userID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid invoice ID")
	}

	var req invoice.UpdateInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	inv, err := s.invoiceSvc.UpdateDraft(c.Request().Context(), userID, invoiceID, &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, inv)
}

func (s *Server) sendInvoice(c echo.Context) error {
	return s.transitionInvoice(c, s.invoiceSvc.Send)
}

func (s *Server) voidInvoice(c echo.Context) error {
	return s.transitionInvoice(c, s.invoiceSvc.Void)
}

func (s *Server) markInvoicePaid(c echo.Context) error {
	return s.transitionInvoice(c, s.invoiceSvc.MarkPaid)
}

func (s *Server) getInvoice(c echo.Context) error {
	userID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid invoice ID")
	}

	inv, err := s.invoiceSvc.Get(c.Request().Context(), userID, invoiceID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, inv)
}

func (s *Server) listOwnInvoices(c echo.Context) error {
	userID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	limit, offset := pageParams(c)
	invoices, err := s.invoiceSvc.ListByChef(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list invoices")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"invoices": invoices,
		"count":    len(invoices),
	})
}

func (s *Server) listCompanyInvoices(c echo.Context) error {
	userID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid company ID")
	}

	limit, offset := pageParams(c)
	invoices, err := s.invoiceSvc.ListByCompany(c.Request().Context(), userID, companyID, limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"invoices": invoices,
		"count":    len(invoices),
	})
}

func (s *Server) transitionInvoice(c echo.Context, op func(ctx context.Context, actorID, invoiceID uuid.UUID) (*invoice.Invoice, error)) error {
	userID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid invoice ID")
	}

	inv, err := op(c.Request().Context(), userID, invoiceID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, inv)
}

func pageParams(c echo.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	offset, _ = strconv.Atoi(c.QueryParam("offset"))
	return limit, offset
}
