package router

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/diagscope/diagscope/internal/apperr"
	"github.com/diagscope/diagscope/internal/dto"
	"github.com/diagscope/diagscope/internal/index"
	"github.com/diagscope/diagscope/internal/query"
	"github.com/diagscope/diagscope/pkg/pagination"
)

type DiagnosticsRouter struct {
	e       *echo.Echo
	catalog *index.Catalog
}

func NewDiagnosticsRouter(e *echo.Echo, catalog *index.Catalog) *DiagnosticsRouter {
	return &DiagnosticsRouter{
		e:       e,
		catalog: catalog,
	}
}

func (r *DiagnosticsRouter) Bind() {
	r.e.GET("/diagnostics", r.filterHandler)
	r.e.GET("/diagnostics/:id", r.getHandler)
	r.e.GET("/facets", r.facetsHandler)
}

// filterHandler godoc
//
//	@Summary		Filter diagnostics
//	@Description	Returns the diagnostics whose facets match the filter expression. An empty expression matches everything.
//	@Tags			diagnostics
//	@Produce		json
//	@Param			query	query	string	false	"Facet filter expression, e.g. variable: tas AND NOT model = ERA5"
//	@Param			page	query	int		false	"Page number, starting at 1"
//	@Param			size	query	int		false	"Page size"
//	@Success		200	{object}	pagination.OffsetResult[dto.Diagnostic]
//	@Failure		400	{object}	map[string]string
//	@Router			/diagnostics [get]
func (r *DiagnosticsRouter) filterHandler(c echo.Context) error {
	pred, err := query.Compile(c.QueryParam("query"))
	if err != nil {
		return err
	}

	var page pagination.OffsetRequest
	if err := c.Bind(&page); err != nil {
		return apperr.NewValidationWrap("invalid pagination parameters", err)
	}
	_ = page.Validate()

	res := r.catalog.Filter(pred, &page)
	return c.JSON(http.StatusOK, pagination.NewOffsetResult(dto.FromEntries(res.Items), res.Total, res.Page, res.Size))
}

// getHandler godoc
//
//	@Summary		Get a diagnostic by id
//	@Tags			diagnostics
//	@Produce		json
//	@Param			id	path	string	true	"Diagnostic id"
//	@Success		200	{object}	dto.Diagnostic
//	@Failure		400	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Router			/diagnostics/{id} [get]
func (r *DiagnosticsRouter) getHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NewValidationWrap("invalid diagnostic id", err)
	}

	entry, ok := r.catalog.Get(id)
	if !ok {
		return apperr.NewNotFound("diagnostic", id.String())
	}

	return c.JSON(http.StatusOK, dto.FromEntry(entry))
}

// facetsHandler godoc
//
//	@Summary		List facets
//	@Description	Returns every facet name in the catalog with its distinct values, sorted.
//	@Tags			diagnostics
//	@Produce		json
//	@Success		200	{object}	dto.FacetCatalog
//	@Router			/facets [get]
func (r *DiagnosticsRouter) facetsHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.FacetCatalog{Facets: r.catalog.Facets()})
}
