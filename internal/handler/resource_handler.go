package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio/internal/service"
)

// messages are the French confirmations returned by a resource's write endpoints.
type messages struct {
	created string
	updated string
	deleted string
}

// resource implements list/create/update/delete for one content type. Concrete handlers
// wrap it so each route keeps its own API documentation.
type resource[T any] struct {
	svc service.ResourceService[T]
	msg messages
}

func (r resource[T]) list(c echo.Context) error {
	records, source, err := r.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	setSource(c, source)
	return c.JSON(http.StatusOK, records)
}

func (r resource[T]) create(c echo.Context) error {
	var record T
	if err := c.Bind(&record); err != nil {
		return errInvalidBody
	}
	if err := r.svc.Create(c.Request().Context(), &record); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, MutationResponse{Message: r.msg.created, Data: record})
}

func (r resource[T]) update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var record T
	if err := c.Bind(&record); err != nil {
		return errInvalidBody
	}
	updated, err := r.svc.Update(c.Request().Context(), id, &record)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, MutationResponse{Message: r.msg.updated, Data: updated})
}

func (r resource[T]) delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := r.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: r.msg.deleted})
}
