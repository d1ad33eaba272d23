package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"sales_demarcation_go/db"
	"sales_demarcation_go/middleware"
	"sales_demarcation_go/models"
	"sales_demarcation_go/services"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// EntityDescriptor configures one master-data resource for RegisterCRUD.
// Every administration screen shares the same endpoint quartet; only the
// entity name, validation rules, and text fields differ, so they are data.
type EntityDescriptor[T any] struct {
	// Name is the resource path segment and audit entity type, e.g. "subChannel"
	Name string
	// DeactivateSegment is the verb segment of the status-toggle route, e.g. "deactivateSubChannel"
	DeactivateSegment string
	// Validate returns field-keyed messages; an empty map means the DTO is valid
	Validate func(*T) map[string]string
	// Sanitize normalizes free-text fields in place before persistence
	Sanitize func(*T)
	// BulkCreate makes POST accept a JSON array payload (many-to-many mapping screens)
	BulkCreate bool
}

// RegisterCRUD wires the standard endpoint quartet for one entity type:
//
//	GET    /{entity}                           list
//	GET    /{entity}/findById/:id              single
//	POST   /{entity}                           create
//	PUT    /{entity}                           update
//	DELETE /{entity}/deactivate{Entity}/:id    status toggle
func RegisterCRUD[T any, PT interface {
	*T
	models.Entity
}](g *echo.Group, d EntityDescriptor[T]) {
	base := "/" + d.Name
	g.GET(base, listEntities[T](d))
	g.GET(base+"/findById/:id", findEntityByID[T](d))
	if d.BulkCreate {
		g.POST(base, bulkCreateEntities[T, PT](d))
	} else {
		g.POST(base, createEntity[T, PT](d))
	}
	g.PUT(base, updateEntity[T, PT](d))
	g.DELETE(base+"/"+d.DeactivateSegment+"/:id", toggleEntityStatus[T, PT](d))
}

func listEntities[T any](d EntityDescriptor[T]) echo.HandlerFunc {
	return func(c echo.Context) error {
		var rows []T
		if err := db.DB.Find(&rows).Error; err != nil {
			return respondMessage(c, http.StatusInternalServerError, "Failed to fetch "+d.Name+" list.")
		}
		return respondPayload(c, http.StatusOK, rows)
	}
}

func findEntityByID[T any](d EntityDescriptor[T]) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return respondMessage(c, http.StatusBadRequest, "Invalid id.")
		}

		var row T
		if err := db.DB.First(&row, id).Error; err != nil {
			return respondMessage(c, http.StatusNotFound, d.Name+" not found.")
		}
		return respondPayload(c, http.StatusOK, row)
	}
}

func createEntity[T any, PT interface {
	*T
	models.Entity
}](d EntityDescriptor[T]) echo.HandlerFunc {
	return func(c echo.Context) error {
		row := PT(new(T))
		if err := c.Bind(row); err != nil {
			return respondMessage(c, http.StatusBadRequest, "Invalid request body.")
		}

		if d.Sanitize != nil {
			d.Sanitize((*T)(row))
		}
		if d.Validate != nil {
			if errs := d.Validate((*T)(row)); len(errs) > 0 {
				return respondFieldErrors(c, http.StatusBadRequest, errs)
			}
		}

		// Ids are server-assigned; whatever the client sent is discarded
		row.SetID(0)
		row.SetActive(true)

		if err := db.DB.Create(row).Error; err != nil {
			return respondMessage(c, http.StatusInternalServerError, "Add new "+d.Name+" failed.")
		}

		services.RecordAudit(db.DB, middleware.GetAuditContext(c), d.Name, row.GetID(), "create")
		return respondPayload(c, http.StatusCreated, row)
	}
}

func bulkCreateEntities[T any, PT interface {
	*T
	models.Entity
}](d EntityDescriptor[T]) echo.HandlerFunc {
	return func(c echo.Context) error {
		var rows []T
		if err := c.Bind(&rows); err != nil {
			return respondMessage(c, http.StatusBadRequest, "Invalid request body.")
		}
		if len(rows) == 0 {
			return respondMessage(c, http.StatusBadRequest, "At least one mapping is required.")
		}

		for i := range rows {
			row := PT(&rows[i])
			if d.Sanitize != nil {
				d.Sanitize(&rows[i])
			}
			if d.Validate != nil {
				if errs := d.Validate(&rows[i]); len(errs) > 0 {
					return respondFieldErrors(c, http.StatusBadRequest, errs)
				}
			}
			row.SetID(0)
			row.SetActive(true)
		}

		// Mapping screens submit the whole selection as one payload; create
		// it atomically so a duplicate pair does not leave a partial batch.
		err := db.DB.Transaction(func(tx *gorm.DB) error {
			for i := range rows {
				if err := tx.Create(&rows[i]).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			if isDuplicateErr(err) {
				return respondFieldErrors(c, http.StatusBadRequest, map[string]string{
					d.Name: "One of the selected " + d.Name + " mappings already exists.",
				})
			}
			return respondMessage(c, http.StatusInternalServerError, "Add new "+d.Name+" failed.")
		}

		auditCtx := middleware.GetAuditContext(c)
		for i := range rows {
			services.RecordAudit(db.DB, auditCtx, d.Name, PT(&rows[i]).GetID(), "create")
		}
		return respondPayload(c, http.StatusCreated, rows)
	}
}

func updateEntity[T any, PT interface {
	*T
	models.Entity
}](d EntityDescriptor[T]) echo.HandlerFunc {
	return func(c echo.Context) error {
		incoming := PT(new(T))
		if err := c.Bind(incoming); err != nil {
			return respondMessage(c, http.StatusBadRequest, "Invalid request body.")
		}
		if incoming.GetID() == 0 {
			return respondFieldErrors(c, http.StatusBadRequest, map[string]string{"id": "id is required"})
		}

		var existing T
		if err := db.DB.First(&existing, incoming.GetID()).Error; err != nil {
			return respondMessage(c, http.StatusNotFound, d.Name+" not found.")
		}

		if d.Sanitize != nil {
			d.Sanitize((*T)(incoming))
		}
		if d.Validate != nil {
			if errs := d.Validate((*T)(incoming)); len(errs) > 0 {
				return respondFieldErrors(c, http.StatusBadRequest, errs)
			}
		}

		// Select("*") so submitted zero values (cleared text, order 0)
		// persist too. The id, creation time, and lifecycle flag are
		// mutated only through their own endpoints.
		if err := db.DB.Model(&existing).Select("*").
			Omit("id", "created_at", "is_active").
			Updates(incoming).Error; err != nil {
			return respondMessage(c, http.StatusInternalServerError, "Update "+d.Name+" failed.")
		}

		var updated T
		if err := db.DB.First(&updated, incoming.GetID()).Error; err != nil {
			return respondMessage(c, http.StatusInternalServerError, "Update "+d.Name+" failed.")
		}

		services.RecordAudit(db.DB, middleware.GetAuditContext(c), d.Name, incoming.GetID(), "update")
		return respondPayload(c, http.StatusOK, updated)
	}
}

func toggleEntityStatus[T any, PT interface {
	*T
	models.Entity
}](d EntityDescriptor[T]) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return respondMessage(c, http.StatusBadRequest, "Invalid id.")
		}

		var row T
		if err := db.DB.First(&row, id).Error; err != nil {
			return respondMessage(c, http.StatusNotFound, d.Name+" not found.")
		}

		entity := PT(&row)

		// The route keeps its historical "deactivate" name but the target
		// state can be pinned explicitly; without it the current state inverts.
		target := !entity.Active()
		if raw := c.QueryParam("active"); raw != "" {
			parsed, err := strconv.ParseBool(raw)
			if err != nil {
				return respondMessage(c, http.StatusBadRequest, "Invalid active parameter.")
			}
			target = parsed
		}

		entity.SetActive(target)
		if err := db.DB.Model(entity).Update("is_active", target).Error; err != nil {
			return respondMessage(c, http.StatusInternalServerError, "Status change for "+d.Name+" failed.")
		}

		action := "deactivate"
		if target {
			action = "activate"
		}
		services.RecordAudit(db.DB, middleware.GetAuditContext(c), d.Name, id, action)
		return respondPayload(c, http.StatusOK, entity)
	}
}

// isDuplicateErr reports whether a create failed on a unique index
func isDuplicateErr(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint")
}

// parseID reads the numeric :id route parameter
func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
