package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appcatalog "github.com/bhslighting/backend/internal/application/catalog"
	"github.com/bhslighting/backend/internal/application/media"
	"github.com/bhslighting/backend/internal/domain/catalog"
)

// CategoryHandler exposes the category CRUD endpoints.
type CategoryHandler struct {
	BaseHandler
	service *appcatalog.CategoryService
}

func NewCategoryHandler(service *appcatalog.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	categories := rg.Group("/categories")
	{
		categories.GET("", h.List)
		categories.POST("", h.Create)
		categories.GET("/slug/:slug", h.GetBySlug)
		categories.GET("/:id", h.GetByID)
		categories.PUT("/:id", h.Update)
		categories.DELETE("/:id", h.Delete)
	}
}

// List returns categories, optionally narrowed by the parent query
// parameter: absent means all, the literal "null" means root
// categories, and an id means that parent's children.
func (h *CategoryHandler) List(c *gin.Context) {
	filter, err := parseListRequest(c)
	if err != nil {
		h.BadRequest(c, "invalid list parameters")
		return
	}

	var parent catalog.ParentFilter
	if raw, ok := c.GetQuery("parent"); ok {
		if raw == "null" || raw == "" {
			parent.Roots = true
		} else {
			id, err := uuid.Parse(raw)
			if err != nil {
				h.BadRequest(c, "parent must be an id or null")
				return
			}
			parent.Parent = &id
		}
	}

	categories, err := h.service.List(c.Request.Context(), parent, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, categories)
}

func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid category id")
		return
	}
	category, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, category)
}

func (h *CategoryHandler) GetBySlug(c *gin.Context) {
	category, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, category)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	form, closers, err := h.bindCategoryForm(c)
	defer runClosers(closers)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	category, err := h.service.Create(c.Request.Context(), appcatalog.CreateCategoryRequest(form))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, category)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid category id")
		return
	}

	form, closers, err := h.bindCategoryForm(c)
	defer runClosers(closers)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	category, err := h.service.Update(c.Request.Context(), id, appcatalog.UpdateCategoryRequest(form))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, category)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid category id")
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

type categoryForm struct {
	Name        string
	Slug        string
	Description string
	ParentID    *uuid.UUID
	Image       *media.File
}

func (h *CategoryHandler) bindCategoryForm(c *gin.Context) (categoryForm, []func() error, error) {
	var form categoryForm
	var closers []func() error

	form.Name = c.PostForm("name")
	form.Slug = c.PostForm("slug")
	form.Description = c.PostForm("description")

	if raw := c.PostForm("parent_category"); raw != "" && raw != "null" {
		id, err := uuid.Parse(raw)
		if err == nil {
			form.ParentID = &id
		}
	}

	if header, err := c.FormFile("image"); err == nil {
		file, closeFn, err := formFile(header)
		if err != nil {
			return form, closers, err
		}
		closers = append(closers, closeFn)
		form.Image = file
	}

	return form, closers, nil
}
