package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apppartner "github.com/bhslighting/backend/internal/application/partner"
)

// PartnerHandler exposes the partner endpoints. The public route name
// stays French to match the storefront.
type PartnerHandler struct {
	BaseHandler
	service *apppartner.PartnerService
}

func NewPartnerHandler(service *apppartner.PartnerService) *PartnerHandler {
	return &PartnerHandler{service: service}
}

func (h *PartnerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	partners := rg.Group("/partenaires")
	{
		partners.GET("", h.List)
		partners.POST("", h.Create)
		partners.GET("/:id", h.GetByID)
		partners.PUT("/:id", h.Update)
		partners.DELETE("/:id", h.Delete)
	}
}

func (h *PartnerHandler) List(c *gin.Context) {
	filter, err := parseListRequest(c)
	if err != nil {
		h.BadRequest(c, "invalid list parameters")
		return
	}
	partners, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, partners, total, filter.Page, filter.PageSize)
}

func (h *PartnerHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid partner id")
		return
	}
	partner, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, partner)
}

func (h *PartnerHandler) Create(c *gin.Context) {
	req := apppartner.CreatePartnerRequest{Name: c.PostForm("name")}

	var closers []func() error
	defer func() { runClosers(closers) }()
	if header, err := c.FormFile("image"); err == nil {
		file, closeFn, err := formFile(header)
		if err != nil {
			h.InternalError(c, "could not read uploaded image")
			return
		}
		closers = append(closers, closeFn)
		req.Image = file
	}

	partner, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, partner)
}

func (h *PartnerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid partner id")
		return
	}

	req := apppartner.UpdatePartnerRequest{Name: c.PostForm("name")}

	var closers []func() error
	defer func() { runClosers(closers) }()
	if header, err := c.FormFile("image"); err == nil {
		file, closeFn, err := formFile(header)
		if err != nil {
			h.InternalError(c, "could not read uploaded image")
			return
		}
		closers = append(closers, closeFn)
		req.Image = file
	}

	partner, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, partner)
}

func (h *PartnerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid partner id")
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
