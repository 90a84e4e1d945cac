package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appcatalog "github.com/bhslighting/backend/internal/application/catalog"
	"github.com/bhslighting/backend/internal/application/media"
)

// ProductHandler exposes the product CRUD endpoints.
type ProductHandler struct {
	BaseHandler
	service *appcatalog.ProductService
}

func NewProductHandler(service *appcatalog.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.GET("", h.List)
		products.POST("", h.Create)
		products.GET("/slug/:slug", h.GetBySlug)
		products.GET("/:id", h.GetByID)
		products.PUT("/:id", h.Update)
		products.DELETE("/:id", h.Delete)
	}
}

func (h *ProductHandler) List(c *gin.Context) {
	filter, err := parseListRequest(c)
	if err != nil {
		h.BadRequest(c, "invalid list parameters")
		return
	}
	filters := map[string]interface{}{}
	if categoryID := c.Query("category"); categoryID != "" {
		if _, err := uuid.Parse(categoryID); err != nil {
			h.BadRequest(c, "category must be an id")
			return
		}
		filters["category_id"] = categoryID
	}
	if c.Query("in_stock") == "true" {
		filters["min_quantity"] = 1
	}
	if len(filters) > 0 {
		filter.Filters = filters
	}

	products, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, products, total, filter.Page, filter.PageSize)
}

func (h *ProductHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid product id")
		return
	}
	product, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, product)
}

func (h *ProductHandler) GetBySlug(c *gin.Context) {
	product, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, product)
}

func (h *ProductHandler) Create(c *gin.Context) {
	input, images, seoImages, closers, err := h.bindProductForm(c)
	defer runClosers(closers)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	product, err := h.service.Create(c.Request.Context(), appcatalog.CreateProductRequest{
		ProductInput: input,
		Images:       images,
		SEOImages:    seoImages,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid product id")
		return
	}

	input, images, seoImages, closers, err := h.bindProductForm(c)
	defer runClosers(closers)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	product, err := h.service.Update(c.Request.Context(), id, appcatalog.UpdateProductRequest{
		ProductInput: input,
		Images:       images,
		SEOImages:    seoImages,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid product id")
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *ProductHandler) bindProductForm(c *gin.Context) (appcatalog.ProductInput, []media.File, []media.File, []func() error, error) {
	var closers []func() error

	form := appcatalog.ProductForm{
		Name:             c.PostForm("name"),
		Slug:             c.PostForm("slug"),
		ShortDescription: c.PostForm("shortDescription"),
		Content:          c.PostForm("content"),
		SKU:              c.PostForm("sku"),
		Sizes:            c.PostForm("sizes"),
		Price:            c.PostForm("price"),
		DiscountPrice:    c.PostForm("discountPrice"),
		Tax:              c.PostForm("tax"),
		Stock:            c.PostForm("stock"),
		Weight:           c.PostForm("weight"),
		Dimensions:       c.PostForm("dimensions"),
		Material:         c.PostForm("material"),
		Variants:         c.PostForm("variants"),
		Tags:             c.PostForm("tags"),
		Category:         c.PostFormArray("category"),
		RelatedProducts:  c.PostFormArray("relatedProducts"),
		MetaSlug:         c.PostForm("metaSlug"),
		MetaTitle:        c.PostForm("metaTitle"),
		MetaDescription:  c.PostForm("metaDescription"),
		IsPublished:      c.PostForm("isPublished"),
	}

	input, err := appcatalog.NormalizeProductForm(form)
	if err != nil {
		return input, nil, nil, closers, err
	}

	var images, seoImages []media.File
	if mpForm, err := c.MultipartForm(); err == nil {
		for _, header := range mpForm.File["images"] {
			file, closeFn, err := formFile(header)
			if err != nil {
				return input, nil, nil, closers, err
			}
			closers = append(closers, closeFn)
			images = append(images, *file)
		}
		for _, header := range mpForm.File["seoImages"] {
			file, closeFn, err := formFile(header)
			if err != nil {
				return input, nil, nil, closers, err
			}
			closers = append(closers, closeFn)
			seoImages = append(seoImages, *file)
		}
	}

	return input, images, seoImages, closers, nil
}
