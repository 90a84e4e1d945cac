package handler

import (
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appcms "github.com/bhslighting/backend/internal/application/cms"
	"github.com/bhslighting/backend/internal/application/media"
	"github.com/bhslighting/backend/internal/domain/cms"
	"github.com/bhslighting/backend/internal/domain/shared"
)

// ArticleHandler exposes the article CRUD endpoints.
type ArticleHandler struct {
	BaseHandler
	service *appcms.ArticleService
}

func NewArticleHandler(service *appcms.ArticleService) *ArticleHandler {
	return &ArticleHandler{service: service}
}

func (h *ArticleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	articles := rg.Group("/articles")
	{
		articles.GET("", h.List)
		articles.POST("", h.Create)
		articles.GET("/slug/:slug", h.GetBySlug)
		articles.GET("/:id", h.GetByID)
		articles.PUT("/:id", h.Update)
		articles.DELETE("/:id", h.Delete)
	}
}

func (h *ArticleHandler) List(c *gin.Context) {
	filter, err := parseListRequest(c)
	if err != nil {
		h.BadRequest(c, "invalid list parameters")
		return
	}
	if published := c.Query("published"); published != "" {
		val, err := strconv.ParseBool(published)
		if err != nil {
			h.BadRequest(c, "published must be a boolean")
			return
		}
		filter.Filters = map[string]interface{}{"published": val}
	}

	articles, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, articles, total, filter.Page, filter.PageSize)
}

func (h *ArticleHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid article id")
		return
	}
	article, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, article)
}

func (h *ArticleHandler) GetBySlug(c *gin.Context) {
	article, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, article)
}

func (h *ArticleHandler) Create(c *gin.Context) {
	req, closers, err := h.bindArticleForm(c)
	defer runClosers(closers)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	article, err := h.service.Create(c.Request.Context(), appcms.CreateArticleRequest(req))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, article)
}

func (h *ArticleHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid article id")
		return
	}

	req, closers, err := h.bindArticleForm(c)
	defer runClosers(closers)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	article, err := h.service.Update(c.Request.Context(), id, appcms.UpdateArticleRequest(req))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, article)
}

func (h *ArticleHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid article id")
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// articleForm is the decoded multipart shape shared by create and update.
type articleForm struct {
	Title     string
	Slug      string
	Published bool
	Blocks    []cms.Block
	MainImage *media.File
	Images    []media.File
}

func (h *ArticleHandler) bindArticleForm(c *gin.Context) (articleForm, []func() error, error) {
	var form articleForm
	var closers []func() error

	form.Title = c.PostForm("title")
	form.Slug = c.PostForm("slug")
	form.Published, _ = strconv.ParseBool(c.PostForm("published"))

	if raw := c.PostForm("blocks"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &form.Blocks); err != nil {
			return form, closers, shared.NewDomainError("INVALID_BLOCK", "Field blocks is not valid JSON")
		}
	}

	if header, err := c.FormFile("mainImage"); err == nil {
		file, closeFn, err := formFile(header)
		if err != nil {
			return form, closers, err
		}
		closers = append(closers, closeFn)
		form.MainImage = file
	}

	if mpForm, err := c.MultipartForm(); err == nil {
		for _, header := range mpForm.File["images"] {
			file, closeFn, err := formFile(header)
			if err != nil {
				return form, closers, err
			}
			closers = append(closers, closeFn)
			form.Images = append(form.Images, *file)
		}
	}

	return form, closers, nil
}

func runClosers(closers []func() error) {
	for _, closeFn := range closers {
		_ = closeFn()
	}
}
