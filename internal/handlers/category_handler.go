package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-api/internal/dto"
	"github.com/BruksfildServices01/salon-api/internal/httperr"
	"github.com/BruksfildServices01/salon-api/internal/httpresp"
	ucCatalog "github.com/BruksfildServices01/salon-api/internal/usecase/catalog"
)

type CategoryHandler struct {
	categories *ucCatalog.Categories
}

func NewCategoryHandler(categories *ucCatalog.Categories) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

func (h *CategoryHandler) List(c *gin.Context) {
	list, err := h.categories.List(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, dto.NewCategoryDTOs(list))
}

func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	cat, found, err := h.categories.Get(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	if !found {
		httperr.NotFound(c, "service_category_not_found", "Categoria não encontrada.")
		return
	}

	httpresp.OK(c, dto.NewCategoryDTO(cat))
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	cat, err := h.categories.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, dto.NewCategoryDTO(cat))
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.CategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	cat, err := h.categories.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.NewCategoryDTO(cat))
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.categories.Delete(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.NoContent(c)
}
