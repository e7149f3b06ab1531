package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-api/internal/dto"
	"github.com/BruksfildServices01/salon-api/internal/httperr"
	"github.com/BruksfildServices01/salon-api/internal/httpresp"
	ucCatalog "github.com/BruksfildServices01/salon-api/internal/usecase/catalog"
)

type ServiceHandler struct {
	services *ucCatalog.Services
}

func NewServiceHandler(services *ucCatalog.Services) *ServiceHandler {
	return &ServiceHandler{services: services}
}

// ======================================================
// QUERIES
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	list, err := h.services.List(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, dto.NewServiceDTOs(list))
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	s, found, err := h.services.Get(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	if !found {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	httpresp.OK(c, dto.NewServiceDTO(s))
}

func (h *ServiceHandler) ByCategory(c *gin.Context) {
	categoryID, ok := pathID(c, "categoryId")
	if !ok {
		return
	}

	list, err := h.services.ByCategory(c.Request.Context(), categoryID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, dto.NewServiceDTOs(list))
}

func (h *ServiceHandler) Promotions(c *gin.Context) {
	list, err := h.services.ActivePromotions(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, dto.NewServiceDTOs(list))
}

func (h *ServiceHandler) Search(c *gin.Context) {
	list, err := h.services.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, dto.NewServiceDTOs(list))
}

func (h *ServiceHandler) PriceRange(c *gin.Context) {
	minPrice, ok := queryDecimal(c, "min")
	if !ok {
		return
	}
	maxPrice, ok := queryDecimal(c, "max")
	if !ok {
		return
	}

	list, err := h.services.PriceRange(c.Request.Context(), minPrice, maxPrice)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, dto.NewServiceDTOs(list))
}

// ======================================================
// COMMANDS
// ======================================================

func (h *ServiceHandler) Create(c *gin.Context) {
	var req dto.ServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.services.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, dto.NewServiceDTO(s))
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.ServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.services.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.NewServiceDTO(s))
}

// Delete responde 204 tanto na remoção quanto na desativação.
func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if _, err := h.services.Delete(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.NoContent(c)
}

func (h *ServiceHandler) SetPromotionalPrice(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.PromotionalPriceRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.services.SetPromotionalPrice(c.Request.Context(), id, req.PromotionalPrice)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.NewServiceDTO(s))
}

func (h *ServiceHandler) Activate(c *gin.Context) {
	h.toggle(c, h.services.Activate)
}

func (h *ServiceHandler) Deactivate(c *gin.Context) {
	h.toggle(c, h.services.Deactivate)
}

func (h *ServiceHandler) toggle(c *gin.Context, fn func(ctx context.Context, id uint) error) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := fn(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.NoContent(c)
}
