package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-api/internal/dto"
	"github.com/BruksfildServices01/salon-api/internal/httperr"
	"github.com/BruksfildServices01/salon-api/internal/httpresp"
	ucCustomer "github.com/BruksfildServices01/salon-api/internal/usecase/customer"
	ucLoyalty "github.com/BruksfildServices01/salon-api/internal/usecase/loyalty"
)

type CustomerHandler struct {
	list   *ucCustomer.ListCustomers
	get    *ucCustomer.GetCustomer
	create *ucCustomer.CreateCustomer
	update *ucCustomer.UpdateCustomer
	delete *ucCustomer.DeleteCustomer
	ledger *ucLoyalty.Ledger
}

type CustomerUseCases struct {
	List   *ucCustomer.ListCustomers
	Get    *ucCustomer.GetCustomer
	Create *ucCustomer.CreateCustomer
	Update *ucCustomer.UpdateCustomer
	Delete *ucCustomer.DeleteCustomer
}

func NewCustomerHandler(uc CustomerUseCases, ledger *ucLoyalty.Ledger) *CustomerHandler {
	return &CustomerHandler{
		list:   uc.List,
		get:    uc.Get,
		create: uc.Create,
		update: uc.Update,
		delete: uc.Delete,
		ledger: ledger,
	}
}

// ======================================================
// CRUD
// ======================================================

func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, dto.NewCustomerDTOs(customers, h.ledger.Config()))
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	customer, found, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	if !found {
		httperr.NotFound(c, "customer_not_found", "Cliente não encontrado.")
		return
	}

	httpresp.OK(c, dto.NewCustomerDTO(customer, h.ledger.Config()))
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CustomerRequest
	if !bindJSON(c, &req) {
		return
	}

	customer, err := h.create.Execute(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, dto.NewCustomerDTO(customer, h.ledger.Config()))
}

// Update ignora loyalty_points do payload.
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.CustomerRequest
	if !bindJSON(c, &req) {
		return
	}

	customer, err := h.update.Execute(c.Request.Context(), id, req.ToInput())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.NewCustomerDTO(customer, h.ledger.Config()))
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.NoContent(c)
}

// ======================================================
// LOYALTY
// ======================================================

func (h *CustomerHandler) AddVisit(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	balance, err := h.ledger.AddPointsForVisit(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.LoyaltyBalanceDTO{CustomerID: id, LoyaltyPoints: balance})
}

func (h *CustomerHandler) AddReferral(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	balance, err := h.ledger.AddPointsForReferral(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.LoyaltyBalanceDTO{CustomerID: id, LoyaltyPoints: balance})
}

func (h *CustomerHandler) Discount(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	discount, err := h.ledger.GetAvailableDiscount(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.LoyaltyDiscountDTO{CustomerID: id, AvailableDiscount: dto.NewMoney(discount)})
}

func (h *CustomerHandler) SpendPoints(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.SpendPointsRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.ledger.SpendPoints(c.Request.Context(), id, req.PointsToUse)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.SpendPointsDTO{
		CustomerID:      id,
		RemainingPoints: res.RemainingPoints,
		DiscountAmount:  dto.NewMoney(res.DiscountAmount),
	})
}
