package http

import (
	"net/http"

	"github.com/sanket-kogekar/uniblox-server/internal/domain"
	"github.com/sanket-kogekar/uniblox-server/internal/service"
)

type AdminHandler struct {
	discounts *service.DiscountService
	admin     *service.AdminService
}

func NewAdminHandler(discounts *service.DiscountService, admin *service.AdminService) *AdminHandler {
	return &AdminHandler{
		discounts: discounts,
		admin:     admin,
	}
}

type DiscountCodeResponseDTO struct {
	Message      string               `json:"message"`
	DiscountCode *domain.DiscountCode `json:"discount_code"`
}

type DiscountCodeListDTO struct {
	DiscountCodes []*domain.DiscountCode `json:"discount_codes"`
	TotalCount    int                    `json:"total_count"`
}

func (h *AdminHandler) GenerateDiscountCode(w http.ResponseWriter, r *http.Request) {
	code, err := h.discounts.GenerateCode()
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, DiscountCodeResponseDTO{
		Message:      "Discount code generated successfully",
		DiscountCode: code,
	})
}

func (h *AdminHandler) ListDiscountCodes(w http.ResponseWriter, r *http.Request) {
	codes := h.discounts.ListCodes()
	respondJSON(w, http.StatusOK, DiscountCodeListDTO{
		DiscountCodes: codes,
		TotalCount:    len(codes),
	})
}

func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.admin.Stats())
}

func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.admin.OrderSummaries())
}
