package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sanket-kogekar/uniblox-server/internal/store"
)

// Stats is the point-in-time aggregate exposed to admin callers.
type Stats struct {
	Orders    OrderStats    `json:"orders"`
	Discounts DiscountStats `json:"discounts"`
	Revenue   RevenueStats  `json:"revenue"`
}

type OrderStats struct {
	TotalOrders         int             `json:"total_orders"`
	TotalItemsPurchased int             `json:"total_items_purchased"`
	TotalPurchaseAmount decimal.Decimal `json:"total_purchase_amount"`
	AverageOrderValue   decimal.Decimal `json:"average_order_value"`
}

type DiscountStats struct {
	TotalCodes          int             `json:"total_discount_codes"`
	UsedCodes           int             `json:"used_discount_codes"`
	AvailableCodes      int             `json:"available_discount_codes"`
	TotalDiscountAmount decimal.Decimal `json:"total_discount_amount"`
}

type RevenueStats struct {
	GrossRevenue      decimal.Decimal `json:"gross_revenue"`
	NetRevenue        decimal.Decimal `json:"net_revenue"`
	TotalSavingsGiven decimal.Decimal `json:"total_savings_given"`
}

// OrderSummary is the condensed per-order line in the admin order report.
type OrderSummary struct {
	OrderID         string          `json:"order_id"`
	UserID          string          `json:"user_id"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	DiscountApplied bool            `json:"discount_applied"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	CreatedAt       time.Time       `json:"created_at"`
}

// AdminService reads the ledger and the code registry for reporting.
type AdminService struct {
	orders store.Orders
	codes  store.DiscountCodes
}

func NewAdminService(orders store.Orders, codes store.DiscountCodes) *AdminService {
	return &AdminService{orders: orders, codes: codes}
}

func (s *AdminService) Stats() Stats {
	totals := s.orders.Totals()
	codes := s.codes.ListAll()

	used := 0
	for _, code := range codes {
		if code.IsUsed {
			used++
		}
	}

	average := decimal.Zero
	if totals.TotalOrders > 0 {
		average = totals.NetRevenue.Div(decimal.NewFromInt(int64(totals.TotalOrders))).Round(2)
	}

	return Stats{
		Orders: OrderStats{
			TotalOrders:         totals.TotalOrders,
			TotalItemsPurchased: totals.TotalItems,
			TotalPurchaseAmount: totals.NetRevenue,
			AverageOrderValue:   average,
		},
		Discounts: DiscountStats{
			TotalCodes:          len(codes),
			UsedCodes:           used,
			AvailableCodes:      s.codes.CountValid(),
			TotalDiscountAmount: totals.TotalDiscount,
		},
		Revenue: RevenueStats{
			GrossRevenue:      totals.NetRevenue.Add(totals.TotalDiscount),
			NetRevenue:        totals.NetRevenue,
			TotalSavingsGiven: totals.TotalDiscount,
		},
	}
}

func (s *AdminService) OrderSummaries() []OrderSummary {
	orders := s.orders.List()

	out := make([]OrderSummary, 0, len(orders))
	for _, order := range orders {
		out = append(out, OrderSummary{
			OrderID:         order.OrderID,
			UserID:          order.UserID,
			TotalAmount:     order.TotalAmount,
			DiscountApplied: order.DiscountCode != "",
			DiscountAmount:  order.DiscountAmount,
			CreatedAt:       order.CreatedAt,
		})
	}
	return out
}
