package service

import (
	"context"

	"github.com/alimikegami/seller-dashboard/internal/domain"
	"github.com/alimikegami/seller-dashboard/internal/dto"
	"github.com/alimikegami/seller-dashboard/internal/identity"
	"github.com/alimikegami/seller-dashboard/internal/repository"
	"github.com/alimikegami/seller-dashboard/pkg/errs"
)

const recentOrdersLimit = 10

type OrderServiceImpl struct {
	repo repository.OrderRepository
}

func CreateOrderService(repo repository.OrderRepository) OrderService {
	return &OrderServiceImpl{repo: repo}
}

func (s *OrderServiceImpl) GetOrders(ctx context.Context, caller identity.Identity) (res []dto.OrderResponse, err error) {
	orders, err := s.repo.GetOrdersBySeller(ctx, caller.SellerID, recentOrdersLimit)
	if err != nil {
		return nil, err
	}

	res = make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		res = append(res, newOrderResponse(o))
	}

	return res, nil
}

// GetOrder only exposes the caller's own line items. Orders without any of
// them are indistinguishable from orders that do not exist.
func (s *OrderServiceImpl) GetOrder(ctx context.Context, caller identity.Identity, orderID int64) (res dto.OrderDetailResponse, err error) {
	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return res, err
	}

	if order.ID == 0 {
		return res, errs.ErrUnauthorized
	}

	items, err := s.repo.GetOrderItemsForSeller(ctx, orderID, caller.SellerID)
	if err != nil {
		return res, err
	}

	if len(items) == 0 {
		return res, errs.ErrUnauthorized
	}

	res.OrderResponse = newOrderResponse(order)
	res.CustomerName = order.CustomerName
	res.Items = make([]dto.OrderItemResponse, 0, len(items))
	for _, item := range items {
		res.Items = append(res.Items, dto.OrderItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return res, nil
}

func newOrderResponse(o domain.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:          o.ID,
		OrderDate:   o.OrderDate,
		OrderStatus: o.OrderStatus,
		TotalAmount: o.TotalAmount,
	}
}
