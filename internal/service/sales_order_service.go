package service

import (
	"context"
	"fmt"
	"time"

	"inventario/internal/apierror"
	"inventario/internal/dto"
	"inventario/internal/model"
	"inventario/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SalesOrderService owns the one genuinely transactional workflow in the
// system: an order header and its line items commit or roll back as a unit.
// An order is never observable with zero items once items were supplied.
type SalesOrderService interface {
	List(ctx context.Context) ([]dto.SalesOrderResponse, error)
	Get(ctx context.Context, id uint) (*dto.SalesOrderResponse, error)
	Create(ctx context.Context, req dto.CreateSalesOrderRequest) (*dto.SalesOrderResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateSalesOrderRequest) (*dto.SalesOrderResponse, error)
	Delete(ctx context.Context, id uint) error
}

type salesOrderService struct {
	repo repository.SalesOrderRepository
}

func NewSalesOrderService(repo repository.SalesOrderRepository) SalesOrderService {
	return &salesOrderService{repo: repo}
}

func (s *salesOrderService) List(ctx context.Context) ([]dto.SalesOrderResponse, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.FromDB(err, "")
	}
	result := make([]dto.SalesOrderResponse, 0, len(orders))
	for i := range orders {
		result = append(result, toSalesOrderResponse(&orders[i]))
	}
	return result, nil
}

func (s *salesOrderService) Get(ctx context.Context, id uint) (*dto.SalesOrderResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.FromDB(err, "Sales order not found")
	}
	resp := toSalesOrderResponse(o)
	return &resp, nil
}

// validateSalesItems enforces the business invariants independent of request
// binding: a non-empty item list, positive quantities and positive prices.
// Runs before any persistence attempt.
func validateSalesItems(items []dto.SalesOrderItemRequest) *apierror.Error {
	if len(items) == 0 {
		return apierror.Validation("A sales order must have at least one item",
			apierror.FieldError{Path: "items", Message: "must contain at least 1 item"})
	}
	var fields []apierror.FieldError
	for i, item := range items {
		if item.Quantity <= 0 {
			fields = append(fields, apierror.FieldError{
				Path:    fmt.Sprintf("items.%d.quantity", i),
				Message: "must be a positive integer",
			})
		}
		if !item.UnitPriceAtSale.IsPositive() {
			fields = append(fields, apierror.FieldError{
				Path:    fmt.Sprintf("items.%d.unitPriceAtSale", i),
				Message: "must be a positive number",
			})
		}
	}
	if len(fields) > 0 {
		return apierror.Validation("Validation error", fields...)
	}
	return nil
}

func (s *salesOrderService) Create(ctx context.Context, req dto.CreateSalesOrderRequest) (*dto.SalesOrderResponse, error) {
	if err := validateSalesItems(req.Items); err != nil {
		return nil, err
	}

	// Server-computed total: any caller-supplied figure is ignored.
	total := decimal.Zero
	for _, item := range req.Items {
		total = total.Add(item.UnitPriceAtSale.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	status := req.Status
	if status == "" {
		status = model.OrderStatusPending
	}

	order := &model.SalesOrder{
		CustomerID:  req.CustomerID,
		OrderDate:   time.Now().UTC(),
		TotalAmount: total,
		Status:      status,
		SedeID:      req.SedeID,
	}

	// Header and items as one atomic unit: a failure inserting any item
	// leaves no header row behind.
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(ctx, tx, order); err != nil {
			return err
		}
		for _, item := range req.Items {
			if err := s.repo.CreateItemTx(ctx, tx, &model.SalesOrderItem{
				OrderID:         order.ID,
				ProductID:       item.ProductID,
				Quantity:        item.Quantity,
				UnitPriceAtSale: item.UnitPriceAtSale,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, apierror.FromDB(txErr, "")
	}

	// Items are not returned inline by creation; callers re-fetch when they
	// need them attached.
	resp := toSalesOrderResponse(order)
	resp.Items = nil
	return &resp, nil
}

func (s *salesOrderService) Update(ctx context.Context, id uint, req dto.UpdateSalesOrderRequest) (*dto.SalesOrderResponse, error) {
	fields := map[string]interface{}{}
	if req.CustomerID != nil {
		fields["customer_id"] = *req.CustomerID
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.SedeID != nil {
		fields["sede_id"] = *req.SedeID
	}
	if len(fields) == 0 {
		return nil, apierror.Validation("No fields to update")
	}

	rows, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, apierror.FromDB(err, "")
	}
	if rows == 0 {
		return nil, apierror.NotFound("Sales order not found for update")
	}
	return s.Get(ctx, id)
}

// Delete removes the line items and then the header as one atomic unit.
func (s *salesOrderService) Delete(ctx context.Context, id uint) error {
	var deleted int64
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.DeleteItemsTx(ctx, tx, id); err != nil {
			return err
		}
		n, err := s.repo.DeleteTx(ctx, tx, id)
		if err != nil {
			return err
		}
		deleted = n
		return nil
	})
	if txErr != nil {
		return apierror.FromDB(txErr, "")
	}
	if deleted == 0 {
		return apierror.NotFound("Sales order not found for deletion")
	}
	return nil
}

func toSalesOrderResponse(o *model.SalesOrder) dto.SalesOrderResponse {
	items := make([]dto.SalesOrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, dto.SalesOrderItemResponse{
			ID:              item.ID,
			OrderID:         item.OrderID,
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
			UnitPriceAtSale: item.UnitPriceAtSale,
		})
	}
	return dto.SalesOrderResponse{
		ID:          o.ID,
		CustomerID:  o.CustomerID,
		OrderDate:   isoTime(o.OrderDate),
		TotalAmount: o.TotalAmount,
		Status:      o.Status,
		SedeID:      o.SedeID,
		Items:       items,
		CreatedAt:   isoTime(o.CreatedAt),
		UpdatedAt:   isoTime(o.UpdatedAt),
	}
}
