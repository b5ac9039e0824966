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

// PurchaseOrderService follows the same atomic header+items contract as
// sales orders. Earlier revisions of this system created purchase-order
// headers without persisting their items; that asymmetry is gone — both
// workflows share identical transaction guarantees.
type PurchaseOrderService interface {
	List(ctx context.Context) ([]dto.PurchaseOrderResponse, error)
	Get(ctx context.Context, id uint) (*dto.PurchaseOrderResponse, error)
	Create(ctx context.Context, req dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error)
	Delete(ctx context.Context, id uint) error
}

type purchaseOrderService struct {
	repo repository.PurchaseOrderRepository
}

func NewPurchaseOrderService(repo repository.PurchaseOrderRepository) PurchaseOrderService {
	return &purchaseOrderService{repo: repo}
}

func (s *purchaseOrderService) List(ctx context.Context) ([]dto.PurchaseOrderResponse, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.FromDB(err, "")
	}
	result := make([]dto.PurchaseOrderResponse, 0, len(orders))
	for i := range orders {
		result = append(result, toPurchaseOrderResponse(&orders[i]))
	}
	return result, nil
}

func (s *purchaseOrderService) Get(ctx context.Context, id uint) (*dto.PurchaseOrderResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.FromDB(err, "Purchase order not found")
	}
	resp := toPurchaseOrderResponse(o)
	return &resp, nil
}

func validatePurchaseItems(items []dto.PurchaseOrderItemRequest) *apierror.Error {
	if len(items) == 0 {
		return apierror.Validation("A purchase order must have at least one item",
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
		if !item.UnitCostAtPurchase.IsPositive() {
			fields = append(fields, apierror.FieldError{
				Path:    fmt.Sprintf("items.%d.unitCostAtPurchase", i),
				Message: "must be a positive number",
			})
		}
	}
	if len(fields) > 0 {
		return apierror.Validation("Validation error", fields...)
	}
	return nil
}

func parseDeliveryDate(raw *string) (*time.Time, *apierror.Error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, *raw); err == nil {
			return &t, nil
		}
	}
	return nil, apierror.Validation("Invalid expected delivery date",
		apierror.FieldError{Path: "expectedDeliveryDate", Message: "must be an ISO date"})
}

func (s *purchaseOrderService) Create(ctx context.Context, req dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if err := validatePurchaseItems(req.Items); err != nil {
		return nil, err
	}
	delivery, verr := parseDeliveryDate(req.ExpectedDeliveryDate)
	if verr != nil {
		return nil, verr
	}

	total := decimal.Zero
	for _, item := range req.Items {
		total = total.Add(item.UnitCostAtPurchase.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	status := req.Status
	if status == "" {
		status = model.OrderStatusPending
	}

	order := &model.PurchaseOrder{
		SupplierID:           req.SupplierID,
		OrderDate:            time.Now().UTC(),
		ExpectedDeliveryDate: delivery,
		TotalAmount:          total,
		Status:               status,
		SedeID:               req.SedeID,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(ctx, tx, order); err != nil {
			return err
		}
		for _, item := range req.Items {
			if err := s.repo.CreateItemTx(ctx, tx, &model.PurchaseOrderItem{
				OrderID:            order.ID,
				ProductID:          item.ProductID,
				Quantity:           item.Quantity,
				UnitCostAtPurchase: item.UnitCostAtPurchase,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, apierror.FromDB(txErr, "")
	}

	resp := toPurchaseOrderResponse(order)
	resp.Items = nil
	return &resp, nil
}

func (s *purchaseOrderService) Update(ctx context.Context, id uint, req dto.UpdatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	fields := map[string]interface{}{}
	if req.SupplierID != nil {
		fields["supplier_id"] = *req.SupplierID
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.SedeID != nil {
		fields["sede_id"] = *req.SedeID
	}
	if req.ExpectedDeliveryDate != nil {
		delivery, verr := parseDeliveryDate(req.ExpectedDeliveryDate)
		if verr != nil {
			return nil, verr
		}
		fields["expected_delivery_date"] = delivery
	}
	if len(fields) == 0 {
		return nil, apierror.Validation("No fields to update")
	}

	rows, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, apierror.FromDB(err, "")
	}
	if rows == 0 {
		return nil, apierror.NotFound("Purchase order not found for update")
	}
	return s.Get(ctx, id)
}

func (s *purchaseOrderService) Delete(ctx context.Context, id uint) error {
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
		return apierror.NotFound("Purchase order not found for deletion")
	}
	return nil
}

func toPurchaseOrderResponse(o *model.PurchaseOrder) dto.PurchaseOrderResponse {
	items := make([]dto.PurchaseOrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, dto.PurchaseOrderItemResponse{
			ID:                 item.ID,
			OrderID:            item.OrderID,
			ProductID:          item.ProductID,
			Quantity:           item.Quantity,
			UnitCostAtPurchase: item.UnitCostAtPurchase,
		})
	}
	return dto.PurchaseOrderResponse{
		ID:                   o.ID,
		SupplierID:           o.SupplierID,
		OrderDate:            isoTime(o.OrderDate),
		ExpectedDeliveryDate: isoTimePtr(o.ExpectedDeliveryDate),
		TotalAmount:          o.TotalAmount,
		Status:               o.Status,
		SedeID:               o.SedeID,
		Items:                items,
		CreatedAt:            isoTime(o.CreatedAt),
		UpdatedAt:            isoTime(o.UpdatedAt),
	}
}
