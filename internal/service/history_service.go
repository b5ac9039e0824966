package service

import (
	"context"
	"time"

	"inventario/internal/apierror"
	"inventario/internal/dto"
	"inventario/internal/model"
	"inventario/internal/repository"
)

// TransactionHistoryService appends and reads audit rows. There is
// deliberately no update or delete operation.
type TransactionHistoryService interface {
	List(ctx context.Context) ([]dto.TransactionHistoryResponse, error)
	Get(ctx context.Context, id uint) (*dto.TransactionHistoryResponse, error)
	Create(ctx context.Context, req dto.CreateTransactionHistoryRequest) (*dto.TransactionHistoryResponse, error)
}

type historyService struct {
	repo repository.TransactionHistoryRepository
}

func NewTransactionHistoryService(repo repository.TransactionHistoryRepository) TransactionHistoryService {
	return &historyService{repo: repo}
}

func (s *historyService) List(ctx context.Context) ([]dto.TransactionHistoryResponse, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.FromDB(err, "")
	}
	result := make([]dto.TransactionHistoryResponse, 0, len(rows))
	for i := range rows {
		result = append(result, toHistoryResponse(&rows[i]))
	}
	return result, nil
}

func (s *historyService) Get(ctx context.Context, id uint) (*dto.TransactionHistoryResponse, error) {
	h, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.FromDB(err, "Transaction history entry not found")
	}
	resp := toHistoryResponse(h)
	return &resp, nil
}

func (s *historyService) Create(ctx context.Context, req dto.CreateTransactionHistoryRequest) (*dto.TransactionHistoryResponse, error) {
	h := &model.TransactionHistory{
		TransactionType: req.TransactionType,
		TransactionID:   req.TransactionID,
		EntityTable:     req.EntityTable,
		UserID:          req.UserID,
		Details:         req.Details,
		TransactionDate: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, h); err != nil {
		return nil, apierror.FromDB(err, "")
	}
	resp := toHistoryResponse(h)
	return &resp, nil
}

func toHistoryResponse(h *model.TransactionHistory) dto.TransactionHistoryResponse {
	return dto.TransactionHistoryResponse{
		ID:              h.ID,
		TransactionType: h.TransactionType,
		TransactionID:   h.TransactionID,
		EntityTable:     h.EntityTable,
		UserID:          h.UserID,
		Details:         h.Details,
		TransactionDate: isoTime(h.TransactionDate),
	}
}
