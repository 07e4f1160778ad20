package extra

import (
	"context"
	"fmt"

	"github.com/agrilabs/wms-backend-go/internal/domain/attendance"
	"github.com/agrilabs/wms-backend-go/internal/domain/extra"
	"github.com/agrilabs/wms-backend-go/internal/domain/settlement"
	"github.com/agrilabs/wms-backend-go/internal/domain/worker"
	"github.com/agrilabs/wms-backend-go/internal/pkg/validator"
)

type ExtraServiceImpl struct {
	extraRepo  extra.ExtraRepository
	workerRepo worker.WorkerRepository
	periodLock settlement.PeriodLock
}

func NewExtraService(
	extraRepo extra.ExtraRepository,
	workerRepo worker.WorkerRepository,
	periodLock settlement.PeriodLock,
) extra.ExtraService {
	return &ExtraServiceImpl{
		extraRepo:  extraRepo,
		workerRepo: workerRepo,
		periodLock: periodLock,
	}
}

func (s *ExtraServiceImpl) Create(ctx context.Context, farmerID string, req extra.CreateExtraRequest) (extra.ExtraResponse, error) {
	if err := req.Validate(); err != nil {
		return extra.ExtraResponse{}, err
	}

	if err := s.checkOwnership(ctx, farmerID, req.WorkerID); err != nil {
		return extra.ExtraResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	if err := s.periodLock.EnsureUnlocked(ctx, req.WorkerID, date); err != nil {
		return extra.ExtraResponse{}, err
	}

	created, err := s.extraRepo.Create(ctx, extra.Extra{
		WorkerID: req.WorkerID,
		Date:     date,
		Item:     req.Item,
		Amount:   req.Amount,
		Note:     req.Note,
	})
	if err != nil {
		return extra.ExtraResponse{}, fmt.Errorf("failed to create extra: %w", err)
	}

	return extra.ToResponse(created), nil
}

func (s *ExtraServiceImpl) ListByWorker(ctx context.Context, farmerID, workerID string) ([]extra.ExtraResponse, error) {
	if err := s.checkOwnership(ctx, farmerID, workerID); err != nil {
		return nil, err
	}

	records, err := s.extraRepo.ListByWorker(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list extras: %w", err)
	}

	responses := make([]extra.ExtraResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, extra.ToResponse(r))
	}
	return responses, nil
}

func (s *ExtraServiceImpl) ListByRange(ctx context.Context, farmerID, startDate, endDate string) ([]extra.ExtraResponse, error) {
	rangeReq := attendance.RangeRequest{StartDate: startDate, EndDate: endDate}
	if err := rangeReq.Validate(); err != nil {
		return nil, err
	}

	start, _ := validator.IsValidDate(startDate)
	end, _ := validator.IsValidDate(endDate)

	records, err := s.extraRepo.ListByFarmerRange(ctx, farmerID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list extra range: %w", err)
	}

	responses := make([]extra.ExtraResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, extra.ToResponse(r))
	}
	return responses, nil
}

func (s *ExtraServiceImpl) Update(ctx context.Context, farmerID string, req extra.UpdateExtraRequest) (extra.ExtraResponse, error) {
	if err := req.Validate(); err != nil {
		return extra.ExtraResponse{}, err
	}

	record, err := s.extraRepo.GetByID(ctx, req.ID)
	if err != nil {
		return extra.ExtraResponse{}, err
	}

	if err := s.checkOwnership(ctx, farmerID, record.WorkerID); err != nil {
		return extra.ExtraResponse{}, err
	}

	// settled entries are immutable even when dated past the lock boundary
	if record.IsSettled {
		return extra.ExtraResponse{}, extra.ErrExtraSettled
	}

	if err := s.periodLock.EnsureUnlocked(ctx, record.WorkerID, record.Date); err != nil {
		return extra.ExtraResponse{}, err
	}
	newDate, _ := validator.IsValidDate(req.Date)
	if err := s.periodLock.EnsureUnlocked(ctx, record.WorkerID, newDate); err != nil {
		return extra.ExtraResponse{}, err
	}

	record.Date = newDate
	record.Item = req.Item
	record.Amount = req.Amount
	record.Note = req.Note

	if err := s.extraRepo.Update(ctx, record); err != nil {
		return extra.ExtraResponse{}, fmt.Errorf("failed to update extra: %w", err)
	}

	return extra.ToResponse(record), nil
}

func (s *ExtraServiceImpl) Delete(ctx context.Context, farmerID, id string) error {
	record, err := s.extraRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.checkOwnership(ctx, farmerID, record.WorkerID); err != nil {
		return err
	}

	if record.IsSettled {
		return extra.ErrExtraSettled
	}

	if err := s.periodLock.EnsureUnlocked(ctx, record.WorkerID, record.Date); err != nil {
		return err
	}

	return s.extraRepo.Delete(ctx, id)
}

func (s *ExtraServiceImpl) checkOwnership(ctx context.Context, farmerID, workerID string) error {
	w, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		return err
	}
	if w.FarmerID != farmerID {
		return worker.ErrNotOwner
	}
	return nil
}
