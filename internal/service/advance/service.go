package advance

import (
	"context"
	"fmt"

	"github.com/agrilabs/wms-backend-go/internal/domain/advance"
	"github.com/agrilabs/wms-backend-go/internal/domain/attendance"
	"github.com/agrilabs/wms-backend-go/internal/domain/settlement"
	"github.com/agrilabs/wms-backend-go/internal/domain/worker"
	"github.com/agrilabs/wms-backend-go/internal/pkg/validator"
)

type AdvanceServiceImpl struct {
	advanceRepo advance.AdvanceRepository
	workerRepo  worker.WorkerRepository
	periodLock  settlement.PeriodLock
}

func NewAdvanceService(
	advanceRepo advance.AdvanceRepository,
	workerRepo worker.WorkerRepository,
	periodLock settlement.PeriodLock,
) advance.AdvanceService {
	return &AdvanceServiceImpl{
		advanceRepo: advanceRepo,
		workerRepo:  workerRepo,
		periodLock:  periodLock,
	}
}

func (s *AdvanceServiceImpl) Create(ctx context.Context, farmerID string, req advance.CreateAdvanceRequest) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	if err := s.checkOwnership(ctx, farmerID, req.WorkerID); err != nil {
		return advance.AdvanceResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	if err := s.periodLock.EnsureUnlocked(ctx, req.WorkerID, date); err != nil {
		return advance.AdvanceResponse{}, err
	}

	created, err := s.advanceRepo.Create(ctx, advance.Advance{
		WorkerID: req.WorkerID,
		Date:     date,
		Amount:   req.Amount,
		Note:     req.Note,
	})
	if err != nil {
		return advance.AdvanceResponse{}, fmt.Errorf("failed to create advance: %w", err)
	}

	return advance.ToResponse(created), nil
}

func (s *AdvanceServiceImpl) ListByWorker(ctx context.Context, farmerID, workerID string) ([]advance.AdvanceResponse, error) {
	if err := s.checkOwnership(ctx, farmerID, workerID); err != nil {
		return nil, err
	}

	records, err := s.advanceRepo.ListByWorker(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances: %w", err)
	}

	responses := make([]advance.AdvanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, advance.ToResponse(r))
	}
	return responses, nil
}

func (s *AdvanceServiceImpl) ListByRange(ctx context.Context, farmerID, startDate, endDate string) ([]advance.AdvanceResponse, error) {
	rangeReq := attendance.RangeRequest{StartDate: startDate, EndDate: endDate}
	if err := rangeReq.Validate(); err != nil {
		return nil, err
	}

	start, _ := validator.IsValidDate(startDate)
	end, _ := validator.IsValidDate(endDate)

	records, err := s.advanceRepo.ListByFarmerRange(ctx, farmerID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list advance range: %w", err)
	}

	responses := make([]advance.AdvanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, advance.ToResponse(r))
	}
	return responses, nil
}

func (s *AdvanceServiceImpl) Update(ctx context.Context, farmerID string, req advance.UpdateAdvanceRequest) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	record, err := s.advanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	if err := s.checkOwnership(ctx, farmerID, record.WorkerID); err != nil {
		return advance.AdvanceResponse{}, err
	}

	// settled entries are immutable even when dated past the lock boundary
	if record.IsSettled {
		return advance.AdvanceResponse{}, advance.ErrAdvanceSettled
	}

	// both the current date and the requested one must be outside the lock
	if err := s.periodLock.EnsureUnlocked(ctx, record.WorkerID, record.Date); err != nil {
		return advance.AdvanceResponse{}, err
	}
	newDate, _ := validator.IsValidDate(req.Date)
	if err := s.periodLock.EnsureUnlocked(ctx, record.WorkerID, newDate); err != nil {
		return advance.AdvanceResponse{}, err
	}

	record.Date = newDate
	record.Amount = req.Amount
	record.Note = req.Note

	if err := s.advanceRepo.Update(ctx, record); err != nil {
		return advance.AdvanceResponse{}, fmt.Errorf("failed to update advance: %w", err)
	}

	return advance.ToResponse(record), nil
}

func (s *AdvanceServiceImpl) Delete(ctx context.Context, farmerID, id string) error {
	record, err := s.advanceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.checkOwnership(ctx, farmerID, record.WorkerID); err != nil {
		return err
	}

	if record.IsSettled {
		return advance.ErrAdvanceSettled
	}

	if err := s.periodLock.EnsureUnlocked(ctx, record.WorkerID, record.Date); err != nil {
		return err
	}

	return s.advanceRepo.Delete(ctx, id)
}

func (s *AdvanceServiceImpl) checkOwnership(ctx context.Context, farmerID, workerID string) error {
	w, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		return err
	}
	if w.FarmerID != farmerID {
		return worker.ErrNotOwner
	}
	return nil
}
