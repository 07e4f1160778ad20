package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/agrilabs/wms-backend-go/internal/domain/advance"
	"github.com/agrilabs/wms-backend-go/internal/domain/attendance"
	"github.com/agrilabs/wms-backend-go/internal/domain/extra"
	"github.com/agrilabs/wms-backend-go/internal/domain/settlement"
	"github.com/agrilabs/wms-backend-go/internal/domain/worker"
	"github.com/agrilabs/wms-backend-go/internal/pkg/database"
	"github.com/agrilabs/wms-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type WorkerServiceImpl struct {
	db             *database.DB
	workerRepo     worker.WorkerRepository
	attendanceRepo attendance.AttendanceRepository
	advanceRepo    advance.AdvanceRepository
	extraRepo      extra.ExtraRepository
	settlementRepo settlement.SettlementRepository
}

func NewWorkerService(
	db *database.DB,
	workerRepo worker.WorkerRepository,
	attendanceRepo attendance.AttendanceRepository,
	advanceRepo advance.AdvanceRepository,
	extraRepo extra.ExtraRepository,
	settlementRepo settlement.SettlementRepository,
) worker.WorkerService {
	return &WorkerServiceImpl{
		db:             db,
		workerRepo:     workerRepo,
		attendanceRepo: attendanceRepo,
		advanceRepo:    advanceRepo,
		extraRepo:      extraRepo,
		settlementRepo: settlementRepo,
	}
}

func (s *WorkerServiceImpl) Create(ctx context.Context, farmerID string, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	created, err := s.workerRepo.Create(ctx, worker.Worker{
		FarmerID:      farmerID,
		Name:          req.Name,
		Status:        worker.StatusActive,
		Remarks:       req.Remarks,
		WalletBalance: decimal.Zero,
	})
	if err != nil {
		return worker.WorkerResponse{}, fmt.Errorf("failed to create worker: %w", err)
	}

	return toResponse(created), nil
}

func (s *WorkerServiceImpl) Get(ctx context.Context, farmerID, id string) (worker.WorkerResponse, error) {
	w, err := s.getOwned(ctx, farmerID, id)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	return toResponse(w), nil
}

func (s *WorkerServiceImpl) List(ctx context.Context, farmerID string) ([]worker.WorkerResponse, error) {
	workers, err := s.workerRepo.ListByFarmer(ctx, farmerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}

	responses := make([]worker.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		responses = append(responses, toResponse(w))
	}
	return responses, nil
}

func (s *WorkerServiceImpl) Update(ctx context.Context, farmerID string, req worker.UpdateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	w, err := s.getOwned(ctx, farmerID, req.ID)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	if req.Name != nil {
		w.Name = *req.Name
	}
	if req.Status != nil {
		w.Status = worker.Status(*req.Status)
	}
	if req.Remarks != nil {
		w.Remarks = *req.Remarks
	}

	if err := s.workerRepo.Update(ctx, w); err != nil {
		return worker.WorkerResponse{}, fmt.Errorf("failed to update worker: %w", err)
	}
	w.UpdatedAt = time.Now()

	return toResponse(w), nil
}

// Delete removes the worker and everything hanging off it in one transaction.
func (s *WorkerServiceImpl) Delete(ctx context.Context, farmerID, id string) error {
	if _, err := s.getOwned(ctx, farmerID, id); err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.attendanceRepo.DeleteByWorker(txCtx, id); err != nil {
			return err
		}
		if err := s.advanceRepo.DeleteByWorker(txCtx, id); err != nil {
			return err
		}
		if err := s.extraRepo.DeleteByWorker(txCtx, id); err != nil {
			return err
		}
		if err := s.settlementRepo.DeleteByWorker(txCtx, id); err != nil {
			return err
		}
		return s.workerRepo.Delete(txCtx, id)
	})
}

func (s *WorkerServiceImpl) getOwned(ctx context.Context, farmerID, id string) (worker.Worker, error) {
	w, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		return worker.Worker{}, err
	}
	if w.FarmerID != farmerID {
		return worker.Worker{}, worker.ErrNotOwner
	}
	return w, nil
}

func toResponse(w worker.Worker) worker.WorkerResponse {
	return worker.WorkerResponse{
		ID:            w.ID,
		Name:          w.Name,
		Status:        string(w.Status),
		Remarks:       w.Remarks,
		WalletBalance: w.WalletBalance,
		CreatedAt:     w.CreatedAt.Format(time.RFC3339),
	}
}
