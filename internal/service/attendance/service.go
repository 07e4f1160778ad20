package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/agrilabs/wms-backend-go/internal/domain/attendance"
	"github.com/agrilabs/wms-backend-go/internal/domain/settlement"
	"github.com/agrilabs/wms-backend-go/internal/domain/worker"
	"github.com/agrilabs/wms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	workerRepo     worker.WorkerRepository
	periodLock     settlement.PeriodLock
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	workerRepo worker.WorkerRepository,
	periodLock settlement.PeriodLock,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		workerRepo:     workerRepo,
		periodLock:     periodLock,
	}
}

func (s *AttendanceServiceImpl) Create(ctx context.Context, farmerID string, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := s.checkOwnership(ctx, farmerID, req.WorkerID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	if err := s.periodLock.EnsureUnlocked(ctx, req.WorkerID, date); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	exists, err := s.attendanceRepo.ExistsForDate(ctx, req.WorkerID, date, "")
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check attendance date: %w", err)
	}
	if exists {
		return attendance.AttendanceResponse{}, attendance.ErrDuplicateEntry
	}

	record := attendance.Attendance{
		WorkerID: req.WorkerID,
		Date:     date,
		Status:   attendance.Status(req.Status),
		Remarks:  req.Remarks,
	}
	if err := applyEntry(&record, req.StartTime, req.EndTime, req.RestMinutes, req.MissingMinutes, req.Rate, req.Segments, req.Note); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	created, err := s.attendanceRepo.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return attendance.ToResponse(created), nil
}

func (s *AttendanceServiceImpl) ListByWorker(ctx context.Context, farmerID, workerID string) ([]attendance.AttendanceResponse, error) {
	if err := s.checkOwnership(ctx, farmerID, workerID); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByWorker(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, attendance.ToResponse(r))
	}
	return responses, nil
}

func (s *AttendanceServiceImpl) ListByRange(ctx context.Context, farmerID string, req attendance.RangeRequest) ([]attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	records, err := s.attendanceRepo.ListByFarmerRange(ctx, farmerID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance range: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, attendance.ToResponse(r))
	}
	return responses, nil
}

func (s *AttendanceServiceImpl) Update(ctx context.Context, farmerID string, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := s.checkOwnership(ctx, farmerID, record.WorkerID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// settled entries are immutable even when dated past the lock boundary
	if record.IsSettled {
		return attendance.AttendanceResponse{}, attendance.ErrAttendanceSettled
	}

	if err := s.periodLock.EnsureUnlocked(ctx, record.WorkerID, record.Date); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record.Status = attendance.Status(req.Status)
	record.Remarks = req.Remarks
	if err := applyEntry(&record, req.StartTime, req.EndTime, req.RestMinutes, req.MissingMinutes, req.Rate, req.Segments, req.Note); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := s.attendanceRepo.Update(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return attendance.ToResponse(record), nil
}

func (s *AttendanceServiceImpl) Delete(ctx context.Context, farmerID, id string) error {
	record, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.checkOwnership(ctx, farmerID, record.WorkerID); err != nil {
		return err
	}

	if record.IsSettled {
		return attendance.ErrAttendanceSettled
	}

	if err := s.periodLock.EnsureUnlocked(ctx, record.WorkerID, record.Date); err != nil {
		return err
	}

	return s.attendanceRepo.Delete(ctx, id)
}

func (s *AttendanceServiceImpl) checkOwnership(ctx context.Context, farmerID, workerID string) error {
	w, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		return err
	}
	if w.FarmerID != farmerID {
		return worker.ErrNotOwner
	}
	return nil
}

// applyEntry derives hours and total onto the record according to its status.
func applyEntry(record *attendance.Attendance, start, end *time.Time, rest, missing int, rate *decimal.Decimal, segments []attendance.SegmentRequest, note string) error {
	record.StartTime = nil
	record.EndTime = nil
	record.RestMinutes = 0
	record.MissingMinutes = 0
	record.Rate = nil
	record.Segments = nil
	record.HoursWorked = decimal.Zero
	record.Total = decimal.Zero
	record.Note = note

	switch record.Status {
	case attendance.StatusPresent:
		if len(segments) > 0 {
			inputs := make([]attendance.SegmentInput, 0, len(segments))
			for _, seg := range segments {
				inputs = append(inputs, attendance.SegmentInput{
					StartTime:   seg.StartTime,
					EndTime:     seg.EndTime,
					HoursWorked: seg.HoursWorked,
					Rate:        seg.Rate,
				})
			}
			derived, hours, total, err := attendance.ComputeSegments(inputs)
			if err != nil {
				return err
			}
			record.Segments = derived
			record.HoursWorked = hours
			record.Total = total
			return nil
		}

		hours, total, err := attendance.ComputeWage(*start, *end, rest, missing, *rate)
		if err != nil {
			return err
		}
		record.StartTime = start
		record.EndTime = end
		record.RestMinutes = rest
		record.MissingMinutes = missing
		record.Rate = rate
		record.HoursWorked = hours
		record.Total = total
		return nil

	case attendance.StatusAbsent:
		return nil

	case attendance.StatusInactive:
		record.Note = attendance.InactiveNote
		return nil
	}

	return nil
}
