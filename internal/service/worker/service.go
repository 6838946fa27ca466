package worker

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sitebook/sitebook-backend/internal/domain/attendance"
	"github.com/sitebook/sitebook-backend/internal/domain/auth"
	"github.com/sitebook/sitebook-backend/internal/domain/worker"
	"github.com/sitebook/sitebook-backend/internal/service/file"
)

type WorkerServiceImpl struct {
	worker.WorkerRepository
	store       attendance.AttendanceStore
	fileService file.FileService
}

func NewWorkerService(workerRepository worker.WorkerRepository, store attendance.AttendanceStore, fileService file.FileService) worker.WorkerService {
	return &WorkerServiceImpl{
		WorkerRepository: workerRepository,
		store:            store,
		fileService:      fileService,
	}
}

// Create implements worker.WorkerService.
func (s *WorkerServiceImpl) Create(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	userID, err := auth.UserID(ctx)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	newWorker := worker.Worker{
		UserID:    userID,
		Name:      strings.TrimSpace(req.Name),
		Phone:     req.Phone,
		Address:   req.Address,
		PhotoURL:  req.PhotoURL,
		DailyWage: req.DailyWage,
	}

	created, err := s.WorkerRepository.Create(ctx, newWorker)
	if err != nil {
		return worker.WorkerResponse{}, fmt.Errorf("failed to create worker: %w", err)
	}
	return worker.NewWorkerResponse(created), nil
}

// Get implements worker.WorkerService.
func (s *WorkerServiceImpl) Get(ctx context.Context, id string) (worker.WorkerResponse, error) {
	userID, err := auth.UserID(ctx)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	w, err := s.WorkerRepository.GetByID(ctx, id, userID)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	return worker.NewWorkerResponse(w), nil
}

// List implements worker.WorkerService. Without a principal the list is empty.
func (s *WorkerServiceImpl) List(ctx context.Context) ([]worker.WorkerResponse, error) {
	p, ok := auth.PrincipalFrom(ctx)
	if !ok {
		return []worker.WorkerResponse{}, nil
	}

	workers, err := s.WorkerRepository.List(ctx, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}

	out := make([]worker.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		out = append(out, worker.NewWorkerResponse(w))
	}
	return out, nil
}

// Update implements worker.WorkerService.
func (s *WorkerServiceImpl) Update(ctx context.Context, req worker.UpdateWorkerRequest) (worker.WorkerResponse, error) {
	userID, err := auth.UserID(ctx)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		req.Name = &name
	}

	updated, err := s.WorkerRepository.Update(ctx, userID, req)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	return worker.NewWorkerResponse(updated), nil
}

// UpdateDailyWage implements worker.WorkerService.
func (s *WorkerServiceImpl) UpdateDailyWage(ctx context.Context, req worker.UpdateDailyWageRequest) (worker.WorkerResponse, error) {
	userID, err := auth.UserID(ctx)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	updated, err := s.WorkerRepository.UpdateDailyWage(ctx, req.ID, userID, req.DailyWage)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	return worker.NewWorkerResponse(updated), nil
}

// UploadPhoto implements worker.WorkerService.
func (s *WorkerServiceImpl) UploadPhoto(ctx context.Context, id string, file io.Reader, filename string) (worker.WorkerResponse, error) {
	userID, err := auth.UserID(ctx)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	if _, err := s.WorkerRepository.GetByID(ctx, id, userID); err != nil {
		return worker.WorkerResponse{}, err
	}

	url, err := s.fileService.UploadWorkerPhoto(ctx, id, file, filename)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	updated, err := s.WorkerRepository.UpdatePhoto(ctx, id, userID, url)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	return worker.NewWorkerResponse(updated), nil
}

// Delete implements worker.WorkerService.
func (s *WorkerServiceImpl) Delete(ctx context.Context, id string) error {
	userID, err := auth.UserID(ctx)
	if err != nil {
		return err
	}
	if err := s.WorkerRepository.Delete(ctx, id, userID); err != nil {
		return err
	}
	s.store.ForgetWorker(ctx, id)
	return nil
}
