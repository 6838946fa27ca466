package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sitebook/sitebook-backend/internal/domain/worker"
)

type WorkerRepository struct {
	db *DB
}

func NewWorkerRepository(db *DB) *WorkerRepository {
	return &WorkerRepository{db: db}
}

var _ worker.WorkerRepository = (*WorkerRepository)(nil)

func (r *WorkerRepository) Create(ctx context.Context, newWorker worker.Worker) (worker.Worker, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if newWorker.ID == "" {
		newWorker.ID = uuid.Must(uuid.NewV7()).String()
	}
	now := time.Now().UTC()
	newWorker.CreatedAt = now
	newWorker.UpdatedAt = now
	r.db.workers[newWorker.ID] = newWorker
	return newWorker, nil
}

func (r *WorkerRepository) GetByID(ctx context.Context, id string, userID string) (worker.Worker, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return r.get(id, userID)
}

// get expects the caller to hold db.mu.
func (r *WorkerRepository) get(id string, userID string) (worker.Worker, error) {
	w, ok := r.db.workers[id]
	if !ok || w.UserID != userID {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	return w, nil
}

func (r *WorkerRepository) List(ctx context.Context, userID string) ([]worker.Worker, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]worker.Worker, 0)
	for _, w := range r.db.workers {
		if w.UserID == userID {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *WorkerRepository) Update(ctx context.Context, userID string, req worker.UpdateWorkerRequest) (worker.Worker, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	w, err := r.get(req.ID, userID)
	if err != nil {
		return worker.Worker{}, err
	}
	if req.Name != nil {
		w.Name = *req.Name
	}
	if req.Phone != nil {
		w.Phone = req.Phone
	}
	if req.Address != nil {
		w.Address = req.Address
	}
	if req.PhotoURL != nil {
		w.PhotoURL = req.PhotoURL
	}
	w.UpdatedAt = time.Now().UTC()
	r.db.workers[w.ID] = w
	return w, nil
}

func (r *WorkerRepository) UpdateDailyWage(ctx context.Context, id string, userID string, wage decimal.Decimal) (worker.Worker, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	w, err := r.get(id, userID)
	if err != nil {
		return worker.Worker{}, err
	}
	w.DailyWage = &wage
	w.UpdatedAt = time.Now().UTC()
	r.db.workers[w.ID] = w
	return w, nil
}

func (r *WorkerRepository) UpdatePhoto(ctx context.Context, id string, userID string, photoURL string) (worker.Worker, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	w, err := r.get(id, userID)
	if err != nil {
		return worker.Worker{}, err
	}
	w.PhotoURL = &photoURL
	w.UpdatedAt = time.Now().UTC()
	r.db.workers[w.ID] = w
	return w, nil
}

// Delete removes the worker together with its attendance and payments.
func (r *WorkerRepository) Delete(ctx context.Context, id string, userID string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, err := r.get(id, userID); err != nil {
		return err
	}
	delete(r.db.workers, id)

	for k := range r.db.attendance {
		if k.workerID == id {
			delete(r.db.attendance, k)
		}
	}
	kept := r.db.payments[:0]
	for _, p := range r.db.payments {
		if p.WorkerID != id {
			kept = append(kept, p)
		}
	}
	r.db.payments = kept
	return nil
}
