package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/gregschwartz/jobseeker-analytics/internal/task/domain"
)

// gormTaskRunRepository implements TaskRunRepository using GORM
type gormTaskRunRepository struct {
	db *gorm.DB
}

// NewGormTaskRunRepository creates a new GORM-based TaskRunRepository
func NewGormTaskRunRepository(db *gorm.DB) TaskRunRepository {
	return &gormTaskRunRepository{db: db}
}

func (r *gormTaskRunRepository) Find(userID string) (*domain.TaskRun, error) {
	var run domain.TaskRun
	err := r.db.Where("user_id = ?", userID).First(&run).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &run, nil
}

func (r *gormTaskRunRepository) Save(run *domain.TaskRun) error {
	now := time.Now()
	if run.CreatedAt.IsZero() {
		run.CreatedAt = now
	}
	run.UpdatedAt = now
	return r.db.Save(run).Error
}

func (r *gormTaskRunRepository) FindStale(cutoff time.Time) ([]*domain.TaskRun, error) {
	var runs []*domain.TaskRun
	err := r.db.
		Where("status = ? AND updated_at < ?", domain.RunStarted, cutoff).
		Find(&runs).Error
	if err != nil {
		return nil, err
	}
	return runs, nil
}
