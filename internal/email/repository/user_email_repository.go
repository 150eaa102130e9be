package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	emaildomain "github.com/gregschwartz/jobseeker-analytics/internal/email/domain"
)

// userEmailRepository implements UserEmailRepository interface
type userEmailRepository struct {
	db *gorm.DB
}

// NewUserEmailRepository creates a new instance of userEmailRepository
func NewUserEmailRepository(db *gorm.DB) UserEmailRepository {
	return &userEmailRepository{
		db: db,
	}
}

func (r *userEmailRepository) Upsert(email *emaildomain.UserEmail) error {
	now := time.Now()
	if email.CreatedAt.IsZero() {
		email.CreatedAt = now
	}
	email.UpdatedAt = now
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(email).Error
}

func (r *userEmailRepository) FindByUserID(userID string, limit, offset int) ([]*emaildomain.UserEmail, int64, error) {
	var emails []*emaildomain.UserEmail
	var total int64

	query := r.db.Model(&emaildomain.UserEmail{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("received_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&emails).Error
	if err != nil {
		return nil, 0, err
	}

	return emails, total, nil
}

func (r *userEmailRepository) Exists(userID, emailID string) (bool, error) {
	var email emaildomain.UserEmail
	err := r.db.Where("user_id = ? AND id = ?", userID, emailID).First(&email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
