package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"

	"gorm.io/gorm"
)

type ProfileGormRepository struct {
	db *gorm.DB
}

// DI
func NewProfileGormRepository(db *gorm.DB) *ProfileGormRepository {
	return &ProfileGormRepository{db: db}
}

// プロフィールを取得し、無ければ作る
func (r *ProfileGormRepository) GetOrCreateByUserID(ctx context.Context, userID int64) (model.UserProfile, error) {
	var p model.UserProfile

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&p).Error
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return model.UserProfile{}, err
	}

	newProfile := model.UserProfile{
		UserID:                  userID,
		EmailNotifications:      true,
		NotificationPreferences: "{}",
	}
	if err := r.db.WithContext(ctx).Create(&newProfile).Error; err != nil {
		//同時リクエストで先に作られていたら取り直す
		if isUniqueViolation(err) {
			retryErr := r.db.WithContext(ctx).
				Where("user_id = ?", userID).
				First(&p).Error
			if retryErr == nil {
				return p, nil
			}
		}
		return model.UserProfile{}, err
	}
	return newProfile, nil
}

func (r *ProfileGormRepository) Update(ctx context.Context, profile model.UserProfile) error {
	res := r.db.WithContext(ctx).Model(&model.UserProfile{}).
		Where("id = ?", profile.ID).
		Select(
			"phone",
			"bio",
			"gender",
			"website",
			"date_of_birth",
			"email_notifications",
			"newsletter_subscription",
			"notification_preferences",
		).
		Updates(profile)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ProfileGormRepository) DeleteAllByUserID(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.UserProfile{}).Error
}
