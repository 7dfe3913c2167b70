package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"gorm.io/gorm"
)

type paymentMethodGormRepository struct {
	db *gorm.DB
}

// DI
func NewPaymentMethodGormRepository(db *gorm.DB) repo.PaymentMethodRepository {
	return &paymentMethodGormRepository{db: db}
}

func (r *paymentMethodGormRepository) Create(ctx context.Context, pm model.PaymentMethod) (model.PaymentMethod, error) {
	if err := r.db.WithContext(ctx).Create(&pm).Error; err != nil {
		return model.PaymentMethod{}, err
	}
	return pm, nil
}

// ユーザーの支払い方法一覧（デフォルトを先頭に）
func (r *paymentMethodGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.PaymentMethod, error) {
	var list []model.PaymentMethod
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC, created_at DESC, id DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *paymentMethodGormRepository) FindByID(ctx context.Context, paymentMethodID int64) (model.PaymentMethod, error) {
	var pm model.PaymentMethod
	err := r.db.WithContext(ctx).First(&pm, paymentMethodID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.PaymentMethod{}, repo.ErrNotFound
	}
	if err != nil {
		return model.PaymentMethod{}, err
	}
	return pm, nil
}

func (r *paymentMethodGormRepository) Update(ctx context.Context, pm model.PaymentMethod) error {
	result := r.db.WithContext(ctx).
		Model(&model.PaymentMethod{}).
		Where("id = ?", pm.ID).
		Select(
			"type",
			"card_number",
			"card_holder_name",
			"expiry_month",
			"expiry_year",
			"upi_id",
			"bank_name",
			"account_number",
			"ifsc_code",
		).
		Updates(pm)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *paymentMethodGormRepository) Delete(ctx context.Context, paymentMethodID int64) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", paymentMethodID).
		Delete(&model.PaymentMethod{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *paymentMethodGormRepository) IsOwnedByUser(ctx context.Context, paymentMethodID, userID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.PaymentMethod{}).
		Where("id = ? AND user_id = ?", paymentMethodID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count == 1, nil
}

// デフォルト支払い方法を切り替える
func (r *paymentMethodGormRepository) SetDefault(ctx context.Context, userID, paymentMethodID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.PaymentMethod{}).
			Where("id = ? AND user_id = ?", paymentMethodID, userID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return repo.ErrNotFound
		}

		//そのユーザーのdefaultを全て false
		if err := tx.Model(&model.PaymentMethod{}).
			Where("user_id = ? AND is_default = TRUE", userID).
			Update("is_default", false).Error; err != nil {
			return err
		}

		result := tx.Model(&model.PaymentMethod{}).
			Where("id = ? AND user_id = ?", paymentMethodID, userID).
			Update("is_default", true)

		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repo.ErrNotFound
		}
		return nil
	})
}

func (r *paymentMethodGormRepository) DeleteAllByUserID(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.PaymentMethod{}).Error
}
