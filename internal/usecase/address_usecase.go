package usecase

import (
	"context"
	"net/http"
	"strings"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

type AddressUsecase struct {
	addressRepo repo.AddressRepository
}

// DI
func NewAddressUsecase(addressRepo repo.AddressRepository) *AddressUsecase {
	return &AddressUsecase{addressRepo: addressRepo}
}

type AddressInput struct {
	Type          string
	FullName      string
	Phone         string
	StreetAddress string
	City          string
	State         string
	PostalCode    string
	Country       string
	IsDefault     bool
}

func (in AddressInput) validate() error {
	switch model.AddressType(in.Type) {
	case model.AddressTypeHome, model.AddressTypeWork, model.AddressTypeBilling, model.AddressTypeOther:
	default:
		return NewHTTPError(http.StatusBadRequest, "invalid address type")
	}
	if strings.TrimSpace(in.FullName) == "" {
		return NewHTTPError(http.StatusBadRequest, "full name required")
	}
	if strings.TrimSpace(in.Phone) == "" {
		return NewHTTPError(http.StatusBadRequest, "phone required")
	}
	if strings.TrimSpace(in.StreetAddress) == "" {
		return NewHTTPError(http.StatusBadRequest, "street address required")
	}
	if strings.TrimSpace(in.City) == "" {
		return NewHTTPError(http.StatusBadRequest, "city required")
	}
	if strings.TrimSpace(in.PostalCode) == "" {
		return NewHTTPError(http.StatusBadRequest, "postal code required")
	}
	if strings.TrimSpace(in.Country) == "" {
		return NewHTTPError(http.StatusBadRequest, "country required")
	}
	return nil
}

func (u *AddressUsecase) List(ctx context.Context, userID int64) ([]model.Address, error) {
	if userID <= 0 {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	list, err := u.addressRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return list, nil
}

func (u *AddressUsecase) Create(ctx context.Context, userID int64, in AddressInput) (model.Address, error) {
	if userID <= 0 {
		return model.Address{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err := in.validate(); err != nil {
		return model.Address{}, err
	}

	created, err := u.addressRepo.Create(ctx, model.Address{
		UserID:        userID,
		Type:          model.AddressType(in.Type),
		FullName:      strings.TrimSpace(in.FullName),
		Phone:         strings.TrimSpace(in.Phone),
		StreetAddress: strings.TrimSpace(in.StreetAddress),
		City:          strings.TrimSpace(in.City),
		State:         strings.TrimSpace(in.State),
		PostalCode:    strings.TrimSpace(in.PostalCode),
		Country:       strings.TrimSpace(in.Country),
	})
	if err != nil {
		return model.Address{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//デフォルト指定があれば切り替える（user内で1つだけ）
	if in.IsDefault {
		if err := u.addressRepo.SetDefault(ctx, userID, created.ID); err != nil {
			return model.Address{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		created.IsDefault = true
	}
	return created, nil
}

func (u *AddressUsecase) Update(ctx context.Context, userID int64, addressID int64, in AddressInput) (model.Address, error) {
	existing, err := u.findOwned(ctx, userID, addressID)
	if err != nil {
		return model.Address{}, err
	}
	if err := in.validate(); err != nil {
		return model.Address{}, err
	}

	existing.Type = model.AddressType(in.Type)
	existing.FullName = strings.TrimSpace(in.FullName)
	existing.Phone = strings.TrimSpace(in.Phone)
	existing.StreetAddress = strings.TrimSpace(in.StreetAddress)
	existing.City = strings.TrimSpace(in.City)
	existing.State = strings.TrimSpace(in.State)
	existing.PostalCode = strings.TrimSpace(in.PostalCode)
	existing.Country = strings.TrimSpace(in.Country)

	if err := u.addressRepo.Update(ctx, existing); err != nil {
		return model.Address{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if in.IsDefault && !existing.IsDefault {
		if err := u.addressRepo.SetDefault(ctx, userID, addressID); err != nil {
			return model.Address{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		existing.IsDefault = true
	}
	return existing, nil
}

func (u *AddressUsecase) Delete(ctx context.Context, userID int64, addressID int64) error {
	if _, err := u.findOwned(ctx, userID, addressID); err != nil {
		return err
	}
	if err := u.addressRepo.Delete(ctx, addressID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *AddressUsecase) SetDefault(ctx context.Context, userID int64, addressID int64) error {
	if _, err := u.findOwned(ctx, userID, addressID); err != nil {
		return err
	}
	if err := u.addressRepo.SetDefault(ctx, userID, addressID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *AddressUsecase) findOwned(ctx context.Context, userID int64, addressID int64) (model.Address, error) {
	if userID <= 0 {
		return model.Address{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	a, err := u.addressRepo.FindByID(ctx, addressID)
	if err == repo.ErrNotFound {
		return model.Address{}, NewHTTPError(http.StatusNotFound, "address not found")
	}
	if err != nil {
		return model.Address{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	//所有チェック
	if a.UserID != userID {
		return model.Address{}, NewHTTPError(http.StatusNotFound, "address not found")
	}
	return a, nil
}
