package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

type PaymentMethodUsecase struct {
	pmRepo repo.PaymentMethodRepository
}

// DI
func NewPaymentMethodUsecase(pmRepo repo.PaymentMethodRepository) *PaymentMethodUsecase {
	return &PaymentMethodUsecase{pmRepo: pmRepo}
}

type CardDetailsInput struct {
	CardNumber     string `json:"card_number"`
	CardHolderName string `json:"card_holder_name"`
	ExpiryMonth    int    `json:"expiry_month"`
	ExpiryYear     int    `json:"expiry_year"`
	//検証にだけ使う。保存はしない。
	CVV string `json:"cvv"`
}

type UPIDetailsInput struct {
	UPIID string `json:"upi_id"`
}

type NetBankingDetailsInput struct {
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	IFSCCode      string `json:"ifsc_code"`
}

// PaymentMethodInput はtypeで中身が決まる。typeに対応する詳細だけを見る。
type PaymentMethodInput struct {
	Type       string                  `json:"type"`
	Card       *CardDetailsInput       `json:"card,omitempty"`
	UPI        *UPIDetailsInput        `json:"upi,omitempty"`
	NetBanking *NetBankingDetailsInput `json:"net_banking,omitempty"`
	IsDefault  bool                    `json:"is_default"`
}

// PaymentMethodOutput はカード番号を下4桁だけ見せる。
type PaymentMethodOutput struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	Label     string `json:"label"`
	IsDefault bool   `json:"is_default"`
	CreatedAt string `json:"created_at"`
}

func (u *PaymentMethodUsecase) List(ctx context.Context, userID int64) ([]PaymentMethodOutput, error) {
	if userID <= 0 {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	list, err := u.pmRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := make([]PaymentMethodOutput, 0, len(list))
	for _, pm := range list {
		out = append(out, toPaymentMethodOutput(pm))
	}
	return out, nil
}

func (u *PaymentMethodUsecase) Create(ctx context.Context, userID int64, in PaymentMethodInput) (PaymentMethodOutput, error) {
	if userID <= 0 {
		return PaymentMethodOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	pm, err := buildPaymentMethod(userID, in)
	if err != nil {
		return PaymentMethodOutput{}, err
	}

	created, err := u.pmRepo.Create(ctx, pm)
	if err != nil {
		return PaymentMethodOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if in.IsDefault {
		if err := u.pmRepo.SetDefault(ctx, userID, created.ID); err != nil {
			return PaymentMethodOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		created.IsDefault = true
	}
	return toPaymentMethodOutput(created), nil
}

// Update は全詳細を差し替える。typeの検証はCreateと同じ。
func (u *PaymentMethodUsecase) Update(ctx context.Context, userID int64, paymentMethodID int64, in PaymentMethodInput) (PaymentMethodOutput, error) {
	if err := u.checkOwned(ctx, userID, paymentMethodID); err != nil {
		return PaymentMethodOutput{}, err
	}

	pm, err := buildPaymentMethod(userID, in)
	if err != nil {
		return PaymentMethodOutput{}, err
	}
	pm.ID = paymentMethodID

	if err := u.pmRepo.Update(ctx, pm); err != nil {
		if err == repo.ErrNotFound {
			return PaymentMethodOutput{}, NewHTTPError(http.StatusNotFound, "payment method not found")
		}
		return PaymentMethodOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if in.IsDefault {
		if err := u.pmRepo.SetDefault(ctx, userID, paymentMethodID); err != nil {
			return PaymentMethodOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}

	updated, err := u.pmRepo.FindByID(ctx, paymentMethodID)
	if err != nil {
		return PaymentMethodOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toPaymentMethodOutput(updated), nil
}

func (u *PaymentMethodUsecase) Delete(ctx context.Context, userID int64, paymentMethodID int64) error {
	if err := u.checkOwned(ctx, userID, paymentMethodID); err != nil {
		return err
	}
	if err := u.pmRepo.Delete(ctx, paymentMethodID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *PaymentMethodUsecase) SetDefault(ctx context.Context, userID int64, paymentMethodID int64) error {
	if err := u.checkOwned(ctx, userID, paymentMethodID); err != nil {
		return err
	}
	if err := u.pmRepo.SetDefault(ctx, userID, paymentMethodID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *PaymentMethodUsecase) checkOwned(ctx context.Context, userID int64, paymentMethodID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	owned, err := u.pmRepo.IsOwnedByUser(ctx, paymentMethodID, userID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !owned {
		return NewHTTPError(http.StatusNotFound, "payment method not found")
	}
	return nil
}

// buildPaymentMethod はtypeごとの詳細を検証してモデルに詰める。
func buildPaymentMethod(userID int64, in PaymentMethodInput) (model.PaymentMethod, error) {
	pm := model.PaymentMethod{
		UserID: userID,
		Type:   model.PaymentType(in.Type),
	}

	switch pm.Type {
	case model.PaymentTypeCreditCard, model.PaymentTypeDebitCard:
		if in.Card == nil {
			return model.PaymentMethod{}, NewHTTPError(http.StatusBadRequest, "card details required")
		}
		number := strings.ReplaceAll(strings.TrimSpace(in.Card.CardNumber), " ", "")
		if len(number) < 13 || len(number) > 19 || !isDigits(number) {
			return model.PaymentMethod{}, NewHTTPError(http.StatusBadRequest, "invalid card number")
		}
		if strings.TrimSpace(in.Card.CardHolderName) == "" {
			return model.PaymentMethod{}, NewHTTPError(http.StatusBadRequest, "card holder name required")
		}
		if in.Card.ExpiryMonth < 1 || in.Card.ExpiryMonth > 12 {
			return model.PaymentMethod{}, NewHTTPError(http.StatusBadRequest, "invalid expiry month")
		}
		now := time.Now()
		if in.Card.ExpiryYear < now.Year() ||
			(in.Card.ExpiryYear == now.Year() && time.Month(in.Card.ExpiryMonth) < now.Month()) {
			return model.PaymentMethod{}, NewHTTPError(http.StatusBadRequest, "card is expired")
		}
		if l := len(in.Card.CVV); l < 3 || l > 4 || !isDigits(in.Card.CVV) {
			return model.PaymentMethod{}, NewHTTPError(http.StatusBadRequest, "invalid cvv")
		}
		pm.CardNumber = number
		pm.CardHolderName = strings.TrimSpace(in.Card.CardHolderName)
		pm.ExpiryMonth = in.Card.ExpiryMonth
		pm.ExpiryYear = in.Card.ExpiryYear

	case model.PaymentTypeUPI:
		if in.UPI == nil {
			return model.PaymentMethod{}, NewHTTPError(http.StatusBadRequest, "upi details required")
		}
		upiID := strings.TrimSpace(in.UPI.UPIID)
		if !strings.Contains(upiID, "@") {
			return model.PaymentMethod{}, NewHTTPError(http.StatusBadRequest, "invalid upi id")
		}
		pm.UPIID = upiID

	case model.PaymentTypeNetBanking:
		if in.NetBanking == nil {
			return model.PaymentMethod{}, NewHTTPError(http.StatusBadRequest, "net banking details required")
		}
		if strings.TrimSpace(in.NetBanking.BankName) == "" {
			return model.PaymentMethod{}, NewHTTPError(http.StatusBadRequest, "bank name required")
		}
		if n := strings.TrimSpace(in.NetBanking.AccountNumber); len(n) < 6 || !isDigits(n) {
			return model.PaymentMethod{}, NewHTTPError(http.StatusBadRequest, "invalid account number")
		}
		if len(strings.TrimSpace(in.NetBanking.IFSCCode)) != 11 {
			return model.PaymentMethod{}, NewHTTPError(http.StatusBadRequest, "invalid ifsc code")
		}
		pm.BankName = strings.TrimSpace(in.NetBanking.BankName)
		pm.AccountNumber = strings.TrimSpace(in.NetBanking.AccountNumber)
		pm.IFSCCode = strings.ToUpper(strings.TrimSpace(in.NetBanking.IFSCCode))

	case model.PaymentTypePayPal:
		//追加の詳細なし

	default:
		return model.PaymentMethod{}, NewHTTPError(http.StatusBadRequest, "invalid payment type")
	}

	return pm, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func toPaymentMethodOutput(pm model.PaymentMethod) PaymentMethodOutput {
	out := PaymentMethodOutput{
		ID:        pm.ID,
		Type:      string(pm.Type),
		IsDefault: pm.IsDefault,
		CreatedAt: pm.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}

	switch pm.Type {
	case model.PaymentTypeCreditCard:
		out.Label = fmt.Sprintf("Credit Card - %s", lastFour(pm.CardNumber))
	case model.PaymentTypeDebitCard:
		out.Label = fmt.Sprintf("Debit Card - %s", lastFour(pm.CardNumber))
	case model.PaymentTypeUPI:
		out.Label = fmt.Sprintf("UPI - %s", pm.UPIID)
	case model.PaymentTypeNetBanking:
		out.Label = fmt.Sprintf("Net Banking - %s", pm.BankName)
	case model.PaymentTypePayPal:
		out.Label = "PayPal"
	}
	return out
}

func lastFour(number string) string {
	if len(number) <= 4 {
		return number
	}
	return number[len(number)-4:]
}
