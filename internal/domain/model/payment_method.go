package model

import "time"

type PaymentType string

const (
	PaymentTypeCreditCard PaymentType = "credit_card"
	PaymentTypeDebitCard  PaymentType = "debit_card"
	PaymentTypePayPal     PaymentType = "paypal"
	PaymentTypeUPI        PaymentType = "upi"
	PaymentTypeNetBanking PaymentType = "net_banking"
)

// 支払い方法。typeごとに使うカラムが決まる（usecase側でswitchして検証する）。
// CVVは保存しない。
type PaymentMethod struct {
	ID     int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID int64       `gorm:"not null;index" json:"user_id"`
	Type   PaymentType `gorm:"type:varchar(20);not null" json:"type"`

	//credit_card / debit_card
	CardNumber     string `gorm:"type:varchar(19)" json:"card_number,omitempty"`
	CardHolderName string `gorm:"type:varchar(100)" json:"card_holder_name,omitempty"`
	ExpiryMonth    int    `json:"expiry_month,omitempty"`
	ExpiryYear     int    `json:"expiry_year,omitempty"`

	//upi
	UPIID string `gorm:"column:upi_id;type:varchar(50)" json:"upi_id,omitempty"`

	//net_banking
	BankName      string `gorm:"type:varchar(100)" json:"bank_name,omitempty"`
	AccountNumber string `gorm:"type:varchar(20)" json:"account_number,omitempty"`
	IFSCCode      string `gorm:"column:ifsc_code;type:varchar(11)" json:"ifsc_code,omitempty"`

	//このユーザーのデフォルト支払い方法か
	IsDefault bool `gorm:"not null;default:false" json:"is_default"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
