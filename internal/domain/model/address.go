package model

import "time"

type AddressType string

const (
	AddressTypeHome    AddressType = "home"
	AddressTypeWork    AddressType = "work"
	AddressTypeBilling AddressType = "billing"
	AddressTypeOther   AddressType = "other"
)

// 配送先住所
type Address struct {
	ID     int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID int64 `gorm:"not null;index" json:"user_id"`

	Type AddressType `gorm:"type:varchar(10);not null;default:'home'" json:"type"`

	//宛名
	FullName string `gorm:"type:varchar(100);not null" json:"full_name"`

	//電話番号
	Phone string `gorm:"type:varchar(15);not null" json:"phone"`

	StreetAddress string `gorm:"type:varchar(255);not null" json:"street_address"`
	City          string `gorm:"type:varchar(100);not null" json:"city"`
	State         string `gorm:"type:varchar(100);not null" json:"state"`
	PostalCode    string `gorm:"type:varchar(20);not null" json:"postal_code"`
	Country       string `gorm:"type:varchar(100);not null" json:"country"`

	//このユーザーのデフォルト住所か
	IsDefault bool `gorm:"not null;default:false" json:"is_default"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
