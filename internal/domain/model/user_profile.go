package model

import "time"

// ユーザー1人につきプロフィールは1つ
type UserProfile struct {
	ID     int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID int64 `gorm:"not null;uniqueIndex" json:"user_id"`

	Phone   string `gorm:"type:varchar(15)" json:"phone"`
	Bio     string `gorm:"type:varchar(500)" json:"bio"`
	Gender  string `gorm:"type:varchar(1)" json:"gender"`
	Website string `gorm:"type:varchar(255)" json:"website"`

	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`

	EmailNotifications     bool `gorm:"not null;default:true" json:"email_notifications"`
	NewsletterSubscription bool `gorm:"not null;default:false" json:"newsletter_subscription"`

	//通知設定はJSON文字列で保存する
	NotificationPreferences string `gorm:"type:jsonb;default:'{}'" json:"notification_preferences"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
