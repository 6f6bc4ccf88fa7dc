package model

import (
	"time"
)

type User struct {
	ID           uint64 `gorm:"primaryKey" json:"id"`
	Account      string `gorm:"type:varchar(20);uniqueIndex:idx_account;not null" json:"account"`
	Email        string `gorm:"type:varchar(255);uniqueIndex:idx_email;not null" json:"email"`
	Name         string `gorm:"type:varchar(50)" json:"name"`
	Password     string `gorm:"type:varchar(255)" json:"-"`
	Role         string `gorm:"type:varchar(10);not null;default:user" json:"role"`
	Avatar       string `gorm:"type:varchar(255)" json:"avatar"`
	Cover        string `gorm:"type:varchar(255)" json:"cover"`
	Introduction string `gorm:"type:text" json:"introduction"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
