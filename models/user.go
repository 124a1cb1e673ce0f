package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a storefront customer profile. Only the columns analytics reads are mapped.
type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Email     string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	Status    string    `json:"status" gorm:"type:varchar(50);default:'active';index"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime;index"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}
