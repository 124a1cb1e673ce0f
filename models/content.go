package models

import "time"

// ═══════════════════════════════════════════════════════════
// CMS content collections (counted by analytics, edited elsewhere)
// ═══════════════════════════════════════════════════════════

type BlogPost struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

func (BlogPost) TableName() string { return "blog_posts" }

type ContactMessage struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

func (ContactMessage) TableName() string { return "contact_messages" }

type DesignRequest struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

func (DesignRequest) TableName() string { return "design_requests" }

type CareerApplication struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Position  string    `json:"position"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

func (CareerApplication) TableName() string { return "career_applications" }
