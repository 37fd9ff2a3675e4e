package models

import "time"

// Data e Time ficam como strings (YYYY-MM-DD / HH:MM) porque as regras de
// agenda comparam datas ISO lexicograficamente, sem parse.
type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	UserID uint `gorm:"index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Client string `gorm:"size:100;not null" json:"client"`
	Phone  string `gorm:"size:11" json:"phone"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	Date string `gorm:"size:10;index" json:"date"`
	Time string `gorm:"size:5" json:"time"`

	StatusID uint `gorm:"default:1" json:"status_id"`

	// Token de concorrência otimista: updates casam id+version e incrementam.
	Version uint `gorm:"default:0" json:"version"`

	FinalizedAt *time.Time `json:"finalized_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
