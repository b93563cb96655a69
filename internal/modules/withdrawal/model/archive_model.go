package model

import "time"

// WithdrawalArchive is a row of the withdrawal_archive reporting table written
// by the stream worker. The HTTP service never reads it back.
type WithdrawalArchive struct {
	ID                   int64     `json:"id"           gorm:"column:id;primaryKey;autoIncrement"`
	ReceiptID            string    `json:"receipt_id"   gorm:"column:receipt_id;type:UUID;uniqueIndex;not null"`
	Status               string    `json:"status"       gorm:"column:status;type:VARCHAR(16);not null"`
	Chain                string    `json:"chain"        gorm:"column:chain;type:VARCHAR(64);not null"`
	Address              string    `json:"address"      gorm:"column:address;type:TEXT;not null"`
	AmountRaw            string    `json:"amount_raw"   gorm:"column:amount_raw;type:TEXT;not null"`
	Amount               string    `json:"amount"       gorm:"column:amount;type:NUMERIC(28,8);not null;default:0"`
	PublicCode           string    `json:"public_code"  gorm:"column:public_code;type:TEXT;not null"`
	RequirementConfirmed bool      `json:"requirement_confirmed" gorm:"column:requirement_confirmed;not null"`
	SourceIP             string    `json:"source_ip"    gorm:"column:source_ip;type:VARCHAR(64)"`
	SubmittedAt          time.Time `json:"submitted_at" gorm:"column:submitted_at;type:timestamptz;not null"`
	CreatedAt            time.Time `json:"created_at"   gorm:"column:created_at;type:timestamptz;not null;default:now()"`
	UpdatedAt            time.Time `json:"updated_at"   gorm:"column:updated_at;type:timestamptz;not null;default:now()"`
}

func (WithdrawalArchive) TableName() string { return "withdrawal_archive" }
