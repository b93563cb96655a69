package repository

import (
	"testing"
	"time"

	"wdr/internal/modules/withdrawal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestArchiveRow(t *testing.T) {
	created := time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC)
	row := ArchiveRow(model.WithdrawalRecord{
		ID:                   "0d9b8c2e-5d0c-4a53-9d8f-3b0f1b2f4a10",
		Status:               model.StatusPending,
		CreatedAt:            created,
		Chain:                "ethereum",
		Address:              "0xabc",
		Amount:               "1.123456789",
		PublicCode:           "PC",
		RequirementConfirmed: true,
		SourceIP:             "203.0.113.1",
	}, decimal.RequireFromString("1.123456789"))

	assert.Equal(t, "Pending", row.Status)
	assert.Equal(t, "1.123456789", row.AmountRaw)
	assert.Equal(t, "1.12345679", row.Amount)
	assert.Equal(t, created, row.SubmittedAt)
	assert.Equal(t, "withdrawal_archive", row.TableName())
}

func TestArchiveRow_ZeroAmount(t *testing.T) {
	row := ArchiveRow(model.WithdrawalRecord{Status: model.StatusRejected, Amount: "lots"}, decimal.Zero)
	assert.Equal(t, "0.00000000", row.Amount)
	assert.Equal(t, "lots", row.AmountRaw)
	assert.Equal(t, "Rejected", row.Status)
}
