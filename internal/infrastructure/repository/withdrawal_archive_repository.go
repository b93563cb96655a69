package repository

import (
	"context"
	"time"

	"wdr/internal/modules/withdrawal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WithdrawalArchiveRepository struct {
	db *gorm.DB
}

func NewWithdrawalArchiveRepository(db *gorm.DB) *WithdrawalArchiveRepository {
	return &WithdrawalArchiveRepository{db: db}
}

// Migrate creates or updates the withdrawal_archive table.
func (r *WithdrawalArchiveRepository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&model.WithdrawalArchive{})
}

// ArchiveRow converts a record to its archive row. amount is the parsed
// submission amount (zero for non-numeric input), stored to 8 dp.
func ArchiveRow(rec model.WithdrawalRecord, amount decimal.Decimal) model.WithdrawalArchive {
	return model.WithdrawalArchive{
		ReceiptID:            rec.ID,
		Status:               rec.Status.String(),
		Chain:                rec.Chain,
		Address:              rec.Address,
		AmountRaw:            rec.Amount,
		Amount:               amount.Round(8).StringFixed(8),
		PublicCode:           rec.PublicCode,
		RequirementConfirmed: rec.RequirementConfirmed,
		SourceIP:             rec.SourceIP,
		SubmittedAt:          rec.CreatedAt,
	}
}

// Insert stores a new archive row; replays of the same receipt are ignored.
func (r *WithdrawalArchiveRepository) Insert(ctx context.Context, row model.WithdrawalArchive) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "receipt_id"}}, DoNothing: true}).
		Create(&row).Error
}

// UpdateStatus returns the number of rows touched; zero means the created
// event has not been archived yet.
func (r *WithdrawalArchiveRepository) UpdateStatus(ctx context.Context, receiptID, status string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.WithdrawalArchive{}).
		Where("receipt_id = ?", receiptID).
		Updates(map[string]any{
			"status":     status,
			"updated_at": time.Now().UTC(),
		})
	return res.RowsAffected, res.Error
}
