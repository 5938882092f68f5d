// Package inventoryrepo persists per-product stock and provides ordered row locking for confirmation.
package inventoryrepo

import (
	"context"
	"errors"
	"slices"
	"time"

	"sales/internal/core/domain/model/inventory"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/pgerr"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StockDTO is a row of inventory.
type StockDTO struct {
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity  int
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}

func (StockDTO) TableName() string {
	return "inventory"
}

type GormInventoryRepository struct {
	db *gorm.DB
}

func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

func (r *GormInventoryRepository) Add(ctx context.Context, stock *inventory.Stock) error {
	if err := stock.Validate(); err != nil {
		return err
	}

	dto := fromDomain(stock)
	return pgerr.Translate("insert inventory", r.db.WithContext(ctx).Create(&dto).Error)
}

func (r *GormInventoryRepository) Get(ctx context.Context, productID kernel.UUID) (*inventory.Stock, error) {
	if err := productID.Validate(); err != nil {
		return nil, err
	}

	var dto StockDTO
	if err := r.db.WithContext(ctx).First(&dto, "product_id = ?", productID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("inventory", productID.String())
		}
		return nil, pgerr.Translate("load inventory", err)
	}

	return toDomain(dto)
}

// GetForUpdate runs SELECT ... ORDER BY product_id FOR UPDATE. Postgres locks the rows in
// the order they are produced, so every caller acquires its locks in ascending product id
// order and two confirmations sharing products cannot deadlock.
func (r *GormInventoryRepository) GetForUpdate(ctx context.Context, productIDs []kernel.UUID) ([]*inventory.Stock, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}

	ids := slices.Clone(productIDs)
	slices.SortFunc(ids, kernel.UUID.Compare)
	ids = slices.CompactFunc(ids, kernel.UUID.IsEqual)

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	var dtos []StockDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("product_id IN ?", raw).
		Order("product_id").
		Find(&dtos).Error
	if err != nil {
		return nil, pgerr.Translate("lock inventory", err)
	}

	stocks := make([]*inventory.Stock, 0, len(dtos))
	for _, dto := range dtos {
		s, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		stocks = append(stocks, s)
	}

	return stocks, nil
}

func (r *GormInventoryRepository) Update(ctx context.Context, stocks ...*inventory.Stock) error {
	db := r.db.WithContext(ctx)

	for _, stock := range stocks {
		if err := stock.Validate(); err != nil {
			return err
		}

		dto := fromDomain(stock)
		result := db.Model(&StockDTO{}).
			Where("product_id = ?", dto.ProductID).
			Updates(map[string]any{"quantity": dto.Quantity, "updated_at": dto.UpdatedAt})
		if result.Error != nil {
			return pgerr.Translate("update inventory", result.Error)
		}
		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("inventory", stock.ProductID().String())
		}
	}

	return nil
}

func fromDomain(stock *inventory.Stock) StockDTO {
	return StockDTO{
		ProductID: stock.ProductID().Bytes(),
		Quantity:  stock.Quantity(),
		UpdatedAt: stock.UpdatedAt(),
	}
}

func toDomain(dto StockDTO) (*inventory.Stock, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}
	return inventory.RestoreStock(productID, dto.Quantity, dto.UpdatedAt)
}
