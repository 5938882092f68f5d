// Package dealerrepo persists dealers.
package dealerrepo

import (
	"context"
	"errors"

	"sales/internal/core/domain/model/dealer"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/pgerr"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DealerDTO is a row of dealers.
type DealerDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string
	Email   string `gorm:"uniqueIndex"`
	Phone   string
	Address string
}

func (DealerDTO) TableName() string {
	return "dealers"
}

type GormDealerRepository struct {
	db *gorm.DB
}

func NewGormDealerRepository(db *gorm.DB) *GormDealerRepository {
	return &GormDealerRepository{db: db}
}

func (r *GormDealerRepository) Add(ctx context.Context, d *dealer.Dealer) error {
	if err := d.Validate(); err != nil {
		return err
	}

	dto := DealerDTO{
		ID:      d.ID().Bytes(),
		Name:    d.Name(),
		Email:   d.Email(),
		Phone:   d.Phone(),
		Address: d.Address(),
	}
	return pgerr.Translate("insert dealer", r.db.WithContext(ctx).Create(&dto).Error)
}

// Update writes the contact fields. A taken email fails with errs.ErrValueIsInvalid.
func (r *GormDealerRepository) Update(ctx context.Context, d *dealer.Dealer) error {
	if err := d.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&DealerDTO{}).
		Where("id = ?", d.ID().Bytes()).
		Updates(map[string]any{
			"name":    d.Name(),
			"email":   d.Email(),
			"phone":   d.Phone(),
			"address": d.Address(),
		})
	if result.Error != nil {
		return pgerr.Translate("update dealer", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("dealer", d.ID().String())
	}

	return nil
}

// Get takes FOR KEY SHARE, so the dealer cannot be deleted while an order for it is being created.
func (r *GormDealerRepository) Get(ctx context.Context, id kernel.UUID) (*dealer.Dealer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DealerDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "KEY SHARE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dealer", id.String())
		}
		return nil, pgerr.Translate("load dealer", err)
	}

	dealerID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return dealer.RestoreDealer(dealerID, dto.Name, dto.Email, dto.Phone, dto.Address)
}

func (r *GormDealerRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&DealerDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return pgerr.Translate("delete dealer", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("dealer", id.String())
	}

	return nil
}
