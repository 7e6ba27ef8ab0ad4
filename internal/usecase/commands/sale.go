package commands

import (
	"context"
	"time"

	"retrack/internal/domain/product"
	"retrack/internal/domain/sale"
	"retrack/internal/pkg/clock"
	"retrack/internal/pkg/errs"
	"retrack/internal/pkg/telemetry"
	"retrack/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RecordSaleRequest struct {
	ProductID     *uuid.UUID
	Title         string
	SalePrice     decimal.Decimal
	PurchasePrice decimal.Decimal
	ShippingCost  decimal.Decimal
	PlatformFee   decimal.Decimal
	Platform      string
	Notes         string
	SaleDate      *time.Time
}

type SaleCommands interface {
	// RecordSale stores a sale; when ProductID is set the product is marked sold in the same transaction.
	RecordSale(ctx context.Context, ownerID uuid.UUID, req RecordSaleRequest) (*sale.Sale, error)
	UpdateSale(ctx context.Context, ownerID, saleID uuid.UUID, patch sale.DetailsPatch) (*sale.Sale, error)
	// DeleteSale removes the sale and returns its product, if any, to the active inventory.
	DeleteSale(ctx context.Context, ownerID, saleID uuid.UUID) error
}

type saleUseCaseImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics *telemetry.Metrics
}

func NewSaleUseCase(uow shared.UnitOfWork, clk clock.Clock, metrics *telemetry.Metrics) SaleCommands {
	return &saleUseCaseImpl{uow: uow, clock: clk, metrics: metrics}
}

func (uc *saleUseCaseImpl) RecordSale(ctx context.Context, ownerID uuid.UUID, req RecordSaleRequest) (*sale.Sale, error) {
	now := uc.clock.Now()
	in := sale.Input{
		OwnerID:       ownerID,
		Title:         req.Title,
		SalePrice:     req.SalePrice,
		PurchasePrice: req.PurchasePrice,
		ShippingCost:  req.ShippingCost,
		PlatformFee:   req.PlatformFee,
		Platform:      req.Platform,
		Notes:         req.Notes,
	}
	if req.SaleDate != nil {
		in.SaleDate = *req.SaleDate
	}

	var recorded *sale.Sale
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if req.ProductID == nil {
			s, err := sale.New(in, now)
			if err != nil {
				return saleValidation(err)
			}
			if err := tx.Sales().Create(ctx, tx.DB(), s); err != nil {
				return err
			}
			recorded = s
			return nil
		}

		p, err := tx.Products().GetForUpdate(ctx, tx.DB(), ownerID, *req.ProductID)
		if err != nil {
			return err
		}
		s, err := sale.FromProduct(p, in, now)
		if err != nil {
			return saleValidation(err)
		}
		if err := tx.Sales().Create(ctx, tx.DB(), s); err != nil {
			return err
		}
		if err := tx.Products().Update(ctx, tx.DB(), p); err != nil {
			return err
		}
		recorded = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.SaleRecorded()
	return recorded, nil
}

func (uc *saleUseCaseImpl) UpdateSale(ctx context.Context, ownerID, saleID uuid.UUID, patch sale.DetailsPatch) (*sale.Sale, error) {
	var updated *sale.Sale
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Sales().Get(ctx, tx.DB(), ownerID, saleID)
		if err != nil {
			return err
		}
		if err := s.UpdateDetails(patch, uc.clock.Now()); err != nil {
			return saleValidation(err)
		}
		if err := tx.Sales().UpdateDetails(ctx, tx.DB(), s); err != nil {
			return err
		}
		updated = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *saleUseCaseImpl) DeleteSale(ctx context.Context, ownerID, saleID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		productID, err := tx.Sales().Delete(ctx, tx.DB(), ownerID, saleID)
		if err != nil {
			return err
		}
		if productID == nil {
			return nil
		}

		p, err := tx.Products().GetForUpdate(ctx, tx.DB(), ownerID, *productID)
		if err != nil {
			// the product may have been removed since; the sale delete still stands
			if isNotFound(err) {
				return nil
			}
			return err
		}
		if err := p.Relist(uc.clock.Now()); err != nil {
			if errs.Is(err, product.ErrNotSold) {
				return nil
			}
			return err
		}
		return tx.Products().Update(ctx, tx.DB(), p)
	})
}

func saleValidation(err error) error {
	switch {
	case errs.Is(err, product.ErrAlreadySold):
		return errs.Mark(err, errs.ErrProductAlreadySold)
	case errs.Is(err, sale.ErrOwnerMismatch):
		return errs.Mark(err, errs.ErrProductNotFound)
	default:
		return invalid(err)
	}
}
