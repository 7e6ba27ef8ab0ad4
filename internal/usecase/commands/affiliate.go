package commands

import (
	"context"
	"errors"

	"retrack/internal/domain/affiliate"
	"retrack/internal/pkg/clock"
	"retrack/internal/pkg/errs"
	"retrack/internal/pkg/ptr"
	"retrack/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type UpsertAffiliateRequest struct {
	RefCode         string
	StripeAccountID *string
	CommissionRate  *decimal.Decimal
	Active          *bool
}

type UpsertAffiliateResult struct {
	Affiliate *affiliate.Affiliate
	Created   bool
}

type AffiliateCommands interface {
	// UpsertAffiliate creates the affiliate or updates only the supplied fields of an existing one.
	UpsertAffiliate(ctx context.Context, req UpsertAffiliateRequest) (*UpsertAffiliateResult, error)
}

type affiliateUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAffiliateUseCase(uow shared.UnitOfWork, clk clock.Clock) AffiliateCommands {
	return &affiliateUseCaseImpl{uow: uow, clock: clk}
}

func (uc *affiliateUseCaseImpl) UpsertAffiliate(ctx context.Context, req UpsertAffiliateRequest) (*UpsertAffiliateResult, error) {
	code, err := affiliate.NewRefCode(req.RefCode)
	if err != nil {
		return nil, affiliateValidation(err)
	}

	var result *UpsertAffiliateResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, gerr := tx.Affiliates().GetByRefCodeForUpdate(ctx, tx.DB(), code.String())
		switch {
		case gerr == nil:
			if aerr := existing.Apply(affiliate.Patch{
				PayoutAccountID: req.StripeAccountID,
				CommissionRate:  req.CommissionRate,
				Active:          req.Active,
			}, uc.clock.Now()); aerr != nil {
				return affiliateValidation(aerr)
			}
			if uerr := tx.Affiliates().Update(ctx, tx.DB(), existing); uerr != nil {
				return uerr
			}
			result = &UpsertAffiliateResult{Affiliate: existing}
			return nil
		case isNotFound(gerr):
		default:
			return gerr
		}

		if req.CommissionRate == nil {
			return invalid(errs.Mark(errs.New("commission_rate is required"), errs.ErrInvalidCommissionRate))
		}
		created, nerr := affiliate.New(
			code.String(),
			ptr.Or(req.StripeAccountID, ""),
			*req.CommissionRate,
			ptr.Or(req.Active, true),
			uc.clock.Now(),
		)
		if nerr != nil {
			return affiliateValidation(nerr)
		}
		// A concurrent insert of the same code surfaces as ErrDuplicateRefCode from the unique constraint.
		if cerr := tx.Affiliates().Create(ctx, tx.DB(), created); cerr != nil {
			return cerr
		}
		result = &UpsertAffiliateResult{Affiliate: created, Created: true}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func affiliateValidation(err error) error {
	switch {
	case errors.Is(err, affiliate.ErrInvalidRefCode), errors.Is(err, affiliate.ErrRefCodeTooLong):
		return invalid(errs.Mark(err, errs.ErrInvalidRefCode))
	case errors.Is(err, affiliate.ErrInvalidCommissionRate):
		return invalid(errs.Mark(err, errs.ErrInvalidCommissionRate))
	default:
		return invalid(err)
	}
}
