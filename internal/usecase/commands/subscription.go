package commands

import (
	"context"
	"strings"

	"retrack/internal/domain/billing"
	"retrack/internal/pkg/errs"
	"retrack/internal/usecase/shared"

	"github.com/google/uuid"
)

type SubscriptionCommands interface {
	CreatePortalSession(ctx context.Context, userID uuid.UUID, returnURL string) (string, error)
}

type subscriptionUseCaseImpl struct {
	uow              shared.UnitOfWork
	gateway          PaymentGateway
	defaultReturnURL string
}

func NewSubscriptionUseCase(uow shared.UnitOfWork, gateway PaymentGateway, defaultReturnURL string) SubscriptionCommands {
	return &subscriptionUseCaseImpl{uow: uow, gateway: gateway, defaultReturnURL: defaultReturnURL}
}

func (uc *subscriptionUseCaseImpl) CreatePortalSession(ctx context.Context, userID uuid.UUID, returnURL string) (string, error) {
	sub, err := uc.uow.CommandReads().LatestBillableSubscription(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return "", errs.ErrSubscriptionNotFound
		}
		return "", err
	}
	if sub.CustomerID == "" {
		return "", errs.ErrSubscriptionNotFound
	}

	returnURL = strings.TrimSpace(returnURL)
	if returnURL == "" {
		returnURL = uc.defaultReturnURL
	}
	return uc.gateway.CreatePortalSession(ctx, billing.PortalRequest{
		CustomerID: sub.CustomerID,
		ReturnURL:  returnURL,
	})
}
