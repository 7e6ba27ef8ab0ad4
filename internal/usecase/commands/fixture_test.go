//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"retrack/internal/infra"
	"retrack/internal/pkg/clock"
	"retrack/internal/pkg/errs"
	"retrack/internal/usecase/shared"
	commandsmock "retrack/tests/mock/commands"
	sharedmock "retrack/tests/mock/shared"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 4, 10, 15, 30, 0, 0, time.UTC)

// fixture wires a unit of work whose Within runs the callback against mocked repositories.
type fixture struct {
	ctrl        *gomock.Controller
	uow         *sharedmock.MockUnitOfWork
	tx          *sharedmock.MockTx
	reads       *sharedmock.MockCommandReads
	products    *sharedmock.MockProductRepository
	sales       *sharedmock.MockSaleRepository
	affiliates  *sharedmock.MockAffiliateRepository
	subs        *sharedmock.MockSubscriptionRepository
	events      *sharedmock.MockWebhookEventRepository
	commissions *sharedmock.MockCommissionRepository
	gateway     *commandsmock.MockPaymentGateway
	clock       *clock.MockClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		ctrl:        ctrl,
		uow:         sharedmock.NewMockUnitOfWork(ctrl),
		tx:          sharedmock.NewMockTx(ctrl),
		reads:       sharedmock.NewMockCommandReads(ctrl),
		products:    sharedmock.NewMockProductRepository(ctrl),
		sales:       sharedmock.NewMockSaleRepository(ctrl),
		affiliates:  sharedmock.NewMockAffiliateRepository(ctrl),
		subs:        sharedmock.NewMockSubscriptionRepository(ctrl),
		events:      sharedmock.NewMockWebhookEventRepository(ctrl),
		commissions: sharedmock.NewMockCommissionRepository(ctrl),
		gateway:     commandsmock.NewMockPaymentGateway(ctrl),
		clock:       clock.NewMockClock(fixedNow),
	}

	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()

	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Products().Return(f.products).AnyTimes()
	f.tx.EXPECT().Sales().Return(f.sales).AnyTimes()
	f.tx.EXPECT().Affiliates().Return(f.affiliates).AnyTimes()
	f.tx.EXPECT().Subscriptions().Return(f.subs).AnyTimes()
	f.tx.EXPECT().WebhookEvents().Return(f.events).AnyTimes()
	f.tx.EXPECT().Commissions().Return(f.commissions).AnyTimes()
	return f
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, pgx.ErrNoRows, infra.KindNotFound)
}

// assertMarked checks sentinel marks, which errors.Is does not see through.
func assertMarked(t *testing.T, err, target error) {
	t.Helper()
	assert.Error(t, err)
	assert.True(t, errs.Is(err, target), "expected %v, got %v", target, err)
}
