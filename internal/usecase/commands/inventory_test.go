//go:build unit

package commands_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"retrack/internal/domain/product"
	"retrack/internal/domain/sale"
	"retrack/internal/pkg/errs"
	"retrack/internal/pkg/ptr"
	"retrack/internal/usecase/commands"
	"retrack/tests/common/builder"
	commandsmock "retrack/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProduct_Commands(t *testing.T) {
	owner := uuid.New()

	t.Run("create persists an active product", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewProductUseCase(f.uow, nil, f.clock)

		f.products.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		p, err := uc.CreateProduct(context.Background(), owner, commands.CreateProductRequest{
			Title:         "  Leather boots ",
			PurchasePrice: decimal.RequireFromString("18.50"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Leather boots", p.Title())
		assert.Equal(t, product.StatusActive, p.Status())
		assert.Equal(t, fixedNow, p.CreatedAt())
	})

	t.Run("create rejects an empty title", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewProductUseCase(f.uow, nil, f.clock)

		_, err := uc.CreateProduct(context.Background(), owner, commands.CreateProductRequest{Title: " "})
		assertMarked(t, err, errs.ErrDomainValidation)
	})

	t.Run("sold is not a manual status", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewProductUseCase(f.uow, nil, f.clock)

		_, err := uc.ChangeStatus(context.Background(), owner, uuid.New(), "sold")
		assertMarked(t, err, errs.ErrDomainValidation)
	})

	t.Run("status change on a sold product conflicts", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewProductUseCase(f.uow, nil, f.clock)
		p := builder.NewProductBuilder().WithOwnerID(owner).AsSold().BuildPersisted()

		f.products.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), owner, p.ID()).Return(p, nil)

		_, err := uc.ChangeStatus(context.Background(), owner, p.ID(), "paused")
		assertMarked(t, err, errs.ErrProductAlreadySold)
	})

	t.Run("update locks and saves", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewProductUseCase(f.uow, nil, f.clock)
		p := builder.NewProductBuilder().WithOwnerID(owner).BuildPersisted()

		f.products.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), owner, p.ID()).Return(p, nil)
		f.products.EXPECT().Update(gomock.Any(), gomock.Any(), p).Return(nil)

		got, err := uc.UpdateProduct(context.Background(), owner, p.ID(), commands.UpdateProductRequest{Title: ptr.Of("Renamed")})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Title())
		assert.Equal(t, fixedNow, got.UpdatedAt())
	})

	t.Run("image upload without storage", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewProductUseCase(f.uow, nil, f.clock)

		_, err := uc.AddImage(context.Background(), owner, uuid.New(), commands.ImageUpload{ContentType: "image/png", Size: 10})
		assertMarked(t, err, errs.ErrMissingConfig)
	})

	t.Run("image upload stores and appends the url", func(t *testing.T) {
		f := newFixture(t)
		store := commandsmock.NewMockImageStore(f.ctrl)
		uc := commands.NewProductUseCase(f.uow, store, f.clock)
		p := builder.NewProductBuilder().WithOwnerID(owner).BuildPersisted()

		store.EXPECT().Upload(gomock.Any(), gomock.Any(), "image/jpeg", gomock.Any(), int64(4)).
			DoAndReturn(func(_ context.Context, key, _ string, body io.Reader, _ int64) (string, error) {
				assert.True(t, strings.HasPrefix(key, "products/"+owner.String()+"/"+p.ID().String()+"/"))
				assert.True(t, strings.HasSuffix(key, ".jpg"))
				return "https://cdn.example.com/" + key, nil
			})
		f.products.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), owner, p.ID()).Return(p, nil)
		f.products.EXPECT().Update(gomock.Any(), gomock.Any(), p).Return(nil)

		got, err := uc.AddImage(context.Background(), owner, p.ID(), commands.ImageUpload{
			Filename:    "front.JPG",
			ContentType: "image/jpeg",
			Size:        4,
			Body:        strings.NewReader("jpeg"),
		})
		require.NoError(t, err)
		require.Len(t, got.Images(), 1)
		assert.True(t, strings.HasPrefix(got.Images()[0], "https://cdn.example.com/products/"))
	})

	t.Run("unsupported image type", func(t *testing.T) {
		f := newFixture(t)
		store := commandsmock.NewMockImageStore(f.ctrl)
		uc := commands.NewProductUseCase(f.uow, store, f.clock)

		_, err := uc.AddImage(context.Background(), owner, uuid.New(), commands.ImageUpload{ContentType: "application/pdf", Size: 10})
		assertMarked(t, err, errs.ErrDomainValidation)
	})
}

func TestSale_Commands(t *testing.T) {
	owner := uuid.New()

	t.Run("standalone sale", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewSaleUseCase(f.uow, f.clock, nil)

		f.sales.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		s, err := uc.RecordSale(context.Background(), owner, commands.RecordSaleRequest{
			Title:         "Thrifted lamp",
			SalePrice:     decimal.NewFromInt(25),
			PurchasePrice: decimal.NewFromInt(10),
			ShippingCost:  decimal.NewFromInt(2),
			PlatformFee:   decimal.NewFromInt(1),
		})
		require.NoError(t, err)
		assert.Nil(t, s.ProductID())
		assert.Equal(t, "12", s.Metrics().Profit.String())
		assert.Equal(t, fixedNow, s.SaleDate())
	})

	t.Run("sale against a product marks it sold in the same transaction", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewSaleUseCase(f.uow, f.clock, nil)
		p := builder.NewProductBuilder().WithOwnerID(owner).WithPurchasePrice("10").BuildPersisted()

		f.products.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), owner, p.ID()).Return(p, nil)
		f.sales.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, s *sale.Sale) error {
				assert.Equal(t, "10", s.PurchasePrice().String())
				return nil
			})
		f.products.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, got *product.Product) error {
				assert.Equal(t, product.StatusSold, got.Status())
				return nil
			})

		id := p.ID()
		s, err := uc.RecordSale(context.Background(), owner, commands.RecordSaleRequest{
			ProductID: &id,
			SalePrice: decimal.NewFromInt(25),
		})
		require.NoError(t, err)
		assert.Equal(t, p.ID(), *s.ProductID())
	})

	t.Run("already sold product conflicts", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewSaleUseCase(f.uow, f.clock, nil)
		p := builder.NewProductBuilder().WithOwnerID(owner).AsSold().BuildPersisted()

		f.products.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), owner, p.ID()).Return(p, nil)

		id := p.ID()
		_, err := uc.RecordSale(context.Background(), owner, commands.RecordSaleRequest{ProductID: &id, SalePrice: decimal.NewFromInt(5)})
		assertMarked(t, err, errs.ErrProductAlreadySold)
	})

	t.Run("delete relists the product", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewSaleUseCase(f.uow, f.clock, nil)
		p := builder.NewProductBuilder().WithOwnerID(owner).AsSold().BuildPersisted()
		saleID := uuid.New()
		productID := p.ID()

		f.sales.EXPECT().Delete(gomock.Any(), gomock.Any(), owner, saleID).Return(&productID, nil)
		f.products.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), owner, productID).Return(p, nil)
		f.products.EXPECT().Update(gomock.Any(), gomock.Any(), p).Return(nil)

		require.NoError(t, uc.DeleteSale(context.Background(), owner, saleID))
		assert.Equal(t, product.StatusActive, p.Status())
	})

	t.Run("delete tolerates a removed product", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewSaleUseCase(f.uow, f.clock, nil)
		saleID := uuid.New()
		productID := uuid.New()

		f.sales.EXPECT().Delete(gomock.Any(), gomock.Any(), owner, saleID).Return(&productID, nil)
		f.products.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), owner, productID).Return(nil, notFound("product not found"))

		require.NoError(t, uc.DeleteSale(context.Background(), owner, saleID))
	})

	t.Run("update leaves metrics untouched", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewSaleUseCase(f.uow, f.clock, nil)
		s := builder.NewSaleBuilder().WithOwnerID(owner).BuildPersisted()
		before := s.Metrics()

		f.sales.EXPECT().Get(gomock.Any(), gomock.Any(), owner, s.ID()).Return(s, nil)
		f.sales.EXPECT().UpdateDetails(gomock.Any(), gomock.Any(), s).Return(nil)

		got, err := uc.UpdateSale(context.Background(), owner, s.ID(), sale.DetailsPatch{Notes: ptr.Of("bundle")})
		require.NoError(t, err)
		assert.Equal(t, "bundle", got.Notes())
		assert.Equal(t, before, got.Metrics())
	})
}
