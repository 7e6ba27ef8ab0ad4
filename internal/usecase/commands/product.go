package commands

import (
	"context"
	"io"
	"path"
	"strings"

	"retrack/internal/domain/product"
	"retrack/internal/pkg/clock"
	"retrack/internal/pkg/errs"
	"retrack/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const MaxImageBytes = 10 << 20

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

type CreateProductRequest struct {
	Title         string
	PurchasePrice decimal.Decimal
	Images        []string
}

type UpdateProductRequest struct {
	Title         *string
	PurchasePrice *decimal.Decimal
}

type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type ProductCommands interface {
	CreateProduct(ctx context.Context, ownerID uuid.UUID, req CreateProductRequest) (*product.Product, error)
	UpdateProduct(ctx context.Context, ownerID, productID uuid.UUID, req UpdateProductRequest) (*product.Product, error)
	ChangeStatus(ctx context.Context, ownerID, productID uuid.UUID, status string) (*product.Product, error)
	DeleteProduct(ctx context.Context, ownerID, productID uuid.UUID) error
	AddImage(ctx context.Context, ownerID, productID uuid.UUID, img ImageUpload) (*product.Product, error)
}

type productUseCaseImpl struct {
	uow    shared.UnitOfWork
	images ImageStore
	clock  clock.Clock
}

// NewProductUseCase accepts a nil ImageStore; uploads then fail with ErrMissingConfig.
func NewProductUseCase(uow shared.UnitOfWork, images ImageStore, clk clock.Clock) ProductCommands {
	return &productUseCaseImpl{uow: uow, images: images, clock: clk}
}

func (uc *productUseCaseImpl) CreateProduct(ctx context.Context, ownerID uuid.UUID, req CreateProductRequest) (*product.Product, error) {
	p, err := product.New(ownerID, req.Title, req.PurchasePrice, req.Images, uc.clock.Now())
	if err != nil {
		return nil, productValidation(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Products().Create(ctx, tx.DB(), p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *productUseCaseImpl) UpdateProduct(ctx context.Context, ownerID, productID uuid.UUID, req UpdateProductRequest) (*product.Product, error) {
	return uc.mutate(ctx, ownerID, productID, func(p *product.Product) error {
		return p.UpdateDetails(req.Title, req.PurchasePrice, uc.clock.Now())
	})
}

func (uc *productUseCaseImpl) ChangeStatus(ctx context.Context, ownerID, productID uuid.UUID, status string) (*product.Product, error) {
	to, err := product.ParseStatus(status)
	if err != nil {
		return nil, productValidation(err)
	}
	// sold is reached only by recording a sale
	if to == product.StatusSold {
		return nil, invalid(errs.New("status sold is set by recording a sale"))
	}
	return uc.mutate(ctx, ownerID, productID, func(p *product.Product) error {
		return p.ChangeStatus(to, uc.clock.Now())
	})
}

func (uc *productUseCaseImpl) DeleteProduct(ctx context.Context, ownerID, productID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Products().Delete(ctx, tx.DB(), ownerID, productID)
	})
}

func (uc *productUseCaseImpl) AddImage(ctx context.Context, ownerID, productID uuid.UUID, img ImageUpload) (*product.Product, error) {
	if uc.images == nil {
		return nil, errs.Mark(errs.New("image storage is not configured"), errs.ErrMissingConfig)
	}
	ext, ok := allowedImageTypes[strings.ToLower(img.ContentType)]
	if !ok {
		return nil, invalid(errs.Newf("unsupported image type %q", img.ContentType))
	}
	if img.Size <= 0 || img.Size > MaxImageBytes {
		return nil, invalid(errs.Newf("image size must be between 1 and %d bytes", MaxImageBytes))
	}
	if e := strings.ToLower(path.Ext(img.Filename)); e != "" {
		ext = e
	}

	key := path.Join("products", ownerID.String(), productID.String(), uuid.NewString()+ext)
	url, err := uc.images.Upload(ctx, key, img.ContentType, img.Body, img.Size)
	if err != nil {
		return nil, errs.Wrap(err, "uploading product image")
	}

	return uc.mutate(ctx, ownerID, productID, func(p *product.Product) error {
		return p.AddImage(url, uc.clock.Now())
	})
}

// mutate loads the product under a row lock, applies fn and persists the result.
func (uc *productUseCaseImpl) mutate(ctx context.Context, ownerID, productID uuid.UUID, fn func(p *product.Product) error) (*product.Product, error) {
	var out *product.Product
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Products().GetForUpdate(ctx, tx.DB(), ownerID, productID)
		if err != nil {
			return err
		}
		if err := fn(p); err != nil {
			return productValidation(err)
		}
		if err := tx.Products().Update(ctx, tx.DB(), p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func productValidation(err error) error {
	if errs.Is(err, product.ErrAlreadySold) {
		return errs.Mark(err, errs.ErrProductAlreadySold)
	}
	return invalid(err)
}
