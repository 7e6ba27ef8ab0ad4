//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"retrack/internal/domain/product"
	"retrack/internal/handler/api"
	resdto "retrack/internal/handler/dto/response"
	"retrack/internal/pkg/errs"
	"retrack/internal/usecase/commands"
	"retrack/internal/usecase/queries"
	"retrack/tests/common/builder"
	"retrack/tests/common/httptest"
	"retrack/tests/common/testutil"
	commandsmock "retrack/tests/mock/commands"
	queriesmock "retrack/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProductHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockProductCommands
	mockQueries  *queriesmock.MockProductQueries
	handler      *api.ProductHandler
	userID       uuid.UUID
}

func (s *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockProductCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockProductQueries(s.mockCtrl)
	s.handler = api.NewProductHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	authed := s.router.Group("/", fakeAuth(s.userID))
	authed.POST("/products", s.handler.Create)
	authed.GET("/products", s.handler.List)
	authed.GET("/products/:id", s.handler.Get)
	authed.PUT("/products/:id", s.handler.Update)
	authed.PUT("/products/:id/status", s.handler.ChangeStatus)
	authed.DELETE("/products/:id", s.handler.Delete)
	authed.POST("/products/:id/images", s.handler.UploadImage)
}

func (s *ProductHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProductHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}

type testCaseProduct struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ProductHandlerTestSuite) TestCreate() {
	b := builder.NewProductBuilder().WithOwnerID(s.userID)
	reqBody := b.BuildCreateRequestDTO()
	created := b.BuildPersisted()
	view := b.BuildViewQuery()

	s.Run("success: returns 201 with the stored product", func() {
		s.mockCommands.EXPECT().
			CreateProduct(gomock.Any(), s.userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, req commands.CreateProductRequest) (*product.Product, error) {
				s.Equal("Vintage denim jacket", req.Title)
				s.True(decimal.NewFromInt(10).Equal(req.PurchasePrice))
				return created, nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, created.ID()).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/products", reqBody, "bearer-token")

		var body resdto.ProductResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID.String(), body.ID)
		s.Equal("10.00", body.PurchasePrice)
		s.Equal("active", body.Status)
		s.NotNil(body.Images)
	})

	s.Run("validation", func() {
		cases := []testCaseProduct{
			{name: "missing title", mutate: testutil.Field("title", nil), expectCode: http.StatusBadRequest},
			{name: "title too long", mutate: testutil.Field("title", strings.Repeat("a", 201)), expectCode: http.StatusBadRequest},
			{name: "garbage price is coerced to zero", mutate: testutil.Field("purchase_price", "abc"), expectCode: http.StatusCreated},
			{name: "numeric price", mutate: testutil.Field("purchase_price", 12.5), expectCode: http.StatusCreated},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().CreateProduct(gomock.Any(), s.userID, gomock.Any()).Return(created, nil)
					s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, created.ID()).Return(view, nil)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/products", requestMap, "bearer-token")
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				}
			})
		}
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/products", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors", func() {
		cases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{"domain validation", errs.Mark(errs.New("title is required"), errs.ErrDomainValidation), http.StatusBadRequest, "title is required"},
			{"unexpected", errors.New("db down"), http.StatusInternalServerError, "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateProduct(gomock.Any(), s.userID, gomock.Any()).Return(nil, tc.err)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/products", reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGet / TestList
// ================================================================================

func (s *ProductHandlerTestSuite) TestGet() {
	view := builder.NewProductBuilder().WithOwnerID(s.userID).BuildViewQuery()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, view.ID).Return(view, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products/"+view.ID.String(), nil, "bearer-token")

		var body resdto.ProductResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.Title, body.Title)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, view.ID).
			Return(nil, errs.Mark(errs.New("product not found"), errs.ErrProductNotFound))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products/"+view.ID.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})
}

func (s *ProductHandlerTestSuite) TestList() {
	items := []*queries.ProductView{
		builder.NewProductBuilder().WithOwnerID(s.userID).BuildViewQuery(),
		builder.NewProductBuilder().WithOwnerID(s.userID).WithTitle("Leather boots").BuildViewQuery(),
	}

	s.Run("success: forwards filters and returns next cursor", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), s.userID, queries.ProductFilters{Status: "active", Query: "boots"},
				&queries.Cursor{After: "abc"}, 2).
			Return(items, &queries.Cursor{After: "next"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/products?status=active&q=boots&after=abc&limit=2", nil, "bearer-token")

		var body struct {
			Products   []resdto.ProductResponse `json:"products"`
			NextCursor string                   `json:"next_cursor"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Products, 2)
		s.Equal("next", body.NextCursor)
	})

	s.Run("success: last page has no cursor", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), s.userID, gomock.Any(), gomock.Nil(), queries.DefaultListLimit).
			Return(items[:1], nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products", nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.NotContains(body, "next_cursor")
	})

	s.Run("error: 400 on bad cursor", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), s.userID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products?after=bogus", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})
}

// ================================================================================
// TestUpdate / TestChangeStatus / TestDelete
// ================================================================================

func (s *ProductHandlerTestSuite) TestUpdate() {
	b := builder.NewProductBuilder().WithOwnerID(s.userID)
	view := b.BuildViewQuery()
	url := "/products/" + view.ID.String()

	s.Run("success: only supplied fields are forwarded", func() {
		s.mockCommands.EXPECT().
			UpdateProduct(gomock.Any(), s.userID, view.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ uuid.UUID, req commands.UpdateProductRequest) (*product.Product, error) {
				s.Require().NotNil(req.Title)
				s.Equal("Renamed", *req.Title)
				s.Nil(req.PurchasePrice)
				return b.BuildPersisted(), nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"title": "Renamed"}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 409 when price changes after sale", func() {
		s.mockCommands.EXPECT().UpdateProduct(gomock.Any(), s.userID, view.ID, gomock.Any()).
			Return(nil, errs.Mark(errs.New("sold"), errs.ErrProductAlreadySold))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"purchase_price": "3"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Product already sold")
	})
}

func (s *ProductHandlerTestSuite) TestChangeStatus() {
	b := builder.NewProductBuilder().WithOwnerID(s.userID)
	view := b.BuildViewQuery()
	url := "/products/" + view.ID.String() + "/status"

	s.Run("success", func() {
		s.mockCommands.EXPECT().ChangeStatus(gomock.Any(), s.userID, view.ID, "archived").Return(b.BuildPersisted(), nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, view.ID).Return(view, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "archived"}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 when status missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{}, "bearer-token")
		httptest.AssertFieldErrors(s.T(), rec, "Status")
	})
}

func (s *ProductHandlerTestSuite) TestDelete() {
	id := uuid.New()

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().DeleteProduct(gomock.Any(), s.userID, id).Return(nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/products/"+id.String(), nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 when a sale references it", func() {
		s.mockCommands.EXPECT().DeleteProduct(gomock.Any(), s.userID, id).
			Return(errs.Mark(errs.New("in use"), errs.ErrProductInUse))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/products/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Product is referenced by a sale")
	})
}

// ================================================================================
// TestUploadImage
// ================================================================================

func (s *ProductHandlerTestSuite) TestUploadImage() {
	b := builder.NewProductBuilder().WithOwnerID(s.userID)
	view := b.BuildViewQuery()
	url := "/products/" + view.ID.String() + "/images"

	s.Run("success: streams the file to the usecase", func() {
		s.mockCommands.EXPECT().
			AddImage(gomock.Any(), s.userID, view.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ uuid.UUID, img commands.ImageUpload) (*product.Product, error) {
				s.Equal("photo.png", img.Filename)
				s.Equal("image/png", img.ContentType)
				s.EqualValues(4, img.Size)
				return b.BuildPersisted(), nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, view.ID).Return(view, nil)

		rec := httptest.PerformMultipartRequest(s.T(), s.router, url, "file", "photo.png", "image/png", []byte("\x89PNG"), "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 without a file", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "file is required")
	})

	s.Run("error: 500 when storage is not configured", func() {
		s.mockCommands.EXPECT().AddImage(gomock.Any(), s.userID, view.ID, gomock.Any()).
			Return(nil, errs.Mark(errs.New("no bucket"), errs.ErrMissingConfig))
		rec := httptest.PerformMultipartRequest(s.T(), s.router, url, "file", "photo.png", "image/png", []byte("x"), "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Service is not configured")
	})
}
