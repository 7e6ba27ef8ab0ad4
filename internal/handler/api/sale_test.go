//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"retrack/internal/domain/sale"
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

type SaleHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSaleCommands
	mockQueries  *queriesmock.MockSaleQueries
	handler      *api.SaleHandler
	userID       uuid.UUID
}

func (s *SaleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSaleCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSaleQueries(s.mockCtrl)
	s.handler = api.NewSaleHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	authed := s.router.Group("/", fakeAuth(s.userID))
	authed.POST("/sales", s.handler.Create)
	authed.GET("/sales", s.handler.List)
	authed.GET("/sales/summary", s.handler.Summary)
	authed.GET("/sales/:id", s.handler.Get)
	authed.PUT("/sales/:id", s.handler.Update)
	authed.DELETE("/sales/:id", s.handler.Delete)
}

func (s *SaleHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSaleHandlerSuite(t *testing.T) {
	suite.Run(t, new(SaleHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *SaleHandlerTestSuite) TestCreate() {
	b := builder.NewSaleBuilder().WithOwnerID(s.userID)
	reqBody := b.BuildCreateRequestDTO()
	recorded := b.BuildPersisted()
	view := b.BuildViewQuery()

	s.Run("success: returns the stored metric snapshot", func() {
		s.mockCommands.EXPECT().
			RecordSale(gomock.Any(), s.userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, req commands.RecordSaleRequest) (*sale.Sale, error) {
				s.True(decimal.NewFromInt(25).Equal(req.SalePrice))
				s.True(decimal.NewFromInt(1).Equal(req.PlatformFee))
				s.Nil(req.ProductID)
				s.Nil(req.SaleDate)
				return recorded, nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, recorded.ID()).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/sales", reqBody, "bearer-token")

		var body resdto.SaleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("12.00", body.Profit)
		s.InDelta(48.0, body.Margin, 0.001)
		s.InDelta(120.0, body.ROI, 0.001)
		s.Nil(body.ProductID)
	})

	s.Run("success: accepts calendar date and string amounts", func() {
		productID := uuid.New()
		s.mockCommands.EXPECT().
			RecordSale(gomock.Any(), s.userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, req commands.RecordSaleRequest) (*sale.Sale, error) {
				s.Require().NotNil(req.SaleDate)
				s.Equal(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), *req.SaleDate)
				s.Require().NotNil(req.ProductID)
				s.Equal(productID, *req.ProductID)
				s.True(decimal.RequireFromString("19.99").Equal(req.SalePrice))
				s.True(req.ShippingCost.IsZero())
				return recorded, nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, recorded.ID()).Return(view, nil)

		requestMap := testutil.DtoMap(s.T(), reqBody,
			testutil.Field("product_id", productID.String()),
			testutil.Field("sale_price", "19.99"),
			testutil.Field("shipping_cost", ""),
			testutil.Field("sale_date", "2026-03-14"),
		)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/sales", requestMap, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 on malformed sale_date", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("sale_date", "14/03/2026"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/sales", requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors", func() {
		cases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{"product already sold", errs.Mark(errs.New("sold"), errs.ErrProductAlreadySold), http.StatusConflict, "Product already sold"},
			{"product missing", errs.Mark(errs.New("missing"), errs.ErrProductNotFound), http.StatusNotFound, "Product not found"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().RecordSale(gomock.Any(), s.userID, gomock.Any()).Return(nil, tc.err)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/sales", reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestList / TestSummary
// ================================================================================

func (s *SaleHandlerTestSuite) TestList() {
	items := []*queries.SaleView{builder.NewSaleBuilder().WithOwnerID(s.userID).BuildViewQuery()}

	s.Run("success: bare to-date covers the whole day", func() {
		from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
		s.mockQueries.EXPECT().
			List(gomock.Any(), s.userID, queries.SaleFilters{Platform: "ebay", From: &from, To: &to}, gomock.Nil(), queries.DefaultListLimit).
			Return(items, nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/sales?platform=ebay&from=2026-03-01&to=2026-03-31", nil, "bearer-token")

		var body struct {
			Sales []resdto.SaleResponse `json:"sales"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Sales, 1)
	})

	s.Run("error: 400 on malformed date filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sales?from=yesterday", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid from date")
	})
}

func (s *SaleHandlerTestSuite) TestSummary() {
	s.Run("success", func() {
		s.mockQueries.EXPECT().Summary(gomock.Any(), s.userID, gomock.Nil(), gomock.Nil()).
			Return(&queries.SalesSummary{
				SaleCount:     2,
				Revenue:       decimal.NewFromInt(50),
				TotalProfit:   decimal.NewFromInt(24),
				TotalCosts:    decimal.NewFromInt(26),
				AverageMargin: 48.0,
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sales/summary", nil, "bearer-token")

		var body resdto.SalesSummaryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.EqualValues(2, body.SaleCount)
		s.Equal("50.00", body.Revenue)
		s.Equal("24.00", body.TotalProfit)
		s.Nil(body.From)
	})

	s.Run("error: 400 when range is inverted", func() {
		s.mockQueries.EXPECT().Summary(gomock.Any(), s.userID, gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrInvalidDateRange)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sales/summary?from=2026-05-01&to=2026-04-01", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date range")
	})
}

// ================================================================================
// TestUpdate / TestDelete
// ================================================================================

func (s *SaleHandlerTestSuite) TestUpdate() {
	b := builder.NewSaleBuilder().WithOwnerID(s.userID)
	view := b.BuildViewQuery()
	url := "/sales/" + view.ID.String()

	s.Run("success: forwards the partial patch", func() {
		s.mockCommands.EXPECT().
			UpdateSale(gomock.Any(), s.userID, view.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ uuid.UUID, patch sale.DetailsPatch) (*sale.Sale, error) {
				s.Require().NotNil(patch.Notes)
				s.Equal("shipped late", *patch.Notes)
				s.Nil(patch.Platform)
				s.Nil(patch.SaleDate)
				return b.BuildPersisted(), nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"notes": "shipped late"}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404", func() {
		s.mockCommands.EXPECT().UpdateSale(gomock.Any(), s.userID, view.ID, gomock.Any()).
			Return(nil, errs.Mark(errs.New("missing"), errs.ErrSaleNotFound))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Sale not found")
	})
}

func (s *SaleHandlerTestSuite) TestDelete() {
	id := uuid.New()

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().DeleteSale(gomock.Any(), s.userID, id).Return(nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/sales/"+id.String(), nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/sales/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
