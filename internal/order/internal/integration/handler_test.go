// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build e2e

package integration

import (
	"context"
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/takeout/internal/address"
	"github.com/ecodeclub/takeout/internal/cart"
	"github.com/ecodeclub/takeout/internal/catalog"
	"github.com/ecodeclub/takeout/internal/order"
	"github.com/ecodeclub/takeout/internal/order/internal/errs"
	"github.com/ecodeclub/takeout/internal/order/internal/web"
	"github.com/ecodeclub/takeout/internal/payment"
	paymentmocks "github.com/ecodeclub/takeout/internal/payment/mocks"
	"github.com/ecodeclub/takeout/internal/test"
	testioc "github.com/ecodeclub/takeout/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testUID = 234

type HandlerTestSuite struct {
	suite.Suite
	server    *egin.Component
	admin     *gin.Engine
	db        *egorm.Component
	ctrl      *gomock.Controller
	module    *order.Module
	cartSvc   cart.Service
	dishID    int64
	addressID int64
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	econf.Set("snowflake.node", 1)

	s.ctrl = gomock.NewController(s.T())
	paymentSvc := paymentmocks.NewMockService(s.ctrl)
	paymentSvc.EXPECT().Prepay(gomock.Any(), gomock.Any()).
		Return(payment.PrepayResponse{PrepayId: "wx-prepay-1", Package: "prepay_id=wx-prepay-1"}, nil).AnyTimes()
	paymentSvc.EXPECT().Refund(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cm := catalog.InitModule(s.db, testioc.InitCache())
	am := address.InitModule(s.db)
	cartModule := cart.InitModule(s.db, cm)
	m, err := order.InitModule(s.db, testioc.InitMQ(), am, cartModule, &payment.Module{Svc: paymentSvc})
	require.NoError(s.T(), err)
	s.module = m
	s.cartSvc = cartModule.Svc

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  testUID,
			Data: map[string]string{"openid": "o-test-openid"},
		}))
	})
	m.Hdl.PrivateRoutes(server.Engine)
	s.server = server

	// 用户端和管理端的路由有重叠
	s.admin = gin.New()
	m.AdminHdl.PrivateRoutes(s.admin)

	s.dishID, err = cm.DishSvc.Create(context.Background(), catalog.Dish{
		CategoryID: 1,
		Name:       "宫保鸡丁",
		Price:      3200,
		Status:     catalog.StatusOnSale,
	})
	require.NoError(s.T(), err)
	s.addressID, err = am.Svc.Save(context.Background(), address.Address{
		UserID:       testUID,
		Consignee:    "张三",
		Phone:        "13800000000",
		ProvinceName: "北京市",
		CityName:     "北京市",
		DistrictName: "海淀区",
		Detail:       "中关村大街1号",
	})
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TearDownSuite() {
	for _, table := range []string{"orders", "order_detail", "shopping_cart", "address_book",
		"dish", "dish_flavor", "setmeal", "setmeal_dish"} {
		err := s.db.Exec("DROP TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

func (s *HandlerTestSuite) TearDownTest() {
	for _, table := range []string{"orders", "order_detail", "shopping_cart"} {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

func (s *HandlerTestSuite) TestSubmitEmptyCart() {
	res := s.post(s.T(), "/order/submit", web.SubmitReq{AddressBookID: s.addressID, PayMethod: 1})
	assert.Equal(s.T(), errs.EmptyCart.Code, res.Code)
}

func (s *HandlerTestSuite) TestSubmitAddressNotFound() {
	s.addToCart(2)
	res := s.post(s.T(), "/order/submit", web.SubmitReq{AddressBookID: s.addressID + 1000, PayMethod: 1})
	assert.Equal(s.T(), errs.AddressNotFound.Code, res.Code)
}

func (s *HandlerTestSuite) TestOrderLifecycle() {
	t := s.T()
	s.addToCart(2)

	submitted := s.submit(t)
	assert.Equal(t, int64(6400+600), submitted.OrderAmount)
	assert.Len(t, submitted.OrderNumber, 32)

	items, err := s.cartSvc.List(context.Background(), testUID)
	require.NoError(t, err)
	assert.Len(t, items, 0)

	res := s.post(t, "/order/payment", web.PaymentReq{OrderNumber: submitted.OrderNumber})
	require.Equal(t, 0, res.Code)

	// 模拟支付回调
	err = s.module.Svc.PaySuccess(context.Background(), submitted.OrderNumber)
	require.NoError(t, err)
	o := s.detail(t, submitted.ID)
	assert.Equal(t, order.StatusToBeConfirmed.ToUint8(), o.Status)
	assert.Equal(t, uint8(1), o.PayStatus)
	assert.Equal(t, "宫保鸡丁", o.OrderDetailList[0].Name)

	assert.Equal(t, 0, s.adminPost(t, "/order/confirm", web.IDReq{ID: submitted.ID}).Code)
	// 已接单的订单不能再次接单
	assert.Equal(t, errs.InvalidOrderStatus.Code, s.adminPost(t, "/order/confirm", web.IDReq{ID: submitted.ID}).Code)
	assert.Equal(t, 0, s.adminPost(t, "/order/delivery", web.IDReq{ID: submitted.ID}).Code)
	assert.Equal(t, 0, s.adminPost(t, "/order/complete", web.IDReq{ID: submitted.ID}).Code)

	o = s.detail(t, submitted.ID)
	assert.Equal(t, order.StatusCompleted.ToUint8(), o.Status)
	assert.NotZero(t, o.DeliveryTime)

	// 再来一单
	assert.Equal(t, 0, s.post(t, "/order/repetition", web.IDReq{ID: submitted.ID}).Code)
	items, err = s.cartSvc.List(context.Background(), testUID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].Number)
}

func (s *HandlerTestSuite) TestUserCancelPaidOrder() {
	t := s.T()
	s.addToCart(1)
	submitted := s.submit(t)
	require.NoError(t, s.module.Svc.PaySuccess(context.Background(), submitted.OrderNumber))

	assert.Equal(t, 0, s.post(t, "/order/cancel", web.IDReq{ID: submitted.ID}).Code)
	o := s.detail(t, submitted.ID)
	assert.Equal(t, order.StatusCancelled.ToUint8(), o.Status)
	assert.Equal(t, uint8(2), o.PayStatus)
	assert.Equal(t, "用户取消", o.CancelReason)
}

func (s *HandlerTestSuite) TestHistoryAndStatistics() {
	t := s.T()
	for i := 0; i < 3; i++ {
		s.addToCart(1)
		submitted := s.submit(t)
		require.NoError(t, s.module.Svc.PaySuccess(context.Background(), submitted.OrderNumber))
	}

	req, err := http.NewRequest(http.MethodPost, "/order/history", iox.NewJSONReader(web.HistoryReq{Offset: 0, Limit: 2}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.OrderList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	list := recorder.MustScan().Data
	assert.Equal(t, int64(3), list.Total)
	assert.Len(t, list.Orders, 2)

	req, err = http.NewRequest(http.MethodGet, "/order/statistics", nil)
	require.NoError(t, err)
	statsRecorder := test.NewJSONResponseRecorder[web.Statistics]()
	s.admin.ServeHTTP(statsRecorder, req)
	require.Equal(t, 200, statsRecorder.Code)
	assert.Equal(t, web.Statistics{ToBeConfirmed: 3}, statsRecorder.MustScan().Data)
}

func (s *HandlerTestSuite) addToCart(n int) {
	for i := 0; i < n; i++ {
		err := s.cartSvc.Add(context.Background(), testUID, cart.Item{DishID: s.dishID})
		require.NoError(s.T(), err)
	}
}

func (s *HandlerTestSuite) submit(t *testing.T) web.SubmitResp {
	req, err := http.NewRequest(http.MethodPost, "/order/submit", iox.NewJSONReader(web.SubmitReq{
		AddressBookID:   s.addressID,
		PayMethod:       1,
		PackAmount:      600,
		TablewareNumber: 1,
	}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.SubmitResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	res := recorder.MustScan()
	require.Equal(t, 0, res.Code)
	return res.Data
}

func (s *HandlerTestSuite) detail(t *testing.T, id int64) web.Order {
	req, err := http.NewRequest(http.MethodPost, "/order/detail", iox.NewJSONReader(web.IDReq{ID: id}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Order]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	res := recorder.MustScan()
	require.Equal(t, 0, res.Code)
	return res.Data
}

func (s *HandlerTestSuite) post(t *testing.T, path string, body any) test.Result[any] {
	return s.serve(t, s.server, path, body)
}

func (s *HandlerTestSuite) adminPost(t *testing.T, path string, body any) test.Result[any] {
	return s.serve(t, s.admin, path, body)
}

func (s *HandlerTestSuite) serve(t *testing.T, h http.Handler, path string, body any) test.Result[any] {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	h.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	return recorder.MustScan()
}

func TestOrderHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
