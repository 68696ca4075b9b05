package api

import (
	"io"
	"net/http"
	"time"

	"github.com/fsdevblog/bookstore/internal/domain"
	"github.com/fsdevblog/bookstore/internal/logger"
	"github.com/fsdevblog/bookstore/internal/service/tokens"
	"github.com/fsdevblog/bookstore/internal/transport/api/mocks"
	"github.com/fsdevblog/bookstore/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

const (
	testUserID  int64 = 1
	testAdminID int64 = 99
)

// handlerSuite общая часть тестов обработчиков: роутер с моками сервисов и токены пользователя и админа.
type handlerSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	router         *gin.Engine
	cartService    *mocks.MockCartServicer
	orderService   *mocks.MockOrderServicer
	coinService    *mocks.MockCoinServicer
	promoService   *mocks.MockPromotionServicer
	contentService *mocks.MockContentServicer
	jwtSecret      []byte
	userToken      string
	adminToken     string
}

func (s *handlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())

	s.cartService = mocks.NewMockCartServicer(s.mockCtrl)
	s.orderService = mocks.NewMockOrderServicer(s.mockCtrl)
	s.coinService = mocks.NewMockCoinServicer(s.mockCtrl)
	s.promoService = mocks.NewMockPromotionServicer(s.mockCtrl)
	s.contentService = mocks.NewMockContentServicer(s.mockCtrl)
	s.jwtSecret = []byte("super secret key")

	var err error
	s.router, err = New(RouterArgs{
		Logger:           logger.New(io.Discard),
		CartService:      s.cartService,
		OrderService:     s.orderService,
		CoinService:      s.coinService,
		PromotionService: s.promoService,
		ContentService:   s.contentService,
		JWTSecretKey:     s.jwtSecret,
	})
	s.Require().NoError(err)

	s.userToken, err = tokens.GenerateUserJWT(testUserID, domain.RoleUser, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
	s.adminToken, err = tokens.GenerateUserJWT(testAdminID, domain.RoleAdmin, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
}

func (s *handlerSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// request выполняет запрос к роутеру. body сериализуется в json, если не nil.
func (s *handlerSuite) request(method, url, token string, body any) *http.Response {
	var reader io.Reader
	if body != nil {
		var err error
		reader, err = testutils.JSONBody(body)
		s.Require().NoError(err)
	}

	var opts []func(*testutils.RequestOptions)
	if token != "" {
		opts = append(opts, testutils.WithBearer(token))
	}
	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: method,
		URL:    RouteGroup + url,
		Body:   reader,
	}, opts...)
	s.Require().NoError(err)
	return resp
}

// requireError проверяет статус и код ошибки в теле ответа.
func (s *handlerSuite) requireError(resp *http.Response, status int, code string) {
	s.Require().Equal(status, resp.StatusCode)
	var body errorResponse
	s.Require().NoError(testutils.DecodeJSON(resp, &body))
	s.Equal(code, body.Error.Code)
}
