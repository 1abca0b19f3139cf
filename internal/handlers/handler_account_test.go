package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/contabilidad_app/internal/apperrors"
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/SscSPs/contabilidad_app/internal/dto"
	"github.com/SscSPs/contabilidad_app/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AccountHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	accountService *MockAccountService
}

func (s *AccountHandlerTestSuite) SetupTest() {
	s.accountService = new(MockAccountService)
	router, v1 := newTestRouter()
	handlers.RegisterAccountRoutes(v1, s.accountService)
	s.router = router
}

func TestAccountHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}

func (s *AccountHandlerTestSuite) TestCreateAccount_Success() {
	req := dto.CreateAccountRequest{Name: "Bancos", Class: domain.Asset, Type: domain.TypeCurrent, CashFlowBucket: domain.BucketCashBank}
	created := &domain.Account{AccountID: 29, Name: "Bancos", Class: domain.Asset, Type: domain.TypeCurrent, CashFlowBucket: domain.BucketCashBank}
	s.accountService.On("CreateAccount", mock.Anything, req, "user-1").Return(created, nil).Once()

	w := performRequest(s.T(), s.router, http.MethodPost, "/api/v1/accounts",
		`{"name":"Bancos","class":"ASSET","type":"CURRENT","cashFlowBucket":"CASH_BANK"}`)

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.AccountResponse
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(int64(29), resp.AccountID)
	s.Equal(domain.BucketCashBank, resp.CashFlowBucket)
	s.accountService.AssertExpectations(s.T())
}

func (s *AccountHandlerTestSuite) TestCreateAccount_InvalidClass() {
	w := performRequest(s.T(), s.router, http.MethodPost, "/api/v1/accounts", `{"name":"Bancos","class":"CASH"}`)

	s.Equal(http.StatusBadRequest, w.Code)
	s.accountService.AssertNotCalled(s.T(), "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (s *AccountHandlerTestSuite) TestCreateAccount_ServiceErrors() {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"validation", apperrors.ErrValidation, http.StatusBadRequest},
		{"duplicate", apperrors.ErrDuplicate, http.StatusConflict},
		{"unexpected", assert.AnError, http.StatusInternalServerError},
	}
	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.accountService.On("CreateAccount", mock.Anything, mock.Anything, "user-1").Return(nil, tc.err).Once()

			w := performRequest(s.T(), s.router, http.MethodPost, "/api/v1/accounts", `{"name":"Ventas","class":"REVENUE"}`)

			s.Equal(tc.code, w.Code)
		})
	}
}

func (s *AccountHandlerTestSuite) TestGetAccount() {
	s.accountService.On("GetAccountByID", mock.Anything, int64(23)).
		Return(&domain.Account{AccountID: 23, Name: "Ventas", Class: domain.Revenue}, nil).Once()
	s.accountService.On("GetAccountByID", mock.Anything, int64(99)).
		Return(nil, apperrors.ErrNotFound).Once()

	s.Equal(http.StatusOK, performRequest(s.T(), s.router, http.MethodGet, "/api/v1/accounts/23", "").Code)
	s.Equal(http.StatusNotFound, performRequest(s.T(), s.router, http.MethodGet, "/api/v1/accounts/99", "").Code)
	s.Equal(http.StatusBadRequest, performRequest(s.T(), s.router, http.MethodGet, "/api/v1/accounts/abc", "").Code)
}

func (s *AccountHandlerTestSuite) TestListAccounts() {
	s.accountService.On("ListAccounts", mock.Anything).Return([]domain.Account{
		{AccountID: 1, Name: "Bancos", Class: domain.Asset},
		{AccountID: 23, Name: "Ventas", Class: domain.Revenue},
	}, nil).Once()

	w := performRequest(s.T(), s.router, http.MethodGet, "/api/v1/accounts", "")

	s.Equal(http.StatusOK, w.Code)
	var resp dto.ListAccountsResponse
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	s.Len(resp.Accounts, 2)
}

func (s *AccountHandlerTestSuite) TestRequiresToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusUnauthorized, w.Code)
}
