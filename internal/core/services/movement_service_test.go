package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/contabilidad_app/internal/apperrors"
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	portssvc "github.com/SscSPs/contabilidad_app/internal/core/ports/services"
	"github.com/SscSPs/contabilidad_app/internal/core/services"
	"github.com/SscSPs/contabilidad_app/internal/dto"
	"github.com/SscSPs/contabilidad_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var fixedNow = time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC)

type MovementServiceTestSuite struct {
	suite.Suite
	movementRepo *MockMovementRepository
	accountRepo  *MockAccountRepository
	companyRepo  *MockCompanyRepository
	service      portssvc.MovementSvcFacade
	chart        map[int64]domain.Account
}

func (suite *MovementServiceTestSuite) SetupTest() {
	suite.movementRepo = new(MockMovementRepository)
	suite.accountRepo = new(MockAccountRepository)
	suite.companyRepo = new(MockCompanyRepository)
	suite.service = services.NewMovementService(
		suite.movementRepo,
		suite.accountRepo,
		services.WithCompanyRepository(suite.companyRepo),
		services.WithClock(func() time.Time { return fixedNow }),
	)

	suite.chart = make(map[int64]domain.Account)
	for _, a := range accounting.DefaultChart() {
		suite.chart[a.AccountID] = a
	}
}

// expectAccounts answers FindAccountsByIDs from the default chart.
func (suite *MovementServiceTestSuite) expectAccounts(ids ...int64) {
	found := make(map[int64]domain.Account)
	for _, id := range ids {
		if a, ok := suite.chart[id]; ok {
			found[id] = a
		}
	}
	suite.accountRepo.On("FindAccountsByIDs", mock.Anything, ids).Return(found, nil).Once()
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func (suite *MovementServiceTestSuite) TestPostEntry_Success() {
	req := dto.CreateEntryRequest{
		Date:        "2024-01-05",
		Description: "Venta de contado",
		Lines: []dto.EntryLineRequest{
			{AccountID: 1, Amount: amount("5000"), Side: domain.Debit},
			{AccountID: 23, Amount: amount("5000"), Side: domain.Credit},
		},
	}
	suite.expectAccounts(1, 23)

	suite.movementRepo.On("AppendEntry", mock.Anything,
		mock.MatchedBy(func(h domain.EntryHeader) bool {
			return h.Description == "Venta de contado" &&
				h.Date.Equal(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)) &&
				h.CreatedBy == "contador" && h.CreatedAt.Equal(fixedNow)
		}),
		mock.MatchedBy(func(lines []domain.EntryLine) bool {
			return len(lines) == 2 &&
				lines[0].Debit.Equal(amount("5000")) && lines[0].Credit.IsZero() &&
				lines[1].Credit.Equal(amount("5000")) && lines[1].Debit.IsZero()
		}),
		false,
	).Return(func() []domain.Movement {
		header := domain.EntryHeader{Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), Description: "Venta de contado"}
		return storedMovements(header, []domain.EntryLine{
			{AccountID: 1, Debit: amount("5000"), Credit: decimal.Zero},
			{AccountID: 23, Debit: decimal.Zero, Credit: amount("5000")},
		}, 2)
	}(), nil).Once()

	movements, err := suite.service.PostEntry(context.Background(), req, "contador")

	suite.Require().NoError(err)
	suite.Len(movements, 2)
	suite.Equal(int64(2), movements[0].EntryNumber)
	suite.movementRepo.AssertExpectations(suite.T())
	suite.accountRepo.AssertExpectations(suite.T())
}

func (suite *MovementServiceTestSuite) TestPostEntry_Unbalanced() {
	req := dto.CreateEntryRequest{
		Date:        "2024-01-05",
		Description: "Venta",
		Lines: []dto.EntryLineRequest{
			{AccountID: 1, Amount: amount("5000"), Side: domain.Debit},
			{AccountID: 23, Amount: amount("4999.99"), Side: domain.Credit},
		},
	}

	_, err := suite.service.PostEntry(context.Background(), req, "contador")

	suite.ErrorIs(err, apperrors.ErrEntryUnbalanced)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.movementRepo.AssertNotCalled(suite.T(), "AppendEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *MovementServiceTestSuite) TestPostEntry_Rejections() {
	balanced := []dto.EntryLineRequest{
		{AccountID: 1, Amount: amount("10"), Side: domain.Debit},
		{AccountID: 23, Amount: amount("10"), Side: domain.Credit},
	}
	tests := []struct {
		name string
		req  dto.CreateEntryRequest
	}{
		{"bad date", dto.CreateEntryRequest{Date: "05/01/2024", Description: "Venta", Lines: balanced}},
		{"reserved description", dto.CreateEntryRequest{Date: "2024-01-05", Description: domain.OpeningEntryDescription, Lines: balanced}},
		{"blank description", dto.CreateEntryRequest{Date: "2024-01-05", Description: " ", Lines: balanced}},
		{"single line", dto.CreateEntryRequest{Date: "2024-01-05", Description: "Venta", Lines: balanced[:1]}},
		{"unknown side", dto.CreateEntryRequest{Date: "2024-01-05", Description: "Venta", Lines: []dto.EntryLineRequest{
			{AccountID: 1, Amount: amount("10"), Side: "LEFT"},
			{AccountID: 23, Amount: amount("10"), Side: domain.Credit},
		}}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.PostEntry(context.Background(), tt.req, "contador")
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.movementRepo.AssertNotCalled(suite.T(), "AppendEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *MovementServiceTestSuite) TestPostEntry_UnknownAccount() {
	req := dto.CreateEntryRequest{
		Date:        "2024-01-05",
		Description: "Venta",
		Lines: []dto.EntryLineRequest{
			{AccountID: 1, Amount: amount("10"), Side: domain.Debit},
			{AccountID: 999, Amount: amount("10"), Side: domain.Credit},
		},
	}
	suite.expectAccounts(1, 999)

	_, err := suite.service.PostEntry(context.Background(), req, "contador")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "account 999 not found")
}

func (suite *MovementServiceTestSuite) openingRequest() dto.CreateOpeningEntryRequest {
	return dto.CreateOpeningEntryRequest{
		CompanyName: "Comercializadora del Norte",
		Date:        "2024-01-01",
		Items: []dto.OpeningItemRequest{
			{AccountID: 1, Amount: amount("100000")},
			{AccountID: 16, Amount: amount("20000")},
			{AccountID: 21, Amount: amount("80000")},
		},
	}
}

func (suite *MovementServiceTestSuite) TestPostOpeningEntry_OnlyOnce() {
	suite.movementRepo.On("OpeningEntryExists", mock.Anything).Return(false, nil).Once()
	suite.expectAccounts(1, 16, 21)
	suite.movementRepo.On("AppendEntry", mock.Anything,
		mock.MatchedBy(func(h domain.EntryHeader) bool { return h.Description == domain.OpeningEntryDescription }),
		mock.MatchedBy(func(lines []domain.EntryLine) bool {
			// Assets on the debit side; liabilities and equity on the credit side.
			return lines[0].Debit.Equal(amount("100000")) &&
				lines[1].Credit.Equal(amount("20000")) &&
				lines[2].Credit.Equal(amount("80000"))
		}),
		true,
	).Return([]domain.Movement{{MovementID: 1, EntryNumber: domain.OpeningEntryNumber}}, nil).Once()
	suite.companyRepo.On("SaveCompany", mock.Anything, mock.MatchedBy(func(c domain.Company) bool {
		return c.Name == "Comercializadora del Norte"
	})).Return(nil).Once()

	movements, err := suite.service.PostOpeningEntry(context.Background(), suite.openingRequest(), "contador")
	suite.Require().NoError(err)
	suite.Equal(domain.OpeningEntryNumber, movements[0].EntryNumber)

	recorded, err := suite.service.OpeningEntryRecorded(context.Background())
	suite.Require().NoError(err)
	suite.True(recorded)

	_, err = suite.service.PostOpeningEntry(context.Background(), suite.openingRequest(), "contador")
	suite.ErrorIs(err, apperrors.ErrOpeningEntryExists)

	suite.movementRepo.AssertExpectations(suite.T())
	suite.companyRepo.AssertExpectations(suite.T())
}

func (suite *MovementServiceTestSuite) TestPostOpeningEntry_AlreadyStored() {
	suite.movementRepo.On("OpeningEntryExists", mock.Anything).Return(true, nil).Once()

	_, err := suite.service.PostOpeningEntry(context.Background(), suite.openingRequest(), "contador")

	suite.ErrorIs(err, apperrors.ErrOpeningEntryExists)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.accountRepo.AssertNotCalled(suite.T(), "FindAccountsByIDs", mock.Anything, mock.Anything)
}

func (suite *MovementServiceTestSuite) TestPostOpeningEntry_RecordedByAnotherProcess() {
	suite.movementRepo.On("OpeningEntryExists", mock.Anything).Return(false, nil).Once()
	suite.expectAccounts(1, 16, 21)
	suite.movementRepo.On("AppendEntry", mock.Anything, mock.Anything, mock.Anything, true).
		Return(nil, apperrors.ErrOpeningEntryExists).Once()

	_, err := suite.service.PostOpeningEntry(context.Background(), suite.openingRequest(), "contador")
	suite.ErrorIs(err, apperrors.ErrOpeningEntryExists)

	recorded, err := suite.service.OpeningEntryRecorded(context.Background())
	suite.Require().NoError(err)
	suite.True(recorded)
}

func (suite *MovementServiceTestSuite) TestPostOpeningEntry_Unbalanced() {
	req := suite.openingRequest()
	req.Items[2].Amount = amount("70000")
	suite.movementRepo.On("OpeningEntryExists", mock.Anything).Return(false, nil).Once()
	suite.expectAccounts(1, 16, 21)

	_, err := suite.service.PostOpeningEntry(context.Background(), req, "contador")

	suite.ErrorIs(err, apperrors.ErrEntryUnbalanced)
	suite.Contains(err.Error(), "invalid opening entry")

	recorded, err := suite.service.OpeningEntryRecorded(context.Background())
	suite.Require().NoError(err)
	suite.False(recorded)
}

func (suite *MovementServiceTestSuite) TestPostOpeningEntry_ResultAccountRejected() {
	req := dto.CreateOpeningEntryRequest{
		Date: "2024-01-01",
		Items: []dto.OpeningItemRequest{
			{AccountID: 1, Amount: amount("100")},
			{AccountID: 23, Amount: amount("100")},
		},
	}
	suite.movementRepo.On("OpeningEntryExists", mock.Anything).Return(false, nil).Once()
	suite.expectAccounts(1, 23)

	_, err := suite.service.PostOpeningEntry(context.Background(), req, "contador")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "cannot carry an opening balance")
}

func (suite *MovementServiceTestSuite) TestPostOpeningEntry_ConcurrentCallsRecordOnce() {
	suite.movementRepo.On("OpeningEntryExists", mock.Anything).Return(false, nil).Once()
	suite.accountRepo.On("FindAccountsByIDs", mock.Anything, []int64{1, 16, 21}).
		Return(map[int64]domain.Account{1: suite.chart[1], 16: suite.chart[16], 21: suite.chart[21]}, nil)
	suite.movementRepo.On("AppendEntry", mock.Anything, mock.Anything, mock.Anything, true).
		Return([]domain.Movement{{MovementID: 1, EntryNumber: domain.OpeningEntryNumber}}, nil).Once()
	suite.companyRepo.On("SaveCompany", mock.Anything, mock.Anything).Return(nil).Once()

	const callers = 8
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = suite.service.PostOpeningEntry(context.Background(), suite.openingRequest(), "contador")
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		suite.ErrorIs(err, apperrors.ErrOpeningEntryExists)
	}
	suite.Equal(1, succeeded)
	suite.movementRepo.AssertNumberOfCalls(suite.T(), "AppendEntry", 1)
}

func (suite *MovementServiceTestSuite) TestListMovements() {
	token := "next"
	suite.movementRepo.On("ListMovements", mock.Anything, mock.MatchedBy(func(f domain.MovementFilter) bool {
		return f.Description == domain.OpeningEntryDescription &&
			f.Period != nil && f.Period.String() == "2024-01-01..2024-01-31" &&
			f.Limit == 100 && f.NextToken == nil
	})).Return([]domain.Movement{{MovementID: 1, AccountID: 1, Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Debit: amount("100000"), Credit: decimal.Zero}}, &token, nil).Once()

	resp, err := suite.service.ListMovements(context.Background(), dto.ListMovementsParams{
		Description: domain.OpeningEntryDescription,
		FromDate:    "2024-01-01",
		ToDate:      "2024-01-31",
	})

	suite.Require().NoError(err)
	suite.Len(resp.Movements, 1)
	suite.Equal("2024-01-01", resp.Movements[0].Date)
	suite.Equal(&token, resp.NextToken)
}

func (suite *MovementServiceTestSuite) TestListMovements_InvalidPeriod() {
	_, err := suite.service.ListMovements(context.Background(), dto.ListMovementsParams{FromDate: "2024-01-01"})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.ListMovements(context.Background(), dto.ListMovementsParams{FromDate: "2024-02-01", ToDate: "2024-01-01"})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *MovementServiceTestSuite) TestNextEntryNumber() {
	suite.movementRepo.On("NextEntryNumber", mock.Anything).Return(int64(2), nil).Once()

	next, err := suite.service.NextEntryNumber(context.Background())

	suite.Require().NoError(err)
	suite.Equal(int64(2), next)
}

func TestMovementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MovementServiceTestSuite))
}
