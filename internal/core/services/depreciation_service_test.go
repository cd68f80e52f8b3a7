package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/RogerFilm/accounting/internal/apperrors"
	"github.com/RogerFilm/accounting/internal/core/domain"
	portssvc "github.com/RogerFilm/accounting/internal/core/ports/services"
	"github.com/RogerFilm/accounting/internal/core/services"
	"github.com/RogerFilm/accounting/internal/dto"
)

type DepreciationServiceTestSuite struct {
	suite.Suite
	mockAssetRepo   *MockFixedAssetRepository
	mockCompanyRepo *MockCompanyRepository
	mockJournalRepo *MockJournalRepository
	service         portssvc.DepreciationSvcFacade
	ctx             context.Context
}

func (s *DepreciationServiceTestSuite) SetupTest() {
	s.mockAssetRepo = new(MockFixedAssetRepository)
	s.mockCompanyRepo = new(MockCompanyRepository)
	s.mockJournalRepo = new(MockJournalRepository)
	s.service = services.NewDepreciationService(s.mockAssetRepo, s.mockCompanyRepo, s.mockJournalRepo)
	s.ctx = context.Background()
}

func marchEndCompany() *domain.Company {
	return &domain.Company{
		CompanyID:          testCompanyID,
		Name:               "テスト株式会社",
		FiscalYearEndMonth: 3,
		TaxMethod:          domain.StandardMethod,
	}
}

// scheduleInput is a 300,000 yen asset over 4 years, acquired at the start
// of a March-ending fiscal year.
func scheduleInput(method domain.DepreciationMethod) domain.DepreciationInput {
	return domain.DepreciationInput{
		AcquisitionCost:    300000,
		ResidualValue:      1,
		UsefulLife:         4,
		Method:             method,
		AcquisitionDate:    time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		FiscalYearEndMonth: 3,
	}
}

func scheduleTotal(rows []domain.DepreciationScheduleRow) int64 {
	var total int64
	for _, row := range rows {
		total += row.DepreciationAmount
	}
	return total
}

func (s *DepreciationServiceTestSuite) TestStraightLine_LandsOnResidualValue() {
	rows, err := s.service.GenerateSchedule(scheduleInput(domain.StraightLine))

	s.Require().NoError(err)
	s.Require().Len(rows, 5)

	// (300000-1)/4 = 74999 per full year; the extra row absorbs the drift.
	for y := 0; y < 4; y++ {
		s.Equal(int64(74999), rows[y].DepreciationAmount)
	}
	s.Equal(int64(3), rows[4].DepreciationAmount)

	s.Equal("2024", rows[0].FiscalYear)
	s.Equal("2028", rows[4].FiscalYear)
	s.Equal(int64(1), rows[4].EndBookValue)
	s.Equal(int64(299999), rows[4].AccumulatedDepreciation)
	s.Equal(int64(299999), scheduleTotal(rows))
}

func (s *DepreciationServiceTestSuite) TestStraightLine_FirstYearProRatedByMonths() {
	input := domain.DepreciationInput{
		AcquisitionCost:    120000,
		ResidualValue:      0,
		UsefulLife:         5,
		Method:             domain.StraightLine,
		AcquisitionDate:    time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC),
		FiscalYearEndMonth: 3,
	}

	rows, err := s.service.GenerateSchedule(input)

	s.Require().NoError(err)
	s.Require().Len(rows, 6)
	// October acquisition with a March year end leaves 6 months: 24000 * 6/12.
	s.Equal(int64(12000), rows[0].DepreciationAmount)
	s.Equal(int64(24000), rows[1].DepreciationAmount)
	s.Equal(int64(12000), rows[5].DepreciationAmount)
	s.Equal(int64(120000), scheduleTotal(rows))
	s.Zero(rows[5].EndBookValue)
}

func (s *DepreciationServiceTestSuite) TestDecliningBalance_GuaranteeSwitchover() {
	input := domain.DepreciationInput{
		AcquisitionCost:    1000000,
		ResidualValue:      1,
		UsefulLife:         10,
		Method:             domain.DecliningBalance,
		AcquisitionDate:    time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		FiscalYearEndMonth: 3,
	}

	rows, err := s.service.GenerateSchedule(input)

	s.Require().NoError(err)
	s.Require().Len(rows, 10)

	// 200% rate on a 10-year life is 0.2.
	s.Equal(int64(200000), rows[0].DepreciationAmount)
	s.Equal(int64(160000), rows[1].DepreciationAmount)

	// Year 8 candidate 41943 falls below the guarantee of 44480 and the
	// schedule switches to 209716/3 per remaining year, never reverting.
	s.Equal(int64(69905), rows[7].DepreciationAmount)
	s.Equal(int64(69905), rows[8].DepreciationAmount)
	s.Equal(int64(69905), rows[9].DepreciationAmount)

	s.Equal(int64(1), rows[9].EndBookValue)
	s.Equal(int64(999999), scheduleTotal(rows))
}

func (s *DepreciationServiceTestSuite) TestImmediate_SingleRow() {
	rows, err := s.service.GenerateSchedule(scheduleInput(domain.Immediate))

	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal(int64(299999), rows[0].DepreciationAmount)
	s.Equal("2024", rows[0].FiscalYear)
	s.Equal(int64(1), rows[0].EndBookValue)
}

func (s *DepreciationServiceTestSuite) TestBulk3Year_RemainderInThirdRow() {
	input := domain.DepreciationInput{
		AcquisitionCost:    100000,
		ResidualValue:      0,
		UsefulLife:         3,
		Method:             domain.Bulk3Year,
		AcquisitionDate:    time.Date(2024, 7, 20, 0, 0, 0, 0, time.UTC),
		FiscalYearEndMonth: 3,
	}

	rows, err := s.service.GenerateSchedule(input)

	s.Require().NoError(err)
	s.Require().Len(rows, 3)
	s.Equal(int64(33333), rows[0].DepreciationAmount)
	s.Equal(int64(33333), rows[1].DepreciationAmount)
	s.Equal(int64(33334), rows[2].DepreciationAmount)
	s.Zero(rows[2].EndBookValue)
}

func (s *DepreciationServiceTestSuite) TestGenerateSchedule_Validation() {
	bad := scheduleInput(domain.StraightLine)
	bad.Method = "sum_of_years"
	_, err := s.service.GenerateSchedule(bad)
	s.Require().ErrorIs(err, apperrors.ErrUnsupportedMethod)

	bad = scheduleInput(domain.StraightLine)
	bad.UsefulLife = 0
	_, err = s.service.GenerateSchedule(bad)
	s.Require().ErrorIs(err, apperrors.ErrValidation)

	bad = scheduleInput(domain.StraightLine)
	bad.AcquisitionCost = 0
	_, err = s.service.GenerateSchedule(bad)
	s.Require().ErrorIs(err, apperrors.ErrValidation)

	bad = scheduleInput(domain.StraightLine)
	bad.ResidualValue = bad.AcquisitionCost + 1
	_, err = s.service.GenerateSchedule(bad)
	s.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (s *DepreciationServiceTestSuite) TestCurrentYearDepreciation() {
	input := scheduleInput(domain.StraightLine)

	amount, err := s.service.CurrentYearDepreciation(input, "2028")
	s.Require().NoError(err)
	s.Equal(int64(3), amount)

	amount, err = s.service.CurrentYearDepreciation(input, "2030")
	s.Require().NoError(err)
	s.Zero(amount)
}

func (s *DepreciationServiceTestSuite) TestCreateAsset_ResidualValueDefaultsToOneYen() {
	s.mockCompanyRepo.On("FindCompanyByID", s.ctx, testCompanyID).Return(marchEndCompany(), nil)
	s.mockAssetRepo.On("SaveAsset", s.ctx, mock.AnythingOfType("domain.FixedAsset")).Return(nil)

	asset, err := s.service.CreateAsset(s.ctx, testCompanyID, dto.CreateFixedAssetRequest{
		Name:                  "業務用プリンタ",
		Category:              "工具器具備品",
		AcquisitionDate:       "2024-04-01",
		AcquisitionCost:       300000,
		UsefulLife:            4,
		DepreciationMethod:    "straight_line",
		AccountID:             "acc-equipment",
		DepreciationAccountID: "acc-depreciation",
	})

	s.Require().NoError(err)
	s.Equal(int64(1), asset.ResidualValue)
	s.NotEmpty(asset.AssetID)
	s.mockAssetRepo.AssertExpectations(s.T())
}

func (s *DepreciationServiceTestSuite) TestCreateAsset_UnschedulableAssetIsRejected() {
	s.mockCompanyRepo.On("FindCompanyByID", s.ctx, testCompanyID).Return(marchEndCompany(), nil)

	_, err := s.service.CreateAsset(s.ctx, testCompanyID, dto.CreateFixedAssetRequest{
		Name:                  "備品",
		AcquisitionDate:       "2024-04-01",
		AcquisitionCost:       100,
		UsefulLife:            4,
		DepreciationMethod:    "straight_line",
		ResidualValue:         500,
		AccountID:             "acc-equipment",
		DepreciationAccountID: "acc-depreciation",
	})

	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.mockAssetRepo.AssertNotCalled(s.T(), "SaveAsset")
}

func (s *DepreciationServiceTestSuite) TestListAssetDepreciation_SkipsDisposedAssets() {
	disposed := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	s.mockCompanyRepo.On("FindCompanyByID", s.ctx, testCompanyID).Return(marchEndCompany(), nil)
	s.mockAssetRepo.On("ListAssets", s.ctx, testCompanyID).Return([]domain.FixedAsset{
		{
			AssetID:            "asset-1",
			CompanyID:          testCompanyID,
			Name:               "サーバー",
			AcquisitionDate:    time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			AcquisitionCost:    300000,
			UsefulLife:         4,
			DepreciationMethod: domain.StraightLine,
			ResidualValue:      1,
		},
		{
			AssetID:            "asset-2",
			CompanyID:          testCompanyID,
			Name:               "旧サーバー",
			AcquisitionDate:    time.Date(2022, 4, 1, 0, 0, 0, 0, time.UTC),
			AcquisitionCost:    200000,
			UsefulLife:         4,
			DepreciationMethod: domain.StraightLine,
			ResidualValue:      1,
			DisposalDate:       &disposed,
		},
	}, nil)

	results, err := s.service.ListAssetDepreciation(s.ctx, testCompanyID, "2024")

	s.Require().NoError(err)
	s.Require().Len(results, 1)
	s.Equal("asset-1", results[0].Asset.AssetID)
	s.Equal(int64(74999), results[0].CurrentYearAmount)
	s.Equal(int64(74999), results[0].AccumulatedDepreciation)
	s.Equal(int64(225001), results[0].BookValue)
}

func (s *DepreciationServiceTestSuite) TestPostDepreciation_CreatesConfirmedEntryPerAsset() {
	s.mockCompanyRepo.On("FindCompanyByID", s.ctx, testCompanyID).Return(marchEndCompany(), nil)
	s.mockAssetRepo.On("ListAssets", s.ctx, testCompanyID).Return([]domain.FixedAsset{
		{
			AssetID:               "asset-1",
			CompanyID:             testCompanyID,
			Name:                  "社用車",
			AcquisitionDate:       time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			AcquisitionCost:       300000,
			UsefulLife:            4,
			DepreciationMethod:    domain.StraightLine,
			ResidualValue:         1,
			AccountID:             "acc-vehicles",
			DepreciationAccountID: "acc-depreciation",
		},
	}, nil)

	var posted domain.JournalEntry
	s.mockJournalRepo.On("SaveEntry", s.ctx, mock.AnythingOfType("domain.JournalEntry")).
		Run(func(args mock.Arguments) { posted = args.Get(1).(domain.JournalEntry) }).
		Return(nil)

	created, err := s.service.PostDepreciation(s.ctx, testCompanyID, "2024")

	s.Require().NoError(err)
	s.Require().Len(created, 1)
	s.Equal(posted.EntryID, created[0])

	s.Equal(domain.Confirmed, posted.Status)
	s.Equal(time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), posted.Date)
	s.Contains(posted.Description, "社用車")
	s.Require().Len(posted.Lines, 2)
	s.Equal(domain.DebitSide, posted.Lines[0].Side)
	s.Equal("acc-depreciation", posted.Lines[0].AccountID)
	s.Equal(domain.CreditSide, posted.Lines[1].Side)
	s.Equal("acc-vehicles", posted.Lines[1].AccountID)
	s.Equal(int64(74999), posted.Lines[0].Amount)
	s.Equal(posted.DebitTotal(), posted.CreditTotal())
}

func (s *DepreciationServiceTestSuite) TestPostDepreciation_NothingToPostOutsideSchedule() {
	s.mockCompanyRepo.On("FindCompanyByID", s.ctx, testCompanyID).Return(marchEndCompany(), nil)
	s.mockAssetRepo.On("ListAssets", s.ctx, testCompanyID).Return([]domain.FixedAsset{
		{
			AssetID:               "asset-1",
			CompanyID:             testCompanyID,
			Name:                  "社用車",
			AcquisitionDate:       time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			AcquisitionCost:       300000,
			UsefulLife:            4,
			DepreciationMethod:    domain.StraightLine,
			ResidualValue:         1,
			AccountID:             "acc-vehicles",
			DepreciationAccountID: "acc-depreciation",
		},
	}, nil)

	created, err := s.service.PostDepreciation(s.ctx, testCompanyID, "2035")

	s.Require().NoError(err)
	s.Empty(created)
	s.mockJournalRepo.AssertNotCalled(s.T(), "SaveEntry")
}

func TestDepreciationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DepreciationServiceTestSuite))
}
