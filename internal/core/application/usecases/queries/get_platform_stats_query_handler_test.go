package queries_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/offerrepo"
	"marketplace/internal/adapters/out/postgres/reviewrepo"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/offer"
	"marketplace/internal/core/domain/model/review"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetPlatformStatsQueryHandlerTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	handler     queries.GetPlatformStatsQueryHandler
	packageRepo *offerrepo.GormPackageRepository
	reviewRepo  *reviewrepo.GormReviewRepository
}

func (suite *GetPlatformStatsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&offerrepo.PackageDTO{}, &reviewrepo.ReviewDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetPlatformStatsQueryHandler(db)
	suite.packageRepo = offerrepo.NewGormPackageRepository(db)
	suite.reviewRepo = reviewrepo.NewGormReviewRepository(db, &mockAggregateTracker{})
}

func (suite *GetPlatformStatsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetPlatformStatsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE packages, reviews").Error
	suite.Require().NoError(err)
}

func (suite *GetPlatformStatsQueryHandlerTestSuite) seedPackage(offerID, businessID kernel.UUID, tier offer.Tier) {
	pkg, err := offer.NewPackage(
		kernel.NewUUID(), offerID, businessID,
		"Logo design", "Vector logo with revisions",
		tier,
		decimal.RequireFromString("120.00"),
		2, 5,
		[]string{"source files"},
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.packageRepo.Add(context.Background(), pkg))
}

func (suite *GetPlatformStatsQueryHandlerTestSuite) seedReview(rating int) {
	r, err := review.NewReview(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), rating, "")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.reviewRepo.Add(context.Background(), r))
}

func (suite *GetPlatformStatsQueryHandlerTestSuite) TestHandle_AggregatesPlatformWide() {
	businessA := kernel.NewUUID()
	businessB := kernel.NewUUID()
	offerA := kernel.NewUUID()
	offerB := kernel.NewUUID()

	// Two packages of the same offer count as one offer.
	suite.seedPackage(offerA, businessA, offer.TierBasic)
	suite.seedPackage(offerA, businessA, offer.TierPremium)
	suite.seedPackage(offerB, businessB, offer.TierStandard)

	suite.seedReview(3)
	suite.seedReview(4)
	suite.seedReview(5)

	query := queries.NewGetPlatformStatsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(3, result.ReviewCount)
	suite.InDelta(4.0, result.AverageRating, 0.001)
	suite.Equal(2, result.BusinessCount)
	suite.Equal(2, result.OfferCount)
}

func (suite *GetPlatformStatsQueryHandlerTestSuite) TestHandle_AverageRoundsToOneDecimal() {
	suite.seedReview(4)
	suite.seedReview(4)
	suite.seedReview(5)

	query := queries.NewGetPlatformStatsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.InDelta(4.3, result.AverageRating, 0.001)
}

func (suite *GetPlatformStatsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsZeros() {
	query := queries.NewGetPlatformStatsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(0, result.ReviewCount)
	suite.InDelta(0.0, result.AverageRating, 0.001)
	suite.Equal(0, result.BusinessCount)
	suite.Equal(0, result.OfferCount)
}

func (suite *GetPlatformStatsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetPlatformStatsQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetPlatformStatsQuery constructor")
}

func TestGetPlatformStatsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetPlatformStatsQueryHandlerTestSuite))
}
