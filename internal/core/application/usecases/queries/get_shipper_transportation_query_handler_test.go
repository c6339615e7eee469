package queries_test

import (
	"context"
	"testing"
	"time"

	"shipping/internal/adapters/out/postgres/transportrepo"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/transportation"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// TransportationQueriesIntegrationTestSuite provides integration tests for the
// transportation read handlers using PostgreSQL containers.
type TransportationQueriesIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *TransportationQueriesIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&transportrepo.TransportationDTO{}))
}

func (suite *TransportationQueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE transportations").Error)
}

func (suite *TransportationQueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

// insertRequest writes one transportations row directly.
func (suite *TransportationQueriesIntegrationTestSuite) insertRequest(
	clientID kernel.UUID,
	name string,
	status transportation.Status,
	createdAt time.Time,
	deletedAt *time.Time,
) kernel.UUID {
	id := kernel.NewUUID()
	dto := transportrepo.TransportationDTO{
		ID:         id.Bytes(),
		ClientID:   clientID.Bytes(),
		Name:       name,
		Status:     int(status),
		PickupFrom: time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC),
		PickupTo:   time.Date(2026, 4, 1, 18, 0, 0, 0, time.UTC),
		CreatedAt:  createdAt,
		DeletedAt:  deletedAt,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return id
}

func (suite *TransportationQueriesIntegrationTestSuite) TestGetShipperTransportation_Success() {
	ctx := context.Background()
	clientID := kernel.NewUUID()
	requestID := suite.insertRequest(clientID, "Office move", transportation.Processing,
		time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), nil)

	query, err := queries.NewGetShipperTransportationQuery(requestID, clientID)
	suite.Require().NoError(err)

	handler := queries.NewGetShipperTransportationQueryHandler(suite.db)
	response, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.True(response.ID.IsEqual(requestID))
	suite.True(response.ClientID.IsEqual(clientID))
	suite.Equal("Office move", response.Name)
	suite.Equal(transportation.Processing, response.Status)
	suite.Equal("In progress", response.StatusLabel)
}

func (suite *TransportationQueriesIntegrationTestSuite) TestGetShipperTransportation_NotFound() {
	ctx := context.Background()

	query, err := queries.NewGetShipperTransportationQuery(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)

	handler := queries.NewGetShipperTransportationQueryHandler(suite.db)
	_, err = handler.Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *TransportationQueriesIntegrationTestSuite) TestGetShipperTransportation_DeletedIsAbsent() {
	ctx := context.Background()
	clientID := kernel.NewUUID()
	deletedAt := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	requestID := suite.insertRequest(clientID, "Gone", transportation.Cancelled,
		time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), &deletedAt)

	query, err := queries.NewGetShipperTransportationQuery(requestID, clientID)
	suite.Require().NoError(err)

	handler := queries.NewGetShipperTransportationQueryHandler(suite.db)
	_, err = handler.Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *TransportationQueriesIntegrationTestSuite) TestGetShipperTransportation_ForeignOwnerForbidden() {
	ctx := context.Background()
	ownerID := kernel.NewUUID()
	requestID := suite.insertRequest(ownerID, "Office move", transportation.New,
		time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), nil)

	query, err := queries.NewGetShipperTransportationQuery(requestID, kernel.NewUUID())
	suite.Require().NoError(err)

	handler := queries.NewGetShipperTransportationQueryHandler(suite.db)
	_, err = handler.Handle(ctx, query)
	suite.Require().ErrorIs(err, transportation.ErrAccessForbidden)
}

func (suite *TransportationQueriesIntegrationTestSuite) TestGetShipperTransportations_PaginatesNewestFirst() {
	ctx := context.Background()
	clientID := kernel.NewUUID()

	suite.insertRequest(clientID, "first", transportation.New,
		time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), nil)
	suite.insertRequest(clientID, "second", transportation.New,
		time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC), nil)
	suite.insertRequest(clientID, "third", transportation.New,
		time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC), nil)

	// Another client's request must never appear
	suite.insertRequest(kernel.NewUUID(), "foreign", transportation.New,
		time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC), nil)

	query, err := queries.NewGetShipperTransportationsQuery(clientID, 1, 2, false, kernel.DateRange{})
	suite.Require().NoError(err)

	handler := queries.NewGetShipperTransportationsQueryHandler(suite.db)
	page, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(int64(3), page.Total)
	suite.Require().Len(page.Items, 2)
	suite.Equal("third", page.Items[0].Name)
	suite.Equal("second", page.Items[1].Name)

	query, err = queries.NewGetShipperTransportationsQuery(clientID, 2, 2, false, kernel.DateRange{})
	suite.Require().NoError(err)

	page, err = handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(page.Items, 1)
	suite.Equal("first", page.Items[0].Name)
}

func (suite *TransportationQueriesIntegrationTestSuite) TestGetShipperTransportations_WithTrashed() {
	ctx := context.Background()
	clientID := kernel.NewUUID()
	deletedAt := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	suite.insertRequest(clientID, "live", transportation.New,
		time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), nil)
	suite.insertRequest(clientID, "trashed", transportation.Cancelled,
		time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC), &deletedAt)

	handler := queries.NewGetShipperTransportationsQueryHandler(suite.db)

	query, err := queries.NewGetShipperTransportationsQuery(clientID, 0, 0, false, kernel.DateRange{})
	suite.Require().NoError(err)
	page, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(int64(1), page.Total)

	query, err = queries.NewGetShipperTransportationsQuery(clientID, 0, 0, true, kernel.DateRange{})
	suite.Require().NoError(err)
	page, err = handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(int64(2), page.Total)
}

func (suite *TransportationQueriesIntegrationTestSuite) TestGetShipperTransportations_DateRangeFilter() {
	ctx := context.Background()
	clientID := kernel.NewUUID()

	suite.insertRequest(clientID, "february", transportation.New,
		time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC), nil)
	suite.insertRequest(clientID, "march", transportation.New,
		time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC), nil)
	suite.insertRequest(clientID, "april", transportation.New,
		time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC), nil)

	createdAt, err := kernel.ParseDateRange("2026-03-01", "2026-03-31")
	suite.Require().NoError(err)

	query, err := queries.NewGetShipperTransportationsQuery(clientID, 0, 0, false, createdAt)
	suite.Require().NoError(err)

	handler := queries.NewGetShipperTransportationsQueryHandler(suite.db)
	page, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(int64(1), page.Total)
	suite.Require().Len(page.Items, 1)
	suite.Equal("march", page.Items[0].Name)
}

func TestTransportationQueriesIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	suite.Run(t, new(TransportationQueriesIntegrationTestSuite))
}
