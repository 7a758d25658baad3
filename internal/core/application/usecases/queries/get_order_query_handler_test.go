package queries_test

import (
	"context"
	"testing"
	"time"

	"orderservice/internal/adapters/out/postgres/orderrepo"
	"orderservice/internal/core/application/usecases/queries"
	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker satisfies the repository's tracker dependency in read-model tests.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetOrderQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrderQueryHandlerTestSuite) SetupSuite() {
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, noopTracker{})
}

func (suite *GetOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ExistingOrder_ReturnsOrderWithItems() {
	ctx := context.Background()

	stored := suite.seedOrder("customer-1", order.Pending)

	query, err := queries.NewGetOrderQuery(stored.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.True(result.ID.IsEqual(stored.ID()))
	suite.Equal("customer-1", result.CustomerID)
	suite.Equal(order.Pending, result.Status)
	suite.Require().Len(result.Items, 2)
	suite.Equal("Laptop", result.Items[0].ProductName)
	suite.Equal(2, result.Items[0].Quantity)
	suite.True(result.TotalAmount.Equal(stored.TotalAmount()),
		"read-model total must match the aggregate's derived total")
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(ctx, query)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrderQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)
	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetOrderQuery constructor")
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	stored := suite.seedOrder("customer-1", order.Pending)

	query, err := queries.NewGetOrderQuery(stored.ID())
	suite.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = suite.handler.Handle(ctx, query)
	suite.Require().Error(err)
}

func (suite *GetOrderQueryHandlerTestSuite) seedOrder(customerID string, status order.Status) *order.Order {
	now := time.Now().UTC()

	laptopPrice, err := kernel.MoneyFromString("24999.99")
	suite.Require().NoError(err)
	laptop, err := order.NewItem(1, "Laptop", 2, laptopPrice)
	suite.Require().NoError(err)

	mousePrice, err := kernel.MoneyFromString("650.00")
	suite.Require().NoError(err)
	mouse, err := order.NewItem(2, "Mouse", 1, mousePrice)
	suite.Require().NoError(err)

	stored, err := order.RestoreOrder(kernel.NewUUID(), customerID, status,
		[]order.Item{laptop, mouse}, now, now)
	suite.Require().NoError(err)

	err = suite.orderRepo.Add(context.Background(), stored)
	suite.Require().NoError(err)

	return stored
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}
