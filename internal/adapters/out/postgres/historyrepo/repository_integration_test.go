package historyrepo_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/historyrepo"
	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GormStatusChangeRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *historyrepo.GormStatusChangeRepository
}

func (suite *GormStatusChangeRepositoryTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&historyrepo.StatusChangeDTO{})
	suite.Require().NoError(err)

	suite.repo = historyrepo.NewGormStatusChangeRepository(db)
}

func (suite *GormStatusChangeRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GormStatusChangeRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE delivery_status_history").Error
	suite.Require().NoError(err)
}

func (suite *GormStatusChangeRepositoryTestSuite) TestAddAndGetAllForDelivery_RoundTrip() {
	ctx := context.Background()
	deliveryID := kernel.NewUUID()
	actorID := kernel.NewUUID()

	entry, err := delivery.NewStatusChange(
		kernel.NewUUID(), deliveryID, delivery.Pending, delivery.Assigned, actorID,
	)
	suite.Require().NoError(err)

	err = suite.repo.Add(ctx, entry)
	suite.Require().NoError(err)

	history, err := suite.repo.GetAllForDelivery(ctx, deliveryID)
	suite.Require().NoError(err)
	suite.Require().Len(history, 1)

	restored := history[0]
	suite.True(restored.ID().IsEqual(entry.ID()))
	suite.True(restored.DeliveryID().IsEqual(deliveryID))
	suite.Equal(delivery.Pending, restored.OldStatus())
	suite.Equal(delivery.Assigned, restored.NewStatus())
	suite.True(restored.ChangedByID().IsEqual(actorID))
	suite.WithinDuration(entry.ChangedAt(), restored.ChangedAt(), time.Millisecond)
}

func (suite *GormStatusChangeRepositoryTestSuite) TestGetAllForDelivery_MostRecentFirst() {
	ctx := context.Background()
	deliveryID := kernel.NewUUID()
	actorID := kernel.NewUUID()
	base := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)

	transitions := []struct {
		old, new delivery.Status
		at       time.Time
	}{
		{delivery.Pending, delivery.Assigned, base},
		{delivery.Assigned, delivery.InTransit, base.Add(time.Hour)},
		{delivery.InTransit, delivery.Delivered, base.Add(2 * time.Hour)},
	}

	for _, tr := range transitions {
		entry, err := delivery.RestoreStatusChange(
			kernel.NewUUID(), deliveryID, tr.old, tr.new, actorID, tr.at,
		)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.repo.Add(ctx, entry))
	}

	history, err := suite.repo.GetAllForDelivery(ctx, deliveryID)
	suite.Require().NoError(err)
	suite.Require().Len(history, 3)

	suite.Equal(delivery.Delivered, history[0].NewStatus())
	suite.Equal(delivery.InTransit, history[1].NewStatus())
	suite.Equal(delivery.Assigned, history[2].NewStatus())
	for i := range len(history) - 1 {
		suite.False(history[i].ChangedAt().Before(history[i+1].ChangedAt()))
	}
}

func (suite *GormStatusChangeRepositoryTestSuite) TestGetAllForDelivery_ScopedToDelivery() {
	ctx := context.Background()
	delivery1 := kernel.NewUUID()
	delivery2 := kernel.NewUUID()

	entry1, err := delivery.NewStatusChange(
		kernel.NewUUID(), delivery1, delivery.Pending, delivery.Assigned, kernel.NewUUID(),
	)
	suite.Require().NoError(err)
	entry2, err := delivery.NewStatusChange(
		kernel.NewUUID(), delivery2, delivery.Pending, delivery.Cancelled, kernel.NewUUID(),
	)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repo.Add(ctx, entry1))
	suite.Require().NoError(suite.repo.Add(ctx, entry2))

	history, err := suite.repo.GetAllForDelivery(ctx, delivery1)
	suite.Require().NoError(err)
	suite.Require().Len(history, 1)
	suite.True(history[0].ID().IsEqual(entry1.ID()))
}

func (suite *GormStatusChangeRepositoryTestSuite) TestGetAllForDelivery_EmptyHistory() {
	ctx := context.Background()

	history, err := suite.repo.GetAllForDelivery(ctx, kernel.NewUUID())

	suite.Require().NoError(err)
	suite.NotNil(history)
	suite.Empty(history)
}

func TestGormStatusChangeRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GormStatusChangeRepositoryTestSuite))
}
