package repository

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	bookingDomain "github.com/Kilat-Pet-Delivery/service-walking/internal/domain/booking"
	dogDomain "github.com/Kilat-Pet-Delivery/service-walking/internal/domain/dog"
	ownerDomain "github.com/Kilat-Pet-Delivery/service-walking/internal/domain/owner"
)

// newTestDB opens an in-memory SQLite database with the walking schema. The
// pool is pinned to one connection so every query sees the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(AllModels()...))
	return db
}

func seedOwner(t *testing.T, repo *GormWalkingRepository, name string) *ownerDomain.Owner {
	t.Helper()
	o := ownerDomain.New(name, name+"@example.com", "+60 12-345 6789", "1 Jalan Ampang")
	_, err := repo.CreateOwner(context.Background(), o)
	require.NoError(t, err)
	return o
}

func seedDog(t *testing.T, repo *GormWalkingRepository, o *ownerDomain.Owner, name string) *dogDomain.Dog {
	t.Helper()
	d, err := dogDomain.New(o.ID().String(), &name, nil, nil)
	require.NoError(t, err)
	_, err = repo.CreateDog(context.Background(), d)
	require.NoError(t, err)
	return d
}

func seedBooking(t *testing.T, repo *GormWalkingRepository, ownerRef string, start time.Time) *bookingDomain.Booking {
	t.Helper()
	bk, err := bookingDomain.New(ownerRef, start, 30, "")
	require.NoError(t, err)
	_, err = repo.CreateBooking(context.Background(), bk)
	require.NoError(t, err)
	return bk
}
