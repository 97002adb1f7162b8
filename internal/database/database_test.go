package database

import (
	"testing"

	"hotel/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectDialect(t *testing.T) {
	assert.Equal(t, DialectPostgres, DetectDialect("postgres://u:p@localhost:5432/hotel"))
	assert.Equal(t, DialectPostgres, DetectDialect("postgresql://localhost/hotel"))
	assert.Equal(t, DialectMySQL, DetectDialect("mysql://u:p@tcp(localhost:3306)/hotel"))
	assert.Equal(t, DialectSQLite, DetectDialect("hotel.db"))
	assert.Equal(t, DialectSQLite, DetectDialect(":memory:"))
}

func TestMysqlDSN(t *testing.T) {
	assert.Equal(t, "u:p@tcp(db:3306)/hotel?parseTime=true", mysqlDSN("mysql://u:p@tcp(db:3306)/hotel"))
	assert.Equal(t, "u:p@tcp(db:3306)/hotel?charset=utf8mb4&parseTime=true", mysqlDSN("mysql://u:p@tcp(db:3306)/hotel?charset=utf8mb4"))
	assert.Equal(t, "u@tcp(db)/h?parseTime=false", mysqlDSN("u@tcp(db)/h?parseTime=false"))
}

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t, "file::memory:?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", sqliteDSN(":memory:"))
	assert.Equal(t, "file:x?mode=memory&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", sqliteDSN("file:x?mode=memory"))
	assert.Equal(t, "a.db?_pragma=foreign_keys(0)", sqliteDSN("a.db?_pragma=foreign_keys(0)"))
}

func TestConnectAndMigrate_SQLite(t *testing.T) {
	db, err := Connect("file:database_test?mode=memory&cache=shared", Options{}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, Migrate(db))

	for _, m := range domain.Models() {
		assert.True(t, db.Migrator().HasTable(m), "%T", m)
	}
	assert.True(t, db.Migrator().HasIndex(&domain.Room{}, RoomNumberIndex))

	require.NoError(t, Migrate(db), "second run is a no-op")
}

func TestMigrate_RoomNumberUniqueAmongLiveRooms(t *testing.T) {
	db, err := Connect("file:database_room_number?mode=memory&cache=shared", Options{}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	require.NoError(t, Migrate(db))

	newRoom := func() *domain.Room {
		return &domain.Room{Number: "101", Type: domain.RoomDouble, Price: 100, Capacity: 2, Status: domain.RoomAvailable}
	}

	first := newRoom()
	require.NoError(t, db.Create(first).Error)
	assert.Error(t, db.Create(newRoom()).Error)

	require.NoError(t, db.Delete(first).Error)
	assert.NoError(t, db.Create(newRoom()).Error)
}
