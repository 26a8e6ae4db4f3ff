package menu_test

import (
	"context"
	"testing"

	"menu-manager/feature/menu"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockDB opens gorm over a sqlmock connection so store failures can be
// injected without a live MySQL instance.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return db, mock
}

func TestRepository_ListMenusQueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := menu.NewRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM `menus`").
		WillReturnError(assert.AnError)

	_, err := repo.ListMenus(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "failed to list menus")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FullHierarchyQueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := menu.NewRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM `menus`").
		WillReturnError(assert.AnError)

	_, err := repo.FullHierarchy(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load full hierarchy")
	assert.NoError(t, mock.ExpectationsWereMet())
}
