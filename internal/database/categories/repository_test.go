package categories

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/catalog/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_categories_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&entities.Category{}))

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return NewRepository(db), cleanup
}

func TestRepository_CreateAllAndGetAll(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	require.NoError(t, repo.CreateAll([]entities.Category{{Name: "Fiction"}, {Name: "Science"}}))

	categories, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Fiction", categories[0].Name)
	assert.Equal(t, "Science", categories[1].Name)
}

func TestRepository_CreateAll_DuplicateName(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.CreateAll([]entities.Category{{Name: "Fiction"}}))
	assert.Error(t, repo.CreateAll([]entities.Category{{Name: "Fiction"}}))
}
