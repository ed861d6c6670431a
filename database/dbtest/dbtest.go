// Package dbtest testler için migrate edilmiş bellek içi SQLite veritabanı sağlar.
package dbtest

import (
	"fmt"
	"strings"
	"testing"

	"studycards.app/database"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New her test için ayrı, paylaşımlı önbellekli bir bellek veritabanı açar.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("dbtest: open: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("dbtest: sql.DB: %v", err)
	}
	// Tek bağlantı: bellek veritabanı bağlantı kapanınca kaybolur ve SQLite yazma kilidi paylaşılmaz.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.RunMigrationsInOrder(db); err != nil {
		t.Fatalf("dbtest: migrate: %v", err)
	}
	return db
}
