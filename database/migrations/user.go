package migrations

import (
	"errors"

	"studycards.app/configs/configslog"
	"studycards.app/models"

	"gorm.io/gorm"
)

func MigrateUsersTable(db *gorm.DB) error {
	configslog.SLog.Info("User tablosu migrate ediliyor...")

	if err := db.AutoMigrate(&models.User{}); err != nil {
		errMsg := "User tablosu migrate edilemedi: " + err.Error()
		configslog.Log.Error(errMsg)
		return errors.New(errMsg)
	}

	configslog.SLog.Info("User tablosu migrate işlemi tamamlandı.")
	return nil
}
