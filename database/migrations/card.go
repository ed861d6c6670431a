package migrations

import (
	"studycards.app/configs/configslog"
	"studycards.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateCardsTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating flashcards & card_metadata tables...")
	err := db.AutoMigrate(&models.Card{}, &models.CardMetadata{})
	if err != nil {
		configslog.Log.Error("Failed to migrate flashcards & card_metadata tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Flashcards & card_metadata tables migrated successfully")
	return nil
}
