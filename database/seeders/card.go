package seeders

import (
	"studycards.app/configs/configslog"
	"studycards.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var demoDeck = []struct{ Question, Answer string }{
	{"What is the capital of France?", "Paris"},
	{"What is the chemical symbol for gold?", "Au"},
	{"Who wrote 'Pride and Prejudice'?", "Jane Austen"},
	{"What is the largest planet in our solar system?", "Jupiter"},
	{"How many bits are in a byte?", "8"},
}

// SeedDemoDeck flashcards tablosu boşsa örnek kartları bugünden itibaren
// tekrar edilecek şekilde ekler.
func SeedDemoDeck(db *gorm.DB, today models.Date) error {
	var count int64
	if err := db.Model(&models.Card{}).Count(&count).Error; err != nil {
		configslog.Log.Error("Kart sayısı alınamadı", zap.Error(err))
		return err
	}
	if count > 0 {
		configslog.SLog.Infof("Tabloda zaten %d kart var, demo deste atlanıyor.", count)
		return nil
	}

	cards := make([]models.Card, 0, len(demoDeck))
	for _, d := range demoDeck {
		cards = append(cards, models.Card{
			Question: d.Question,
			Answer:   d.Answer,
			Metadata: models.NewCardMetadata(today),
		})
	}
	if err := db.Create(&cards).Error; err != nil {
		configslog.Log.Error("Demo kartlar oluşturulamadı", zap.Error(err))
		return err
	}

	configslog.SLog.Infof("%d adet demo kart başarıyla seed edildi.", len(cards))
	return nil
}
