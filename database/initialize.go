package database

import (
	"errors"

	"studycards.app/configs/configslog"
	"studycards.app/database/migrations"
	"studycards.app/database/seeders"
	"studycards.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize migrasyon ve seeder adımlarını tek bir transaction içinde çalıştırır.
// Herhangi bir adım başarısız olursa tüm değişiklikler geri alınır. today seed
// edilen kartların ilk tekrar günüdür.
func Initialize(db *gorm.DB, migrate bool, seed bool, today models.Date) error {
	if !migrate && !seed {
		configslog.SLog.Info("Migrate veya seed bayrağı belirtilmedi, işlem yapılmayacak.")
		return nil
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi başlıyor...")

	err := db.Transaction(func(tx *gorm.DB) error {
		if migrate {
			configslog.SLog.Info("Migrasyonlar çalıştırılıyor...")
			if err := RunMigrationsInOrder(tx); err != nil {
				configslog.Log.Error("Migrasyon başarısız oldu", zap.Error(err))
				return err
			}
			configslog.SLog.Info("Migrasyonlar tamamlandı.")
		} else {
			configslog.SLog.Info("Migrate bayrağı belirtilmedi, migrasyon adımı atlanıyor.")
		}

		if seed {
			configslog.SLog.Info("Seeder'lar çalıştırılıyor...")
			if err := CheckAndRunSeeders(tx, today); err != nil {
				configslog.Log.Error("Seeding başarısız oldu", zap.Error(err))
				return err
			}
			configslog.SLog.Info("Seeder'lar tamamlandı.")
		} else {
			configslog.SLog.Info("Seed bayrağı belirtilmedi, seeder adımı atlanıyor.")
		}
		return nil
	})
	if err != nil {
		configslog.SLog.Warn("Başlatma sırasında hata oluştuğu için işlem geri alındı.")
		return err
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi başarıyla tamamlandı")
	return nil
}

func RunMigrationsInOrder(db *gorm.DB) error {
	configslog.SLog.Info("Migrasyonlar sırayla çalıştırılıyor...")

	configslog.SLog.Info(" -> User migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateUsersTable(db); err != nil {
		configslog.Log.Error("Users tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> User migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> Card migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateCardsTables(db); err != nil {
		configslog.Log.Error("Cards tabloları migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Card migrasyonları tamamlandı.")

	configslog.SLog.Info("Tüm migrasyonlar başarıyla çalıştırıldı.")
	return nil
}

func CheckAndRunSeeders(db *gorm.DB, today models.Date) error {
	if db == nil {
		return errors.New("seeder için veritabanı bağlantısı yok")
	}

	configslog.SLog.Info(" -> Demo deste seeder çalıştırılıyor...")
	if err := seeders.SeedDemoDeck(db, today); err != nil {
		configslog.Log.Error("Demo deste seed edilemedi", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Demo deste seeder tamamlandı.")

	configslog.SLog.Info("Tüm seeder'lar başarıyla kontrol edildi/çalıştırıldı.")
	return nil
}
