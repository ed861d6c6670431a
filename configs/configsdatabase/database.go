package configsdatabase

import (
	"fmt"
	"sync"

	"studycards.app/configs"
	"studycards.app/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	db   *gorm.DB
	once sync.Once
)

// Open yapılandırmaya göre yeni bir GORM bağlantısı açar ve havuz ayarlarını uygular.
func Open(cfg configs.DBConfig, env string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(cfg.Path + "?_foreign_keys=on")
	default:
		return nil, fmt.Errorf("desteklenmeyen veritabanı sürücüsü: %s", cfg.Driver)
	}

	logLevel := logger.Warn
	if env == "development" {
		logLevel = logger.Info
	}

	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if cfg.Driver == "sqlite" {
		// SQLite tek yazıcıyı destekler.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return conn, nil
}

// InitDB paylaşılan bağlantıyı bir kez kurar.
func InitDB(cfg *configs.Config) error {
	var initErr error
	once.Do(func() {
		conn, err := Open(cfg.DB, cfg.App.Env)
		if err != nil {
			initErr = err
			return
		}
		db = conn
		configslog.Log.Info("Veritabanı bağlantısı kuruldu",
			zap.String("driver", cfg.DB.Driver),
			zap.String("name", cfg.DB.Name),
		)
	})
	return initErr
}

// GetDB paylaşılan bağlantıyı döndürür. InitDB çağrılmadan kullanılırsa panic olur.
func GetDB() *gorm.DB {
	if db == nil {
		panic("configsdatabase: InitDB çağrılmadan GetDB kullanıldı")
	}
	return db
}

// CloseDB bağlantı havuzunu kapatır.
func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("sql.DB alınamadı", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("Veritabanı bağlantısı kapatılamadı", zap.Error(err))
		return
	}
	configslog.SLog.Info("Veritabanı bağlantısı kapatıldı.")
}
