package configslog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log structured loglar için, SLog ise printf tarzı ilerleme mesajları için kullanılır.
// Paketler testlerde de çağrılabilsin diye başlangıçta no-op logger atanır.
var (
	Log  = zap.NewNop()
	SLog = Log.Sugar()
)

// InitLogger yüklenmiş yapılandırmadaki ortam adına göre development veya production logger kurar.
func InitLogger(env string) {
	var cfg zap.Config
	if env == "development" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "time"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	logger, err := cfg.Build(zap.AddCaller())
	if err != nil {
		// Logger kurulamazsa no-op ile devam etmek yerine stdout'a yazan basit bir logger kullan.
		logger = zap.NewExample()
		logger.Error("Logger oluşturulamadı, örnek logger kullanılıyor", zap.Error(err))
	}

	Log = logger
	SLog = logger.Sugar()
}

// SetLogger testlerde veya gömülü kullanımda logger'ı değiştirmek için.
func SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger tamponlanmış log kayıtlarını boşaltır.
func SyncLogger() {
	_ = Log.Sync()
}
