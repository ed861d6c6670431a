package cmd

import (
	"fmt"

	"studycards.app/configs"
	"studycards.app/configs/configslog"
	"studycards.app/pkg/authtoken"
	"studycards.app/pkg/flashgen"
	"studycards.app/pkg/textextract"
	"studycards.app/services"

	"gorm.io/gorm"
)

// serviceSet tüm komutların paylaştığı servis grafiği.
type serviceSet struct {
	clock  services.Clock
	auth   services.IAuthService
	cards  services.ICardService
	review services.IReviewService
	imp    services.IImportService
}

func buildServices(cfg *configs.Config, db *gorm.DB) (*serviceSet, error) {
	loc, err := cfg.App.Location()
	if err != nil {
		return nil, err
	}
	clock := services.NewClock(loc)

	signer := authtoken.NewSigner(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	extractor := textextract.NewTikaClient(cfg.Tika.URL, cfg.Tika.Timeout)

	return &serviceSet{
		clock:  clock,
		auth:   services.NewAuthService(db, signer),
		cards:  services.NewCardService(db, clock),
		review: services.NewReviewService(db, clock),
		imp:    services.NewImportService(db, clock, extractor, newGenerator(cfg.AI)),
	}, nil
}

// newGenerator API anahtarı varsa LLM'i, yoksa yalnızca Q:/A: ayrıştırıcısını kullanır.
func newGenerator(cfg configs.AIConfig) flashgen.Generator {
	if !cfg.Enabled() {
		configslog.SLog.Info("AI_API_KEY tanımlı değil, kartlar yalnızca Q:/A: biçiminden üretilecek.")
		return flashgen.NewChain(nil)
	}
	configslog.SLog.Infof("Kart üretimi için model kullanılacak: %s", cfg.Model)
	return flashgen.NewChain(flashgen.NewOpenAIGenerator(flashgen.OpenAIConfig{
		BaseURL:    cfg.BaseURL,
		APIKey:     cfg.APIKey,
		Model:      cfg.Model,
		MaxRetries: cfg.MaxRetries,
		Timeout:    cfg.Timeout,
	}))
}

func describeDB(cfg configs.DBConfig) string {
	if cfg.Driver == "sqlite" {
		return fmt.Sprintf("sqlite:%s", cfg.Path)
	}
	return fmt.Sprintf("postgres://%s@%s:%s/%s", cfg.User, cfg.Host, cfg.Port, cfg.Name)
}
