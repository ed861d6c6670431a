package routes

import (
	"net/http"
	"time"

	"studycards.app/configs/configslog"
	webhandlers "studycards.app/handlers/web"
	"studycards.app/middlewares"
	"studycards.app/services"
	"studycards.app/views"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
)

// Dependencies rotaların ihtiyaç duyduğu servisler ve ayarlar.
type Dependencies struct {
	AuthService   services.IAuthService
	CardService   services.ICardService
	ReviewService services.IReviewService
	ImportService services.IImportService

	AuthRequired   bool
	SecureCookie   bool
	UploadMaxBytes int
	RatePerSecond  float64
	RateBurst      int
	// RequestLog false ise erişim logları yazılmaz (testler).
	RequestLog bool
}

// NewApp şablon motoru ve hata yakalayıcı ile Fiber uygulamasını kurar ve rotaları bağlar.
func NewApp(deps Dependencies) *fiber.App {
	engine := html.NewFileSystem(http.FS(views.FS), ".html")

	app := fiber.New(fiber.Config{
		AppName:      "studycards",
		Views:        engine,
		ErrorHandler: middlewares.ErrorHandler,
		// Multipart sınırı yükleme sınırının biraz üstünde tutulur; fazlası handler'da 413 olur.
		BodyLimit:    deps.UploadMaxBytes + 1<<20,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	})

	SetupRoutes(app, deps)
	return app
}

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
func SetupRoutes(app *fiber.App, deps Dependencies) {
	// --- Genel Middleware'ler ---
	app.Use(recoverMiddleware.New())
	if deps.RequestLog {
		app.Use(logger.New())
	}

	// --- Rota Grupları ---
	registerHealthRoutes(app)
	registerAuthRoutes(app, deps)
	registerCardRoutes(app, deps)
	registerStartRoutes(app, deps)
	registerUploadRoutes(app, deps)
	registerWebRoutes(app, deps)

	app.Get("/", rootRedirector)

	// En sonda, eşleşmeyen tüm rotaları yakalar.
	app.Use(webhandlers.NotFound)

	configslog.SLog.Debugf("Rotalar kaydedildi (auth required: %t)", deps.AuthRequired)
}

func rootRedirector(c *fiber.Ctx) error {
	return c.Redirect("/app", fiber.StatusFound)
}
