package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"studycards.app/database/dbtest"
	"studycards.app/middlewares"
	"studycards.app/pkg/authtoken"
	"studycards.app/pkg/flashgen"
	"studycards.app/pkg/textextract"
	"studycards.app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

func newTestApp(t *testing.T, authRequired bool, burst int) *fiber.App {
	t.Helper()
	db := dbtest.New(t)
	clock := services.Clock{Location: time.UTC, Now: func() time.Time { return testNow }}
	signer := authtoken.NewSigner("route-test-secret-0123456789", time.Hour)

	return NewApp(Dependencies{
		AuthService:    services.NewAuthService(db, signer),
		CardService:    services.NewCardService(db, clock),
		ReviewService:  services.NewReviewService(db, clock),
		ImportService:  services.NewImportService(db, clock, textextract.NewTikaClient("", time.Second), flashgen.NewChain(nil)),
		AuthRequired:   authRequired,
		UploadMaxBytes: 1 << 20,
		RatePerSecond:  1,
		RateBurst:      burst,
	})
}

type request struct {
	method string
	path   string
	body   string
	cookie string
	accept string
}

func send(t *testing.T, app *fiber.App, r request) *http.Response {
	t.Helper()
	var body io.Reader
	if r.body != "" {
		body = strings.NewReader(r.body)
	}
	req := httptest.NewRequest(r.method, r.path, body)
	if r.body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if r.cookie != "" {
		req.AddCookie(&http.Cookie{Name: middlewares.AuthCookieName, Value: r.cookie})
	}
	if r.accept != "" {
		req.Header.Set(fiber.HeaderAccept, r.accept)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func readJSON(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

// loginCookie kullanıcıyı kaydeder, giriş yapar ve auth cookie değerini döndürür.
func loginCookie(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := send(t, app, request{method: http.MethodPost, path: "/auth/register",
		body: `{"name":"Ada","email":"Ada@Example.com","password":"analytical-engine"}`})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = send(t, app, request{method: http.MethodPost, path: "/auth/login",
		body: `{"email":"ada@example.com","password":"analytical-engine"}`})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	for _, c := range resp.Cookies() {
		if c.Name == middlewares.AuthCookieName {
			return c.Value
		}
	}
	t.Fatal("login response has no auth cookie")
	return ""
}

func TestRoutes_StudyFlow(t *testing.T) {
	app := newTestApp(t, true, 10)
	token := loginCookie(t, app)

	resp := send(t, app, request{method: http.MethodGet, path: "/auth/verify", cookie: token})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Kimlik doğrulaması olmadan kart uç noktaları kapalıdır.
	for _, path := range []string{"/cards", "/start/due", "/start/all"} {
		resp = send(t, app, request{method: http.MethodGet, path: path})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}

	resp = send(t, app, request{method: http.MethodPost, path: "/cards", cookie: token,
		body: `{"question":"  Capital of France? ","answer":"Paris"}`})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var card struct {
		ID       uint   `json:"id"`
		Question string `json:"question"`
		Metadata struct {
			Interval   int     `json:"interval"`
			EaseFactor float64 `json:"ease_factor"`
			NextReview string  `json:"next_review"`
		} `json:"metadata"`
	}
	readJSON(t, resp, &card)
	assert.Equal(t, "Capital of France?", card.Question)
	assert.Equal(t, 0, card.Metadata.Interval)
	assert.Equal(t, 2.5, card.Metadata.EaseFactor)
	assert.Equal(t, "2026-10-19", card.Metadata.NextReview)

	resp = send(t, app, request{method: http.MethodGet, path: "/cards", cookie: token})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "1", resp.Header.Get("X-Total-Count"))

	var due []map[string]any
	resp = send(t, app, request{method: http.MethodGet, path: "/start/due", cookie: token})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	readJSON(t, resp, &due)
	require.Len(t, due, 1)
	assert.EqualValues(t, card.ID, due[0]["card_id"])

	var check map[string]any
	resp = send(t, app, request{method: http.MethodPost, path: "/start/check", cookie: token,
		body: `{"card_id":` + jsonNumber(card.ID) + `,"answer":"paris"}`})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	readJSON(t, resp, &check)
	assert.Equal(t, true, check["correct"])

	var updated struct {
		Status       string `json:"status"`
		UpdatedCount int    `json:"updated_count"`
		Cards        []struct {
			Interval   int     `json:"interval"`
			EaseFactor float64 `json:"ease_factor"`
			NextReview string  `json:"next_review"`
		} `json:"cards"`
	}
	resp = send(t, app, request{method: http.MethodPatch, path: "/start/update", cookie: token,
		body: `{"updates":[{"card_id":` + jsonNumber(card.ID) + `,"is_correct":true,"interval":0,"ease_factor":2.5}]}`})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	readJSON(t, resp, &updated)
	assert.Equal(t, "success", updated.Status)
	assert.Equal(t, 1, updated.UpdatedCount)
	require.Len(t, updated.Cards, 1)
	assert.Equal(t, 1, updated.Cards[0].Interval)
	assert.InDelta(t, 2.6, updated.Cards[0].EaseFactor, 1e-9)
	assert.Equal(t, "2026-10-20", updated.Cards[0].NextReview)

	resp = send(t, app, request{method: http.MethodGet, path: "/start/due", cookie: token})
	readJSON(t, resp, &due)
	assert.Empty(t, due)

	resp = send(t, app, request{method: http.MethodDelete, path: "/cards/" + jsonNumber(card.ID), cookie: token})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp = send(t, app, request{method: http.MethodGet, path: "/cards/" + jsonNumber(card.ID), cookie: token})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRoutes_UpdateBatchIsAtomic(t *testing.T) {
	app := newTestApp(t, false, 10)

	resp := send(t, app, request{method: http.MethodPost, path: "/cards", body: `{"question":"q","answer":"a"}`})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var card struct {
		ID uint `json:"id"`
	}
	readJSON(t, resp, &card)

	resp = send(t, app, request{method: http.MethodPut, path: "/start/update",
		body: `{"updates":[{"card_id":` + jsonNumber(card.ID) + `,"is_correct":true},{"card_id":9999,"is_correct":true}]}`})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var all []map[string]any
	resp = send(t, app, request{method: http.MethodGet, path: "/start/all"})
	readJSON(t, resp, &all)
	require.Len(t, all, 1)
	assert.EqualValues(t, 0, all[0]["interval"])
	assert.Equal(t, "2026-10-19", all[0]["next_review"])
}

func TestRoutes_Upload(t *testing.T) {
	app := newTestApp(t, false, 10)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", "notes.md")
	require.NoError(t, err)
	_, err = part.Write([]byte("Q: 2 + 2?\nA: 4\n\nQ: Largest planet?\nA: Jupiter\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Status     string `json:"status"`
		Flashcards []struct {
			CardID   uint   `json:"cardId"`
			Question string `json:"question"`
		} `json:"flashcards"`
	}
	readJSON(t, resp, &out)
	assert.Equal(t, "success", out.Status)
	require.Len(t, out.Flashcards, 2)
	assert.Equal(t, "Largest planet?", out.Flashcards[1].Question)

	resp = send(t, app, request{method: http.MethodGet, path: "/cards"})
	assert.Equal(t, "2", resp.Header.Get("X-Total-Count"))
}

func TestRoutes_AuthRateLimit(t *testing.T) {
	app := newTestApp(t, true, 2)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		resp := send(t, app, request{method: http.MethodPost, path: "/auth/login",
			body: `{"email":"nobody@example.com","password":"irrelevant"}`})
		codes = append(codes, resp.StatusCode)
	}
	assert.Equal(t, []int{http.StatusUnauthorized, http.StatusUnauthorized, http.StatusTooManyRequests}, codes)
}

func TestRoutes_WebPages(t *testing.T) {
	app := newTestApp(t, true, 10)

	resp := send(t, app, request{method: http.MethodGet, path: "/app", accept: fiber.MIMETextHTML})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/app/login", resp.Header.Get(fiber.HeaderLocation))

	resp = send(t, app, request{method: http.MethodGet, path: "/app/login", accept: fiber.MIMETextHTML})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "/auth/login")

	token := loginCookie(t, app)
	resp = send(t, app, request{method: http.MethodPost, path: "/cards", cookie: token,
		body: `{"question":"Speed of light?","answer":"299792458 m/s"}`})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = send(t, app, request{method: http.MethodGet, path: "/app", cookie: token, accept: fiber.MIMETextHTML})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page := readBody(t, resp)
	assert.Contains(t, page, "Speed of light?")
	assert.Contains(t, page, "ada@example.com")

	resp = send(t, app, request{method: http.MethodGet, path: "/app/login", cookie: token})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

	resp = send(t, app, request{method: http.MethodGet, path: "/app/review?mode=all", cookie: token})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), `data-mode="all"`)
}

func TestRoutes_MiscEndpoints(t *testing.T) {
	app := newTestApp(t, true, 10)

	resp := send(t, app, request{method: http.MethodGet, path: "/health"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var health map[string]string
	readJSON(t, resp, &health)
	assert.Equal(t, "ok", health["status"])

	resp = send(t, app, request{method: http.MethodGet, path: "/"})
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/app", resp.Header.Get(fiber.HeaderLocation))

	resp = send(t, app, request{method: http.MethodGet, path: "/does-not-exist", accept: fiber.MIMEApplicationJSON})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	var nf map[string]string
	readJSON(t, resp, &nf)
	assert.Equal(t, "Resource not found", nf["error"])

	resp = send(t, app, request{method: http.MethodGet, path: "/does-not-exist", accept: fiber.MIMETextHTML})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Page not found")
}

func jsonNumber(id uint) string {
	b, _ := json.Marshal(id)
	return string(b)
}
