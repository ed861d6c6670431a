package flashgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"studycards.app/configs/configslog"
	"studycards.app/pkg/cardimport"
	"studycards.app/pkg/validation"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const (
	temperature = 0.3
	// maxInputRunes modele gönderilen metni sınırlar.
	maxInputRunes = 12000
)

const promptTemplate = "Generate a list of flashcards (question and answer pairs) based on the following text. " +
	"Format the output as a JSON object with a single key 'flashcards', " +
	"which contains a list of objects, each with 'question' and 'answer' keys. " +
	"Ensure there are at least 3-5 flashcards generated if possible, and no more than %d. " +
	"Keep questions concise and answers informative.\n\nText: %q"

// OpenAIConfig OpenAI uyumlu bir sohbet API'sinin ayarları.
type OpenAIConfig struct {
	BaseURL    string
	APIKey     string
	Model      string
	MaxRetries int
	Timeout    time.Duration
}

// OpenAIGenerator kartları bir sohbet modeline ürettirir.
type OpenAIGenerator struct {
	client    *openai.Client
	config    OpenAIConfig
	baseDelay time.Duration
}

type generatedDeck struct {
	Flashcards []cardimport.Draft `json:"flashcards"`
}

func NewOpenAIGenerator(cfg OpenAIConfig) *OpenAIGenerator {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.Model == "" {
		cfg.Model = openai.GPT4oMini
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &OpenAIGenerator{
		client:    openai.NewClientWithConfig(clientConfig),
		config:    cfg,
		baseDelay: time.Second,
	}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, text string) ([]cardimport.Draft, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrNoCards
	}
	if r := []rune(text); len(r) > maxInputRunes {
		text = string(r[:maxInputRunes])
	}

	req := openai.ChatCompletionRequest{
		Model: g.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(promptTemplate, MaxCards, text)},
		},
		Temperature: temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	var content string
	err := g.doWithRetry(ctx, func() error {
		resp, err := g.client.CreateChatCompletion(ctx, req)
		if err != nil {
			return err
		}
		if len(resp.Choices) == 0 {
			return errors.New("empty chat response")
		}
		content = resp.Choices[0].Message.Content
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate flashcards: %w", err)
	}

	return decodeDeck(content)
}

// decodeDeck model çıktısını çözer, eksik alanlı kartları atar ve MaxCards ile sınırlar.
func decodeDeck(content string) ([]cardimport.Draft, error) {
	var deck generatedDeck
	if err := json.Unmarshal([]byte(content), &deck); err != nil {
		return nil, fmt.Errorf("failed to decode model response: %w", err)
	}

	drafts := make([]cardimport.Draft, 0, len(deck.Flashcards))
	for _, d := range deck.Flashcards {
		d.Question = strings.TrimSpace(d.Question)
		d.Answer = strings.TrimSpace(d.Answer)
		if err := validation.ValidateStruct(d); err != nil {
			configslog.Log.Debug("Geçersiz kart taslağı atlandı", zap.Error(err))
			continue
		}
		drafts = append(drafts, d)
		if len(drafts) == MaxCards {
			break
		}
	}
	if len(drafts) == 0 {
		return nil, ErrNoCards
	}
	return drafts, nil
}

// doWithRetry fn'i üstel bekleme ile yeniden dener.
func (g *OpenAIGenerator) doWithRetry(ctx context.Context, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt < g.config.MaxRetries; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err
		if attempt < g.config.MaxRetries-1 {
			wait := time.Duration(math.Pow(2, float64(attempt))) * g.baseDelay
			configslog.Log.Debug("LLM isteği başarısız, yeniden deneniyor",
				zap.Int("attempt", attempt+1),
				zap.Duration("wait", wait),
				zap.Error(err),
			)
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return lastErr
}

var _ Generator = (*OpenAIGenerator)(nil)
