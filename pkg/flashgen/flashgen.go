// Package flashgen serbest metinden soru-cevap kartları üretir.
package flashgen

import (
	"context"
	"errors"
	"strings"

	"studycards.app/pkg/cardimport"
)

//go:generate mockgen -source=flashgen.go -destination=mock/generator_mock.go -package=mock_flashgen

// MaxCards tek istekte üretilecek en fazla kart sayısı.
const MaxCards = 10

var ErrNoCards = errors.New("no flashcards could be generated from the text")

// Generator metinden kart taslakları üretir.
type Generator interface {
	Generate(ctx context.Context, text string) ([]cardimport.Draft, error)
}

// ParserGenerator metindeki Q:/A: bloklarını okur; ağ erişimi gerektirmez.
type ParserGenerator struct{}

func (ParserGenerator) Generate(_ context.Context, text string) ([]cardimport.Draft, error) {
	drafts, err := cardimport.ParseText(strings.NewReader(text))
	if err != nil {
		return nil, err
	}
	if len(drafts) == 0 {
		return nil, ErrNoCards
	}
	return drafts, nil
}

// Chain metinde Q:/A: işaretleri varsa ayrıştırıcıyı, yoksa birincil üreticiyi kullanır.
// Birincil üretici nil ise her zaman ayrıştırıcıya düşer.
type Chain struct {
	Primary Generator
	Parser  Generator
}

func NewChain(primary Generator) *Chain {
	return &Chain{Primary: primary, Parser: ParserGenerator{}}
}

func (c *Chain) Generate(ctx context.Context, text string) ([]cardimport.Draft, error) {
	if c.Primary == nil || cardimport.HasMarkers(text) {
		return c.Parser.Generate(ctx, text)
	}
	return c.Primary.Generate(ctx, text)
}

var (
	_ Generator = ParserGenerator{}
	_ Generator = (*Chain)(nil)
)
