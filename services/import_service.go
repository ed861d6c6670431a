package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"studycards.app/configs/configslog"
	"studycards.app/models"
	"studycards.app/pkg/cardimport"
	"studycards.app/pkg/flashgen"
	"studycards.app/pkg/textextract"
	"studycards.app/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ImportServiceError string

func (e ImportServiceError) Error() string { return string(e) }

const (
	ErrUnsupportedFile  ImportServiceError = "Invalid file type. Only text, markdown, PDF, CSV and XLSX files are allowed."
	ErrEmptyFile        ImportServiceError = "uploaded file is empty"
	ErrNoFlashcards     ImportServiceError = "no flashcards could be created from the file"
	ErrExtractionFailed ImportServiceError = "text extraction failed"
	ErrGenerationFailed ImportServiceError = "flashcard generation failed"
	ErrImportSaveFailed ImportServiceError = "flashcards could not be saved"
)

type fileKind int

const (
	kindUnknown fileKind = iota
	kindText
	kindPDF
	kindCSV
	kindXLSX
)

const xlsxMediaType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var mediaKinds = map[string]fileKind{
	"text/plain":      kindText,
	"text/markdown":   kindText,
	"text/x-markdown": kindText,
	"application/pdf": kindPDF,
	"text/csv":        kindCSV,
	xlsxMediaType:     kindXLSX,
}

var extKinds = map[string]fileKind{
	".txt":  kindText,
	".md":   kindText,
	".pdf":  kindPDF,
	".csv":  kindCSV,
	".xlsx": kindXLSX,
}

type IImportService interface {
	ImportFile(ctx context.Context, filename, contentType string, data []byte) ([]models.Card, error)
}

type ImportService struct {
	db        *gorm.DB
	extractor textextract.Extractor
	generator flashgen.Generator
	clock     Clock
}

func NewImportService(db *gorm.DB, clock Clock, extractor textextract.Extractor, generator flashgen.Generator) IImportService {
	return &ImportService{
		db:        db,
		extractor: extractor,
		generator: generator,
		clock:     clock,
	}
}

// detectKind önce bildirilen içerik türüne, tanınmazsa dosya uzantısına bakar.
func detectKind(filename, contentType string) (fileKind, string) {
	if mt, _, err := mime.ParseMediaType(contentType); err == nil {
		if k, ok := mediaKinds[mt]; ok {
			if mt == "text/x-markdown" {
				mt = "text/markdown"
			}
			return k, mt
		}
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if k, ok := extKinds[ext]; ok {
		switch k {
		case kindPDF:
			return k, "application/pdf"
		case kindText:
			if ext == ".md" {
				return k, "text/markdown"
			}
			return k, "text/plain"
		default:
			return k, ""
		}
	}
	return kindUnknown, ""
}

// ImportFile dosyadan kart taslakları üretir ve hepsini TEK BİR TRANSACTION içinde kaydeder.
// Tablolar doğrudan satır olarak okunur; metin ve PDF içeriği üreticiden geçer.
func (s *ImportService) ImportFile(ctx context.Context, filename, contentType string, data []byte) ([]models.Card, error) {
	kind, mediaType := detectKind(filename, contentType)
	if kind == kindUnknown {
		return nil, ErrUnsupportedFile
	}
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}

	var drafts []cardimport.Draft
	var err error
	switch kind {
	case kindCSV:
		drafts, err = cardimport.ReadCSV(bytes.NewReader(data), cardimport.DefaultConfig())
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedFile, err)
		}
	case kindXLSX:
		drafts, err = cardimport.ReadXLSX(bytes.NewReader(data), cardimport.DefaultConfig())
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedFile, err)
		}
	default:
		drafts, err = s.generate(ctx, mediaType, data)
		if err != nil {
			return nil, err
		}
	}
	if len(drafts) == 0 {
		return nil, ErrNoFlashcards
	}

	return s.save(ctx, drafts)
}

func (s *ImportService) generate(ctx context.Context, mediaType string, data []byte) ([]cardimport.Draft, error) {
	text, err := s.extractor.Extract(ctx, mediaType, data)
	if err != nil {
		switch {
		case errors.Is(err, textextract.ErrEmptyText):
			return nil, ErrNoFlashcards
		case errors.Is(err, textextract.ErrUnsupported):
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedFile, err)
		default:
			configslog.Log.Error("Metin çıkarılamadı", zap.String("content_type", mediaType), zap.Error(err))
			return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
		}
	}

	drafts, err := s.generator.Generate(ctx, text)
	if err != nil {
		if errors.Is(err, flashgen.ErrNoCards) {
			return nil, ErrNoFlashcards
		}
		configslog.Log.Error("Kart üretilemedi", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	return drafts, nil
}

func (s *ImportService) save(ctx context.Context, drafts []cardimport.Draft) ([]models.Card, error) {
	today := s.clock.Today()
	cards := make([]models.Card, 0, len(drafts))

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repoTx := repositories.NewCardRepositoryTx(tx)
		for _, d := range drafts {
			card := models.Card{
				Question: d.Question,
				Answer:   d.Answer,
				Metadata: models.NewCardMetadata(today),
			}
			if err := repoTx.CreateCard(ctx, &card); err != nil {
				configslog.Log.Error("İçe aktarılan kart kaydedilemedi", zap.Error(err))
				return ErrImportSaveFailed
			}
			cards = append(cards, card)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	configslog.SLog.Infof("%d kart içe aktarıldı", len(cards))
	return cards, nil
}

var _ IImportService = (*ImportService)(nil)
