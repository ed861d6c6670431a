// Package cardimport düz metin, CSV ve Excel dosyalarından soru-cevap taslakları okur.
package cardimport

import (
	"strings"
)

// Draft henüz kaydedilmemiş bir kart.
type Draft struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

// Config tablo tabanlı kaynakların sütun düzenidir.
type Config struct {
	SheetName      string // boşsa ilk sayfa
	QuestionColumn string
	AnswerColumn   string
	StartRow       int // 1 tabanlı; 2 başlık satırını atlar
}

func DefaultConfig() Config {
	return Config{
		QuestionColumn: "A",
		AnswerColumn:   "B",
		StartRow:       2,
	}
}

// rowsToDrafts boş soru ya da cevabı olan satırları atlar.
func rowsToDrafts(rows [][]string, cfg Config) []Draft {
	qIdx := columnToIndex(cfg.QuestionColumn)
	aIdx := columnToIndex(cfg.AnswerColumn)
	start := cfg.StartRow - 1
	if start < 0 {
		start = 0
	}

	var drafts []Draft
	for i, row := range rows {
		if i < start {
			continue
		}
		q := cell(row, qIdx)
		a := cell(row, aIdx)
		if q == "" || a == "" {
			continue
		}
		drafts = append(drafts, Draft{Question: q, Answer: a})
	}
	return drafts
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// columnToIndex "A" -> 0, "B" -> 1, "AA" -> 26.
func columnToIndex(col string) int {
	col = strings.ToUpper(strings.TrimSpace(col))
	if col == "" {
		return -1
	}
	idx := 0
	for _, r := range col {
		if r < 'A' || r > 'Z' {
			return -1
		}
		idx = idx*26 + int(r-'A'+1)
	}
	return idx - 1
}
