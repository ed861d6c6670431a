package services

import (
	"context"
	"testing"
	"time"

	"studycards.app/database/dbtest"
	"studycards.app/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func fixedClock() Clock {
	return Clock{Location: time.UTC, Now: func() time.Time { return fixedNow }}
}

func date(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

// seedCard metadata değerleri verilen bir kart ekler.
func seedCard(t *testing.T, db *gorm.DB, q, a string, interval int, ease float64, next string) models.Card {
	t.Helper()
	card := models.Card{
		Question: q,
		Answer:   a,
		Metadata: models.CardMetadata{Interval: interval, EaseFactor: ease, NextReview: date(t, next)},
	}
	require.NoError(t, db.WithContext(context.Background()).Create(&card).Error)
	return card
}

func newDB(t *testing.T) *gorm.DB {
	t.Helper()
	return dbtest.New(t)
}

func boolPtr(b bool) *bool        { return &b }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }
