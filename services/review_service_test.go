package services

import (
	"context"
	"testing"

	"studycards.app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewService_GetDueCards(t *testing.T) {
	db := newDB(t)
	svc := NewReviewService(db, fixedClock())
	ctx := context.Background()

	b := seedCard(t, db, "b", "b", 1, 2.5, "2026-10-19")
	a := seedCard(t, db, "a", "a", 1, 2.5, "2026-10-10")
	seedCard(t, db, "future", "f", 3, 2.5, "2026-10-25")
	c := seedCard(t, db, "c", "c", 1, 2.5, "2026-10-19")

	due, err := svc.GetDueCards(ctx)
	require.NoError(t, err)
	require.Len(t, due, 3)
	assert.Equal(t, []uint{a.ID, b.ID, c.ID}, []uint{due[0].CardID, due[1].CardID, due[2].CardID})
	assert.Equal(t, "2026-10-10", due[0].NextReview.String())

	all, err := svc.GetAllCards(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, b.ID, all[0].CardID)
}

func TestReviewService_GetDueCards_Empty(t *testing.T) {
	db := newDB(t)
	svc := NewReviewService(db, fixedClock())

	due, err := svc.GetDueCards(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, due)
	assert.Empty(t, due)
}

func TestReviewService_ApplyReviewBatch(t *testing.T) {
	db := newDB(t)
	svc := NewReviewService(db, fixedClock())
	ctx := context.Background()

	first := seedCard(t, db, "q1", "a1", 1, 2.5, "2026-10-19")
	second := seedCard(t, db, "q2", "a2", 5, 2.5, "2026-10-19")
	third := seedCard(t, db, "q3", "a3", 4, 1.35, "2026-10-19")

	saved, err := svc.ApplyReviewBatch(ctx, []ReviewUpdate{
		{CardID: first.ID, IsCorrect: boolPtr(true), Interval: intPtr(1), EaseFactor: floatPtr(2.5)},
		{CardID: second.ID, IsCorrect: boolPtr(false), Interval: intPtr(5), EaseFactor: floatPtr(2.5)},
		// Değerler gönderilmezse kayıtlı değerler kullanılır.
		{CardID: third.ID, IsCorrect: boolPtr(false)},
	})
	require.NoError(t, err)
	require.Len(t, saved, 3)

	var stored []models.CardMetadata
	require.NoError(t, db.Order("card_id").Find(&stored).Error)
	require.Len(t, stored, 3)

	assert.Equal(t, 3, stored[0].Interval)
	assert.InDelta(t, 2.6, stored[0].EaseFactor, 1e-9)
	assert.Equal(t, "2026-10-22", stored[0].NextReview.String())

	assert.Equal(t, 1, stored[1].Interval)
	assert.InDelta(t, 2.3, stored[1].EaseFactor, 1e-9)
	assert.Equal(t, "2026-10-20", stored[1].NextReview.String())

	assert.Equal(t, 1, stored[2].Interval)
	assert.InDelta(t, models.MinEaseFactor, stored[2].EaseFactor, 1e-9)
	assert.Equal(t, "2026-10-20", stored[2].NextReview.String())
}

func TestReviewService_ApplyReviewBatch_RollsBackOnUnknownCard(t *testing.T) {
	db := newDB(t)
	svc := NewReviewService(db, fixedClock())
	ctx := context.Background()

	card := seedCard(t, db, "q", "a", 2, 2.5, "2026-10-19")

	_, err := svc.ApplyReviewBatch(ctx, []ReviewUpdate{
		{CardID: card.ID, IsCorrect: boolPtr(true)},
		{CardID: 9999, IsCorrect: boolPtr(true)},
	})
	require.ErrorIs(t, err, ErrReviewCardNotFound)

	var m models.CardMetadata
	require.NoError(t, db.First(&m, "card_id = ?", card.ID).Error)
	assert.Equal(t, 2, m.Interval)
	assert.InDelta(t, 2.5, m.EaseFactor, 1e-9)
	assert.Equal(t, "2026-10-19", m.NextReview.String())
}

func TestReviewService_ApplyReviewBatch_Invalid(t *testing.T) {
	db := newDB(t)
	svc := NewReviewService(db, fixedClock())
	ctx := context.Background()

	_, err := svc.ApplyReviewBatch(ctx, nil)
	require.ErrorIs(t, err, ErrReviewEmptyBatch)

	tests := []struct {
		name   string
		update ReviewUpdate
	}{
		{name: "missing card id", update: ReviewUpdate{IsCorrect: boolPtr(true)}},
		{name: "missing is_correct", update: ReviewUpdate{CardID: 1}},
		{name: "negative interval", update: ReviewUpdate{CardID: 1, IsCorrect: boolPtr(true), Interval: intPtr(-1)}},
		{name: "zero ease", update: ReviewUpdate{CardID: 1, IsCorrect: boolPtr(true), EaseFactor: floatPtr(0)}},
		{name: "interval above ceiling", update: ReviewUpdate{CardID: 1, IsCorrect: boolPtr(true), Interval: intPtr(1 << 40)}},
		{name: "huge ease", update: ReviewUpdate{CardID: 1, IsCorrect: boolPtr(true), EaseFactor: floatPtr(8.98e307)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ApplyReviewBatch(ctx, []ReviewUpdate{tt.update})
			require.ErrorIs(t, err, ErrReviewInvalidInput)
		})
	}
}

func TestReviewService_ApplyReviewBatch_IntervalCeiling(t *testing.T) {
	db := newDB(t)
	svc := NewReviewService(db, fixedClock())
	ctx := context.Background()
	card := seedCard(t, db, "q", "a", 1, 2.5, "2026-10-19")

	saved, err := svc.ApplyReviewBatch(ctx, []ReviewUpdate{
		{CardID: card.ID, IsCorrect: boolPtr(true), Interval: intPtr(models.MaxInterval), EaseFactor: floatPtr(1000)},
	})
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, models.MaxInterval, saved[0].Interval)

	want := date(t, "2026-10-19").AddDays(models.MaxInterval).String()
	assert.Equal(t, want, saved[0].NextReview.String())

	// Kaydedilen tarih geri okunabilmeli; kart sonsuza dek "due" kalmamalı.
	all, err := svc.GetAllCards(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, want, all[0].NextReview.String())

	due, err := svc.GetDueCards(ctx)
	require.NoError(t, err)
	assert.Empty(t, due)
}

func TestReviewService_ApplyReviewBatch_RepeatedCard(t *testing.T) {
	db := newDB(t)
	svc := NewReviewService(db, fixedClock())

	card := seedCard(t, db, "q", "a", 1, 2.5, "2026-10-19")

	saved, err := svc.ApplyReviewBatch(context.Background(), []ReviewUpdate{
		{CardID: card.ID, IsCorrect: boolPtr(true)},
		{CardID: card.ID, IsCorrect: boolPtr(true)},
	})
	require.NoError(t, err)
	require.Len(t, saved, 1)
	// 1*2.5 -> 3, sonra 3*2.6 = 7.8 -> 8
	assert.Equal(t, 8, saved[0].Interval)
	assert.InDelta(t, 2.7, saved[0].EaseFactor, 1e-9)
}

func TestReviewService_CheckAnswer(t *testing.T) {
	db := newDB(t)
	svc := NewReviewService(db, fixedClock())
	ctx := context.Background()

	card := seedCard(t, db, "Powerhouse of the cell?", "The mitochondria", 0, 2.5, "2026-10-19")

	res, err := svc.CheckAnswer(ctx, card.ID, "  mitochondria ")
	require.NoError(t, err)
	assert.True(t, res.Correct)
	assert.Equal(t, "The mitochondria", res.Expected)

	res, err = svc.CheckAnswer(ctx, card.ID, "ribosome")
	require.NoError(t, err)
	assert.False(t, res.Correct)

	_, err = svc.CheckAnswer(ctx, 4242, "x")
	require.ErrorIs(t, err, ErrReviewCardNotFound)
}
