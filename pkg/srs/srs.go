// Package srs kart tekrar aralığı ve kolaylık katsayısı hesaplamasını içerir.
// SM-2'nin sadeleştirilmiş hâlidir: öğrenme aşaması, üst sınır ve rastgelelik yoktur.
package srs

import (
	"math"
	"time"

	"studycards.app/models"
)

const (
	// EaseStep doğru cevapta katsayıya eklenir.
	EaseStep = 0.1
	// EasePenalty yanlış cevapta katsayıdan düşülür.
	EasePenalty = 0.2
)

// State bir kartın tekrar öncesi durumudur.
type State struct {
	Interval   int
	EaseFactor float64
}

// Result yeni aralık, katsayı ve bir sonraki tekrar günüdür.
type Result struct {
	Interval   int
	EaseFactor float64
	NextReview models.Date
}

// Next cevaba göre bir sonraki durumu hesaplar.
//
//	doğru:  interval' = max(1, round(interval * ease)), ease' = max(1.3, ease + 0.1)
//	        (interval' en fazla MaxInterval olur)
//	yanlış: interval' = 1,                              ease' = max(1.3, ease - 0.2)
func Next(s State, correct bool, today models.Date) Result {
	var interval int
	var ease float64

	if correct {
		interval = clampInterval(roundHalfUp(float64(s.Interval) * s.EaseFactor))
		ease = math.Max(models.MinEaseFactor, s.EaseFactor+EaseStep)
	} else {
		interval = models.MinInterval
		ease = math.Max(models.MinEaseFactor, s.EaseFactor-EasePenalty)
	}

	return Result{
		Interval:   interval,
		EaseFactor: ease,
		NextReview: today.AddDays(interval),
	}
}

// Apply sonucu metadata üzerine yazar.
func Apply(m *models.CardMetadata, correct bool, today models.Date) {
	r := Next(State{Interval: m.Interval, EaseFactor: m.EaseFactor}, correct, today)
	m.Interval = r.Interval
	m.EaseFactor = r.EaseFactor
	m.NextReview = r.NextReview
}

// Today verilen konumdaki bugünün tarihini döndürür. loc nil ise UTC kullanılır.
func Today(loc *time.Location) models.Date {
	return On(time.Now(), loc)
}

// On t anının loc konumundaki takvim gününü döndürür.
func On(t time.Time, loc *time.Location) models.Date {
	if loc == nil {
		loc = time.UTC
	}
	return models.NewDate(t.In(loc))
}

// roundHalfUp pozitif değerlerde .5'i yukarı yuvarlar; negatif girdiler 0'a sabitlenir.
// MaxInterval'ı aşan veya sonsuz değerler int'e çevrilmeden MaxInterval'da doyar.
func roundHalfUp(v float64) int {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= models.MaxInterval {
		return models.MaxInterval
	}
	return int(math.Floor(v + 0.5))
}

func clampInterval(n int) int {
	if n < models.MinInterval {
		return models.MinInterval
	}
	if n > models.MaxInterval {
		return models.MaxInterval
	}
	return n
}
