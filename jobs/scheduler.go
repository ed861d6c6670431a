// Package jobs uygulama içinde zamanlanmış görevleri çalıştırır.
package jobs

import (
	"context"
	"fmt"
	"time"

	"studycards.app/configs/configslog"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// CardCounter günlük özet için gereken sayaçlar.
type CardCounter interface {
	CountCards(ctx context.Context) (int64, error)
	CountDue(ctx context.Context) (int64, error)
}

// Digest günlük özetin içeriği.
type Digest struct {
	Total int64
	Due   int64
}

// Scheduler gocron üzerinde günlük tekrar özetini çalıştırır.
type Scheduler struct {
	scheduler *gocron.Scheduler
	counter   CardCounter
	digestAt  string
	timeout   time.Duration
}

// New digestAt "15:04" biçiminde, loc içindeki saat olarak yorumlanır.
func New(counter CardCounter, loc *time.Location, digestAt string) *Scheduler {
	s := gocron.NewScheduler(loc)
	s.SingletonModeAll()
	return &Scheduler{
		scheduler: s,
		counter:   counter,
		digestAt:  digestAt,
		timeout:   30 * time.Second,
	}
}

// Start görevleri kaydeder ve zamanlayıcıyı bloklamadan başlatır.
func (s *Scheduler) Start() error {
	job, err := s.scheduler.Every(1).Day().At(s.digestAt).Tag("due-digest").Do(s.runDigest)
	if err != nil {
		return fmt.Errorf("failed to schedule due digest at %q: %w", s.digestAt, err)
	}
	s.scheduler.StartAsync()
	configslog.SLog.Infof("Zamanlayıcı başlatıldı, günlük özet: %s (sonraki: %s)",
		s.digestAt, job.NextRun().Format(time.RFC3339))
	return nil
}

// Stop çalışan görevlerin bitmesini bekleyerek zamanlayıcıyı durdurur.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
	configslog.SLog.Info("Zamanlayıcı durduruldu.")
}

func (s *Scheduler) runDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if _, err := s.RunDigest(ctx); err != nil {
		configslog.Log.Error("Günlük özet oluşturulamadı", zap.Error(err))
	}
}

// RunDigest toplam ve bugün tekrar edilecek kart sayılarını hesaplayıp loglar.
func (s *Scheduler) RunDigest(ctx context.Context) (Digest, error) {
	total, err := s.counter.CountCards(ctx)
	if err != nil {
		return Digest{}, fmt.Errorf("count cards: %w", err)
	}
	due, err := s.counter.CountDue(ctx)
	if err != nil {
		return Digest{}, fmt.Errorf("count due cards: %w", err)
	}

	d := Digest{Total: total, Due: due}
	configslog.Log.Info("Günlük tekrar özeti",
		zap.Int64("total_cards", d.Total),
		zap.Int64("due_cards", d.Due),
	)
	return d, nil
}
