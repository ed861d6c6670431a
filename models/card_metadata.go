package models

// Varsayılan tekrar ayarları; yeni kartlar bu değerlerle oluşturulur.
const (
	DefaultInterval   = 0
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3
	MinInterval       = 1
	// MaxInterval aralığın doyduğu üst sınırdır (yaklaşık 100 yıl); next_review
	// böylece dört haneli yıl aralığında kalır.
	MaxInterval = 36500
)

// CardMetadata kartın tekrar zamanlamasını tutar. Card ile birebir ilişkilidir,
// birincil anahtarı aynı zamanda flashcards.id'ye yabancı anahtardır.
type CardMetadata struct {
	CardID     uint    `gorm:"primaryKey;autoIncrement:false" json:"card_id"`
	Interval   int     `gorm:"not null;default:0" json:"interval"`
	NextReview Date    `gorm:"not null;index" json:"next_review"`
	EaseFactor float64 `gorm:"not null;default:2.5" json:"ease_factor"`
}

func (CardMetadata) TableName() string {
	return "card_metadata"
}

// NewCardMetadata bugünden itibaren tekrar edilecek varsayılan metadata üretir.
func NewCardMetadata(today Date) CardMetadata {
	return CardMetadata{
		Interval:   DefaultInterval,
		NextReview: today,
		EaseFactor: DefaultEaseFactor,
	}
}

// IsDue kart verilen günde veya öncesinde tekrar zamanı gelmişse true döner.
func (m CardMetadata) IsDue(today Date) bool {
	return !m.NextReview.After(today)
}
