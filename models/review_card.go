package models

// ReviewCard tekrar oturumunda istemciye gönderilen düz kart görünümüdür.
type ReviewCard struct {
	CardID     uint    `json:"card_id"`
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Interval   int     `json:"interval"`
	EaseFactor float64 `json:"ease_factor"`
	NextReview Date    `json:"next_review"`
}

func NewReviewCard(c Card) ReviewCard {
	return ReviewCard{
		CardID:     c.ID,
		Question:   c.Question,
		Answer:     c.Answer,
		Interval:   c.Metadata.Interval,
		EaseFactor: c.Metadata.EaseFactor,
		NextReview: c.Metadata.NextReview,
	}
}
