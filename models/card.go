package models

// Card bir soru-cevap kartının ana kaydıdır.
type Card struct {
	BaseModel
	Question string `gorm:"type:text;not null" json:"question"`
	Answer   string `gorm:"type:text;not null" json:"answer"`

	// GORM İlişkileri
	Metadata CardMetadata `gorm:"foreignKey:CardID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"metadata"`
}

func (Card) TableName() string {
	return "flashcards"
}
