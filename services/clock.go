package services

import (
	"time"

	"studycards.app/models"
	"studycards.app/pkg/srs"
)

// Clock "bugün" bilgisini yapılandırılmış saat dilimine göre verir.
type Clock struct {
	Location *time.Location
	// Now testlerde zamanı sabitlemek için; nil ise gerçek saat kullanılır.
	Now func() time.Time
}

func NewClock(loc *time.Location) Clock {
	return Clock{Location: loc}
}

func (c Clock) Today() models.Date {
	if c.Now == nil {
		return srs.Today(c.Location)
	}
	return srs.On(c.Now(), c.Location)
}
