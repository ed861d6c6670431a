package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout tarih alanlarının veritabanı ve JSON biçimidir.
const DateLayout = "2006-01-02"

// Date saat bilgisi olmayan takvim günüdür (YYYY-MM-DD).
type Date struct {
	time.Time
}

// NewDate t'nin kendi konumundaki takvim gününü UTC gece yarısı olarak saklar.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate YYYY-MM-DD biçimini çözer.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

// AddDays n gün sonrasını döndürür.
func (d Date) AddDays(n int) Date {
	return Date{Time: d.AddDate(0, 0, n)}
}

// After/Before/Equal yalnızca gün karşılaştırır.
func (d Date) After(o Date) bool  { return d.String() > o.String() }
func (d Date) Before(o Date) bool { return d.String() < o.String() }
func (d Date) Equal(o Date) bool  { return d.String() == o.String() }

func (Date) GormDataType() string {
	return "date"
}

// Value tarihi YYYY-MM-DD metni olarak yazar; Postgres DATE ve SQLite metin karşılaştırması ile uyumludur.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = NewDate(v)
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("models.Date: desteklenmeyen tip %T", value)
	}
}

func (d *Date) scanString(s string) error {
	if len(s) < len(DateLayout) {
		return fmt.Errorf("models.Date: geçersiz değer %q", s)
	}
	parsed, err := ParseDate(s[:len(DateLayout)])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
