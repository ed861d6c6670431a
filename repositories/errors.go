package repositories

import "errors"

// ErrNotFound kayıt bulunamadığında repository katmanından döner.
var ErrNotFound = errors.New("kayıt bulunamadı")
