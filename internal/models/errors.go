package models

import "errors"

// ErrNotFound возвращается, когда запись с указанным id отсутствует в бд
var ErrNotFound = errors.New("record not found")

// ErrDuplicate возвращается при нарушении уникальности (например, дубликат номерного знака)
var ErrDuplicate = errors.New("duplicate record")
