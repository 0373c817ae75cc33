package utils

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

const idSuffixLen = 6

// Slugify - нижний регистр, пробелы заменяются дефисами
func Slugify(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "-")
}

// NewDestinationID синтезирует id вида "<slug(city)>-<6 hex>".
// Вероятность коллизии не митигируется: дубликат ловится на вставке.
func NewDestinationID(city string) string {
	return Slugify(city) + "-" + randomHex(idSuffixLen)
}

// NewToken возвращает случайный 32-символьный hex-токен.
func NewToken() string {
	return randomHex(32)
}

func randomHex(n int) string {
	u := uuid.New()
	return hex.EncodeToString(u[:])[:n]
}
