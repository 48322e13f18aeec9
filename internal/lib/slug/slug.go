package slug

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Make строит слаг из заголовка: нижний регистр, не-алфавитные
// последовательности заменяются дефисом, плюс случайный суффикс
// для уникальности. Слаг никогда не пустой даже для заголовка
// без латинских символов.
func Make(title string) string {
	base := strings.Trim(nonAlnum.ReplaceAllString(strings.ToLower(title), "-"), "-")

	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	if base == "" {
		return suffix
	}

	return base + "-" + suffix
}
