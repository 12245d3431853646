package agenda

import (
	"fmt"
	"strings"

	"github.com/legcowatch/agenda-mcp/service/vo"
)

// LanguageFromID reads the trailing language marker of a document id:
// "e" for English, "c" for Chinese.
func LanguageFromID(id string) (vo.Language, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return 0, fmt.Errorf("%w: empty document id", ErrUnknownLanguage)
	}
	switch id[len(id)-1] {
	case 'e', 'E':
		return vo.LanguageEnglish, nil
	case 'c', 'C':
		return vo.LanguageChinese, nil
	}
	return 0, fmt.Errorf("%w: no marker in document id %q", ErrUnknownLanguage, id)
}

// ParseLanguage accepts the usual spellings of the two agenda languages.
func ParseLanguage(s string) (vo.Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "e", "en", "eng", "english":
		return vo.LanguageEnglish, nil
	case "c", "zh", "chi", "chinese":
		return vo.LanguageChinese, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
}
