package agenda

import (
	"strings"

	"github.com/legcowatch/agenda-mcp/service/vo"
)

// Sections lists every section in the fixed order sub-parsers run in.
var Sections = []vo.Section{
	vo.SectionTabledPapers,
	vo.SectionMembersBills,
	vo.SectionMembersMotions,
	vo.SectionQuestions,
	vo.SectionBills,
	vo.SectionMotions,
	vo.SectionOther,
}

// IsHeader reports whether text starts with a section-header numeral.
func IsHeader(text string) bool {
	return headerPattern.MatchString(strings.TrimSpace(text))
}

// ClassifyHeader maps header text to its section using the first rule with
// a matching English or Chinese keyword. ok is false when nothing matched,
// in which case the section is vo.SectionOther.
func ClassifyHeader(text string) (section vo.Section, ok bool) {
	folded := strings.ToLower(text)
	for _, rule := range sectionRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(folded, strings.ToLower(keyword)) {
				return rule.section, true
			}
		}
	}
	return vo.SectionOther, false
}
