package agenda

import (
	"regexp"
	"strings"

	"github.com/legcowatch/agenda-mcp/service/vo"
)

var (
	// Roman numeral prefix; "A." introduces the rare special-question headings
	headerPattern = regexp.MustCompile(`^[IVA]+\.`)

	paperNumberPattern = regexp.MustCompile(`^\d+/\d+$`)

	// leading "(a)", "1.", "一、" style enumerators in front of bill headers
	enumeratorPattern = regexp.MustCompile(`^(?:[(（]\s*[a-zA-Z0-9一二三四五六七八九十]+\s*[)）]|[a-zA-Z0-9一二三四五六七八九十]+\s*[.、])\s*`)
)

type sectionRule struct {
	section  vo.Section
	keywords []string
}

// sectionRules is consulted in order. Members' bills and members' motions
// come before bills and motions because their keywords contain the shorter
// ones.
var sectionRules = []sectionRule{
	{vo.SectionTabledPapers, []string{"Tabling of Papers", "Laying of Papers", "Papers", "提交文件", "省覽文件", "文件"}},
	{vo.SectionMembersBills, []string{"Members' Bills", "Member's Bill", "Members' Bill", "議員法案"}},
	{vo.SectionMembersMotions, []string{"Members' Motions", "Member's Motion", "Members' Motion", "議員議案"}},
	{vo.SectionQuestions, []string{"Questions", "Question", "質詢"}},
	{vo.SectionBills, []string{"Bills", "Bill", "法案"}},
	{vo.SectionMotions, []string{"Motions", "Motion", "議案"}},
}

// languagePatterns holds everything that differs between English and
// Chinese agendas.
type languagePatterns struct {
	// groups: written marker, number, asker
	question *regexp.Regexp
	// responder named after the colon ("Public Officer to reply: X")
	responderLead *regexp.Regexp
	// responder named before the colon ("X: (reply)")
	responderTrail *regexp.Regexp
	presenter      *regexp.Regexp

	subsidiaryLegislation []string
	otherPapers           []string

	firstReading   string
	secondReading  string
	committeeStage string

	amendmentMarker string
	billMarker      *regexp.Regexp

	foldCase bool
	joiner   string
}

var patternsByLanguage = map[vo.Language]*languagePatterns{
	vo.LanguageEnglish: {
		question:       regexp.MustCompile(`^(\*)?\s*(\d+)\s*\.\s*(?:.*?\bHon\s+)?(.+?)\s+to\s+ask\b`),
		responderLead:  regexp.MustCompile(`(?i)^public\s+officers?\s+to\s+reply\s*:\s*(.+?)\s*$`),
		responderTrail: regexp.MustCompile(`^([^:]+?)\s*:\s*[(（](?i:[^)）]*reply[^)）]*)[)）]\s*$`),
		presenter:      regexp.MustCompile(`(?i)^[(（]?\s*(?:to\s+be\s+)?presented\s+by\s*:?\s+(?:the\s+)?(.+?)\s*[)）]?$`),

		subsidiaryLegislation: []string{"subsidiary legislation"},
		otherPapers:           []string{"other paper"},

		firstReading:   "first reading",
		secondReading:  "second reading",
		committeeStage: "committee stage",

		amendmentMarker: "committee stage amendment",
		billMarker:      regexp.MustCompile(`\bBill\b`),

		foldCase: true,
		joiner:   " ",
	},
	vo.LanguageChinese: {
		question:       regexp.MustCompile(`^(\*)?\s*(\d+)\s*\.\s*(.+?)議員(?:問|提出)`),
		responderLead:  regexp.MustCompile(`^(?:負責)?答覆的?(?:官員|人員)\s*:\s*(.+?)\s*$`),
		responderTrail: regexp.MustCompile(`^([^:]+?)\s*:\s*[(（][^)）]*答覆[^)）]*[)）]\s*$`),
		presenter:      regexp.MustCompile(`^[(（]?\s*由(.+?)提交\s*[)）]?$`),

		subsidiaryLegislation: []string{"附屬法例"},
		otherPapers:           []string{"其他文件"},

		firstReading:   "首讀",
		secondReading:  "二讀",
		committeeStage: "全體委員會審議階段",

		amendmentMarker: "修正案",
		billMarker:      regexp.MustCompile(`條例草案`),

		joiner: "",
	},
}

func (p *languagePatterns) fold(s string) string {
	if p.foldCase {
		return strings.ToLower(s)
	}
	return s
}

func (p *languagePatterns) hasPrefix(s, prefix string) bool {
	return strings.HasPrefix(p.fold(s), p.fold(prefix))
}

func (p *languagePatterns) contains(s, substr string) bool {
	return strings.Contains(p.fold(s), p.fold(substr))
}

func (p *languagePatterns) hasAnyPrefix(s string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if p.hasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

func (p *languagePatterns) containsAny(s string, substrs []string) bool {
	for _, substr := range substrs {
		if p.contains(s, substr) {
			return true
		}
	}
	return false
}

// isSectionRestatement reports whether a free-floating line only repeats a
// tabled-papers sub-heading
func (p *languagePatterns) isSectionRestatement(s string) bool {
	return p.hasAnyPrefix(s, p.subsidiaryLegislation) || p.hasAnyPrefix(s, p.otherPapers)
}

func (p *languagePatterns) join(parts []string) string {
	return strings.Join(parts, p.joiner)
}
