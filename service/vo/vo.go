package vo

type Markdown string

// Language is the source language of an agenda. Every pattern choice made
// while parsing a document is keyed by it.
type Language int

const (
	LanguageEnglish Language = iota + 1
	LanguageChinese
)

func (l Language) String() string {
	switch l {
	case LanguageEnglish:
		return "en"
	case LanguageChinese:
		return "zh"
	default:
		return "unknown"
	}
}

func (l Language) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Section is a logical region of an agenda.
type Section string

const (
	SectionTabledPapers   Section = "tabled_papers"
	SectionMembersBills   Section = "members_bills"
	SectionMembersMotions Section = "members_motions"
	SectionQuestions      Section = "questions"
	SectionBills          Section = "bills"
	SectionMotions        Section = "motions"
	SectionOther          Section = "other"
)

type QuestionType string

const (
	QuestionOral    QuestionType = "oral"
	QuestionWritten QuestionType = "written"
)

type Question struct {
	Number       string       `json:"number"`
	Asker        string       `json:"asker"`
	Type         QuestionType `json:"type"`
	Responder    string       `json:"responder,omitempty"` // empty if unrecoverable
	Body         string       `json:"body"`                // serialized markup of the body elements
	BodyMarkdown Markdown     `json:"bodyMarkdown,omitempty"`
}

type TabledLegislation struct {
	Number        string `json:"number"`
	Title         string `json:"title"`
	LowConfidence bool   `json:"lowConfidence,omitempty"`
}

type OtherTabledPaper struct {
	Title     string `json:"title"`
	Presenter string `json:"presenter,omitempty"`
}

type TabledPaperKind string

const (
	TabledPaperLegislation TabledPaperKind = "legislation"
	TabledPaperOther       TabledPaperKind = "other"
)

// TabledPaper holds exactly one of Legislation or Other, selected by Kind.
type TabledPaper struct {
	Kind        TabledPaperKind    `json:"kind"`
	Legislation *TabledLegislation `json:"legislation,omitempty"`
	Other       *OtherTabledPaper  `json:"other,omitempty"`
}

type ReadingStage string

const (
	ReadingFirst       ReadingStage = "first"
	ReadingSecond      ReadingStage = "second"
	ReadingSecondThird ReadingStage = "second_and_third"
	// ReadingThird is the committee stage followed by the third reading.
	ReadingThird ReadingStage = "committee_and_third"
)

type BillReading struct {
	Title         string       `json:"title"`
	Stage         ReadingStage `json:"stage"`
	Attendees     []string     `json:"attendees,omitempty"`
	Amendments    []string     `json:"amendments,omitempty"`
	LowConfidence bool         `json:"lowConfidence,omitempty"`
}

// Header is a section header as it appeared in the source document.
type Header struct {
	Section Section `json:"section"`
	Text    string  `json:"text"`
}

type DiagnosticKind string

const (
	DiagnosticUnrecognizedHeader     DiagnosticKind = "unrecognized_header"
	DiagnosticMalformedRow           DiagnosticKind = "malformed_row"
	DiagnosticUnrecognizedBillHeader DiagnosticKind = "unrecognized_bill_header"
	DiagnosticMissingBillTable       DiagnosticKind = "missing_bill_table"
	DiagnosticMissingResponder       DiagnosticKind = "missing_responder"
	DiagnosticMissingAsker           DiagnosticKind = "missing_asker"
	DiagnosticOrphanRow              DiagnosticKind = "orphan_row"
	DiagnosticLowConfidenceLayout    DiagnosticKind = "low_confidence_layout"
	DiagnosticUnterminatedPaper      DiagnosticKind = "unterminated_paper"
)

type Diagnostic struct {
	Section Section        `json:"section"`
	Kind    DiagnosticKind `json:"kind"`
	Message string         `json:"message"`
	Detail  string         `json:"detail,omitempty"` // offending text, if any
}

type SectionStatus string

const (
	StatusAbsent      SectionStatus = "absent"
	StatusParsed      SectionStatus = "parsed"
	StatusUnsupported SectionStatus = "unsupported"
)

// UnsupportedSection describes a section that was found but has no record
// parser; Markup keeps the raw elements.
type UnsupportedSection struct {
	Section Section       `json:"section"`
	Status  SectionStatus `json:"status"`
	Markup  []string      `json:"markup,omitempty"`
}

// Agenda is the serializable view of a parsed agenda.
type Agenda struct {
	ID           string               `json:"id"`
	Language     Language             `json:"language"`
	Headers      []Header             `json:"headers"`
	TabledPapers []TabledPaper        `json:"tabledPapers,omitempty"`
	Questions    []Question           `json:"questions,omitempty"`
	QuestionMap  map[string][]int     `json:"questionMap,omitempty"` // number -> indexes into Questions
	Bills        []BillReading        `json:"bills,omitempty"`
	Unsupported  []UnsupportedSection `json:"unsupported,omitempty"`
	Diagnostics  []Diagnostic         `json:"diagnostics,omitempty"`
}
