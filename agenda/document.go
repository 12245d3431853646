// Package agenda recovers the structure of Legislative Council meeting
// agendas: tabled papers, bills and questions, in English and Chinese.
//
// Parsing is synchronous and touches only the document being parsed, so
// separate documents can be parsed from separate goroutines.
package agenda

import (
	"errors"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/legcowatch/agenda-mcp/service/vo"
)

// RawSection holds the unparsed elements of a section that has no record
// parser, together with whether the section appeared at all.
type RawSection struct {
	Status   vo.SectionStatus
	Elements []*html.Node
}

// Document is a parsed agenda. Records are built once by Parse and not
// changed afterwards.
type Document struct {
	ID       string
	Language vo.Language
	Source   string     // normalized source text
	Tree     *html.Node // sanitized element tree

	// Headers lists every section header in document order.
	Headers     []vo.Header
	Diagnostics []vo.Diagnostic

	TabledPapers []vo.TabledPaper
	Questions    []vo.Question
	QuestionMap  QuestionMap
	Bills        []vo.BillReading

	MembersBills   RawSection
	MembersMotions RawSection
	Motions        RawSection
	// Other collects elements under headers no rule recognised. It is never
	// parsed into records.
	Other RawSection

	buckets  map[vo.Section][]*html.Node
	patterns *languagePatterns
	logger   *zap.Logger
}

type options struct {
	logger   *zap.Logger
	language vo.Language
}

type Option func(*options)

// WithLogger sets the logger diagnostics are reported to.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLanguage overrides the language read from the document id.
func WithLanguage(language vo.Language) Option {
	return func(o *options) {
		o.language = language
	}
}

// Parse normalizes, sanitizes, segments and parses one agenda. Only a
// load failure or an undeterminable language is returned as an error;
// every other anomaly is recorded in Diagnostics.
func Parse(id, source string, opts ...Option) (*Document, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	language := o.language
	if language == 0 {
		var err error
		if language, err = LanguageFromID(id); err != nil {
			return nil, err
		}
	}
	patterns, ok := patternsByLanguage[language]
	if !ok {
		return nil, ErrUnknownLanguage
	}

	if !utf8.ValidString(source) {
		return nil, &LoadError{DocumentID: id, Err: errors.New("source is not valid UTF-8")}
	}
	normalized := Normalize(source)
	tree, err := Sanitize(id, normalized)
	if err != nil {
		return nil, err
	}

	d := &Document{
		ID:             id,
		Language:       language,
		Source:         normalized,
		Tree:           tree,
		MembersBills:   RawSection{Status: vo.StatusAbsent},
		MembersMotions: RawSection{Status: vo.StatusAbsent},
		Motions:        RawSection{Status: vo.StatusAbsent},
		Other:          RawSection{Status: vo.StatusAbsent},
		buckets:        map[vo.Section][]*html.Node{},
		patterns:       patterns,
		logger:         o.logger.With(zap.String("document", id), zap.Stringer("language", language)),
	}

	d.segment()
	d.parseSections()
	return d, nil
}

func (d *Document) parseSections() {
	for _, section := range Sections {
		elements, ok := d.buckets[section]
		if !ok {
			continue
		}
		switch section {
		case vo.SectionTabledPapers:
			d.TabledPapers = d.parseTabledPapers(elements)
		case vo.SectionQuestions:
			d.Questions = d.parseQuestions(elements)
			d.QuestionMap = NewQuestionMap(d.Questions)
		case vo.SectionBills:
			d.Bills = d.parseBills(elements)
		case vo.SectionMembersBills:
			d.MembersBills = d.unsupported(section, elements)
		case vo.SectionMembersMotions:
			d.MembersMotions = d.unsupported(section, elements)
		case vo.SectionMotions:
			d.Motions = d.unsupported(section, elements)
		case vo.SectionOther:
			d.Other = RawSection{Status: vo.StatusUnsupported, Elements: elements}
		}
	}
}

// Status reports whether a section was absent, parsed into records, or
// present but without a record parser.
func (d *Document) Status(section vo.Section) vo.SectionStatus {
	if _, ok := d.buckets[section]; !ok {
		return vo.StatusAbsent
	}
	switch section {
	case vo.SectionTabledPapers, vo.SectionQuestions, vo.SectionBills:
		return vo.StatusParsed
	}
	return vo.StatusUnsupported
}

// Elements returns the elements segmented into a section, in document order.
func (d *Document) Elements(section vo.Section) []*html.Node {
	elements := d.buckets[section]
	out := make([]*html.Node, len(elements))
	copy(out, elements)
	return out
}

// OtherHeaderCount counts headers that matched no section rule.
func (d *Document) OtherHeaderCount() int {
	count := 0
	for _, header := range d.Headers {
		if header.Section == vo.SectionOther {
			count++
		}
	}
	return count
}

func (d *Document) diagnose(section vo.Section, kind vo.DiagnosticKind, message, detail string) {
	d.Diagnostics = append(d.Diagnostics, vo.Diagnostic{
		Section: section,
		Kind:    kind,
		Message: message,
		Detail:  detail,
	})
	d.logger.Warn(message,
		zap.String("section", string(section)),
		zap.String("kind", string(kind)),
		zap.String("detail", detail),
	)
}

// Agenda returns the serializable view of the document.
func (d *Document) Agenda() vo.Agenda {
	a := vo.Agenda{
		ID:           d.ID,
		Language:     d.Language,
		Headers:      d.Headers,
		TabledPapers: d.TabledPapers,
		Questions:    d.Questions,
		Bills:        d.Bills,
		Diagnostics:  d.Diagnostics,
	}
	if len(d.Questions) > 0 {
		a.QuestionMap = map[string][]int{}
		for i, q := range d.Questions {
			a.QuestionMap[q.Number] = append(a.QuestionMap[q.Number], i)
		}
	}
	for _, raw := range []struct {
		section vo.Section
		raw     RawSection
	}{
		{vo.SectionMembersBills, d.MembersBills},
		{vo.SectionMembersMotions, d.MembersMotions},
		{vo.SectionMotions, d.Motions},
	} {
		if raw.raw.Status != vo.StatusUnsupported {
			continue
		}
		markup := make([]string, 0, len(raw.raw.Elements))
		for _, el := range raw.raw.Elements {
			markup = append(markup, renderNode(el))
		}
		a.Unsupported = append(a.Unsupported, vo.UnsupportedSection{
			Section: raw.section,
			Status:  raw.raw.Status,
			Markup:  markup,
		})
	}
	return a
}
