package agenda

import (
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/legcowatch/agenda-mcp/service/vo"
)

// QuestionMap indexes questions by number. Most numbers map to a single
// question; urgent questions can reuse a number, in which case every
// question sharing it is kept in encounter order.
type QuestionMap map[string][]vo.Question

func NewQuestionMap(questions []vo.Question) QuestionMap {
	m := QuestionMap{}
	for _, q := range questions {
		m[q.Number] = append(m[q.Number], q)
	}
	return m
}

// Get returns the question with the given number when exactly one has it.
func (m QuestionMap) Get(number string) (vo.Question, bool) {
	questions := m[number]
	if len(questions) != 1 {
		return vo.Question{}, false
	}
	return questions[0], true
}

// All returns every question with the given number.
func (m QuestionMap) All(number string) []vo.Question {
	return m[number]
}

// IsDuplicate reports whether more than one question shares the number.
func (m QuestionMap) IsDuplicate(number string) bool {
	return len(m[number]) > 1
}

// parseQuestions splits the section into runs that each start at a question
// line. Text ahead of the first question line is closed into a question of
// its own without asker or number, so it stays visible in the diagnostics.
//
// A single unnumbered urgent question is folded into the question before it.
func (d *Document) parseQuestions(elements []*html.Node) []vo.Question {
	var questions []vo.Question
	var run []*html.Node

	for _, el := range elements {
		text := trimmedText(el)
		if text == "" {
			continue
		}
		if d.patterns.question.MatchString(text) && len(run) > 0 {
			questions = append(questions, d.buildQuestion(run))
			run = nil
		}
		run = append(run, el)
	}
	if len(run) > 0 {
		questions = append(questions, d.buildQuestion(run))
	}
	return questions
}

func (d *Document) buildQuestion(run []*html.Node) vo.Question {
	p := d.patterns
	var q vo.Question

	first := trimmedText(run[0])
	if m := p.question.FindStringSubmatch(first); m != nil {
		q.Number = m[2]
		q.Asker = strings.TrimSpace(m[3])
		q.Type = vo.QuestionOral
		if m[1] != "" {
			q.Type = vo.QuestionWritten
		}
	} else {
		d.diagnose(vo.SectionQuestions, vo.DiagnosticMissingAsker, "question without a number and asker", first)
	}

	// The responder line is second to last when a note about written replies
	// follows it, otherwise last.
	bodyEnd := len(run)
	found := false
	for i := len(run) - 2; i < len(run); i++ {
		if i < 1 {
			continue
		}
		if name, ok := d.responder(trimmedText(run[i])); ok {
			q.Responder = name
			bodyEnd = i
			found = true
			break
		}
	}
	if !found {
		d.diagnose(vo.SectionQuestions, vo.DiagnosticMissingResponder, "question without a responder line", first)
	}

	var body strings.Builder
	for _, el := range run[1:bodyEnd] {
		body.WriteString(renderNode(el))
	}
	q.Body = body.String()

	if q.Body != "" {
		markdown, err := htmltomarkdown.ConvertString(q.Body)
		if err != nil {
			d.logger.Debug("failed to convert question body to markdown", zap.String("number", q.Number), zap.Error(err))
		} else {
			q.BodyMarkdown = vo.Markdown(markdown)
		}
	}
	return q
}

func (d *Document) responder(text string) (string, bool) {
	p := d.patterns
	if m := p.responderLead.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := p.responderTrail.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}
