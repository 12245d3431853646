package agenda

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/legcowatch/agenda-mcp/service/vo"
)

func (d *Document) parseTabledPapers(elements []*html.Node) []vo.TabledPaper {
	p := d.patterns
	var papers []vo.TabledPaper
	var run []string

	flushUnterminated := func() {
		if len(run) > 0 {
			d.diagnose(vo.SectionTabledPapers, vo.DiagnosticUnterminatedPaper, "paper text without a presenter line", p.join(run))
			run = nil
		}
	}

	for _, el := range elements {
		if isTable(el) {
			flushUnterminated()
			papers = append(papers, d.parsePaperTable(el)...)
			continue
		}

		text := trimmedText(el)
		if text == "" || p.isSectionRestatement(text) {
			continue
		}
		if m := p.presenter.FindStringSubmatch(text); m != nil {
			if len(run) == 0 {
				d.diagnose(vo.SectionTabledPapers, vo.DiagnosticOrphanRow, "presenter line without a paper title", text)
				continue
			}
			papers = append(papers, otherPaper(p.join(run), strings.TrimSpace(m[1])))
			run = nil
			continue
		}
		run = append(run, text)
	}
	flushUnterminated()

	return papers
}

func (d *Document) parsePaperTable(table *html.Node) []vo.TabledPaper {
	p := d.patterns
	rows := nonBlankRows(table)
	if len(rows) == 0 {
		return nil
	}

	header := trimmedText(rows[0])
	switch {
	case p.hasAnyPrefix(header, p.subsidiaryLegislation):
		return d.legislationRows(rows[1:])
	case p.containsAny(header, p.otherPapers):
		return d.otherPaperRows(rows[1:])
	}

	// no header row: the first row's last column tells the table apart
	cells := cellTexts(rows[0])
	if len(cells) > 0 && paperNumberPattern.MatchString(cells[len(cells)-1]) {
		return d.legislationRows(rows)
	}
	return d.otherPaperRows(rows)
}

func (d *Document) legislationRows(rows []*html.Node) []vo.TabledPaper {
	var papers []vo.TabledPaper
	for _, row := range rows {
		cells := cellTexts(row)
		legislation, err := legislationFromCells(cells)
		if err != nil {
			d.diagnose(vo.SectionTabledPapers, vo.DiagnosticMalformedRow, err.Error(), strings.Join(cells, " | "))
			continue
		}
		if !paperNumberPattern.MatchString(legislation.Number) {
			legislation.LowConfidence = true
			d.diagnose(vo.SectionTabledPapers, vo.DiagnosticLowConfidenceLayout, "legislation number column does not hold a paper number", strings.Join(cells, " | "))
		}
		papers = append(papers, vo.TabledPaper{Kind: vo.TabledPaperLegislation, Legislation: &legislation})
	}
	return papers
}

// legislationFromCells reads columns from the right: the last column is the
// paper number and the next non-blank one the title, whatever the number of
// leading columns
func legislationFromCells(cells []string) (vo.TabledLegislation, error) {
	i := len(cells) - 1
	if i < 0 {
		return vo.TabledLegislation{}, fmt.Errorf("%w: no columns", errMalformedRow)
	}
	number := cells[i]
	for i--; i >= 0 && cells[i] == ""; i-- {
	}
	if i < 0 {
		return vo.TabledLegislation{}, fmt.Errorf("%w: no title column", errMalformedRow)
	}
	return vo.TabledLegislation{Number: number, Title: cells[i]}, nil
}

// otherPaperRows pairs a title row with the presenter row that follows it
func (d *Document) otherPaperRows(rows []*html.Node) []vo.TabledPaper {
	p := d.patterns
	var papers []vo.TabledPaper
	for i := 0; i < len(rows); i += 2 {
		title := lastNonBlank(cellTexts(rows[i]))
		if title == "" {
			title = trimmedText(rows[i])
		}
		if i+1 >= len(rows) {
			papers = append(papers, otherPaper(title, ""))
			break
		}

		line := lastNonBlank(cellTexts(rows[i+1]))
		if line == "" {
			line = trimmedText(rows[i+1])
		}
		presenter := line
		if m := p.presenter.FindStringSubmatch(line); m != nil {
			presenter = strings.TrimSpace(m[1])
		} else {
			d.diagnose(vo.SectionTabledPapers, vo.DiagnosticLowConfidenceLayout, "presenter row does not name a presenter", line)
		}
		papers = append(papers, otherPaper(title, presenter))
	}
	return papers
}

func otherPaper(title, presenter string) vo.TabledPaper {
	return vo.TabledPaper{
		Kind:  vo.TabledPaperOther,
		Other: &vo.OtherTabledPaper{Title: title, Presenter: presenter},
	}
}

func nonBlankRows(table *html.Node) []*html.Node {
	var rows []*html.Node
	for _, row := range tableRows(table) {
		if !isBlankRow(row) {
			rows = append(rows, row)
		}
	}
	return rows
}

func lastNonBlank(cells []string) string {
	for i := len(cells) - 1; i >= 0; i-- {
		if cells[i] != "" {
			return cells[i]
		}
	}
	return ""
}
