package agenda

import (
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/legcowatch/agenda-mcp/service/vo"
)

// parseBills picks the heuristic for where reading headers sit: English
// agendas put the header in the first row of each table, Chinese agendas in
// a paragraph just before the table.
func (d *Document) parseBills(elements []*html.Node) []vo.BillReading {
	if d.Language == vo.LanguageChinese {
		return d.parseBillsHeaderParagraphs(elements)
	}
	return d.parseBillsHeaderRows(elements)
}

func (d *Document) parseBillsHeaderRows(elements []*html.Node) []vo.BillReading {
	var bills []vo.BillReading
	for _, el := range elements {
		if !isTable(el) {
			continue
		}
		rows := nonBlankRows(el)
		if len(rows) == 0 {
			continue
		}
		header := trimmedText(rows[0])
		stage, ok := d.readingStage(header)
		if !ok {
			d.diagnose(vo.SectionBills, vo.DiagnosticUnrecognizedBillHeader, "unrecognized reading header", header)
			continue
		}
		bills = append(bills, d.readingRows(stage, rows[1:])...)
	}
	return bills
}

func (d *Document) parseBillsHeaderParagraphs(elements []*html.Node) []vo.BillReading {
	var bills []vo.BillReading
	for i, el := range elements {
		if isTable(el) {
			continue
		}
		header := trimmedText(el)
		if header == "" {
			continue
		}
		stage, ok := d.readingStage(header)
		if !ok {
			d.logger.Debug("paragraph is not a reading header", zap.String("text", header))
			continue
		}
		if i+1 >= len(elements) || !isTable(elements[i+1]) {
			d.diagnose(vo.SectionBills, vo.DiagnosticMissingBillTable, "reading header is not followed by a table", header)
			continue
		}
		bills = append(bills, d.readingRows(stage, nonBlankRows(elements[i+1]))...)
	}
	return bills
}

// readingStage classifies a reading header
func (d *Document) readingStage(header string) (vo.ReadingStage, bool) {
	p := d.patterns
	header = enumeratorPattern.ReplaceAllString(strings.TrimSpace(header), "")

	switch {
	case p.hasPrefix(header, p.firstReading):
		return vo.ReadingFirst, true
	case p.contains(header, p.committeeStage):
		if p.hasPrefix(header, p.committeeStage) {
			return vo.ReadingThird, true
		}
		return vo.ReadingSecondThird, true
	case p.hasPrefix(header, p.secondReading):
		return vo.ReadingSecond, true
	}
	return "", false
}

func (d *Document) readingRows(stage vo.ReadingStage, rows []*html.Node) []vo.BillReading {
	if stage == vo.ReadingFirst {
		return d.firstReadingRows(rows)
	}

	p := d.patterns
	var bills []vo.BillReading
	var open *vo.BillReading

	for _, row := range rows {
		cells := cellTexts(row)
		text := p.join(nonBlank(cells))

		switch {
		case p.contains(text, p.amendmentMarker):
			if open == nil {
				d.diagnose(vo.SectionBills, vo.DiagnosticOrphanRow, "amendment row before any bill", text)
				continue
			}
			open.Amendments = append(open.Amendments, text)
		case !p.billMarker.MatchString(text):
			if open == nil {
				d.diagnose(vo.SectionBills, vo.DiagnosticOrphanRow, "attendee row before any bill", text)
				continue
			}
			if attendee := lastCell(cells); attendee != "" {
				open.Attendees = append(open.Attendees, attendee)
			}
		default:
			if open != nil {
				bills = append(bills, *open)
			}
			open = d.openBill(stage, cells, text)
		}
	}
	if open != nil {
		bills = append(bills, *open)
	}
	return bills
}

// openBill starts a bill from a title row. The title sits three columns from
// the right, after up to two numbering columns.
func (d *Document) openBill(stage vo.ReadingStage, cells []string, text string) *vo.BillReading {
	p := d.patterns
	bill := &vo.BillReading{Stage: stage}

	if len(cells) >= 3 && p.billMarker.MatchString(cells[len(cells)-3]) {
		bill.Title = cells[len(cells)-3]
	} else {
		bill.LowConfidence = true
		d.diagnose(vo.SectionBills, vo.DiagnosticLowConfidenceLayout, "bill title not found three columns from the right", text)
		for _, cell := range cells {
			if p.billMarker.MatchString(cell) {
				bill.Title = cell
				break
			}
		}
		if bill.Title == "" {
			bill.Title = text
		}
	}

	if len(cells) > 1 {
		if attendee := lastCell(cells); attendee != "" && attendee != bill.Title {
			bill.Attendees = append(bill.Attendees, attendee)
		}
	}
	return bill
}

// firstReadingRows emits one bill per row; first reading tables have no
// officials column
func (d *Document) firstReadingRows(rows []*html.Node) []vo.BillReading {
	var bills []vo.BillReading
	for _, row := range rows {
		cells := cellTexts(row)
		title := lastCell(cells)
		if title == "" {
			title = lastNonBlank(cells)
		}
		if title == "" {
			continue
		}
		bills = append(bills, vo.BillReading{Title: title, Stage: vo.ReadingFirst})
	}
	return bills
}

func lastCell(cells []string) string {
	if len(cells) == 0 {
		return ""
	}
	return cells[len(cells)-1]
}

func nonBlank(cells []string) []string {
	out := make([]string, 0, len(cells))
	for _, cell := range cells {
		if cell != "" {
			out = append(out, cell)
		}
	}
	return out
}
