package agenda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legcowatch/agenda-mcp/service/vo"
)

func TestReadingStage(t *testing.T) {
	english := &Document{patterns: patternsByLanguage[vo.LanguageEnglish]}
	chinese := &Document{patterns: patternsByLanguage[vo.LanguageChinese]}

	tests := []struct {
		doc    *Document
		header string
		want   vo.ReadingStage
		ok     bool
	}{
		{english, "First Reading", vo.ReadingFirst, true},
		{english, "(a) First Reading of Bills", vo.ReadingFirst, true},
		{english, "Second Reading (motion to be moved)", vo.ReadingSecond, true},
		{english, "Committee Stage and Third Reading", vo.ReadingThird, true},
		{english, "Second Reading (debate to resume), Committee Stage and Third Reading", vo.ReadingSecondThird, true},
		{english, "Bills to be withdrawn", "", false},
		{chinese, "首讀", vo.ReadingFirst, true},
		{chinese, "二讀(動議)", vo.ReadingSecond, true},
		{chinese, "全體委員會審議階段及三讀", vo.ReadingThird, true},
		{chinese, "二讀(恢復辯論)、全體委員會審議階段及三讀", vo.ReadingSecondThird, true},
		{chinese, "附註", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, ok := tt.doc.readingStage(tt.header)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestBillsEnglish(t *testing.T) {
	doc := parseBody(t, "cm1e", `<p>III. Bills</p>`+
		`<table>`+
		`<tr><td>First Reading</td></tr>`+
		`<tr><td>1.</td><td>Fire Services (Amendment) Bill 2014</td></tr>`+
		`<tr><td>2.</td><td>Lifts Bill</td></tr>`+
		`</table>`+
		`<table>`+
		`<tr><td>Second Reading (debate to resume), Committee Stage and Third Reading</td></tr>`+
		`<tr><td>1.</td><td>Inland Revenue (Amendment) Bill 2014</td><td>:</td><td>Secretary for Financial Services and the Treasury</td></tr>`+
		`<tr><td></td><td></td><td></td><td>Under Secretary for Financial Services</td></tr>`+
		`<tr><td></td><td>Committee stage amendments to be moved by the Secretary for Financial Services and the Treasury</td></tr>`+
		`<tr><td>2.</td><td>Road Safety Bill</td><td>:</td><td>Secretary for Transport</td></tr>`+
		`</table>`+
		`<table>`+
		`<tr><td>Bills to be withdrawn</td></tr>`+
		`<tr><td>1.</td><td>Old Bill</td><td>:</td><td>Nobody</td></tr>`+
		`</table>`+
		`<table>`+
		`<tr><td>Committee Stage and Third Reading</td></tr>`+
		`<tr><td>1.</td><td></td><td>Pharmacy Bill</td><td>:</td><td>Secretary for Food</td></tr>`+
		`</table>`)

	assert.Equal(t, []vo.BillReading{
		{Title: "Fire Services (Amendment) Bill 2014", Stage: vo.ReadingFirst},
		{Title: "Lifts Bill", Stage: vo.ReadingFirst},
		{
			Title:      "Inland Revenue (Amendment) Bill 2014",
			Stage:      vo.ReadingSecondThird,
			Attendees:  []string{"Secretary for Financial Services and the Treasury", "Under Secretary for Financial Services"},
			Amendments: []string{"Committee stage amendments to be moved by the Secretary for Financial Services and the Treasury"},
		},
		{Title: "Road Safety Bill", Stage: vo.ReadingSecondThird, Attendees: []string{"Secretary for Transport"}},
		{Title: "Pharmacy Bill", Stage: vo.ReadingThird, Attendees: []string{"Secretary for Food"}},
	}, doc.Bills)
	assert.Equal(t, []string{string(vo.DiagnosticUnrecognizedBillHeader)}, diagnosticKinds(doc))
}

func TestBillsAttendeeNamedLikeBill(t *testing.T) {
	doc := parseBody(t, "cm1e", `<p>III. Bills</p>`+
		`<table>`+
		`<tr><td>Second Reading</td></tr>`+
		`<tr><td>1.</td><td>Lifts Bill</td><td>:</td><td>Secretary for Development</td></tr>`+
		`<tr><td></td><td></td><td></td><td>Hon Billy FUNG</td></tr>`+
		`<tr><td></td><td></td><td></td><td>Under Secretary for billing</td></tr>`+
		`</table>`)

	assert.Equal(t, []vo.BillReading{{
		Title:     "Lifts Bill",
		Stage:     vo.ReadingSecond,
		Attendees: []string{"Secretary for Development", "Hon Billy FUNG", "Under Secretary for billing"},
	}}, doc.Bills)
	assert.Empty(t, doc.Diagnostics)
}

func TestBillsEnglishLowConfidenceTitle(t *testing.T) {
	doc := parseBody(t, "cm1e", `<p>III. Bills</p>`+
		`<table>`+
		`<tr><td>Second Reading</td></tr>`+
		`<tr><td>Narrow Bill</td><td>Secretary for Security</td></tr>`+
		`</table>`)

	require.Len(t, doc.Bills, 1)
	assert.Equal(t, "Narrow Bill", doc.Bills[0].Title)
	assert.Equal(t, []string{"Secretary for Security"}, doc.Bills[0].Attendees)
	assert.True(t, doc.Bills[0].LowConfidence)
	assert.Equal(t, []string{string(vo.DiagnosticLowConfidenceLayout)}, diagnosticKinds(doc))
}

func TestBillsChinese(t *testing.T) {
	doc := parseBody(t, "cm1c", `<p>III. 法案</p>`+
		`<p>首讀</p>`+
		`<table><tr><td>1.</td><td>2014年消防(修訂)條例草案</td></tr></table>`+
		`<p>二讀(恢復辯論)、全體委員會審議階段及三讀</p>`+
		`<table>`+
		`<tr><td>1.</td><td>2014年稅務(修訂)條例草案</td><td>:</td><td>財經事務及庫務局局長</td></tr>`+
		`<tr><td></td><td>全體委員會審議階段修正案由財經事務及庫務局局長動議</td></tr>`+
		`</table>`+
		`<p>全體委員會審議階段及三讀</p>`)

	assert.Equal(t, []vo.BillReading{
		{Title: "2014年消防(修訂)條例草案", Stage: vo.ReadingFirst},
		{
			Title:      "2014年稅務(修訂)條例草案",
			Stage:      vo.ReadingSecondThird,
			Attendees:  []string{"財經事務及庫務局局長"},
			Amendments: []string{"全體委員會審議階段修正案由財經事務及庫務局局長動議"},
		},
	}, doc.Bills)
	assert.Equal(t, []string{string(vo.DiagnosticMissingBillTable)}, diagnosticKinds(doc))
}
