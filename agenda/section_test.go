package agenda

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/legcowatch/agenda-mcp/service/vo"
)

func TestClassifyHeader(t *testing.T) {
	tests := []struct {
		header string
		want   vo.Section
		ok     bool
	}{
		{"I. Laying of Papers on the Table of the Council", vo.SectionTabledPapers, true},
		{"I. Tabling of Papers", vo.SectionTabledPapers, true},
		{"I. 提交文件", vo.SectionTabledPapers, true},
		{"II. Questions", vo.SectionQuestions, true},
		{"A. Urgent Question", vo.SectionQuestions, true},
		{"II. 質詢", vo.SectionQuestions, true},
		{"III. Bills", vo.SectionBills, true},
		{"III. 法案", vo.SectionBills, true},
		{"IV. Members' Bills", vo.SectionMembersBills, true},
		{"IV. 議員法案", vo.SectionMembersBills, true},
		{"V. Government Motions", vo.SectionMotions, true},
		{"V. 政府議案", vo.SectionMotions, true},
		{"VI. Members' Motions", vo.SectionMembersMotions, true},
		{"VI. 議員議案", vo.SectionMembersMotions, true},
		{"VI. MEMBERS' MOTIONS", vo.SectionMembersMotions, true},
		{"VII. Adjournment", vo.SectionOther, false},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, ok := ClassifyHeader(tt.header)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestClassifyHeaderPrecedence(t *testing.T) {
	// "Members' Bill" contains "Bill"; the members' rule must win
	got, ok := ClassifyHeader("IV. Members' Bill on Bills")
	assert.True(t, ok)
	assert.Equal(t, vo.SectionMembersBills, got)

	got, _ = ClassifyHeader("V. Members' Motion on a Motion")
	assert.Equal(t, vo.SectionMembersMotions, got)
}

func TestIsHeader(t *testing.T) {
	assert.True(t, IsHeader("II. Questions"))
	assert.True(t, IsHeader("  IV. Members' Bills"))
	assert.True(t, IsHeader("A. Urgent Question"))
	assert.False(t, IsHeader("1. Hon Alice to ask:"))
	assert.False(t, IsHeader("Questions"))
	assert.False(t, IsHeader("X. Something"))
}
