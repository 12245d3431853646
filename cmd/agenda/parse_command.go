package main

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/legcowatch/agenda-mcp/agenda"
	"github.com/legcowatch/agenda-mcp/service/vo"
)

const (
	formatJSON  = "json"
	formatTable = "table"
	formatSpew  = "spew"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func newParseCommand(ctx *commandContext) *cobra.Command {
	var idFlag string
	var langFlag string
	var formatFlag string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse an agenda file and print its records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var language vo.Language
			if strings.TrimSpace(langFlag) != "" {
				var err error
				if language, err = agenda.ParseLanguage(langFlag); err != nil {
					return err
				}
			}

			logger, err := ctx.newLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			svc, err := ctx.newService(logger, language)
			if err != nil {
				return err
			}
			doc, err := svc.ParseFile(cmd.Context(), args[0], strings.TrimSpace(idFlag))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch strings.ToLower(strings.TrimSpace(formatFlag)) {
			case formatJSON:
				return writeJSON(cmd, doc.Agenda())
			case formatTable:
				fmt.Fprint(out, renderAgenda(doc.Agenda()))
				return nil
			case formatSpew:
				dumpConfig.Fdump(out, doc.Agenda())
				return nil
			default:
				return fmt.Errorf("unknown format %q (use json, table or spew)", formatFlag)
			}
		},
	}

	cmd.Flags().StringVar(&idFlag, "id", "", "Document id; defaults to the file name without extension")
	cmd.Flags().StringVar(&langFlag, "lang", "", "Agenda language (en or zh); defaults to the id's marker")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", formatJSON, "Output format: json, table or spew")
	return cmd
}

// renderAgenda prints one table per non-empty record list.
func renderAgenda(a vo.Agenda) string {
	var b strings.Builder
	section := func(title string, headers []string, rows [][]string, aligns []columnAlignment) {
		if len(rows) == 0 {
			return
		}
		b.WriteString(renderTable(title, headers, rows, aligns))
		b.WriteString("\n\n")
	}

	fmt.Fprintf(&b, "Agenda %s (%s)\n\n", a.ID, a.Language)

	rows := make([][]string, 0, len(a.TabledPapers))
	for _, paper := range a.TabledPapers {
		switch paper.Kind {
		case vo.TabledPaperLegislation:
			row := []string{string(paper.Kind), paper.Legislation.Number, paper.Legislation.Title, ""}
			if paper.Legislation.LowConfidence {
				row[0] += " (?)"
			}
			rows = append(rows, row)
		case vo.TabledPaperOther:
			rows = append(rows, []string{string(paper.Kind), "", paper.Other.Title, paper.Other.Presenter})
		}
	}
	section("Tabled papers", []string{"Kind", "Number", "Title", "Presenter"}, rows, nil)

	rows = rows[:0:0]
	for _, q := range a.Questions {
		rows = append(rows, []string{q.Number, string(q.Type), q.Asker, q.Responder})
	}
	section("Questions", []string{"No.", "Type", "Asker", "Responder"}, rows, []columnAlignment{alignRight})

	rows = rows[:0:0]
	for _, bill := range a.Bills {
		title := bill.Title
		if bill.LowConfidence {
			title += " (?)"
		}
		rows = append(rows, []string{
			string(bill.Stage),
			title,
			strings.Join(bill.Attendees, "\n"),
			fmt.Sprint(len(bill.Amendments)),
		})
	}
	section("Bills", []string{"Stage", "Title", "Attendees", "Amendments"}, rows, []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight})

	rows = rows[:0:0]
	for _, raw := range a.Unsupported {
		rows = append(rows, []string{string(raw.Section), string(raw.Status), fmt.Sprint(len(raw.Markup))})
	}
	section("Unsupported sections", []string{"Section", "Status", "Elements"}, rows, []columnAlignment{alignLeft, alignLeft, alignRight})

	rows = rows[:0:0]
	for _, diag := range a.Diagnostics {
		rows = append(rows, []string{string(diag.Section), string(diag.Kind), diag.Message, diag.Detail})
	}
	section("Diagnostics", []string{"Section", "Kind", "Message", "Detail"}, rows, nil)

	return b.String()
}
