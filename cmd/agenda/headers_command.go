package main

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/legcowatch/agenda-mcp/service/vo"
)

type headerReport struct {
	Document    string      `json:"document"`
	Path        string      `json:"path"`
	Headers     []vo.Header `json:"headers"`
	Other       int         `json:"other"`
	Diagnostics int         `json:"diagnostics"`
	Error       string      `json:"error,omitempty"`
}

func newHeadersCommand(ctx *commandContext) *cobra.Command {
	var formatFlag string

	cmd := &cobra.Command{
		Use:   "headers <file>...",
		Short: "List the section headers of agendas and how each was classified",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.newLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			svc, err := ctx.newService(logger, 0)
			if err != nil {
				return err
			}

			reports := make([]headerReport, len(args))
			var wg sync.WaitGroup
			for i, path := range args {
				wg.Add(1)
				go func() {
					defer wg.Done()
					report := headerReport{Path: path}
					doc, err := svc.ParseFile(cmd.Context(), path, "")
					if err != nil {
						report.Error = err.Error()
						reports[i] = report
						return
					}
					report.Document = doc.ID
					report.Headers = doc.Headers
					report.Other = doc.OtherHeaderCount()
					report.Diagnostics = len(doc.Diagnostics)
					reports[i] = report
				}()
			}
			wg.Wait()

			switch strings.ToLower(strings.TrimSpace(formatFlag)) {
			case formatJSON:
				if err := writeJSON(cmd, reports); err != nil {
					return err
				}
			case formatTable:
				fmt.Fprint(cmd.OutOrStdout(), renderHeaderReports(reports))
			default:
				return fmt.Errorf("unknown format %q (use json or table)", formatFlag)
			}

			failed := 0
			for _, report := range reports {
				if report.Error != "" {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d agendas failed to parse", failed, len(reports))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", formatTable, "Output format: table or json")
	return cmd
}

func renderHeaderReports(reports []headerReport) string {
	var b strings.Builder
	summary := make([][]string, 0, len(reports))
	for _, report := range reports {
		if report.Error != "" {
			summary = append(summary, []string{report.Path, "", "", "", report.Error})
			continue
		}
		rows := make([][]string, 0, len(report.Headers))
		for _, header := range report.Headers {
			rows = append(rows, []string{string(header.Section), header.Text})
		}
		if len(rows) > 0 {
			b.WriteString(renderTable(report.Document, []string{"Section", "Header"}, rows, nil))
			b.WriteString("\n\n")
		}
		summary = append(summary, []string{
			report.Document,
			fmt.Sprint(len(report.Headers)),
			fmt.Sprint(report.Other),
			fmt.Sprint(report.Diagnostics),
			"",
		})
	}
	b.WriteString(renderTable("Coverage", []string{"Document", "Headers", "Other", "Diagnostics", "Error"}, summary,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignLeft}))
	b.WriteString("\n")
	return b.String()
}
