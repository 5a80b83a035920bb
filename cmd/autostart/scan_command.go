package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"autostart/internal/logging"
	"autostart/internal/probe"
	"autostart/internal/queue"
	"autostart/internal/scan"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Preview which applications would launch, without launching anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			var events []scan.Event
			q := queue.New()
			scanner := scan.New(cfg, q, probe.New(), logging.NewNop(),
				scan.WithObserver(func(e scan.Event) { events = append(events, e) }))
			summaries := scanner.ScanAll(scan.Dirs())

			out := cmd.OutOrStdout()
			if len(events) == 0 {
				fmt.Fprintln(out, "No autostart descriptors found")
				return nil
			}

			rows := make([][]string, 0, len(events))
			for _, event := range events {
				decision := "launch"
				if !event.Queued {
					decision = "skip"
				}
				rows = append(rows, []string{event.Dir, event.File, event.Name, decision, event.Reason})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Directory", "File", "Name", "Decision", "Reason"},
				rows,
				nil,
			))

			var found, queued int
			for _, summary := range summaries {
				found += summary.Found
				queued += summary.Queued
			}
			fmt.Fprintf(out, "%d descriptors found, %d would launch\n", found, queued)
			return nil
		},
	}
}
