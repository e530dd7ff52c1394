package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the saved chat transcript",
}

var historyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the transcript is saved",
	RunE:  runHistorySet(nil),
}

var historyOnCmd = &cobra.Command{
	Use:   "on",
	Short: "Save the transcript between sessions",
	RunE:  runHistorySet(ptr(true)),
}

var historyOffCmd = &cobra.Command{
	Use:   "off",
	Short: "Stop saving the transcript; what is saved stays",
	RunE:  runHistorySet(ptr(false)),
}

var historyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved transcript",
	RunE:  runHistoryShow,
}

func init() {
	historyCmd.AddCommand(historyStatusCmd)
	historyCmd.AddCommand(historyOnCmd)
	historyCmd.AddCommand(historyOffCmd)
	historyCmd.AddCommand(historyShowCmd)
}

func ptr[T any](v T) *T {
	return &v
}

func runHistorySet(want *bool) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := newApp(ctx, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer a.Close()

		if want != nil && a.session.SaveHistory() != *want {
			a.session.ToggleSaveHistory(ctx)
		}

		state := "off"
		if a.session.SaveHistory() {
			state = "on"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "History saving is %s.\n", state)
		return nil
	}
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.Close()

	if !a.session.SaveHistory() {
		fmt.Fprintln(cmd.OutOrStdout(), "History saving is off.")
		return nil
	}
	printTranscript(cmd.OutOrStdout(), a.session.Messages())
	return nil
}
