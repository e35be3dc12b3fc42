package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/restkit/internal/errdef"
	"github.com/unkn0wn-root/restkit/internal/vars"
)

func newResolveCmd(opts *cliOptions) *cobra.Command {
	var (
		fromFile string
		showRefs bool
	)

	cmd := &cobra.Command{
		Use:   "resolve [text]",
		Short: "Substitute {{variable}} placeholders in text",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args, fromFile)
			if err != nil {
				return err
			}
			ctx, err := opts.variableContext()
			if err != nil {
				return err
			}

			result := vars.NewResolver().Resolve(text, ctx)
			out := cmd.OutOrStdout()

			if opts.jsonOut {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					Resolved   string   `json:"resolved"`
					Referenced []string `json:"referenced,omitempty"`
				}{result.Resolved, result.Referenced})
			}

			fmt.Fprintln(out, result.Resolved)
			if showRefs {
				for _, name := range result.Referenced {
					fmt.Fprintln(out, refStyle.Render("ref: ")+name)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&fromFile, "file", "f", "", "read text from a file ('-' for stdin)")
	cmd.Flags().BoolVar(&showRefs, "refs", false, "list the variable names the text references")
	return cmd
}

func newValidateCmd(opts *cliOptions) *cobra.Command {
	var fromFile string

	cmd := &cobra.Command{
		Use:   "validate [text]",
		Short: "Check placeholder syntax without resolving",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args, fromFile)
			if err != nil {
				return err
			}

			result := vars.Validate(text)
			out := cmd.OutOrStdout()

			if opts.jsonOut {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(result); err != nil {
					return err
				}
			} else {
				for _, msg := range result.Errors {
					fmt.Fprintln(out, warnStyle.Render(msg))
				}
			}

			if !result.Valid {
				return errdef.New(errdef.CodeVars, "template is invalid")
			}
			if !opts.jsonOut {
				fmt.Fprintln(out, okStyle.Render("ok"))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&fromFile, "file", "f", "", "read text from a file ('-' for stdin)")
	return cmd
}
