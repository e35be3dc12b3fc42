package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/restkit/internal/curl"
	"github.com/unkn0wn-root/restkit/internal/errdef"
	"github.com/unkn0wn-root/restkit/internal/reqmodel"
	"github.com/unkn0wn-root/restkit/internal/vars"
)

func newImportCmd(opts *cliOptions) *cobra.Command {
	var (
		fromFile string
		resolve  bool
		all      bool
	)

	cmd := &cobra.Command{
		Use:   "import [curl command]",
		Short: "Convert a curl command into a structured request",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args, fromFile)
			if err != nil {
				return err
			}

			var reqs []*reqmodel.Request
			if all {
				reqs = curl.ParseAll(text)
				if len(reqs) == 0 {
					return errdef.New(errdef.CodeParse, "no importable curl commands found")
				}
			} else {
				req, err := curl.ParseCommand(text)
				if err != nil {
					return err
				}
				reqs = []*reqmodel.Request{req}
			}

			if resolve {
				ctx, err := opts.variableContext()
				if err != nil {
					return err
				}
				resolver := vars.NewResolver()
				for _, req := range reqs {
					resolveRequest(resolver, ctx, req)
				}
			}

			out := cmd.OutOrStdout()
			for i, req := range reqs {
				if i > 0 && !opts.jsonOut {
					fmt.Fprintln(out)
				}
				if err := printRequest(out, req, opts.jsonOut); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&fromFile, "file", "f", "", "read the command from a file ('-' for stdin)")
	cmd.Flags().BoolVar(&resolve, "resolve", false, "resolve {{variables}} in the imported request")
	cmd.Flags().BoolVar(&all, "all", false, "import every curl command found in the input")
	return cmd
}

// resolveRequest substitutes placeholders in every string field of the
// request, the same fields the host editor resolves before execution.
func resolveRequest(resolver *vars.Resolver, ctx vars.Context, req *reqmodel.Request) {
	req.URL = resolver.Resolve(req.URL, ctx).Resolved
	for i := range req.Headers {
		req.Headers[i].Value = resolver.Resolve(req.Headers[i].Value, ctx).Resolved
	}
	for i := range req.Params {
		req.Params[i].Value = resolver.Resolve(req.Params[i].Value, ctx).Resolved
	}
	switch req.Body.Kind {
	case reqmodel.BodyRaw:
		req.Body.Raw = resolver.Resolve(req.Body.Raw, ctx).Resolved
	case reqmodel.BodyFormData, reqmodel.BodyURLEncoded:
		for i := range req.Body.Form {
			req.Body.Form[i].Value = resolver.Resolve(req.Body.Form[i].Value, ctx).Resolved
		}
	}
}

func printRequest(w io.Writer, req *reqmodel.Request, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(req)
	}
	renderRequest(w, req)
	return nil
}
