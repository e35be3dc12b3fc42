package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/restkit/internal/config"
	"github.com/unkn0wn-root/restkit/internal/errdef"
	"github.com/unkn0wn-root/restkit/internal/vars"
)

var (
	version = "dev"
	commit  = "unknown"
)

type cliOptions struct {
	envFile string
	envName string
	reqVars []string
	jsonOut bool
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "restkit: "+errdef.Message(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:     "restkit",
		Short:   "Import curl commands and resolve {{variable}} placeholders",
		Version: fmt.Sprintf("%s (%s)", version, commit),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// ambient .env is optional; malformed files only warn
			if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: failed to load .env: %v\n", err)
			}
			applySettings(cmd.ErrOrStderr(), opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.envFile, "env-file", "", "environment file (.env, .yaml or .yml)")
	flags.StringVar(&opts.envName, "env", "", "environment name inside a multi-environment YAML file")
	flags.StringArrayVar(&opts.reqVars, "var", nil, "request-scoped variable (key=value, repeatable)")
	flags.BoolVar(&opts.jsonOut, "json", false, "machine-readable JSON output")

	root.AddCommand(newImportCmd(opts))
	root.AddCommand(newResolveCmd(opts))
	root.AddCommand(newValidateCmd(opts))
	return root
}

// applySettings fills unset flags from the user's settings file; a broken
// settings file must not block the CLI.
func applySettings(stderr io.Writer, opts *cliOptions) {
	settings, _, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(stderr, "warning: %v\n", err)
		return
	}
	if opts.envFile == "" {
		opts.envFile = settings.DefaultEnvFile
	}
	if opts.envName == "" {
		opts.envName = settings.DefaultEnv
	}
	if settings.OutputJSON {
		opts.jsonOut = true
	}
}

func (o *cliOptions) variableContext() (vars.Context, error) {
	ctx := vars.Context{}

	if o.envFile != "" {
		values, err := vars.LoadEnvFile(o.envFile, o.envName)
		if err != nil {
			return vars.Context{}, err
		}
		ctx.EnvironmentVars = values
	}

	if len(o.reqVars) > 0 {
		ctx.RequestVars = make(map[string]string, len(o.reqVars))
		for _, raw := range o.reqVars {
			key, value, ok := strings.Cut(raw, "=")
			key = strings.TrimSpace(key)
			if !ok || key == "" {
				return vars.Context{}, errdef.New(errdef.CodeConfig, "invalid --var %q, expected key=value", raw)
			}
			ctx.RequestVars[key] = value
		}
	}

	return ctx, nil
}

// readInput resolves the command/text argument: positional args joined, a
// file, or stdin when the path is "-".
func readInput(cmd *cobra.Command, args []string, fromFile string) (string, error) {
	if fromFile == "-" || (fromFile == "" && len(args) == 1 && args[0] == "-") {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", errdef.Wrap(errdef.CodeFilesystem, err, "read stdin")
		}
		return string(data), nil
	}
	if fromFile != "" {
		data, err := os.ReadFile(fromFile)
		if err != nil {
			return "", errdef.Wrap(errdef.CodeFilesystem, err, "read %s", fromFile)
		}
		return string(data), nil
	}
	if len(args) == 0 {
		return "", errdef.New(errdef.CodeConfig, "no input: pass text, --file or '-' for stdin")
	}
	return strings.Join(args, " "), nil
}
