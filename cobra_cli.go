package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"

	"github.com/agentflare-ai/go-mkdocs/internal/config"
)

const rootLongDesc = `
go-mkdocs writes a Markdown skeleton for mkdocs + mkdocstrings from a Go package tree.
Every package becomes a heading followed by a "::: <import path>" directive, nested
under its parent package. Headings stop deepening at level 3.

Packages are discovered in one of two ways:

  • imports (default): load the root package and follow imports that live inside the
    importing package's namespace
  • files: walk the root directory and treat every directory with Go files as a package,
    optionally limited to files tracked by git (--tracked)

Settings may also come from a .go-mkdocs.yaml file (or --config) and GO_MKDOCS_*
environment variables; flags win over both.
`

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	app := &cliApp{stdout: stdout, stderr: stderr}
	defaults := config.DefaultConfig()
	cmd := &cobra.Command{
		Use:           "go-mkdocs [flags] [package|dir]",
		Short:         "Generate an mkdocs API skeleton for a Go package tree",
		Long:          strings.TrimSpace(rootLongDesc),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetOut(stdout)
	cmd.SetErr(io.Discard)
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.Flags()
	flags.StringVar(&app.configPath, "config", "", "read settings from this YAML file instead of ./.go-mkdocs.yaml")
	flags.StringP("output", "o", defaults.Output, "write the skeleton to file instead of stdout")
	flags.String("mode", defaults.Mode, "package discovery: imports (only sub-packages the root imports) or files (every package directory)")
	flags.Bool("flat", defaults.Flat, "render a flat list sorted by import path instead of a nested tree")
	flags.Bool("members", defaults.Members, "add one directive per exported function and type")
	flags.Bool("heading-level", defaults.HeadingLevel, "add a heading_level option to every directive")
	flags.Bool("tracked", defaults.Tracked, "with --mode=files, only consider files tracked by git")
	flags.Bool("cmd", defaults.IncludeMain, "include command (package main) packages below the root")
	flags.Bool("strict", defaults.Strict, "skip type aliases of types declared in other packages")
	flags.BoolP("verbose", "v", defaults.Verbose, "log discovery progress to stderr")
	flags.Bool("preview", defaults.Preview, "render the skeleton for the terminal when writing to one")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		cfg, err := config.Load(cmd.Flags(), app.configPath)
		if err != nil {
			return err
		}
		return app.execute(ctx, cfg, args)
	}

	cmd.AddCommand(newCompletionCmd(cmd))
	cmd.AddCommand(newDocsCmd(cmd))
	return cmd
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	const longDesc = `Generate shell completion scripts for go-mkdocs.

The output should be evaluated by your shell. For example:

  # bash
  go-mkdocs completion bash > /usr/local/etc/bash_completion.d/go-mkdocs

  # zsh
  go-mkdocs completion zsh > "${fpath[1]}/_go-mkdocs"

  # fish
  go-mkdocs completion fish | source

  # PowerShell
  go-mkdocs completion powershell | Out-String | Invoke-Expression
`
	cmd := &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		Long:                  longDesc,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return root.GenBashCompletion(out)
		case "zsh":
			return root.GenZshCompletion(out)
		case "fish":
			return root.GenFishCompletion(out, true)
		case "powershell":
			return root.GenPowerShellCompletion(out)
		default:
			return fmt.Errorf("unsupported shell %q", args[0])
		}
	}
	return cmd
}

func newDocsCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-docs [directory]",
		Short: "Generate Markdown reference docs for the CLI",
		Long: strings.TrimSpace(`
Write a Markdown file per command, ready to sit next to the API skeleton.

Example:

  go-mkdocs gen-docs ./docs/cli
`),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if target == "" {
			return fmt.Errorf("target directory is required")
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return err
		}
		return cobradoc.GenMarkdownTree(root, target)
	}
	return cmd
}
