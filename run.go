package main

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/agentflare-ai/go-mkdocs/internal/config"
	"github.com/agentflare-ai/go-mkdocs/internal/skeleton"
	"github.com/agentflare-ai/go-mkdocs/internal/tree"
)

type cliApp struct {
	stdout     io.Writer
	stderr     io.Writer
	configPath string
}

func run(argv []string, stdout io.Writer) error {
	cmd := newRootCmd(stdout, os.Stderr)
	cmd.SetArgs(normalizeLegacyArgs(argv))
	return cmd.Execute()
}

func (app *cliApp) execute(ctx context.Context, cfg *config.Config, positionals []string) error {
	if len(positionals) > 1 {
		return errors.New("at most one package argument is accepted")
	}
	target := "."
	if len(positionals) == 1 {
		target = positionals[0]
	}
	logger := newLogger(app.stderr, cfg.Verbose)
	if cfg.File != "" {
		logger.Debug("loaded config", "file", cfg.File)
	}

	root, err := buildTree(ctx, cfg, target, logger)
	if err != nil {
		return err
	}
	text, err := renderTree(cfg, root)
	if err != nil {
		return err
	}
	if cfg.Preview && toStdout(cfg.Output) && isTerminal(app.stdout) {
		if text, err = preview(text); err != nil {
			return err
		}
	}
	logger.Debug("writing skeleton", "output", outputName(cfg.Output), "bytes", len(text))
	return skeleton.Write(cfg.Output, app.stdout, text)
}

func buildTree(ctx context.Context, cfg *config.Config, target string, logger *log.Logger) (*tree.Node, error) {
	b := tree.New(tree.Options{
		Strict:      cfg.Strict,
		IncludeMain: cfg.IncludeMain,
		Tracked:     cfg.Tracked,
		Logger:      logger,
	})
	if cfg.Mode == config.ModeFiles {
		return b.BuildDir(ctx, strings.TrimSuffix(target, "/..."))
	}
	if cfg.Tracked {
		logger.Warn("--tracked only applies to --mode=files; ignoring")
	}
	return b.BuildImports(ctx, target)
}

func renderTree(cfg *config.Config, root *tree.Node) (string, error) {
	r, err := skeleton.New(skeleton.Options{
		Members:          cfg.Members,
		HeadingLevel:     cfg.HeadingLevel,
		DirectiveOptions: cfg.Options,
	})
	if err != nil {
		return "", err
	}
	if cfg.Flat {
		return skeleton.Document(r.Flat(root.Flatten(), root.Name)), nil
	}
	return skeleton.Document(r.Tree(root)), nil
}

func toStdout(path string) bool {
	return path == "" || path == "-"
}

func outputName(path string) string {
	if toStdout(path) {
		return "stdout"
	}
	return path
}

var legacyLongFlagSet = map[string]struct{}{
	"output":        {},
	"mode":          {},
	"flat":          {},
	"members":       {},
	"heading-level": {},
	"tracked":       {},
	"cmd":           {},
	"strict":        {},
	"config":        {},
	"verbose":       {},
	"preview":       {},
}

// normalizeLegacyArgs rewrites go-tool style single-dash long flags
// (-flat, -mode=files) to their double-dash form.
func normalizeLegacyArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}
	modified := false
	converted := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			converted = append(converted, args[i:]...)
			break
		}
		if !strings.HasPrefix(arg, "-") || strings.HasPrefix(arg, "--") || len(arg) <= 2 {
			converted = append(converted, arg)
			continue
		}
		name := arg[1:]
		if idx := strings.Index(name, "="); idx > 0 {
			name = name[:idx]
		}
		if _, ok := legacyLongFlagSet[name]; ok {
			converted = append(converted, "-"+arg)
			modified = true
			continue
		}
		converted = append(converted, arg)
	}
	if !modified {
		return args
	}
	return converted
}
