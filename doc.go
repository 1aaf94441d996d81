// # go-mkdocs
//
// `go-mkdocs` writes the Markdown skeleton of an API reference for a Go
// package tree. The output is meant for mkdocs with a mkdocstrings handler:
// every package becomes a heading followed by a `::: <import path>`
// directive, and the handler fills in the reference content when the site
// is built.
//
//	# github.com/acme/widget
//
//	::: github.com/acme/widget
//
//	## render
//
//	::: github.com/acme/widget/render
//
// Headings follow package nesting and stop at level 3. Nested headings show
// the import path relative to the root package.
//
// ## Usage
//
//	go run . [flags] [package|dir]
//
// Examples:
//
//   - Skeleton for the package in the current directory, printed to stdout:
//
//     go run .
//
//   - Walk the directory tree instead of the import graph and write a file:
//
//     go run . -mode=files -o docs/api.md ./...
//
//   - One directive per exported function and type, with heading levels:
//
//     go run . -members -heading-level -o docs/api.md ./pkg
//
// ## Discovery
//
// `imports` mode (the default) loads the root package and follows its
// imports. An import is followed only when its path lies inside the importing
// package's namespace, so the standard library and other modules are never
// visited. Sub-packages the root never imports are not found.
//
// `files` mode walks the root directory. Every directory holding non-test Go
// files is a package; `testdata`, `vendor`, hidden directories and nested
// modules are skipped. `-tracked` restricts the walk to files reported by
// `git ls-files`.
//
// A package's members are its exported functions and type names. With
// `-strict` (the default) an alias of a type declared in another package is
// not a member.
//
// ## Supported Flags
//
//   - `-o FILE`: write Markdown to `FILE` (stdout when omitted).
//   - `-mode imports|files`: discovery strategy.
//   - `-flat`: one block per package sorted by import path, no nesting.
//   - `-members`: add a `::: <package>.<Member>` directive per member.
//   - `-heading-level`: add an `options: heading_level: <n>` block.
//   - `-tracked`: with `-mode=files`, only consider git-tracked files.
//   - `-cmd`: keep command packages below the root.
//   - `-strict`: skip aliases of foreign types (default true).
//   - `-config FILE`: read settings from `FILE`.
//   - `-v`: log discovery progress to stderr.
//   - `-preview`: render the result for the terminal.
//
// ## Configuration
//
// Settings are read from `.go-mkdocs.yaml` in the working directory (or the
// `-config` file), then `GO_MKDOCS_*` environment variables, then flags.
// The `options` key holds extra mkdocstrings options added to every
// directive:
//
//	mode: files
//	members: true
//	options:
//	  show_source: false
//
// ## Shell Completion
//
//	go run . completion bash        # bash
//	go run . completion zsh         # zsh
//	go run . completion fish | source
//	go run . completion powershell | Out-String | Invoke-Expression
//
// ## CLI Docs
//
//	go run . gen-docs ./docs/cli
//
// Every command becomes its own Markdown file under the provided directory.
package main
