// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphdoc

// graphdoc generates markdown documentation from a GraphQL schema.
package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/graphdoc"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/graphdoc"
	_buildTime string
)

// cliOptions describes graphdoc CLI flags.
//
// Exactly one schema source is read per run: --url introspects a live
// endpoint, --json reads a saved introspection response, and stdin is used
// when no source flag is given. --schema is declared for SDL files but has
// no builder yet.
type cliOptions struct {
	URL         string   `short:"u" long:"url" description:"URL to introspect" value-name:"URL"`
	JSONPath    string   `short:"j" long:"json" description:"File containing an introspection response" value-name:"FILE"`
	SchemaPath  string   `short:"s" long:"schema" description:"GraphQL SDL schema file (not supported yet)" value-name:"FILE"`
	Headers     []string `short:"H" long:"header" description:"Header to send with the URL request (Name: value); repeatable" value-name:"HEADER"`
	OutDir      string   `short:"o" long:"out-dir" description:"Output directory for one markdown file per entity kind" value-name:"DIR"`
	FrontMatter string   `short:"f" long:"front-matter" description:"Front matter pairs in key1:value1;key2:value2 form" value-name:"PAIRS"`
	Version     bool     `short:"V" long:"version" description:"Print version information"`
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	httpClient  *http.Client
	programName string
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithIO(args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "graphdoc"
	}

	programName = filepath.Base(programName)
	runner := cliRunner{
		programName: programName,
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
		httpClient:  http.DefaultClient,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	options := &cliOptions{}
	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	parser.LongDescription = strings.TrimSpace(fmt.Sprintf(`
Convert a GraphQL schema to markdown.

Specify the source of the schema using --url, --json, or --schema; without a
source flag the introspection response is read from stdin. With --out-dir the
output is split into one markdown file per entity kind; without it a single
combined document is written to stdout.

Examples:
> $ %s --url https://api.example.com/graphql -H "Authorization: Bearer t" -o docs/
> $ %s --json introspection.json --front-matter "layout:docs;section:api"
> $ cat introspection.json | %s > schema.md
`, runner.programName, runner.programName, runner.programName))

	rest, err := parser.ParseArgs(args)
	if err != nil {
		var flagErr *flags.Error
		if errors.As(err, &flagErr) {
			if flagErr.Type == flags.ErrHelp {
				writeCLIError(runner.stdout, err)
				return 0
			}

			writeCLIError(runner.stderr, err)
			return 2
		}

		writeCLIError(runner.stderr, err)
		return 1
	}

	if len(rest) > 0 {
		writeCLIError(runner.stderr, fmt.Errorf("unexpected arguments: %s", strings.Join(rest, " ")))
		return 2
	}

	if options.Version {
		printVersionInfo(runner.stdout)
		return 0
	}

	if err := runner.generate(options); err != nil {
		writeCLIError(runner.stderr, err)
		return 1
	}

	return 0
}

// generate reads the selected source, renders markdown and writes the result.
func (runner *cliRunner) generate(options *cliOptions) error {
	raw, err := runner.readSource(options)
	if err != nil {
		return err
	}

	frontMatter, err := parseFrontMatter(options.FrontMatter)
	if err != nil {
		return err
	}

	outDir := strings.TrimSpace(options.OutDir)
	doc, err := graphdoc.Generate(raw, graphdoc.Options{
		FrontMatter: frontMatter,
		SplitByKind: outDir != "",
	})
	if err != nil {
		return err
	}

	if len(doc.Kinds()) == 0 {
		_, _ = fmt.Fprintln(runner.stderr, "warning: schema has no renderable entities")
	}

	if outDir == "" {
		if _, err := io.WriteString(runner.stdout, doc.Combined()); err != nil {
			return fmt.Errorf("write markdown to stdout: %w", err)
		}

		return nil
	}

	return writeUnits(doc, outDir)
}

// readSource resolves raw introspection bytes from the selected schema source.
func (runner *cliRunner) readSource(options *cliOptions) ([]byte, error) {
	sources := 0
	for _, value := range []string{options.URL, options.JSONPath, options.SchemaPath} {
		if strings.TrimSpace(value) != "" {
			sources++
		}
	}

	if sources > 1 {
		return nil, errors.New("choose one schema source: --url, --json or --schema")
	}

	switch {
	case strings.TrimSpace(options.URL) != "":
		return runner.fetchIntrospection(options.URL, options.Headers)
	case strings.TrimSpace(options.JSONPath) != "":
		data, err := os.ReadFile(options.JSONPath)
		if err != nil {
			return nil, fmt.Errorf("read introspection file %q: %w", options.JSONPath, err)
		}

		return data, nil
	case strings.TrimSpace(options.SchemaPath) != "":
		return nil, fmt.Errorf("%w: SDL schema files (--schema)", graphdoc.ErrUnsupportedSource)
	default:
		data, err := io.ReadAll(runner.stdin)
		if err != nil {
			return nil, fmt.Errorf("read introspection from stdin: %w", err)
		}

		if len(strings.TrimSpace(string(data))) == 0 {
			return nil, errors.New("read introspection from stdin: empty input")
		}

		return data, nil
	}
}

// fetchIntrospection POSTs the introspection query to a GraphQL endpoint.
func (runner *cliRunner) fetchIntrospection(url string, headers []string) ([]byte, error) {
	request, err := http.NewRequest(http.MethodPost, url, strings.NewReader(graphdoc.IntrospectionQuery))
	if err != nil {
		return nil, fmt.Errorf("build introspection request: %w", err)
	}

	request.Header.Set("Content-Type", "application/graphql")
	for _, header := range headers {
		name, value, found := strings.Cut(header, ":")
		name = strings.TrimSpace(name)
		if !found || name == "" {
			return nil, fmt.Errorf("malformed header %q, want Name: value", header)
		}

		request.Header.Set(name, strings.TrimSpace(value))
	}

	response, err := runner.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("introspection request: %w", err)
	}
	defer func() {
		_ = response.Body.Close()
	}()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("introspection request: unexpected status %s", response.Status)
	}

	data, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("read introspection response: %w", err)
	}

	return data, nil
}

// parseFrontMatter parses key1:value1;key2:value2 pairs preserving order.
func parseFrontMatter(raw string) ([]graphdoc.FrontMatterEntry, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	pairs := strings.Split(raw, ";")
	out := make([]graphdoc.FrontMatterEntry, 0, len(pairs))
	for _, pair := range pairs {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		key, value, found := strings.Cut(pair, ":")
		key = strings.TrimSpace(key)
		if !found || key == "" {
			return nil, fmt.Errorf("malformed front matter pair %q, want key:value", pair)
		}

		out = append(out, graphdoc.FrontMatterEntry{Key: key, Value: strings.TrimSpace(value)})
	}

	return out, nil
}

// writeUnits persists one markdown file per present entity kind.
func writeUnits(doc *graphdoc.Document, outDir string) error {
	if err := os.MkdirAll(outDir, 0o750); err != nil {
		return fmt.Errorf("create output directory %q: %w", outDir, err)
	}

	for _, kind := range doc.Kinds() {
		text, ok := doc.Unit(kind)
		if !ok {
			continue
		}

		path := filepath.Join(outDir, kind+".md")
		if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
			return fmt.Errorf("write markdown file %q: %w", path, err)
		}
	}

	return nil
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	_, _ = fmt.Fprintln(output, err.Error())
}

func printVersionInfo(output io.Writer) {
	_, _ = fmt.Fprintf(output, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
