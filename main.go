package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/jwren0/jerry/internal/config"
	"github.com/jwren0/jerry/internal/errors"
	"github.com/jwren0/jerry/internal/formatter"
	"github.com/jwren0/jerry/internal/lexer"
	"github.com/jwren0/jerry/internal/parser"
)

// CLI defines the command-line interface
var CLI struct {
	File        string `help:"Path to the file to parse. If not specified, reads from stdin." arg:"" optional:"" type:"path"`
	Output      string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Config      string `help:"Path to a config file. Defaults to the nearest .jerry.yml." short:"c" type:"path"`
	Indent      int    `help:"Number of spaces per indentation level." default:"2"`
	KeyCase     string `help:"Re-case object keys on output (none, snake, camel, pascal, kebab)." default:"none"`
	SortKeys    bool   `help:"Sort object keys lexicographically on output."`
	Debug       bool   `help:"Enable debug logging." short:"d"`
	Version     bool   `help:"Show version information." short:"v"`
	Interactive bool   `help:"Run in interactive mode, allowing direct input with Ctrl+D to process." short:"I"`
}

// Context holds the runtime context
type Context struct {
	Debug  bool
	Config *config.Config
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	// Parse CLI arguments with Kong
	cliParser := kong.Must(&CLI,
		kong.Name("jerry"),
		kong.Description("A JSON parser experiment"),
		kong.UsageOnError(),
	)

	// Check if no arguments provided and set interactive mode by default
	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	// Parse the command line arguments
	_, err := cliParser.Parse(os.Args[1:])
	if err != nil {
		// If there's an error parsing arguments, the usage will already be shown by kong.UsageOnError()
		os.Exit(1)
	}

	// Show version and exit if requested
	if CLI.Version {
		fmt.Printf("jerry version %s\n", Version)
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}

	err = run(&Context{Debug: CLI.Debug, Config: cfg})
	if err != nil {
		// Use our custom error handling to provide user-friendly error messages
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))

		// Show help on error
		fmt.Fprintf(os.Stderr, "\nFor help, run: jerry --help\n")

		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration: defaults, then the
// config file (explicit or discovered), then CLI flag overrides.
func loadConfig() (*config.Config, error) {
	path := CLI.Config
	if path == "" {
		path = config.FindConfigFile()
	}

	cfg := config.NewConfig()
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	// Apply CLI overrides only if they're not the default values, so
	// config file values survive default flags.
	if CLI.Indent != 2 {
		cfg.Indent = CLI.Indent
	}
	if CLI.KeyCase != config.KeyCaseNone {
		cfg.KeyCase = CLI.KeyCase
	}
	if CLI.SortKeys {
		cfg.SortKeys = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// run executes the main program logic
func run(ctx *Context) error {
	// 1. Read the whole input as text
	input, err := readInput()
	if err != nil {
		// Error is already wrapped by readInput
		return err
	}

	// 2. Tokenize
	tokens, err := lexer.TokenizeString(input)
	if err != nil {
		return err
	}
	if ctx.Debug {
		fmt.Fprintf(os.Stderr, "tokenized %d tokens\n", len(tokens))
	}

	// 3. Parse into a value tree
	tree, err := parser.ParseTokens(tokens)
	if err != nil {
		return err
	}

	// 4. Render the tree
	output, err := formatter.NewFormatterWithConfig(ctx.Config).Format(tree)
	if err != nil {
		return err
	}

	// 5. Output the result
	return writeOutput(output)
}

// readInput reads the document from file, stdin or the interactive prompt
func readInput() (string, error) {
	if CLI.File != "" {
		return readFileInput(CLI.File)
	}

	// Check if stdin has data
	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return "", errors.NewInputError("failed to access stdin", err)
	}

	// Interactive mode or piped input
	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive (not piped)
		if CLI.Interactive {
			return readInteractiveInput()
		}
		// No data provided on stdin and not in interactive mode
		return "", errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	// Read from stdin (piped input)
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", errors.NewInputError("failed to read from stdin", err)
	}

	if len(data) == 0 {
		return "", errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}

	return string(data), nil
}

// readFileInput reads the whole file at filePath as text
func readFileInput(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return "", errors.NewInputError(
			fmt.Sprintf("failed to read file '%s'", filePath),
			err,
		)
	}
	if len(data) == 0 {
		return "", errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}
	return string(data), nil
}

// writeOutput writes the rendered document to file or stdout
func writeOutput(output string) error {
	if CLI.Output != "" {
		// Write to file
		err := os.WriteFile(CLI.Output, []byte(output+"\n"), 0644)
		if err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		fmt.Fprintf(os.Stderr, "Parsed document written to %s\n", CLI.Output)
		return nil
	}

	// Write to stdout
	_, err := fmt.Println(output)
	if err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInteractiveInput provides an interactive mode for users to paste a
// document and signal completion with Ctrl+D (EOF). An interrupt exits
// silently with status 0.
func readInteractiveInput() (string, error) {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)
	go func() {
		<-interrupt
		os.Exit(0)
	}()

	fmt.Fprintln(os.Stderr, "Jerry Interactive Mode")
	fmt.Fprintln(os.Stderr, "Paste your document below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	// Read all input until EOF (Ctrl+D)
	reader := bufio.NewReader(os.Stdin)
	var builder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			// End of input
			builder.WriteString(line)
			break
		}
		if err != nil {
			return "", errors.NewInputError("error reading input", err)
		}
		builder.WriteString(line)
	}

	input := builder.String()
	if len(input) == 0 {
		return "", errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	fmt.Fprintln(os.Stderr, "\nProcessing document...")
	return input, nil
}
