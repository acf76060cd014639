// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ugcprompt

// ugcprompt builds storyboard prompts for UGC style videos.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/woozymasta/ugcprompt"
	"github.com/woozymasta/ugcprompt/snapshot"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/ugcprompt"
	_buildTime string
)

// errInvalidState is returned by commands that reject an invalid builder state.
var errInvalidState = errors.New("builder state is invalid")

// cliOptions describes ugcprompt CLI flags and subcommands.
type cliOptions struct {
	Global globalFlags `group:"Global Options"`

	Version  versionCommand  `command:"version" description:"Print version information"`
	Generate generateCommand `command:"generate" description:"Generate prompt JSON or markdown from builder state"`
	Validate validateCommand `command:"validate" description:"Validate builder state"`
	Presets  presetsCommand  `command:"presets" description:"List built-in presets"`
	State    stateCommand    `command:"state" description:"Print default or preset builder state"`
	Template templateCommand `command:"template" description:"Print built-in markdown template"`
	Snapshot snapshotCommand `command:"snapshot" description:"Save, show or reset the persisted builder state"`
}

// globalFlags configure the snapshot store and override environment configuration.
type globalFlags struct {
	EnvFile  string `short:"e" long:"env-file" description:"Load UGCPROMPT_* variables from dotenv file"`
	Store    string `long:"store" description:"Snapshot store backend (overrides UGCPROMPT_STORE)" choice:"file" choice:"memory" choice:"redis"`
	StoreDir string `long:"store-dir" description:"Snapshot directory for file store (overrides UGCPROMPT_STORE_DIR)"`
}

// stateSourceFlags select where builder state comes from when no input file is given.
type stateSourceFlags struct {
	Preset   string `short:"p" long:"preset" description:"Use built-in preset state (see presets command)"`
	Snapshot bool   `short:"s" long:"snapshot" description:"Use persisted snapshot state"`
}

// templateSelectFlags groups built-in template selection flags.
type templateSelectFlags struct {
	TemplateName string `short:"t" long:"template" description:"Built-in markdown template style" choice:"prompt" choice:"table" default:"prompt"`
}

// stateFormatFlags select state encoding.
type stateFormatFlags struct {
	Format string `short:"F" long:"format" description:"State encoding (default: from output extension, else json)" choice:"json" choice:"yaml"`
}

// generateCommand renders the prompt document.
type generateCommand struct {
	runner *cliRunner
	Args   struct {
		Input  string `positional-arg-name:"input" description:"Input state file path (.json/.yaml; optional; stdin when omitted)"`
		Output string `positional-arg-name:"output" description:"Output file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	Source         stateSourceFlags    `group:"State Source"`
	TemplateFlags  templateSelectFlags `group:"Template Select"`
	Format         string              `short:"F" long:"format" description:"Output format" choice:"json" choice:"markdown" default:"json"`
	TemplatePath   string              `short:"f" long:"template-file" description:"Path to custom markdown template (.gotmpl)"`
	SkipValidation bool                `long:"skip-validation" description:"Render without validating state first"`
}

// Execute runs generate subcommand.
func (command *generateCommand) Execute(_ []string) error {
	return command.runner.runGenerate(command)
}

// validateCommand reports every validation error of a state.
type validateCommand struct {
	runner *cliRunner
	Args   struct {
		Input string `positional-arg-name:"input" description:"Input state file path (optional; stdin when omitted)"`
	} `positional-args:"yes"`

	Source stateSourceFlags `group:"State Source"`
}

// Execute runs validate subcommand.
func (command *validateCommand) Execute(_ []string) error {
	return command.runner.runValidate(command.Source, command.Args.Input)
}

// presetsCommand lists built-in presets.
type presetsCommand struct {
	runner *cliRunner
}

// Execute runs presets subcommand.
func (command *presetsCommand) Execute(_ []string) error {
	return command.runner.runPresets()
}

// stateCommand exports a starting state for editing.
type stateCommand struct {
	runner *cliRunner
	Args   struct {
		Output string `positional-arg-name:"output" description:"Output state file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	Preset      string           `short:"p" long:"preset" description:"Built-in preset identifier (default state when omitted)"`
	FormatFlags stateFormatFlags `group:"State Format"`
}

// Execute runs state subcommand.
func (command *stateCommand) Execute(_ []string) error {
	return command.runner.runState(command.Preset, command.FormatFlags.Format, command.Args.Output)
}

// templateCommand exports built-in markdown template.
type templateCommand struct {
	runner *cliRunner
	Args   struct {
		Output string `positional-arg-name:"output" description:"Output template file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	TemplateFlags templateSelectFlags `group:"Template Select"`
}

// Execute runs template subcommand.
func (command *templateCommand) Execute(_ []string) error {
	return command.runner.runTemplate(command.TemplateFlags.TemplateName, command.Args.Output)
}

// snapshotCommand groups snapshot subcommands.
type snapshotCommand struct {
	Save  snapshotSaveCommand  `command:"save" description:"Persist state from file, stdin or preset"`
	Show  snapshotShowCommand  `command:"show" description:"Print restored snapshot state"`
	Reset snapshotResetCommand `command:"reset" description:"Delete persisted snapshot"`
}

// snapshotSaveCommand persists a state.
type snapshotSaveCommand struct {
	runner *cliRunner
	Args   struct {
		Input string `positional-arg-name:"input" description:"Input state file path (optional; stdin when omitted)"`
	} `positional-args:"yes"`

	Preset string `short:"p" long:"preset" description:"Save built-in preset state"`
}

// Execute runs snapshot save subcommand.
func (command *snapshotSaveCommand) Execute(_ []string) error {
	return command.runner.runSnapshotSave(command.Preset, command.Args.Input)
}

// snapshotShowCommand prints restored state.
type snapshotShowCommand struct {
	runner *cliRunner

	FormatFlags stateFormatFlags `group:"State Format"`
}

// Execute runs snapshot show subcommand.
func (command *snapshotShowCommand) Execute(_ []string) error {
	return command.runner.runSnapshotShow(command.FormatFlags.Format)
}

// snapshotResetCommand deletes persisted state.
type snapshotResetCommand struct {
	runner *cliRunner
}

// Execute runs snapshot reset subcommand.
func (command *snapshotResetCommand) Execute(_ []string) error {
	return command.runner.runSnapshotReset()
}

// versionCommand prints version information.
type versionCommand struct {
	runner *cliRunner
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	printVersionInfo(command.runner.stdout)
	return nil
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	programName string
	// environ supplies configuration variables; os.Environ outside tests.
	environ func() []string
	global  *globalFlags
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
	runner := newCLIRunner(stdin, stdout, stderr)
	return runner.run(args)
}

// newCLIRunner builds runner reading configuration from the process environment.
func newCLIRunner(stdin io.Reader, stdout, stderr io.Writer) *cliRunner {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "ugcprompt"
	}

	return &cliRunner{
		programName: filepath.Base(programName),
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
		environ:     os.Environ,
	}
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

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

// runGenerate renders prompt JSON or markdown and writes result to stdout or file.
func (runner *cliRunner) runGenerate(command *generateCommand) error {
	state, err := runner.loadState(command.Source, command.Args.Input)
	if err != nil {
		return err
	}

	renderOptions := ugcprompt.Options{
		TemplateName: command.TemplateFlags.TemplateName,
		Validate:     !command.SkipValidation,
	}

	if command.TemplatePath != "" {
		customTemplate, err := os.ReadFile(command.TemplatePath)
		if err != nil {
			return fmt.Errorf("read template file %q: %w", command.TemplatePath, err)
		}

		renderOptions.TemplateText = string(customTemplate)
	}

	rendered, err := ugcprompt.Render(state, renderOptions)
	if err != nil {
		if errors.Is(err, ugcprompt.ErrInvalidState) {
			return err
		}

		return fmt.Errorf("render prompt: %w", err)
	}

	data := rendered.JSON
	if command.Format == "markdown" {
		data = []byte(rendered.Markdown)
	}

	return runner.writeOutput(command.Args.Output, data, "prompt")
}

// runValidate prints "valid" or one validation error per line.
func (runner *cliRunner) runValidate(source stateSourceFlags, inputPath string) error {
	state, err := runner.loadState(source, inputPath)
	if err != nil {
		return err
	}

	result := ugcprompt.Validate(state)
	if result.Valid() {
		_, err := fmt.Fprintln(runner.stdout, "valid")
		return err
	}

	for _, fieldErr := range result.Errors {
		if _, err := fmt.Fprintln(runner.stdout, fieldErr.Error()); err != nil {
			return err
		}
	}

	return fmt.Errorf("%w: %d errors", errInvalidState, len(result.Errors))
}

// runPresets lists preset identifiers, names and descriptions separated by tabs.
func (runner *cliRunner) runPresets() error {
	for _, preset := range ugcprompt.Presets() {
		if _, err := fmt.Fprintf(runner.stdout, "%s\t%s\t%s\n", preset.ID, preset.Name, preset.Description); err != nil {
			return fmt.Errorf("write presets to stdout: %w", err)
		}
	}

	return nil
}

// runState writes default or preset state in selected format.
func (runner *cliRunner) runState(presetID, format, outputPath string) error {
	state := ugcprompt.DefaultState()
	if presetID = strings.TrimSpace(presetID); presetID != "" {
		preset, ok := ugcprompt.LookupPreset(presetID)
		if ok {
			state = preset.State
		} else {
			_, _ = fmt.Fprintf(runner.stderr, "warning: unknown preset %q, using default state\n", presetID)
		}
	}

	data, err := ugcprompt.EncodeState(state, stateFormat(format, outputPath))
	if err != nil {
		return err
	}

	return runner.writeOutput(outputPath, data, "state")
}

// runTemplate writes selected built-in template to stdout or file.
func (runner *cliRunner) runTemplate(templateName, outputPath string) error {
	tpl, err := ugcprompt.BuiltinTemplate(templateName)
	if err != nil {
		return fmt.Errorf("load built-in template %q: %w", templateName, err)
	}

	return runner.writeOutput(outputPath, []byte(tpl), "template")
}

// runSnapshotSave persists state read from file, stdin or preset.
func (runner *cliRunner) runSnapshotSave(presetID, inputPath string) error {
	state, err := runner.loadState(stateSourceFlags{Preset: presetID}, inputPath)
	if err != nil {
		return err
	}

	manager, log, closeStore, err := runner.openSnapshotManager()
	if err != nil {
		return err
	}
	defer func() {
		_ = closeStore()
	}()

	if result := ugcprompt.Validate(state); !result.Valid() {
		log.WithField("errors", len(result.Errors)).Warn("saving invalid builder state")
	}

	return manager.Save(context.Background(), state)
}

// runSnapshotShow prints restored state; restore problems are reported as warnings.
func (runner *cliRunner) runSnapshotShow(format string) error {
	state, err := runner.restoreSnapshot()
	if err != nil {
		return err
	}

	data, err := ugcprompt.EncodeState(state, stateFormat(format, ""))
	if err != nil {
		return err
	}

	return runner.writeOutput("", data, "state")
}

// runSnapshotReset deletes persisted snapshot.
func (runner *cliRunner) runSnapshotReset() error {
	manager, _, closeStore, err := runner.openSnapshotManager()
	if err != nil {
		return err
	}
	defer func() {
		_ = closeStore()
	}()

	return manager.Reset(context.Background())
}

// loadState resolves state from preset, snapshot, file path or stdin.
func (runner *cliRunner) loadState(source stateSourceFlags, inputPath string) (ugcprompt.State, error) {
	presetID := strings.TrimSpace(source.Preset)
	inputPath = strings.TrimSpace(inputPath)

	selected := 0
	for _, set := range []bool{presetID != "", source.Snapshot, inputPath != ""} {
		if set {
			selected++
		}
	}

	if selected > 1 {
		return ugcprompt.State{}, errors.New("use only one of input file, --preset and --snapshot")
	}

	switch {
	case presetID != "":
		preset, ok := ugcprompt.LookupPreset(presetID)
		if !ok {
			_, _ = fmt.Fprintf(runner.stderr, "warning: unknown preset %q, using default state\n", presetID)
			return ugcprompt.DefaultState(), nil
		}

		return preset.State, nil
	case source.Snapshot:
		return runner.restoreSnapshot()
	}

	data, format, err := runner.readStateInput(inputPath)
	if err != nil {
		return ugcprompt.State{}, fmt.Errorf("read state input: %w", err)
	}

	state, err := ugcprompt.DecodeState(data, format)
	if err != nil {
		return ugcprompt.State{}, err
	}

	return state, nil
}

// restoreSnapshot restores persisted state and prints restore warnings.
func (runner *cliRunner) restoreSnapshot() (ugcprompt.State, error) {
	manager, _, closeStore, err := runner.openSnapshotManager()
	if err != nil {
		return ugcprompt.State{}, err
	}
	defer func() {
		_ = closeStore()
	}()

	restored := manager.Restore(context.Background())
	if restored.Warning != nil {
		_, _ = fmt.Fprintf(runner.stderr, "warning: snapshot not restored: %v\n", restored.Warning)
	}

	return restored.State, nil
}

// openSnapshotManager builds configuration, logger and store for snapshot flows.
func (runner *cliRunner) openSnapshotManager() (*snapshot.Manager, logrus.FieldLogger, func() error, error) {
	global := globalFlags{}
	if runner.global != nil {
		global = *runner.global
	}

	cfg, err := loadConfig(runner.environ(), global.EnvFile)
	if err != nil {
		return nil, nil, nil, err
	}

	if global.Store != "" {
		cfg.Store = global.Store
	}

	if global.StoreDir != "" {
		cfg.StoreDir = global.StoreDir
	}

	log, err := newLogger(cfg, runner.stderr)
	if err != nil {
		return nil, nil, nil, err
	}

	store, closeStore, err := snapshot.Open(cfg.storeConfig())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open snapshot store: %w", err)
	}

	manager := &snapshot.Manager{
		Store:  store,
		Key:    cfg.SnapshotKey,
		Strict: cfg.StrictRestore,
		Log:    log,
	}

	return manager, log, closeStore, nil
}

// readStateInput reads state from file path or stdin and detects its format.
func (runner *cliRunner) readStateInput(path string) ([]byte, ugcprompt.StateFormat, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, "", fmt.Errorf("read state file %q: %w", path, err)
		}

		return data, ugcprompt.StateFormatFromPath(path), nil
	}

	data, err := io.ReadAll(runner.stdin)
	if err != nil {
		return nil, "", fmt.Errorf("read state from stdin: %w", err)
	}

	trimmed := strings.TrimSpace(string(data))
	if len(trimmed) == 0 {
		return nil, "", errors.New("read state from stdin: empty input")
	}

	if strings.HasPrefix(trimmed, "{") {
		return data, ugcprompt.StateFormatJSON, nil
	}

	return data, ugcprompt.StateFormatYAML, nil
}

// writeOutput writes data to stdout when path is empty, otherwise to file.
func (runner *cliRunner) writeOutput(path string, data []byte, what string) error {
	if strings.TrimSpace(path) == "" {
		if _, err := runner.stdout.Write(data); err != nil {
			return fmt.Errorf("write %s to stdout: %w", what, err)
		}

		return nil
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write %s file %q: %w", what, path, err)
	}

	return nil
}

// stateFormat picks explicit format, then output extension.
func stateFormat(format, outputPath string) ugcprompt.StateFormat {
	if format != "" {
		return ugcprompt.StateFormat(format)
	}

	return ugcprompt.StateFormatFromPath(outputPath)
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	runner.global = &options.Global
	options.Version.runner = runner
	options.Generate.runner = runner
	options.Validate.runner = runner
	options.Presets.runner = runner
	options.State.runner = runner
	options.Template.runner = runner
	options.Snapshot.Save.runner = runner
	options.Snapshot.Show.runner = runner
	options.Snapshot.Reset.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}

	return nil
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"generate": strings.TrimSpace(fmt.Sprintf(`
Generate the storyboard prompt from builder state.
Reads state from file argument, stdin, --preset or --snapshot;
writes JSON (default) or markdown to file argument or stdout.
Invalid state is rejected unless --skip-validation is set.

Examples:
> $ %s generate --preset selfie-kitchen-iphone-15 > prompt.json
> $ %s generate -F markdown -t table state.yaml prompt.md
> $ %s generate --snapshot -F markdown
`, programName, programName, programName)),
		"validate": strings.TrimSpace(fmt.Sprintf(`
Validate builder state and print every problem, one per line.
Exits with code 1 when state is invalid.

Examples:
> $ %s validate state.json
> $ cat state.yaml | %s validate
`, programName, programName)),
		"state": strings.TrimSpace(fmt.Sprintf(`
Print a starting builder state for editing.
Format follows --format, then output file extension, then JSON.

Examples:
> $ %s state --preset talking-head-studio state.yaml
> $ %s state -F yaml
`, programName, programName)),
		"template": strings.TrimSpace(fmt.Sprintf(`
Print built-in markdown template text (`+"`prompt` or `table`"+`).
Use it as a starting point for a custom template file.

Examples:
> $ %s template > prompt.gotmpl
> $ %s template -t table templates/table.gotmpl
`, programName, programName)),
		"snapshot": strings.TrimSpace(fmt.Sprintf(`
Manage the persisted builder state.
Store backend is configured with UGCPROMPT_STORE (file, memory, redis)
or --store; a missing or corrupt snapshot restores the default state.

Examples:
> $ %s snapshot save --preset selfie-kitchen-iphone-15
> $ %s --store-dir ~/.ugcprompt snapshot show -F yaml
> $ %s snapshot reset
`, programName, programName, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

func printVersionInfo(output io.Writer) {
	_, _ = fmt.Fprintf(output, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
