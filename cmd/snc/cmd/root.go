// Package cmd implements snc's command-line surface with cobra: a root
// command plus lex/parse/version subcommands.
package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sn-lang/snc/internal/compile"
	"github.com/sn-lang/snc/internal/config"
	"github.com/sn-lang/snc/internal/trace"
)

var (
	// Version information, set by build flags.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	outputFlag string
	runFlag    bool
	debugFlag  bool
	configFlag string
	traceFile  string
	queryFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "snc <source_file>",
	Short: "Sn compiler",
	Long: `snc compiles a Sn source file to x86-64 System-V assembly.

Sn is a small statically-typed, indentation-delimited scripting
language. snc lexes, parses, and type-checks the program, then emits
NASM-compatible assembly ready for "nasm -f elf64" and a System-V libc
link.`,
	Args:    cobra.ExactArgs(1),
	Version: Version,
	RunE:    runCompile,
}

// Execute runs the root command, returning the error (if any) that the
// caller should translate into an exit code.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "output file (default: <source>.o)")
	rootCmd.Flags().BoolVarP(&runFlag, "run", "v", false, "assemble, link, and run the program after a successful compile")
	rootCmd.Flags().BoolVarP(&debugFlag, "debug", "d", false, "enable verbose internal logging / phase tracing")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to .snc.toml (default: ./.snc.toml or $HOME/.snc.toml)")
	rootCmd.Flags().StringVar(&traceFile, "trace-file", "", "write phase trace JSON here instead of stderr")
	rootCmd.Flags().StringVar(&queryFlag, "query", "", "print one phase trace field, as \"phase.path\" (e.g. \"check.functionCount\"); records phase traces even without -d")
}

func runCompile(_ *cobra.Command, args []string) error {
	filename := args[0]

	cfg, err := config.Load(configFlag)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	traceEnabled := debugFlag || cfg.Debug.Verbose || queryFlag != ""
	rec := trace.New(traceEnabled)
	result := compile.Source(string(content), filename, rec)

	if result.Bag.HadError() {
		fmt.Fprint(os.Stderr, result.Bag.String())
		return fmt.Errorf("compilation failed with %d error(s)", len(result.Bag.Diagnostics))
	}

	if queryFlag != "" {
		if err := runQuery(rec, queryFlag); err != nil {
			return err
		}
	}

	outFile := outputFlag
	if outFile == "" {
		outFile = defaultOutputPath(filename, cfg.Output.Extension)
	}
	if err := os.WriteFile(outFile, []byte(result.Assembly), 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outFile, err)
	}

	if debugFlag || cfg.Debug.Verbose {
		if traceFile != "" {
			f, err := os.Create(traceFile)
			if err != nil {
				return fmt.Errorf("failed to create trace file %s: %w", traceFile, err)
			}
			defer f.Close()
			if err := rec.Flush(f); err != nil {
				return fmt.Errorf("failed to write trace file: %w", err)
			}
		} else {
			_ = rec.Flush(os.Stderr)
		}
	}

	fmt.Printf("Compiled %s -> %s\n", filename, outFile)

	if runFlag || cfg.Assemble.Auto {
		return assembleAndRun(outFile, cfg)
	}
	return nil
}

// runQuery prints one field out of a phase trace, addressed as
// "phase.path" (e.g. "check.functionCount"). rec must already be
// populated by a completed compile.Source call.
func runQuery(rec *trace.Recorder, query string) error {
	phase, path, ok := strings.Cut(query, ".")
	if !ok {
		return fmt.Errorf("--query must be \"phase.path\", got %q", query)
	}
	result := rec.Query(trace.Phase(phase), path)
	if !result.Exists() {
		return fmt.Errorf("--query: no field %q in phase %q", path, phase)
	}
	fmt.Println(result.String())
	return nil
}

func defaultOutputPath(filename, ext string) string {
	trimmed := strings.TrimSuffix(filename, filepath.Ext(filename))
	return trimmed + ext
}

// assembleAndRun shells out to nasm then gcc to produce a.out, then runs
// it. This collaborator is out of scope for the compiler's hard
// contract (spec.md §1) and has no unit test.
func assembleAndRun(asmFile string, cfg *config.Config) error {
	objFile := strings.TrimSuffix(asmFile, filepath.Ext(asmFile)) + ".obj.o"

	nasmArgs := []string{"-f", "elf64", asmFile, "-o", objFile}
	if err := runCollaborator(cfg.Assemble.Assembler, nasmArgs...); err != nil {
		return fmt.Errorf("assembling %s: %w", asmFile, err)
	}

	linkArgs := append(append([]string{objFile, "-o", "a.out"}, cfg.Assemble.LinkerArgs...))
	if err := runCollaborator(cfg.Assemble.Linker, linkArgs...); err != nil {
		return fmt.Errorf("linking %s: %w", objFile, err)
	}

	runArgs := exec.Command("./a.out")
	runArgs.Stdout = os.Stdout
	runArgs.Stderr = os.Stderr
	runArgs.Stdin = os.Stdin
	return runArgs.Run()
}

func runCollaborator(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
