//go:build stave

package main

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

const (
	binary  = "bin/mdstyle"
	mainPkg = "./cmd/mdstyle"

	rulesPkg  = "./pkg/lint/rules"
	parserPkg = "./pkg/parser/goldmark"
)

// Default target builds the binary.
var Default = Build

// Aliases for common targets.
var Aliases = map[string]any{
	"b":     Build,
	"t":     Test.Default,
	"tr":    Test.Rules,
	"l":     Lint.Default,
	"c":     Check,
	"bench": Bench.Default,
	"fz":    Bench.Fuzz,
	"self":  Docs.Self,
}

type (
	Test  st.Namespace
	Lint  st.Namespace
	Bench st.Namespace
	Docs  st.Namespace
	CI    st.Namespace
)

// Build compiles bin/mdstyle when sources changed since the last build.
func Build() error {
	rebuild, err := target.Dir(binary, "cmd/", "pkg/", "internal/", "go.mod", "go.sum")
	if err != nil {
		return err
	}
	if !rebuild {
		fmt.Println(binary, "is up to date")
		return nil
	}
	fmt.Println("Building", binary)
	return sh.RunV("go", "build", "-trimpath", "-ldflags", ldflags(), "-o", binary, mainPkg)
}

// Install puts mdstyle into $GOBIN.
func Install() error {
	return sh.RunV("go", "install", "-trimpath", "-ldflags", ldflags(), mainPkg)
}

// Check formats, lints and tests.
func Check() {
	st.SerialDeps(Lint.Fmt, Lint.Default, Test.Default)
}

// Clean removes bin/ and coverage output.
func Clean() error {
	for _, path := range []string{"bin", "coverage.out", "coverage.html"} {
		if err := sh.Rm(path); err != nil {
			return err
		}
	}
	return nil
}

// Default runs every package's tests with the race detector and coverage.
func (Test) Default() error {
	return gotestsum("pkgname-and-test-fails", "-race", "-coverprofile=coverage.out", "-covermode=atomic", "./...")
}

// Rules runs the rule and parser tests, verbose.
func (Test) Rules() error {
	return gotestsum("testname", rulesPkg, parserPkg)
}

// Cover writes coverage.html from a fresh test run.
func (Test) Cover() error {
	st.Deps(Test.Default)
	return sh.RunV("go", "tool", "cover", "-html=coverage.out", "-o", "coverage.html")
}

// Default runs golangci-lint with auto-fix.
func (Lint) Default() error {
	return sh.RunV("golangci-lint", "run", "--fix", "./...")
}

// Fmt rewrites Go sources with gofmt.
func (Lint) Fmt() error {
	return sh.RunV("gofmt", "-s", "-w", "cmd", "internal", "pkg")
}

// FmtCheck fails when any Go source needs gofmt.
func (Lint) FmtCheck() error {
	out, err := sh.Output("gofmt", "-s", "-l", "cmd", "internal", "pkg")
	if err != nil {
		return fmt.Errorf("gofmt: %w", err)
	}
	if out != "" {
		return fmt.Errorf("needs gofmt:\n%s", out)
	}
	return nil
}

// Vet runs go vet.
func (Lint) Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Default runs the engine, rule and parser benchmarks.
func (Bench) Default() error {
	return benchmark(".", rulesPkg, parserPkg)
}

// Engine compares sequential and concurrent rule evaluation.
func (Bench) Engine() error {
	return benchmark("^BenchmarkEngineCheck$", rulesPkg)
}

// Fuzz runs each parser fuzz target for STAVE_FUZZ_TIME (default 30s).
func (Bench) Fuzz() error {
	fuzzTime := cmp.Or(os.Getenv("STAVE_FUZZ_TIME"), "30s")
	for _, name := range []string{"FuzzParse", "FuzzParseGFM", "FuzzParseDeterministic"} {
		fmt.Printf("fuzz %s (%s)\n", name, fuzzTime)
		if err := sh.RunV("go", "test", "-run", "^$", "-fuzz", "^"+name+"$", "-fuzztime", fuzzTime, parserPkg); err != nil {
			return fmt.Errorf("fuzz %s: %w", name, err)
		}
	}
	return nil
}

// Self checks the repository's own Markdown with a fresh binary.
func (Docs) Self() error {
	st.Deps(Build)
	return sh.RunV(binary, "check", "--format", "summary", ".")
}

// Rules prints the rule catalogue from the built binary.
func (Docs) Rules() error {
	st.Deps(Build)
	return sh.RunV(binary, "rules")
}

// Gate runs everything CI runs, in order.
func (CI) Gate() error {
	st.SerialDeps(
		Lint.FmtCheck,
		Lint.Vet,
		Build,
		Test.Default,
		Docs.Self,
		CI.ModTidy,
	)
	return nil
}

// ModTidy fails when go mod tidy would change go.mod or go.sum.
func (CI) ModTidy() error {
	before, err := readModFiles()
	if err != nil {
		return err
	}
	if err := sh.RunV("go", "mod", "tidy"); err != nil {
		return err
	}
	after, err := readModFiles()
	if err != nil {
		return err
	}
	if !bytes.Equal(before, after) {
		return errors.New("go.mod or go.sum not tidy")
	}
	return nil
}

func gotestsum(format string, args ...string) error {
	nCores := cmp.Or(os.Getenv("STAVE_NUM_PROCESSORS"), "4")
	cmdArgs := []string{"tool", "gotestsum", "-f", format, "--", "-p", nCores, "-parallel", nCores}
	return sh.RunV("go", append(cmdArgs, args...)...)
}

func benchmark(pattern string, pkgs ...string) error {
	args := []string{"test", "-run", "^$", "-bench", pattern, "-benchmem", "-count", cmp.Or(os.Getenv("STAVE_BENCH_COUNT"), "1")}
	return sh.RunV("go", append(args, pkgs...)...)
}

func readModFiles() ([]byte, error) {
	var buf bytes.Buffer
	for _, name := range []string{"go.mod", "go.sum"} {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		buf.Write(data)
	}
	return buf.Bytes(), nil
}

// ldflags injects version, commit and build date into main.
func ldflags() string {
	git := func(args ...string) string {
		out, err := sh.Output("git", args...)
		if err != nil {
			return ""
		}
		return strings.TrimSpace(out)
	}
	return fmt.Sprintf("-s -w -X main.version=%s -X main.commit=%s -X main.date=%s",
		cmp.Or(git("describe", "--tags", "--always", "--dirty"), "dev"),
		cmp.Or(git("rev-parse", "--short", "HEAD"), "none"),
		time.Now().UTC().Format(time.RFC3339),
	)
}
