package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/cartforge/cartlint/pkg/constants"
	"github.com/cartforge/cartlint/pkg/linter"
	"github.com/cartforge/cartlint/pkg/logger"
)

var batchLog = logger.New("cli:batch")

// discoverCartridgeFiles walks root and collects every *.cartridge.md path,
// sorted for deterministic output. Hidden directories and node_modules are
// skipped.
func discoverCartridgeFiles(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			name := entry.Name()
			if path != root && (strings.HasPrefix(name, ".") || name == "node_modules") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(entry.Name(), constants.CartridgeFileSuffix) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan for cartridge documents: %w", err)
	}
	sort.Strings(paths)
	return paths, nil
}

// validateDocuments lints each path with up to jobs concurrent workers.
// Results come back in input order regardless of completion order.
func validateDocuments(lint *linter.Linter, paths []string, jobs int) []DocumentResult {
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	batchLog.Printf("Validating %d document(s) with %d worker(s)", len(paths), jobs)

	results := make([]DocumentResult, len(paths))
	workers := pool.New().WithMaxGoroutines(jobs)
	for i, path := range paths {
		workers.Go(func() {
			report, err := lint.LintFile(path)
			results[i] = DocumentResult{
				Path:   path,
				Valid:  err == nil && report.Valid(),
				Report: report,
				Err:    err,
			}
		})
	}
	workers.Wait()
	return results
}

// resolveTargets expands the validate arguments: explicit paths are taken as
// given, no arguments means walking the working directory.
func resolveTargets(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("cannot determine working directory: %w", err)
	}
	return discoverCartridgeFiles(cwd)
}
