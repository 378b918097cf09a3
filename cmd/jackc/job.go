package main

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nand2tetris-go/jackc/compiler"
	"github.com/nand2tetris-go/jackc/vmwriter"
	"github.com/pkg/errors"
)

// compileJob pairs one input .jack file with the .vm file it compiles to.
type compileJob struct {
	input  string
	output string
}

// jobFor derives the .vm sibling path for a single .jack file
// ("Xxx.jack" -> "Xxx.vm").
func jobFor(path string) compileJob {
	ext := filepath.Ext(path)
	out := strings.TrimSuffix(path, ext) + ".vm"
	return compileJob{input: path, output: out}
}

// discoverJobs walks dir non-recursively, matching Jack's one-class-per-file,
// one-directory-per-program convention, and returns one job per .jack file
// found, sorted by name for deterministic batch output.
func discoverJobs(dir string) ([]compileJob, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var jobs []compileJob
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".jack") {
			jobs = append(jobs, jobFor(filepath.Join(dir, entry.Name())))
		}
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].input < jobs[j].input })
	return jobs, nil
}

// runJob reads job.input, compiles it, and writes job.output. A compile
// failure never leaves a partial .vm file behind: the emitted text is
// buffered in memory and only flushed to disk once compilation succeeds.
func runJob(job compileJob) error {
	src, err := os.ReadFile(job.input)
	if err != nil {
		return errors.Wrapf(err, "reading %s", job.input)
	}

	var buf bytes.Buffer
	w := vmwriter.New(&buf)
	if err := compiler.Compile(string(src), w); err != nil {
		// Wrapped here, at the CLI boundary, so the *jackerr.Error cause is
		// still reachable via errors.Cause for anything that needs the raw
		// category; compiler.Compile itself returns the unwrapped value.
		return errors.Wrapf(err, "compiling %s", job.input)
	}

	if err := os.WriteFile(job.output, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", job.output)
	}
	return nil
}
