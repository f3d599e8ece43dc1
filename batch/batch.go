// Package batch applies a finished lookup table to many image files at once.
//
// The table is shared read-only by all workers. Every file is an independent
// job: a failure is reported in that job's Result and never stops the
// others.
package batch

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lutools/lutmap"
	"github.com/lutools/lutmap/pathutil"
)

var _ = fmt.Print

type Job struct {
	Input, Output string
}

type Result struct {
	Job
	Err     error
	Elapsed time.Duration
}

type Options struct {
	// Maximum number of files processed at the same time, defaults to
	// GOMAXPROCS.
	Workers int
	Decode  []lutmap.DecodeOption
	Encode  []lutmap.EncodeOption
	// Progress, if set, is called once per finished job. Calls never overlap.
	Progress func(Result)
}

// DefaultOutput is the output name used when none is given for input:
// photo.jpg processed with film.g.png becomes photo_film.g.jpg.
func DefaultOutput(input, lut_path string) string {
	return pathutil.StripExt(input) + "_" + pathutil.BaseName(lut_path) + "." + pathutil.Ext(input)
}

// JobsFromArgs turns a list of the form INPUT [-OUTPUT] INPUT [-OUTPUT] ...
// into jobs. An argument starting with a dash names the output of the input
// before it, inputs without one get DefaultOutput.
func JobsFromArgs(args []string, lut_path string) []Job {
	jobs := make([]Job, 0, len(args))
	for i := 0; i < len(args); i++ {
		j := Job{Input: args[i]}
		if i+1 < len(args) && strings.HasPrefix(args[i+1], "-") {
			i++
			j.Output = args[i][1:]
		} else {
			j.Output = DefaultOutput(j.Input, lut_path)
		}
		jobs = append(jobs, j)
	}
	return jobs
}

func run_job(t lutmap.Table, j Job, opts *Options) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("processing %s failed: %v", j.Input, r)
		}
	}()
	doc, err := lutmap.OpenDocument(j.Input, opts.Decode...)
	if err != nil {
		return err
	}
	if doc, err = t.ApplyDocument(doc); err != nil {
		return fmt.Errorf("%s: %w", j.Input, err)
	}
	return lutmap.SaveDocument(doc, j.Output, opts.Encode...)
}

// Run processes all jobs and returns their results in job order. It returns
// only after every job has finished.
func Run(t lutmap.Table, jobs []Job, opts Options) []Result {
	results := make([]Result, len(jobs))
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	var g errgroup.Group
	g.SetLimit(workers)
	var mu sync.Mutex
	for i, j := range jobs {
		g.Go(func() error {
			st := time.Now()
			err := run_job(t, j, &opts)
			r := Result{Job: j, Err: err, Elapsed: time.Since(st)}
			results[i] = r
			if err != nil {
				lutmap.Logger().Warn("job failed", "input", j.Input, "error", err)
			} else {
				lutmap.Logger().Info("saved", "output", j.Output, "elapsed", r.Elapsed)
			}
			if opts.Progress != nil {
				mu.Lock()
				defer mu.Unlock()
				opts.Progress(r)
			}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// Failed counts the results with an error.
func Failed(results []Result) (n int) {
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return
}
