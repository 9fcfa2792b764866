package checksumcache

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/hashgate/checksumcache/internal/fsutil"
)

// DefaultConcurrencyLimit bounds in-flight transform invocations when the
// caller does not supply a limit.
const DefaultConcurrencyLimit = 10

// TransformFunc transforms one input file into one output file.
type TransformFunc func(inputPath, outputPath string) error

// AggregateFunc transforms many input files into one output file.
type AggregateFunc func(inputPaths []string, outputPath string) error

// Result records the outcome for one output file. Transformed reports
// whether the transform function was invoked; it does not verify that
// the output exists when a file was skipped (the contract trusts the
// cache).
type Result struct {
	OutputPath  string
	Transformed bool
}

// outputName derives the output filename for an input basename. An
// extension starting with "." replaces the input's extension; any other
// non-empty extension is appended to the full name.
func outputName(name, ext string) string {
	if ext == "" {
		return name
	}
	if strings.HasPrefix(ext, ".") {
		return strings.TrimSuffix(name, filepath.Ext(name)) + ext
	}
	return name + ext
}

// Transform processes each input file whose content changed, writing the
// result under outputDir. Unchanged files are recorded with a false
// Transformed flag and fn is not invoked for them. The output directory
// is created before the first changed file is processed.
//
// A failing fn aborts only that file's processing: siblings still run,
// and all failures are wrapped with path context and joined into the
// returned error. Results always cover every input, in input order.
func (c *Cache) Transform(inputs []string, outputDir, outputExt string, fn TransformFunc) ([]Result, error) {
	outDir, err := c.resolver.Canonical(outputDir)
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(inputs))
	var errs []error

	for i, input := range inputs {
		inPath, err := c.resolver.Canonical(input)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out := filepath.Join(outDir, outputName(filepath.Base(inPath), outputExt))
		results[i] = Result{OutputPath: out}

		changed, err := c.HasChanged(inPath)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !changed {
			continue
		}

		if err := fsutil.EnsureDirs(outDir); err != nil {
			errs = append(errs, err)
			continue
		}
		results[i].Transformed = true
		if err := fn(inPath, out); err != nil {
			errs = append(errs, &TransformError{Input: inPath, Output: out, Cause: err})
		}
	}

	return results, errors.Join(errs...)
}

// TransformContext is the concurrent variant of Transform. At most limit
// transform invocations are in flight at once (DefaultConcurrencyLimit
// when limit <= 0); excess work queues in input order. Fingerprint checks
// of distinct files run in parallel and are not counted against the
// limit. Results are ordered identically to inputs regardless of
// completion order.
//
// Cancelling ctx abandons queued work; files whose fingerprint check
// already completed may have updated the store even if their transform
// never ran.
func (c *Cache) TransformContext(ctx context.Context, inputs []string, outputDir, outputExt string, fn TransformFunc, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = DefaultConcurrencyLimit
	}

	outDir, err := c.resolver.Canonical(outputDir)
	if err != nil {
		return nil, err
	}

	sem := semaphore.NewWeighted(int64(limit))
	results := make([]Result, len(inputs))
	errs := make([]error, len(inputs))

	var wg sync.WaitGroup
	for i, input := range inputs {
		wg.Add(1)
		go func(i int, input string) {
			defer wg.Done()

			inPath, err := c.resolver.Canonical(input)
			if err != nil {
				errs[i] = err
				return
			}
			out := filepath.Join(outDir, outputName(filepath.Base(inPath), outputExt))
			results[i] = Result{OutputPath: out}

			changed, err := c.HasChangedContext(ctx, inPath)
			if err != nil {
				errs[i] = err
				return
			}
			if !changed {
				return
			}

			if err := sem.Acquire(ctx, 1); err != nil {
				errs[i] = err
				return
			}
			defer sem.Release(1)

			if err := fsutil.EnsureDirs(outDir); err != nil {
				errs[i] = err
				return
			}
			results[i].Transformed = true
			if err := fn(inPath, out); err != nil {
				errs[i] = &TransformError{Input: inPath, Output: out, Cause: err}
			}
		}(i, input)
	}
	wg.Wait()

	return results, errors.Join(errs...)
}

// TransformAggregate processes many inputs into one output file. The
// decision is AnyChanged over the inputs, so every input's cache entry
// is refreshed; on a change fn receives the full canonical input list
// and the single output path.
func (c *Cache) TransformAggregate(inputs []string, outputFile string, fn AggregateFunc) (Result, error) {
	return c.TransformAggregateContext(context.Background(), inputs, outputFile, fn)
}

// TransformAggregateContext is the cancellable variant of
// TransformAggregate.
func (c *Cache) TransformAggregateContext(ctx context.Context, inputs []string, outputFile string, fn AggregateFunc) (Result, error) {
	outPath, err := c.resolver.Canonical(outputFile)
	if err != nil {
		return Result{}, err
	}
	result := Result{OutputPath: outPath}

	changed, err := c.AnyChangedContext(ctx, inputs)
	if err != nil {
		return result, err
	}
	if !changed {
		return result, nil
	}

	paths := make([]string, len(inputs))
	for i, input := range inputs {
		p, err := c.resolver.Canonical(input)
		if err != nil {
			return result, err
		}
		paths[i] = p
	}

	if err := fsutil.EnsureDirs(filepath.Dir(outPath)); err != nil {
		return result, err
	}
	result.Transformed = true
	if err := fn(paths, outPath); err != nil {
		return result, &TransformError{Input: strings.Join(paths, ", "), Output: outPath, Cause: err}
	}
	return result, nil
}

// CopyFile is the default transform: it copies the input file to the
// output path, preserving the input's permission bits.
func CopyFile(inputPath, outputPath string) error {
	src, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return err
	}

	dst, err := os.OpenFile(outputPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}
