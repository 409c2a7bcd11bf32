package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"home/internal/diag"
	"home/internal/source"
)

// DirResult aggregates the outcome of checking a whole directory.
type DirResult struct {
	Files []*Result
	// Bag holds every file's diagnostics merged and sorted.
	Bag *diag.Bag
	// CacheHits counts files skipped because the cache knew them clean.
	CacheHits int
}

// listSourceFiles returns all *.hm files under dir, sorted for
// deterministic order.
func listSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".hm") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// CheckDir checks every source file under dir. Files are checked in
// parallel: each gets its own FileSet and Checker, so there is no shared
// mutable state between goroutines. jobs <= 0 means GOMAXPROCS. cache may
// be nil to disable result caching.
func CheckDir(ctx context.Context, dir string, maxDiagnostics, jobs int, cache *Cache) (*DirResult, error) {
	files, err := listSourceFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	out := &DirResult{Bag: diag.NewBag(0)}
	if len(files) == 0 {
		return out, nil
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]*Result, len(files))
	hits := make([]bool, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			fset := source.NewFileSetWithBase(dir)
			id, err := fset.Load(path)
			if err != nil {
				return fmt.Errorf("load %s: %w", path, err)
			}
			file := fset.Get(id)

			if cache != nil {
				var payload Payload
				if found, err := cache.Get(file.Hash, &payload); err == nil && found && payload.Clean {
					hits[i] = true
					results[i] = &Result{Path: path, FileID: id, FileSet: fset, Bag: diag.NewBag(0)}
					return nil
				}
			}

			res := checkLoaded(fset, id, path, maxDiagnostics)
			results[i] = res

			if cache != nil {
				payload := Payload{
					Schema:      payloadSchemaVersion,
					Path:        path,
					Clean:       !res.Bag.HasErrors(),
					Diagnostics: res.Bag.Len(),
				}
				// A failed cache write never fails the check.
				_ = cache.Put(file.Hash, &payload)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, res := range results {
		out.Files = append(out.Files, res)
		out.Bag.Merge(res.Bag)
		if hits[i] {
			out.CacheHits++
		}
	}
	out.Bag.Sort()
	return out, nil
}
