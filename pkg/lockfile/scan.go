package lockfile

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/lockmend/lockmend/pkg/advisory"
)

// ScanDir checks every recognized lockfile in dir against the advisory
// entries. Lockfiles are scanned concurrently; hits are returned grouped
// by the fixed scanner order so later deduplication deterministically
// attributes a pair to the first lockfile that matched it. Missing or
// unreadable lockfiles are skipped: absence of evidence is absence of
// compromise for that file.
func ScanDir(ctx context.Context, dir string, entries []advisory.Entry) ([]RawHit, error) {
	scanners := Scanners()
	perScanner := make([][]RawHit, len(scanners))

	g, ctx := errgroup.WithContext(ctx)
	for i, s := range scanners {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			content, err := os.ReadFile(filepath.Join(dir, s.File()))
			if err != nil {
				if !os.IsNotExist(err) {
					slog.Debug("skipping unreadable lockfile", "file", s.File(), "error", err)
				}
				return nil
			}
			perScanner[i] = scanOne(s, content, entries)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var hits []RawHit
	for _, h := range perScanner {
		hits = append(hits, h...)
	}
	return hits, nil
}

func scanOne(s Scanner, content []byte, entries []advisory.Entry) []RawHit {
	var hits []RawHit
	for _, e := range entries {
		for _, v := range e.Versions {
			if s.Matches(content, e.Name, v) {
				hits = append(hits, RawHit{
					Name:     e.Name,
					Version:  v,
					Lockfile: s.File(),
					Manager:  s.Kind(),
				})
			}
		}
	}
	return hits
}
