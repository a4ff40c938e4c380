// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package s3p

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"go.chromium.org/luci/common/errors"
	"go.chromium.org/luci/common/logging"

	"github.com/riannucci/s3pconv/s3p/meta"
)

type unpackOptionData struct {
	overwrite   bool
	concurrency int
}

// UnpackOption functions can be supplied to UnpackTo.
type UnpackOption func(*unpackOptionData)

// WithOverwrite allows UnpackTo to write into a directory which already has
// contents. Existing files with the same names are replaced.
func WithOverwrite(val bool) UnpackOption {
	return func(o *unpackOptionData) {
		o.overwrite = val
	}
}

// WithConcurrency bounds the number of asset files written in parallel.
// Defaults to GOMAXPROCS.
func WithConcurrency(n int) UnpackOption {
	return func(o *unpackOptionData) {
		o.concurrency = n
	}
}

func ensureRoot(root string, overwrite bool) error {
	st, err := os.Stat(root)
	switch {
	case os.IsNotExist(err):
		if err := os.MkdirAll(root, 0777); err != nil {
			return errors.Annotate(err, "making root dir").Err()
		}
		return nil
	case err != nil:
		return err
	case !st.IsDir():
		return errors.Reason("%q is not a directory", root).Err()
	case overwrite:
		return nil
	}

	f, err := os.Open(root)
	if err != nil {
		return err
	}
	names, err := f.Readdirnames(1)
	f.Close()
	switch {
	case err == io.EOF:
		return nil
	case err != nil:
		return err
	case len(names) != 0:
		return errors.New("dir not empty")
	}
	return nil
}

func ensureAsset(sem chan struct{}, wg *sync.WaitGroup, ech chan<- error, root string, e *Entry) {
	sem <- struct{}{}
	wg.Add(1)
	go func() {
		defer func() {
			<-sem
			wg.Done()
		}()
		err := os.WriteFile(filepath.Join(root, e.Name), e.Asset, 0666)
		ech <- errors.Annotate(err, "writing asset %q", e.Name).Err()
	}()
}

// UnpackTo writes every asset of a to root as `<index>.asf`, followed by the
// sidecar metadata.json once all assets have been written.
//
// root must be either a non-existent path, or a path to an empty directory
// (unless WithOverwrite is supplied).
//
// No new asset writes are started once ctx is done, and metadata.json is only
// written if every asset was.
func (a *Archive) UnpackTo(ctx context.Context, root string, options ...UnpackOption) error {
	opts := unpackOptionData{concurrency: runtime.GOMAXPROCS(0)}
	for _, o := range options {
		o(&opts)
	}
	if opts.concurrency < 1 {
		opts.concurrency = 1
	}

	root, err := filepath.Abs(root)
	if err != nil {
		return errors.Annotate(err, "making abspath").Err()
	}
	if err := ensureRoot(root, opts.overwrite); err != nil {
		return errors.Annotate(err, "checking root").Err()
	}

	ech := make(chan error, 1)
	go func() {
		defer close(ech)

		wg := &sync.WaitGroup{}
		defer wg.Wait()

		sem := make(chan struct{}, opts.concurrency)
		for i := range a.Entries {
			if err := ctx.Err(); err != nil {
				ech <- errors.Annotate(err, "stopped before %q", a.Entries[i].Name).Err()
				return
			}
			ensureAsset(sem, wg, ech, root, &a.Entries[i])
		}
	}()

	hadError := false
	for err := range ech {
		if err == nil {
			continue
		}
		if !hadError {
			logging.Errorf(ctx, "errors while unpacking to %q:", root)
			hadError = true
		}
		logging.Errorf(ctx, "  %s", err)
	}
	if err := ctx.Err(); err != nil {
		return errors.Annotate(err, "unpacking to %q", root).Err()
	}
	if hadError {
		return errors.New("errors while unpacking (see log)")
	}

	if err := meta.WriteFile(filepath.Join(root, meta.Filename), a.Metadata()); err != nil {
		return errors.Annotate(err, "writing %s", meta.Filename).Err()
	}
	logging.Fields{
		"entries": len(a.Entries),
		"root":    root,
	}.Infof(ctx, "unpacked S3P")
	return nil
}
