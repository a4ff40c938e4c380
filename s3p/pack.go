// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package s3p

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"go.chromium.org/luci/common/errors"
	"go.chromium.org/luci/common/iotools"
	"go.chromium.org/luci/common/logging"

	"github.com/riannucci/s3pconv/s3p/meta"
)

// IsUnpacked returns true iff root looks like the output of UnpackTo (i.e. it
// contains a metadata file).
func IsUnpacked(root string) bool {
	st, err := os.Stat(filepath.Join(root, meta.Filename))
	return err == nil && st.Mode().IsRegular()
}

// PackFrom builds an S3P from an unpacked directory (as written by UnpackTo)
// and writes it to out. It returns the number of bytes written.
//
// The archive is fully built in memory before anything is written to out.
func PackFrom(ctx context.Context, root string, out io.Writer) (int64, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return 0, errors.Annotate(err, "making abspath").Err()
	}

	list, err := meta.ReadFile(filepath.Join(root, meta.Filename))
	if err != nil {
		return 0, err
	}
	logging.Debugf(ctx, "packing %d assets from %q", len(list), root)
	for _, name := range list.Shared() {
		logging.Warningf(ctx, "%q is used by more than one record", name)
	}

	data, err := Encode(list, DirSource(root))
	if err != nil {
		return 0, err
	}

	cw := &iotools.CountingWriter{Writer: out}
	if _, err := cw.Write(data); err != nil {
		return cw.Count, errors.Annotate(err, "writing S3P").Err()
	}
	logging.Fields{
		"entries": len(list),
		"bytes":   cw.Count,
	}.Infof(ctx, "packed %q", root)
	return cw.Count, nil
}
