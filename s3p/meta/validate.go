// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package meta

import (
	"regexp"

	"go.chromium.org/luci/common/data/stringset"
	"go.chromium.org/luci/common/errors"

	"github.com/riannucci/s3pconv/s3p/s3pdata"
)

var badChars = regexp.MustCompile("[<>:\"/\\\\|?*\x00-\x1f]")

// CheckFilename returns nil iff name is usable as an asset filename: a single
// non-empty path component which can't escape the unpack directory.
func CheckFilename(name string) error {
	if name == "" {
		return errors.Reason("empty filename").Tag(s3pdata.InvalidMetadata).Err()
	}
	if name == "." || name == ".." {
		return errors.Reason("relative filename %q not allowed", name).
			Tag(s3pdata.InvalidMetadata).Err()
	}
	if idxs := badChars.FindStringIndex(name); len(idxs) > 0 {
		return errors.Reason("bad char %q in filename %q", name[idxs[0]:idxs[1]], name).
			Tag(s3pdata.InvalidMetadata).Err()
	}
	return nil
}

// Validate checks every filename with CheckFilename.
//
// Several records may name the same asset; each of them gets its own S3V when
// encoded.
func (l List) Validate() error {
	for i, rec := range l {
		if err := CheckFilename(rec.Filename); err != nil {
			return errors.Annotate(err, "record %d", i).Err()
		}
	}
	return nil
}

// Shared returns the filenames which more than one record names, in order of
// their first repeat.
func (l List) Shared() []string {
	seen := stringset.New(len(l))
	shared := stringset.New(0)
	var ret []string
	for _, rec := range l {
		if !seen.Add(rec.Filename) && shared.Add(rec.Filename) {
			ret = append(ret, rec.Filename)
		}
	}
	return ret
}
