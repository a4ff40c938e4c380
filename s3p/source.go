// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package s3p

import (
	"os"
	"path/filepath"

	"go.chromium.org/luci/common/errors"

	"github.com/riannucci/s3pconv/s3p/meta"
	"github.com/riannucci/s3pconv/s3p/s3pdata"
)

// AssetSource resolves the filename of a metadata record to the asset's bytes.
//
// When the asset doesn't exist, the returned error should be tagged with
// s3pdata.MissingAsset.
type AssetSource interface {
	Asset(filename string) ([]byte, error)
}

// MapSource is an in-memory AssetSource.
type MapSource map[string][]byte

var _ AssetSource = MapSource(nil)

func (m MapSource) Asset(filename string) ([]byte, error) {
	data, ok := m[filename]
	if !ok {
		return nil, errors.Reason("no asset %q", filename).Tag(s3pdata.MissingAsset).Err()
	}
	return data, nil
}

// DirSource loads assets from the files of a directory. Filenames are checked
// with meta.CheckFilename, so they can't refer outside the directory.
type DirSource string

var _ AssetSource = DirSource("")

func (d DirSource) Asset(filename string) ([]byte, error) {
	if err := meta.CheckFilename(filename); err != nil {
		return nil, err
	}
	path := filepath.Join(string(d), filename)
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		return nil, errors.Annotate(err, "no asset file").Tag(s3pdata.MissingAsset).Err()
	case err != nil:
		return nil, err
	}
	return data, nil
}
