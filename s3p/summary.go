// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package s3p

import (
	"github.com/riannucci/s3pconv/s3p/s3pdata"
)

// Summary describes one entry of an archive without its asset bytes.
type Summary struct {
	Name        string
	Offset      uint32
	Length      uint32
	AssetLength int
	Opaque      s3pdata.Opaque

	// Digest is the hex encoded digest of the asset.
	Digest string
}

// Summarize describes every entry of a, fingerprinting assets with scheme.
func (a *Archive) Summarize(scheme s3pdata.DigestScheme) ([]Summary, error) {
	if err := scheme.Valid(); err != nil {
		return nil, err
	}
	ret := make([]Summary, len(a.Entries))
	for i, e := range a.Entries {
		ret[i] = Summary{
			Name:        e.Name,
			Offset:      e.Offset,
			Length:      e.Length,
			AssetLength: len(e.Asset),
			Opaque:      e.Opaque,
			Digest:      scheme.Sum(e.Asset),
		}
	}
	return ret, nil
}
