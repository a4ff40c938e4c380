// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package s3p converts between S3P archives and their unpacked form: an
// ordered set of extracted ASF assets plus sidecar metadata.
//
// Decode and Encode are pure functions over byte slices. UnpackTo and
// PackFrom add the directory layout on top:
//
//	<root>/0.asf
//	<root>/1.asf
//	...
//	<root>/metadata.json
package s3p

import (
	"strconv"

	"github.com/riannucci/s3pconv/s3p/meta"
	"github.com/riannucci/s3pconv/s3p/s3pdata"
)

// AssetExt is the extension given to extracted assets.
const AssetExt = ".asf"

// AssetName returns the filename for the asset of entry index.
func AssetName(index int) string {
	return strconv.Itoa(index) + AssetExt
}

// Entry is one decoded S3V.
type Entry struct {
	Index int

	// Name is AssetName(Index).
	Name string

	// Asset is the embedded payload. It aliases the decoded archive's bytes.
	Asset []byte

	Opaque s3pdata.Opaque

	// Offset and Length are the S3V's location as recorded in the archive's
	// descriptor table.
	Offset uint32
	Length uint32
}

// Archive is a decoded S3P.
type Archive struct {
	Entries []Entry

	// Terminator is the trailing u32 of the decoded bytes, and Size is their
	// length. For a complete archive they're equal.
	Terminator uint32
	Size       int64
}

// Metadata returns the sidecar records for a, in entry order.
func (a *Archive) Metadata() meta.List {
	ret := make(meta.List, len(a.Entries))
	for i, e := range a.Entries {
		ret[i] = meta.Record{Filename: e.Name, Opaque: e.Opaque}
	}
	return ret
}

// Assets returns an AssetSource serving a's assets by Name.
func (a *Archive) Assets() MapSource {
	ret := make(MapSource, len(a.Entries))
	for _, e := range a.Entries {
		ret[e.Name] = e.Asset
	}
	return ret
}
