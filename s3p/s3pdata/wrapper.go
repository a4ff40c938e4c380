// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package s3pdata

import (
	"go.chromium.org/luci/common/errors"
)

// WrapperHeaderSize is the size of an S3V header: the tag, the asset pointer,
// the asset length and the five Opaque fields, 4 bytes each.
//
// Every known S3V has its asset immediately after the header, so this is also
// the only accepted value for WrapperHeader.AssetPointer.
const WrapperHeaderSize = MagicSize + 4 + 4 + 4*5

// Opaque holds the five S3V header fields of unknown meaning. They are
// carried verbatim between decode and encode.
type Opaque [5]uint32

// WrapperHeader is the decoded header of an S3V wrapper.
type WrapperHeader struct {
	// AssetPointer is the offset of the asset, relative to the start of the
	// S3V.
	AssetPointer uint32

	// AssetLength is the number of asset bytes.
	AssetLength uint32

	Opaque Opaque
}

// Read parses the header (including its tag) from r.
func (h *WrapperHeader) Read(r *Reader) (err error) {
	if err = ReadFormat(r, FormatS3V); err != nil {
		return
	}
	if h.AssetPointer, err = r.ReadU32(); err != nil {
		return errors.Annotate(err, "reading asset pointer").Err()
	}
	if h.AssetLength, err = r.ReadU32(); err != nil {
		return errors.Annotate(err, "reading asset length").Err()
	}
	for i := range h.Opaque {
		if h.Opaque[i], err = r.ReadU32(); err != nil {
			return errors.Annotate(err, "reading opaque field %d", i+1).Err()
		}
	}
	return
}

// ReadWrapper parses an S3V from r, whose offset 0 must be the start of the
// S3V, and returns its header and asset bytes.
//
// The asset aliases r's underlying data.
func ReadWrapper(r *Reader) (h WrapperHeader, asset []byte, err error) {
	if err = h.Read(r); err != nil {
		return
	}
	if h.AssetPointer != WrapperHeaderSize {
		err = errors.Reason("asset pointer is %d, expected %d", h.AssetPointer, WrapperHeaderSize).
			Tag(StructuralAssumptionViolated).Err()
		return
	}
	r.SeekTo(int64(h.AssetPointer))
	if asset, err = r.Read(int64(h.AssetLength)); err != nil {
		err = errors.Annotate(err, "reading asset").Err()
	}
	return
}

// WriteWrapper writes a complete S3V (header followed by asset) to w.
//
// The asset pointer is always WrapperHeaderSize. The written S3V is exactly
// WrapperHeaderSize+len(asset) bytes long.
func WriteWrapper(w *Writer, opaque Opaque, asset []byte) error {
	w.Grow(WrapperHeaderSize + len(asset))
	if err := WriteFormat(w, FormatS3V); err != nil {
		return err
	}
	if err := w.WriteU32(WrapperHeaderSize); err != nil {
		return err
	}
	if err := w.WriteU32(uint64(len(asset))); err != nil {
		return errors.Annotate(err, "asset length").Err()
	}
	for _, v := range opaque {
		// can't fail, v is already a u32.
		w.WriteU32(uint64(v))
	}
	w.Write(asset)
	return nil
}
