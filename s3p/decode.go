// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package s3p

import (
	"io"

	"go.chromium.org/luci/common/errors"

	"github.com/riannucci/s3pconv/s3p/s3pdata"
)

// Decode parses a complete S3P.
//
// The trailing terminator is recorded but not checked; see
// Archive.CheckTerminator. The returned assets alias data.
func Decode(data []byte) (*Archive, error) {
	r := s3pdata.NewReader(data)

	if err := s3pdata.ReadFormat(r, s3pdata.FormatS3P); err != nil {
		return nil, errors.Annotate(err, "decoding S3P").Err()
	}
	count, err := r.ReadU32()
	if err != nil {
		return nil, errors.Annotate(err, "decoding S3P: reading entry count").Err()
	}

	// count is untrusted; don't preallocate more descriptors than could fit.
	capHint := int64(count)
	if fit := (r.Len() - r.Tell()) / s3pdata.DescriptorSize; capHint > fit {
		capHint = fit
	}
	ret := &Archive{
		Entries: make([]Entry, 0, capHint),
		Size:    r.Len(),
	}

	for i := 0; uint32(i) < count; i++ {
		at := r.Tell()
		d := s3pdata.Descriptor{}
		if err := d.Read(r); err != nil {
			return nil, errors.Annotate(err, "decoding S3P: entry %d: descriptor at 0x%x", i, at).Err()
		}

		// The S3V gets its own cursor so that r stays on the descriptor table.
		s3v, err := r.Sub(int64(d.Offset), int64(d.Length))
		if err != nil {
			return nil, errors.Annotate(err, "decoding S3P: entry %d: S3V at 0x%x", i, d.Offset).Err()
		}
		h, asset, err := s3pdata.ReadWrapper(s3v)
		if err != nil {
			return nil, errors.Annotate(err, "decoding S3P: entry %d: S3V at 0x%x", i, d.Offset).Err()
		}

		ret.Entries = append(ret.Entries, Entry{
			Index:  i,
			Name:   AssetName(i),
			Asset:  asset,
			Opaque: h.Opaque,
			Offset: d.Offset,
			Length: d.Length,
		})
	}

	// At least the tag and count were read, so there's always room.
	ret.Terminator, _ = s3pdata.ReadTerminator(r)
	return ret, nil
}

// CheckTerminator returns an InvalidFormat error if the archive's terminator
// doesn't equal its size.
func (a *Archive) CheckTerminator() error {
	if int64(a.Terminator) != a.Size {
		return errors.Reason("terminator is %d, archive is %d bytes", a.Terminator, a.Size).
			Tag(s3pdata.InvalidFormat).Err()
	}
	return nil
}

type openOptionData struct {
	checkTerminator bool
}

// OpenOption functions can be supplied to the Open function.
type OpenOption func(*openOptionData)

// WithTerminatorCheck makes Open fail when the archive's terminator doesn't
// match its length. By default a stale terminator is tolerated.
func WithTerminatorCheck(val bool) OpenOption {
	return func(o *openOptionData) {
		o.checkTerminator = val
	}
}

// Open reads an entire S3P from r and decodes it.
func Open(r io.Reader, options ...OpenOption) (*Archive, error) {
	opts := openOptionData{}
	for _, o := range options {
		o(&opts)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Annotate(err, "reading S3P").Err()
	}
	ret, err := Decode(data)
	if err != nil {
		return nil, err
	}
	if opts.checkTerminator {
		if err := ret.CheckTerminator(); err != nil {
			return nil, errors.Annotate(err, "decoding S3P").Err()
		}
	}
	return ret, nil
}
