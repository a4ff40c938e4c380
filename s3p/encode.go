// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package s3p

import (
	"math"

	"go.chromium.org/luci/common/errors"

	"github.com/riannucci/s3pconv/s3p/meta"
	"github.com/riannucci/s3pconv/s3p/s3pdata"
)

// Encode builds an S3P from list, loading each record's asset from src.
//
// S3Vs are laid out back to back, in list order, directly after the
// descriptor table, and the archive ends with its own total length. For an
// archive without gaps between its S3Vs, Encode(Decode(x)) reproduces x.
func Encode(list meta.List, src AssetSource) ([]byte, error) {
	s3vs := make([]*s3pdata.Writer, len(list))
	total := uint64(s3pdata.HeaderSize(len(list)))
	for i, rec := range list {
		asset, err := src.Asset(rec.Filename)
		if err != nil {
			return nil, errors.Annotate(err, "encoding S3P: entry %d: loading %q", i, rec.Filename).Err()
		}
		s3v := &s3pdata.Writer{}
		if err := s3pdata.WriteWrapper(s3v, rec.Opaque, asset); err != nil {
			return nil, errors.Annotate(err, "encoding S3P: entry %d: building S3V", i).Err()
		}
		s3vs[i] = s3v
		total += uint64(s3v.Len())
	}

	out := &s3pdata.Writer{}
	if total < math.MaxUint32 && total < math.MaxInt-s3pdata.TerminatorSize {
		out.Grow(int(total) + s3pdata.TerminatorSize)
	}
	if err := s3pdata.WriteFormat(out, s3pdata.FormatS3P); err != nil {
		return nil, err
	}
	if err := out.WriteU32(uint64(len(list))); err != nil {
		return nil, errors.Annotate(err, "encoding S3P: entry count").Err()
	}

	offset := uint64(s3pdata.HeaderSize(len(list)))
	for i, s3v := range s3vs {
		if err := s3pdata.WriteDescriptor(out, offset, uint64(s3v.Len())); err != nil {
			return nil, errors.Annotate(err, "encoding S3P: entry %d: descriptor", i).Err()
		}
		offset += uint64(s3v.Len())
	}
	for _, s3v := range s3vs {
		out.Write(s3v.Bytes())
	}

	if err := s3pdata.WriteTerminator(out); err != nil {
		return nil, errors.Annotate(err, "encoding S3P").Err()
	}
	return out.Bytes(), nil
}
