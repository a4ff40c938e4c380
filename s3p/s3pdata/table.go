// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package s3pdata

import (
	"go.chromium.org/luci/common/errors"
)

// DescriptorSize is the size of one entry of the S3P descriptor table.
const DescriptorSize = 8

// TerminatorSize is the size of the trailing S3P length field.
const TerminatorSize = 4

// HeaderSize returns the size of an S3P header (tag, count and descriptor
// table) holding count entries. This is also the offset of the first S3V.
func HeaderSize(count int) int64 {
	return MagicSize + 4 + DescriptorSize*int64(count)
}

// Descriptor locates one S3V within an S3P.
type Descriptor struct {
	// Offset is the absolute offset of the S3V from the start of the S3P.
	Offset uint32

	// Length is the byte length of the S3V.
	Length uint32
}

func (d *Descriptor) Read(r *Reader) (err error) {
	if d.Offset, err = r.ReadU32(); err != nil {
		return errors.Annotate(err, "reading offset").Err()
	}
	if d.Length, err = r.ReadU32(); err != nil {
		return errors.Annotate(err, "reading length").Err()
	}
	return
}

// WriteDescriptor writes one descriptor table entry. offset and length must
// fit in a u32, otherwise the error is tagged OutOfRange.
func WriteDescriptor(w *Writer, offset, length uint64) error {
	if err := w.WriteU32(offset); err != nil {
		return errors.Annotate(err, "S3V offset").Err()
	}
	if err := w.WriteU32(length); err != nil {
		return errors.Annotate(err, "S3V length").Err()
	}
	return nil
}

// ReadTerminator returns the trailing u32 of the source underlying r. r's
// cursor is not moved.
func ReadTerminator(r *Reader) (uint32, error) {
	tail, err := r.Sub(r.Len()-TerminatorSize, TerminatorSize)
	if err != nil {
		return 0, errors.Annotate(err, "reading terminator").Err()
	}
	return tail.ReadU32()
}

// WriteTerminator finishes an S3P by appending its total length, including
// the terminator itself.
func WriteTerminator(w *Writer) error {
	if err := w.WriteU32(uint64(w.Len()) + TerminatorSize); err != nil {
		return errors.Annotate(err, "archive length").Err()
	}
	return nil
}
