// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package s3pdata

import (
	"encoding/binary"
	"io"
	"math"

	"go.chromium.org/luci/common/errors"
)

// Reader is a cursor over a fixed byte slice.
//
// Slices returned by Read and Peek alias the underlying data; callers which
// intend to modify them should make a copy.
type Reader struct {
	data []byte
	pos  int64
}

// NewReader returns a Reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// SeekTo moves the cursor to the absolute offset pos. It never fails;
// out-of-range positions surface as errors on the next read.
func (r *Reader) SeekTo(pos int64) {
	r.pos = pos
}

// Tell returns the current absolute offset.
func (r *Reader) Tell() int64 {
	return r.pos
}

// Len returns the total number of bytes in the source.
func (r *Reader) Len() int64 {
	return int64(len(r.data))
}

func (r *Reader) remaining() int64 {
	if r.pos < 0 || r.pos >= int64(len(r.data)) {
		return 0
	}
	return int64(len(r.data)) - r.pos
}

// Peek returns up to n bytes from the current offset without advancing the
// cursor.
func (r *Reader) Peek(n int) []byte {
	avail := r.remaining()
	if n <= 0 || avail == 0 {
		return nil
	}
	if int64(n) > avail {
		n = int(avail)
	}
	end := r.pos + int64(n)
	return r.data[r.pos:end:end]
}

// Read returns exactly n bytes and advances the cursor past them.
//
// If fewer than n bytes remain, the returned error is tagged with
// UnexpectedEndOfData and the cursor is not moved.
func (r *Reader) Read(n int64) ([]byte, error) {
	if n < 0 {
		return nil, errors.Reason("negative read length %d", n).Err()
	}
	if avail := r.remaining(); n > avail {
		return nil, errors.Reason("reading %d bytes at 0x%x: only %d available", n, r.pos, avail).
			Tag(UnexpectedEndOfData).Err()
	}
	if n == 0 {
		return []byte{}, nil
	}
	end := r.pos + n
	ret := r.data[r.pos:end:end]
	r.pos = end
	return ret, nil
}

// ReadU32 reads a little endian u32.
func (r *Reader) ReadU32() (uint32, error) {
	buf, err := r.Read(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf), nil
}

// Sub returns a new Reader over the n bytes starting at the absolute offset
// off. The new Reader has its own coordinate space (its offset 0 is `off` in
// r) and its own cursor; r's cursor is not affected.
func (r *Reader) Sub(off, n int64) (*Reader, error) {
	if off < 0 || n < 0 || off > r.Len() || n > r.Len()-off {
		return nil, errors.Reason("region 0x%x+%d exceeds %d byte source", off, n, r.Len()).
			Tag(UnexpectedEndOfData).Err()
	}
	return NewReader(r.data[off : off+n : off+n]), nil
}

// Writer is an append-only in-memory buffer.
//
// The zero value is ready to use.
type Writer struct {
	buf []byte
}

var _ io.Writer = (*Writer)(nil)

// Write appends p. It never fails.
func (w *Writer) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	return len(p), nil
}

// WriteU32 appends v as a little endian u32. Values which don't fit in 32
// bits are rejected with an OutOfRange error and nothing is written.
func (w *Writer) WriteU32(v uint64) error {
	if v > math.MaxUint32 {
		return errors.Reason("value %d exceeds u32", v).Tag(OutOfRange).Err()
	}
	w.buf = binary.LittleEndian.AppendUint32(w.buf, uint32(v))
	return nil
}

// Grow ensures space for another n bytes without reallocation.
func (w *Writer) Grow(n int) {
	if n > cap(w.buf)-len(w.buf) {
		nb := make([]byte, len(w.buf), len(w.buf)+n)
		copy(nb, w.buf)
		w.buf = nb
	}
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Bytes returns the written bytes. The slice aliases the Writer's buffer
// until the next write.
func (w *Writer) Bytes() []byte {
	return w.buf
}
