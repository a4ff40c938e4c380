// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package s3pdata

import (
	"fmt"
	"io"

	"go.chromium.org/luci/common/errors"
)

// Format identifies a container kind by its 4 magic bytes.
type Format byte

// The container kinds known to the codec.
const (
	// FormatS3P is the outer archive.
	FormatS3P Format = iota + 1

	// FormatS3V is the wrapper around a single embedded asset.
	FormatS3V
)

// MagicSize is the length of every format tag.
const MagicSize = 4

var magics = [...]string{
	FormatS3P: "S3P0",
	FormatS3V: "S3V0",
}

// Valid returns nil iff f is a known Format.
func (f Format) Valid() error {
	switch f {
	case FormatS3P, FormatS3V:
		return nil
	}
	return errors.Reason("unknown format 0x%x", byte(f)).Err()
}

// Magic returns the tag bytes for f.
func (f Format) Magic() []byte {
	if f.Valid() != nil {
		panic(f.Valid())
	}
	return []byte(magics[f])
}

func (f Format) String() string {
	switch f {
	case FormatS3P:
		return "S3P"
	case FormatS3V:
		return "S3V"
	}
	return fmt.Sprintf("Format(0x%x)", byte(f))
}

// ParseMagic returns the Format whose tag equals buf.
func ParseMagic(buf []byte) (Format, bool) {
	for _, f := range []Format{FormatS3P, FormatS3V} {
		if string(buf) == magics[f] {
			return f, true
		}
	}
	return 0, false
}

// WriteFormat writes the tag for f.
func WriteFormat(w io.Writer, f Format) error {
	if err := f.Valid(); err != nil {
		return err
	}
	_, err := w.Write(f.Magic())
	return err
}

// ReadFormat reads a tag from r and checks that it's the tag for want.
func ReadFormat(r *Reader, want Format) error {
	at := r.Tell()
	buf, err := r.Read(MagicSize)
	if err != nil {
		return errors.Annotate(err, "reading %s tag", want).Err()
	}
	if got, ok := ParseMagic(buf); !ok || got != want {
		return errors.Reason("bad magic %q at 0x%x: expected %q", buf, at, magics[want]).
			Tag(InvalidFormat).Err()
	}
	return nil
}

// Sniff reports the Format of the tag at r's current offset without advancing
// r.
func Sniff(r *Reader) (Format, bool) {
	return ParseMagic(r.Peek(MagicSize))
}
