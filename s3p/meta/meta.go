// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package meta reads and writes the sidecar metadata which accompanies an
// unpacked S3P: one record per extracted asset, in archive order, carrying
// the asset's filename and the five opaque S3V header fields.
//
// The sidecar is a JSON array:
//
//	[
//	    {
//	        "filename": "0.asf",
//	        "unk1": 0,
//	        "unk2": 0,
//	        "unk3": 512,
//	        "unk4": 0,
//	        "unk5": 0
//	    }
//	]
package meta

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"os"

	"go.chromium.org/luci/common/errors"

	"github.com/riannucci/s3pconv/s3p/s3pdata"
)

// Filename is the name of the sidecar file within an unpacked S3P directory.
const Filename = "metadata.json"

// Record describes one extracted asset.
type Record struct {
	Filename string
	Opaque   s3pdata.Opaque
}

// List is the ordered sidecar metadata. Index i describes archive entry i.
type List []Record

// recordJSON fixes the key order of the serialized form.
type recordJSON struct {
	Filename string `json:"filename"`
	Unk1     *int64 `json:"unk1"`
	Unk2     *int64 `json:"unk2"`
	Unk3     *int64 `json:"unk3"`
	Unk4     *int64 `json:"unk4"`
	Unk5     *int64 `json:"unk5"`
}

func (j *recordJSON) fields() []**int64 {
	return []**int64{&j.Unk1, &j.Unk2, &j.Unk3, &j.Unk4, &j.Unk5}
}

// MarshalJSON implements json.Marshaler.
func (r Record) MarshalJSON() ([]byte, error) {
	j := recordJSON{Filename: r.Filename}
	for i, f := range j.fields() {
		v := int64(r.Opaque[i])
		*f = &v
	}
	return json.Marshal(j)
}

// UnmarshalJSON implements json.Unmarshaler.
//
// All five opaque fields are required, and each must fit in a u32.
func (r *Record) UnmarshalJSON(data []byte) error {
	j := recordJSON{}
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	r.Filename = j.Filename
	for i, f := range j.fields() {
		if *f == nil {
			return errors.Reason("record %q: missing unk%d", j.Filename, i+1).
				Tag(s3pdata.InvalidMetadata).Err()
		}
		v := **f
		if v < 0 || v > math.MaxUint32 {
			return errors.Reason("record %q: unk%d=%d exceeds u32", j.Filename, i+1, v).
				Tag(s3pdata.OutOfRange).Err()
		}
		r.Opaque[i] = uint32(v)
	}
	return nil
}

// Read parses a metadata list from r. It doesn't Validate the list.
func Read(r io.Reader) (List, error) {
	ret := List{}
	if err := json.NewDecoder(r).Decode(&ret); err != nil {
		if s3pdata.OutOfRange.In(err) || s3pdata.InvalidMetadata.In(err) {
			return nil, err
		}
		return nil, errors.Annotate(err, "parsing metadata").Tag(s3pdata.InvalidMetadata).Err()
	}
	return ret, nil
}

// Write serializes l to w with four space indentation.
func Write(w io.Writer, l List) error {
	if l == nil {
		l = List{}
	}
	buf, err := json.MarshalIndent(l, "", "    ")
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}

// ReadFile reads and validates the metadata list at path.
func ReadFile(path string) (List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	l, err := Read(f)
	if err != nil {
		return nil, errors.Annotate(err, "reading %q", path).Err()
	}
	if err := l.Validate(); err != nil {
		return nil, errors.Annotate(err, "validating %q", path).Err()
	}
	return l, nil
}

// WriteFile writes l to path, replacing any existing file.
func WriteFile(path string, l List) error {
	buf := bytes.Buffer{}
	if err := Write(&buf, l); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0666)
}
