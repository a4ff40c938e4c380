// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package s3pdata

import (
	"bytes"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	Convey("Format", t, func() {
		Convey("write", func() {
			buf := &bytes.Buffer{}
			So(WriteFormat(buf, FormatS3P), ShouldBeNil)
			So(WriteFormat(buf, FormatS3V), ShouldBeNil)
			So(buf.String(), ShouldEqual, "S3P0S3V0")

			So(WriteFormat(buf, Format(9)), ShouldBeError, "unknown format 0x9")
		})

		Convey("read", func() {
			Convey("good", func() {
				r := NewReader([]byte("S3V0rest"))
				So(ReadFormat(r, FormatS3V), ShouldBeNil)
				So(r.Tell(), ShouldEqual, MagicSize)
			})

			Convey("bad", func() {
				Convey("other level's tag", func() {
					err := ReadFormat(NewReader([]byte("S3V0")), FormatS3P)
					So(InvalidFormat.In(err), ShouldBeTrue)
					So(err.Error(), ShouldContainSubstring, `bad magic "S3V0" at 0x0: expected "S3P0"`)
				})

				Convey("garbage", func() {
					err := ReadFormat(NewReader([]byte{'P', 'K', 3, 4}), FormatS3P)
					So(InvalidFormat.In(err), ShouldBeTrue)
				})

				Convey("short read", func() {
					err := ReadFormat(NewReader([]byte("S3")), FormatS3P)
					So(UnexpectedEndOfData.In(err), ShouldBeTrue)
					So(InvalidFormat.In(err), ShouldBeFalse)
				})
			})
		})

		Convey("Sniff", func() {
			r := NewReader([]byte("S3P0\x00\x00"))
			f, ok := Sniff(r)
			So(ok, ShouldBeTrue)
			So(f, ShouldEqual, FormatS3P)
			So(r.Tell(), ShouldEqual, 0)

			_, ok = Sniff(NewReader([]byte("S3")))
			So(ok, ShouldBeFalse)
		})

		Convey("String", func() {
			So(FormatS3P.String(), ShouldEqual, "S3P")
			So(FormatS3V.String(), ShouldEqual, "S3V")
			So(Format(7).String(), ShouldEqual, "Format(0x7)")
		})
	})
}
