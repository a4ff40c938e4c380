// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package s3pdata

import (
	"io"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestReader(t *testing.T) {
	t.Parallel()

	Convey("Reader", t, func() {
		r := NewReader([]byte{1, 0, 0, 0, 0xff, 0xff, 0xff, 0xff, 'x', 'y'})

		Convey("ReadU32 is little endian", func() {
			v, err := r.ReadU32()
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 1)
			v, err = r.ReadU32()
			So(err, ShouldBeNil)
			So(v, ShouldEqual, uint32(math.MaxUint32))
			So(r.Tell(), ShouldEqual, 8)
		})

		Convey("SeekTo is absolute", func() {
			var rdr any = r
			_, isSeeker := rdr.(io.Seeker)
			So(isSeeker, ShouldBeFalse)

			r.SeekTo(4)
			r.SeekTo(8)
			So(r.Tell(), ShouldEqual, 8)
		})

		Convey("Peek doesn't advance", func() {
			r.SeekTo(8)
			So(r.Peek(4), ShouldResemble, []byte("xy"))
			So(r.Tell(), ShouldEqual, 8)
			So(r.Peek(1), ShouldResemble, []byte("x"))

			r.SeekTo(100)
			So(r.Peek(4), ShouldBeNil)
		})

		Convey("Read", func() {
			Convey("exact", func() {
				r.SeekTo(8)
				buf, err := r.Read(2)
				So(err, ShouldBeNil)
				So(buf, ShouldResemble, []byte("xy"))
				So(r.Tell(), ShouldEqual, 10)

				buf, err = r.Read(0)
				So(err, ShouldBeNil)
				So(buf, ShouldHaveLength, 0)
			})

			Convey("short", func() {
				r.SeekTo(8)
				_, err := r.Read(3)
				So(err, ShouldNotBeNil)
				So(UnexpectedEndOfData.In(err), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "only 2 available")
				So(r.Tell(), ShouldEqual, 8)
			})

			Convey("short u32", func() {
				r.SeekTo(7)
				_, err := r.ReadU32()
				So(UnexpectedEndOfData.In(err), ShouldBeTrue)
			})

			Convey("past the end", func() {
				r.SeekTo(1000)
				_, err := r.Read(1)
				So(UnexpectedEndOfData.In(err), ShouldBeTrue)
			})

			Convey("negative position", func() {
				r.SeekTo(-4)
				_, err := r.Read(1)
				So(UnexpectedEndOfData.In(err), ShouldBeTrue)
			})
		})

		Convey("Sub", func() {
			Convey("has its own coordinates", func() {
				r.SeekTo(2)
				sub, err := r.Sub(4, 4)
				So(err, ShouldBeNil)
				So(sub.Tell(), ShouldEqual, 0)
				So(sub.Len(), ShouldEqual, 4)
				v, err := sub.ReadU32()
				So(err, ShouldBeNil)
				So(v, ShouldEqual, uint32(math.MaxUint32))

				// outer cursor untouched
				So(r.Tell(), ShouldEqual, 2)
			})

			Convey("can't read beyond its region", func() {
				sub, err := r.Sub(0, 2)
				So(err, ShouldBeNil)
				_, err = sub.ReadU32()
				So(UnexpectedEndOfData.In(err), ShouldBeTrue)
			})

			Convey("out of range", func() {
				_, err := r.Sub(8, 3)
				So(UnexpectedEndOfData.In(err), ShouldBeTrue)
				_, err = r.Sub(11, 0)
				So(UnexpectedEndOfData.In(err), ShouldBeTrue)
				_, err = r.Sub(math.MaxInt64, math.MaxInt64)
				So(UnexpectedEndOfData.In(err), ShouldBeTrue)
			})
		})
	})
}

func TestWriter(t *testing.T) {
	t.Parallel()

	Convey("Writer", t, func() {
		w := &Writer{}

		Convey("writes", func() {
			_, err := w.Write([]byte("ab"))
			So(err, ShouldBeNil)
			So(w.WriteU32(0x01020304), ShouldBeNil)
			So(w.Len(), ShouldEqual, 6)
			So(w.Bytes(), ShouldResemble, []byte{'a', 'b', 4, 3, 2, 1})
		})

		Convey("max u32", func() {
			So(w.WriteU32(math.MaxUint32), ShouldBeNil)
			So(w.Bytes(), ShouldResemble, []byte{0xff, 0xff, 0xff, 0xff})
		})

		Convey("out of range", func() {
			err := w.WriteU32(math.MaxUint32 + 1)
			So(OutOfRange.In(err), ShouldBeTrue)
			So(w.Len(), ShouldEqual, 0)
		})

		Convey("Grow keeps contents", func() {
			w.Write([]byte("abc"))
			w.Grow(100)
			So(w.Bytes(), ShouldResemble, []byte("abc"))
		})
	})
}
