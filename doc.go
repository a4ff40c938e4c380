// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package s3pconv converts S3P audio archives to and from a directory of
// extracted ASF streams, losslessly.
//
// An S3P is a flat container of S3V wrappers, each of which embeds one ASF
// stream. The ASF data is never interpreted. All integers are little endian
// u32s.
//
// S3P layout:
//   - magic "S3P0"
//   - count: number of S3Vs
//   - count descriptors of (offset, length); offsets are absolute from the
//     start of the S3P
//   - the S3Vs, back to back
//   - terminator: total length of the S3P, including the terminator itself
//
// S3V layout:
//   - magic "S3V0"
//   - asset pointer, relative to the start of the S3V; always 32
//   - asset length
//   - five fields of unknown meaning, preserved as-is
//   - the ASF asset
//
// Unpacking writes each asset as "<index>.asf" and records the five unknown
// fields of every S3V in a sidecar metadata.json, which packing reads back.
//
// See the s3p package for the codec, and cmd/s3pconv for the command line
// tool.
package s3pconv
