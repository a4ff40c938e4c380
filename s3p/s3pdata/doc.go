// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package s3pdata implements the low level pieces of the S3P container format:
// byte cursors, format tags, the S3P descriptor table and terminator, and the
// S3V wrapper header.
//
// All multi-byte integers in the format are little endian u32s.
package s3pdata
