// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package s3pdata

import (
	"go.chromium.org/luci/common/errors"
)

// Error tags for the failure kinds of the codec. Use e.g.
// `InvalidFormat.In(err)` to classify an error returned by this module.
var (
	// InvalidFormat is applied when a format tag doesn't match the tag expected
	// at that nesting level.
	InvalidFormat = errors.BoolTag{Key: errors.NewTagKey("s3p: invalid format")}

	// UnexpectedEndOfData is applied when a read runs past the available bytes.
	UnexpectedEndOfData = errors.BoolTag{Key: errors.NewTagKey("s3p: unexpected end of data")}

	// StructuralAssumptionViolated is applied when a decoded value violates an
	// invariant the codec relies on (e.g. an S3V asset pointer other than 32).
	StructuralAssumptionViolated = errors.BoolTag{Key: errors.NewTagKey("s3p: structural assumption violated")}

	// MissingAsset is applied when an asset named by a metadata record can't be
	// located.
	MissingAsset = errors.BoolTag{Key: errors.NewTagKey("s3p: missing asset")}

	// OutOfRange is applied when a value doesn't fit in its u32 field.
	OutOfRange = errors.BoolTag{Key: errors.NewTagKey("s3p: value out of range")}

	// InvalidMetadata is applied when a sidecar metadata list is malformed.
	InvalidMetadata = errors.BoolTag{Key: errors.NewTagKey("s3p: invalid metadata")}
)
