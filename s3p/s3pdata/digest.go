// Copyright 2017 Robert Iannucci Jr. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package s3pdata

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"

	"go.chromium.org/luci/common/errors"
)

// DigestScheme selects the hash used to fingerprint extracted assets when
// listing an archive. Digests are never stored in the S3P itself.
type DigestScheme byte

// These are the available digest algorithms.
const (
	DigestSHA2_256 DigestScheme = iota + 1
	DigestSHA2_512
	DigestBLAKE2s
	DigestBLAKE2b
	DigestSHA3_256
	DigestSHA3_512

	// Produces empty digests.
	DigestNULL DigestScheme = 255
)

var digestNames = map[DigestScheme]string{
	DigestSHA2_256: "sha256",
	DigestSHA2_512: "sha512",
	DigestBLAKE2s:  "blake2s",
	DigestBLAKE2b:  "blake2b",
	DigestSHA3_256: "sha3-256",
	DigestSHA3_512: "sha3-512",
	DigestNULL:     "null",
}

// Valid returns nil iff the DigestScheme is valid.
func (d DigestScheme) Valid() error {
	if _, ok := digestNames[d]; !ok {
		return errors.Reason("unknown digest scheme 0x%x", byte(d)).Err()
	}
	return nil
}

func (d DigestScheme) String() string {
	if name, ok := digestNames[d]; ok {
		return name
	}
	return "DigestScheme(invalid)"
}

// ParseDigestScheme returns the DigestScheme whose String() is name.
func ParseDigestScheme(name string) (DigestScheme, error) {
	for d, n := range digestNames {
		if n == name {
			return d, nil
		}
	}
	return 0, errors.Reason("unknown digest scheme %q", name).Err()
}

// Sum returns the hex digest of data. DigestNULL produces "".
//
// Sum panics if d is not Valid.
func (d DigestScheme) Sum(data []byte) string {
	var sum []byte
	switch d {
	case DigestSHA2_256:
		s := sha256.Sum256(data)
		sum = s[:]
	case DigestSHA2_512:
		s := sha512.Sum512(data)
		sum = s[:]
	case DigestBLAKE2s:
		s := blake2s.Sum256(data)
		sum = s[:]
	case DigestBLAKE2b:
		s := blake2b.Sum512(data)
		sum = s[:]
	case DigestSHA3_256:
		s := sha3.Sum256(data)
		sum = s[:]
	case DigestSHA3_512:
		s := sha3.Sum512(data)
		sum = s[:]
	case DigestNULL:
	default:
		panic(d.Valid())
	}
	return hex.EncodeToString(sum)
}
