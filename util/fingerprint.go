// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"golang.org/x/crypto/sha3"
)

// FingerprintBytes - type for a certificate fingerprint
type FingerprintBytes [32]byte

// Fingerprint - SHA3-256 digest of a certificate
//
// clients pin the server certificate by this value instead of a
// certificate authority chain
func Fingerprint(certificate []byte) FingerprintBytes {
	return sha3.Sum256(certificate)
}
