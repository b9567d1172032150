// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"crypto/tls"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/unitd/util"
)

// Get - verify that a certificate and key pair is valid and return
// the TLS configuration and certificate fingerprint
func Get(log *logger.L, name, certificate, key string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if nil != err {
		log.Errorf("%s failed to load keypair: %s", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
	}

	// FreeBSD: openssl x509 -outform DER -in unitd-local-rpc.crt | sha3sum -a 256
	fin = util.Fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}
