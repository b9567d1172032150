// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for the rpc package tests
package fixtures

import (
	"fmt"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

var (
	certificatePEM string
	keyPEM         string
)

func init() {
	validUntil := time.Now().Add(time.Hour)
	cert, key, err := certgen.NewTLSCertPair("unitd testing", validUntil, false, nil)
	if nil != err {
		panic(fmt.Sprintf("fixtures: cannot create certificate: %s", err))
	}
	certificatePEM = string(cert)
	keyPEM = string(key)
}

// Certificate - PEM encoded self-signed test certificate
func Certificate() string {
	return certificatePEM
}

// Key - PEM encoded private key matching Certificate
func Key() string {
	return keyPEM
}

func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(dir)
}
