// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/unitd/fault"
	"github.com/bitmark-inc/unitd/zmqutil"
)

const (
	publicText  = "PUBLIC:1987c2cd933525cbea74ffa5005e3144c1265baa52e9e6ba977cb9e2f9a56a93\n"
	privateText = "PRIVATE:b364f47a58167a5b8e65229ab1bca9fc4be6ba353abaddb1a9db4f8c1660cafc\n"
)

func TestParseKey(t *testing.T) {
	key, private, err := zmqutil.ParseKey(publicText)
	if nil != err {
		t.Fatalf("parse public error: %s", err)
	}
	if private {
		t.Errorf("public key parsed as private")
	}
	if 32 != len(key) {
		t.Errorf("key length: %d  expected: 32", len(key))
	}

	_, private, err = zmqutil.ParseKey(privateText)
	if nil != err {
		t.Fatalf("parse private error: %s", err)
	}
	if !private {
		t.Errorf("private key parsed as public")
	}
}

func TestParseKeyErrors(t *testing.T) {
	if _, _, err := zmqutil.ParseKey("garbage"); fault.InvalidPublicKeyFile != err {
		t.Errorf("untagged key accepted: %v", err)
	}
	if _, _, err := zmqutil.ParseKey("PUBLIC:abcd"); fault.InvalidPublicKeyFile != err {
		t.Errorf("short key accepted: %v", err)
	}
	if _, _, err := zmqutil.ParseKey("PRIVATE:zz"); nil == err {
		t.Errorf("non-hex key accepted")
	}
}

func TestReadKeyFiles(t *testing.T) {
	dir, err := ioutil.TempDir("", "zmqutil-test")
	if nil != err {
		t.Fatalf("tempdir error: %s", err)
	}
	defer os.RemoveAll(dir)

	publicFile := filepath.Join(dir, "test.public")
	privateFile := filepath.Join(dir, "test.private")
	if err := ioutil.WriteFile(publicFile, []byte(publicText), 0666); nil != err {
		t.Fatalf("write error: %s", err)
	}
	if err := ioutil.WriteFile(privateFile, []byte(privateText), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}

	if _, err := zmqutil.ReadPublicKeyFile(publicFile); nil != err {
		t.Errorf("read public error: %s", err)
	}
	if _, err := zmqutil.ReadPrivateKeyFile(privateFile); nil != err {
		t.Errorf("read private error: %s", err)
	}

	// swapped halves must be rejected
	if _, err := zmqutil.ReadPublicKeyFile(privateFile); fault.InvalidPublicKeyFile != err {
		t.Errorf("private key accepted as public: %v", err)
	}
	if _, err := zmqutil.ReadPrivateKeyFile(publicFile); fault.InvalidPrivateKeyFile != err {
		t.Errorf("public key accepted as private: %v", err)
	}
}
