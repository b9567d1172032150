// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/unitd/account"
	"github.com/bitmark-inc/unitd/background"
	"github.com/bitmark-inc/unitd/engine"
	"github.com/bitmark-inc/unitd/eventbus"
	"github.com/bitmark-inc/unitd/fault"
	"github.com/bitmark-inc/unitd/publish"
	"github.com/bitmark-inc/unitd/registry"
	"github.com/bitmark-inc/unitd/rpc"
	"github.com/bitmark-inc/unitd/storage"
	"github.com/bitmark-inc/unitd/zmqutil"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// interval between checkpoint saves
const checkpointInterval = time.Minute

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// general info
	log.Infof("database: %q", theConfiguration.Database)
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)
	log.Debugf("%s = %#v", "Publishing", theConfiguration.Publishing)

	// decode the administrator identifiers
	gate, err := newAdministratorGate(theConfiguration.Ledger.Administrators)
	if nil != err {
		log.Criticalf("administrators error: %s", err)
		exitwithstatus.Message("administrators error: %s", err)
	}

	// start the data storage
	log.Info("initialise storage")
	err = storage.Initialise(theConfiguration.Database.Name, false)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	// event bus feeding the publisher
	bus := eventbus.New()

	// restore the ledger from the last checkpoint, or start empty
	log.Info("initialise engine")
	e, err := restoreEngine(log, theConfiguration.Ledger, gate, bus)
	if nil != err {
		log.Criticalf("engine restore error: %s", err)
		exitwithstatus.Message("engine restore error: %s", err)
	}

	// initialise encryption
	err = zmqutil.StartAuthentication()
	if nil != err {
		log.Criticalf("zmq.AuthStart: error: %s", err)
		exitwithstatus.Message("zmq.AuthStart: error: %s", err)
	}

	// start up the event publishing background processes
	err = publish.Initialise(&theConfiguration.Publishing, bus)
	if nil != err {
		log.Criticalf("publish initialise error: %s", err)
		exitwithstatus.Message("publish initialise error: %s", err)
	}
	defer publish.Finalise()

	// certificate and key are stored as file names, the rpc layer
	// expects PEM contents
	clientRPC := theConfiguration.ClientRPC
	if clientRPC.Certificate, err = readPEMFile(clientRPC.Certificate); nil != err {
		log.Criticalf("certificate error: %s", err)
		exitwithstatus.Message("certificate error: %s", err)
	}
	if clientRPC.PrivateKey, err = readPEMFile(clientRPC.PrivateKey); nil != err {
		log.Criticalf("private key error: %s", err)
		exitwithstatus.Message("private key error: %s", err)
	}

	// start up the rpc background processes
	err = rpc.Initialise(&clientRPC, version, e)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	// periodic checkpoints of the ledger state
	checkpointer := &checkpointer{
		log:    logger.New("checkpoint"),
		engine: e,
	}
	processes := background.Start(background.Processes{checkpointer}, log)
	defer processes.Stop()

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
}

// recognise callers listed in the ledger.administrators configuration
type administratorGate struct {
	administrators map[account.Identifier]struct{}
}

func (g administratorGate) IsAdministrator(caller account.Identifier) bool {
	_, ok := g.administrators[caller]
	return ok
}

func newAdministratorGate(administrators []string) (administratorGate, error) {
	gate := administratorGate{
		administrators: make(map[account.Identifier]struct{}),
	}
	for _, administrator := range administrators {
		identifier, err := account.IdentifierFromBase58(administrator)
		if nil != err {
			return gate, err
		}
		gate.administrators[identifier] = struct{}{}
	}
	return gate, nil
}

// expand the configured uri_template with the token id
type templateDescriber struct {
	template string
}

func (d templateDescriber) TokenURI(id registry.TokenID) string {
	return fmt.Sprintf(d.template, uint64(id))
}

// load the last checkpoint, an empty database starts a fresh ledger
func restoreEngine(log *logger.L, ledger LedgerType, gate engine.Gate, bus *eventbus.Bus) (*engine.Engine, error) {

	cfg := engine.Config{
		Decimals: uint8(ledger.Decimals),
		Gate:     gate,
		Bus:      bus,
	}
	if "" != ledger.URITemplate {
		cfg.Describer = templateDescriber{template: ledger.URITemplate}
	}

	s, err := storage.LoadCheckpoint()
	if fault.NotFound == err {
		log.Info("no checkpoint, starting with an empty ledger")
		return engine.New(cfg)
	} else if nil != err {
		return nil, err
	}

	log.Infof("restoring checkpoint: %d minted  %d owners", s.Minted, len(s.Balances))
	return engine.Restore(s, cfg)
}

// readPEMFile - slurp a certificate or key file
func readPEMFile(fileName string) (string, error) {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return "", err
	}
	return string(data), nil
}

// periodic checkpoint save
type checkpointer struct {
	log    *logger.L
	engine *engine.Engine
}

func (c *checkpointer) Run(args interface{}, shutdown <-chan struct{}) {

	log := c.log
	log.Info("starting…")

	timer := time.NewTicker(checkpointInterval)
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-timer.C:
			c.save()
		}
	}
	timer.Stop()

	// final checkpoint so a restart resumes from current state
	c.save()
	log.Info("finished")
}

func (c *checkpointer) save() {
	s, err := c.engine.Snapshot()
	if nil != err {
		c.log.Errorf("snapshot error: %s", err)
		return
	}
	if err := storage.SaveCheckpoint(s); nil != err {
		c.log.Errorf("checkpoint save error: %s", err)
		return
	}
	c.log.Debugf("checkpoint saved: %d minted", s.Minted)
}
