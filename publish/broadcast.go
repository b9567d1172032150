// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/json"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/unitd/eventbus"
	"github.com/bitmark-inc/unitd/zmqutil"
)

const (
	publisherZapDomain = "publisher"
)

type broadcaster struct {
	log     *logger.L
	bus     *eventbus.Bus
	socket4 *zmq.Socket
	socket6 *zmq.Socket
}

// initialise the broadcaster
func (brdc *broadcaster) initialise(privateKey []byte, publicKey []byte, broadcast []string, bus *eventbus.Bus) error {
	log := logger.New("broadcaster")
	brdc.log = log
	brdc.bus = bus

	log.Info("initialising…")

	// allocate IPv4 and IPv6 sockets
	socket4, socket6, err := zmqutil.NewBind(log, zmq.PUB, publisherZapDomain, privateKey, publicKey, broadcast)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}
	brdc.socket4 = socket4
	brdc.socket6 = socket6

	return nil
}

// Run - wait for committed events and broadcast them
//
// the zmq PUB socket is only used from this goroutine
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event := <-brdc.bus.Chan():
			brdc.process(event)
		}
	}

	if nil != brdc.socket4 {
		brdc.socket4.Close()
	}
	if nil != brdc.socket6 {
		brdc.socket6.Close()
	}

	log.Info("stopped")
}

// send one event as topic frame plus JSON data frame
func (brdc *broadcaster) process(event eventbus.Event) {

	data, err := json.Marshal(event)
	if nil != err {
		brdc.log.Errorf("marshal event: %q  error: %s", event.EventName(), err)
		return
	}

	brdc.log.Debugf("broadcast: %s %s", event.EventName(), data)

	if nil != brdc.socket4 {
		if _, err := brdc.socket4.SendMessage(event.EventName(), data); nil != err {
			brdc.log.Errorf("send IPv4 error: %s", err)
		}
	}
	if nil != brdc.socket6 {
		if _, err := brdc.socket6.SendMessage(event.EventName(), data); nil != err {
			brdc.log.Errorf("send IPv6 error: %s", err)
		}
	}
}
