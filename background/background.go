// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - run a set of processes until told to stop
package background

// Process - a routine that runs until its shutdown channel closes
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start as a group
type Processes []Process

// T - handle for stopping a started group
type T struct {
	shutdown chan struct{}
	finished chan struct{}
	count    int
}

// Start - run each process in its own goroutine
//
// all processes in the group share one shutdown signal and args
// value
func Start(processes Processes, args interface{}) *T {
	register := &T{
		shutdown: make(chan struct{}),
		finished: make(chan struct{}),
		count:    len(processes),
	}

	for _, p := range processes {
		go func(p Process) {
			p.Run(args, register.shutdown)
			register.finished <- struct{}{}
		}(p)
	}
	return register
}

// Stop - signal all processes in the group and wait for them to
// finish
func (t *T) Stop() {
	if nil == t {
		return
	}

	close(t.shutdown)

	for i := 0; i < t.count; i += 1 {
		<-t.finished
	}
}
