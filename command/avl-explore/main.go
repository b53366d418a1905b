// SPDX-License-Identifier: ISC

// avl-explore - one-shot tree inspector
//
// builds a tree from key[=value] arguments, optionally applies some
// set/delete/find operations and finishes with an ASCII dump plus a
// full invariant validation
package main

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/greypine/avl"
	"github.com/greypine/avl/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "log-dir", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'l'},
		{Long: "set", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
		{Long: "delete", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'd'},
		{Long: "find", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--log-dir=DIR] [--set=K=V] [--delete=K] [--find=K] key[=value]…", program)
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0

	logDir := "."
	if len(options["log-dir"]) > 0 {
		logDir = options["log-dir"][0]
	}

	logLevel := "info"
	if verbose {
		logLevel = "trace"
	}

	logConfig := logger.Configuration{
		Directory: logDir,
		File:      "avl-explore.log",
		Size:      1048576,
		Count:     10,
		Console:   verbose,
		Levels: map[string]string{
			logger.DefaultTag: logLevel,
		},
	}
	if err = logger.Initialise(logConfig); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	log := logger.New("avl-explore")
	log.Infof("version: %s", version)

	tree := avl.New(compareStrings, nil)

	// build phase: insert the positional arguments in order
	for _, arg := range arguments {
		key, value := splitPair(arg)
		if !tree.Insert(key, value) {
			log.Warnf("insert %q: %s", key, fault.ErrDuplicateKey)
		} else {
			log.Tracef("insert %q → %q", key, value)
		}
	}

	// upserts
	for _, arg := range options["set"] {
		key, value := splitPair(arg)
		switch tree.Set(key, value) {
		case avl.Inserted:
			log.Infof("set %q: inserted", key)
		case avl.Replaced:
			log.Infof("set %q: replaced", key)
		}
	}

	// deletions
	for _, key := range options["delete"] {
		value, removed := tree.Delete(key)
		if !removed {
			log.Errorf("delete %q: %s", key, fault.ErrKeyNotFound)
			exitwithstatus.Message("%s: delete %q: %s", program, key, fault.ErrKeyNotFound)
		}
		log.Infof("delete %q → %q", key, value)
	}

	// lookups
	for _, key := range options["find"] {
		node, index := tree.Search(key)
		if nil == node {
			log.Errorf("find %q: %s", key, fault.ErrKeyNotFound)
			exitwithstatus.Message("%s: find %q: %s", program, key, fault.ErrKeyNotFound)
		}
		fmt.Printf("%s → %s @[%d]\n", key, node.Value(), index)
	}

	if !quiet && !tree.IsEmpty() {
		tree.Print(true)
	}

	if first := tree.First(); nil != first {
		fmt.Printf("first: %s  last: %s\n", first.Key(), tree.Last().Key())
	}
	fmt.Printf("count: %d  height: %d\n", tree.Count(), tree.Height())

	if err := tree.Validate(); nil != err {
		log.Criticalf("validate failed with error: %s", err)
		exitwithstatus.Message("%s: validate failed with error: %s", program, err)
	}
	log.Info("validate: ok")
}

// ordering for the tree: plain string comparison
func compareStrings(a interface{}, b interface{}) int {
	return strings.Compare(a.(string), b.(string))
}

// split a key[=value] argument, default value is derived from key
func splitPair(arg string) (string, string) {
	if i := strings.IndexByte(arg, '='); i >= 0 {
		return arg[:i], arg[i+1:]
	}
	return arg, "data:" + arg
}
