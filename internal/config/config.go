//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package config holds globally available configuration variables
// which are either set by defaults, read from a config file or set
// by command line options.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/fkopp/chessmove/internal/util"
)

// globally available config values.
var (
	// ConfFile holds the path to the config file (relative to working directory).
	ConfFile = "./config.toml"

	// LogLevel defines the general log level - can be overwritten by the config file.
	LogLevel = 5

	// PerftLogLevel defines the perft harness log level.
	PerftLogLevel = 5

	// TestLogLevel defines the test log level.
	TestLogLevel = 5

	// Settings is the global configuration read in from file.
	Settings conf

	initialized = false
)

// LogLevels maps string representations of log levels to numerical values.
var LogLevels = map[string]int{
	"off":      -1,
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}

type logConfiguration struct {
	LogLvl      string
	PerftLogLvl string
	TestLogLvl  string
}

type magicConfiguration struct {
	// Seed is the seed used for the deterministic sparse-random search
	// that generates the rook and bishop magic multipliers at startup.
	// Zero means use the built-in default seed.
	Seed uint64
}

type conf struct {
	Log   logConfiguration
	Magic magicConfiguration
}

func init() {
	Settings.Log.LogLvl = "info"
	Settings.Log.PerftLogLvl = "info"
	Settings.Log.TestLogLvl = "debug"
}

// Setup reads the configuration file and applies settings from it on
// top of the defaults. Missing keys keep the defaults already in
// place; a missing or unparsable file keeps all defaults and is
// reported with one line on the standard logger.
func Setup() {
	if initialized {
		return
	}

	path, err := util.ResolveFile(ConfFile)
	if err != nil {
		log.Println("Config file not found. Using defaults. (", err, ")")
	} else if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("Config file could not be parsed. Using defaults. (", err, ")")
	}

	setupLogLvl()
	initialized = true
}

func setupLogLvl() {
	if Settings.Log.LogLvl != "" {
		LogLevel = LogLevels[Settings.Log.LogLvl]
	}
	if Settings.Log.PerftLogLvl != "" {
		PerftLogLevel = LogLevels[Settings.Log.PerftLogLvl]
	}
	if Settings.Log.TestLogLvl != "" {
		TestLogLevel = LogLevels[Settings.Log.TestLogLvl]
	}
}

// String prints out the current configuration settings and values
// using reflection.
func (settings *conf) String() string {
	var c strings.Builder
	c.WriteString("Log Config:\n")
	s := reflect.ValueOf(&settings.Log).Elem()
	typeOfT := s.Type()
	for i := 0; i < s.NumField(); i++ {
		f := s.Field(i)
		c.WriteString(fmt.Sprintf("%-2d: %-22s %-6s = %v\n", i, typeOfT.Field(i).Name, f.Type(), f.Interface()))
	}
	c.WriteString(fmt.Sprintf("\nMagic Config:\n 0: Seed = %d\n", settings.Magic.Seed))
	return c.String()
}
