/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package main

import (
	"flag"
	"os"
	"runtime"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fkopp/chessmove/internal/attacks"
	"github.com/fkopp/chessmove/internal/config"
	"github.com/fkopp/chessmove/internal/fen"
	"github.com/fkopp/chessmove/internal/logging"
	"github.com/fkopp/chessmove/internal/movegen"
)

const toolVersion = "0.1.0"

var out = message.NewPrinter(language.English)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	perftDepth := flag.Int("perft", 0, "runs perft on the given fen up to the given depth (cumulative from 1)")
	fenStr := flag.String("fen", fen.StartFen, "fen string to run perft against")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	config.ConfFile = *configFile
	config.Setup()
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	logging.GetLog()
	attacks.ReseedMagics()

	if *perftDepth <= 0 {
		out.Println("nothing to do - provide -perft <depth>")
		return
	}

	var p movegen.Perft
	p.StartPerftMulti(*fenStr, 1, *perftDepth)
}

func printVersionInfo() {
	out.Printf("chessmove perft %s\n", toolVersion)
	out.Println("environment:")
	out.Printf("  go version %s\n", runtime.Version())
	out.Printf("  running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  number of cpu: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  working directory: %s\n", cwd)
}
