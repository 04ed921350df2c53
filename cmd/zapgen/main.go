// Command zapgen lists, previews and exports pixel-grid patterns.
//
//	zapgen list    [-catalog zap]
//	zapgen show    [-catalog zap] [-color c] <id>
//	zapgen preview [-config file] [-catalog zap] [-color c] [-speed s] [-static] <id>
//	zapgen gen     -format arduino|espidf|flutter|react [-color c] [-o file] <id>
//	zapgen export  -format arduino|espidf|flutter|react [-dir dir]
//
// The global -debug flag writes log output to logs/zapgen.log.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

const (
	logDir      = "logs"
	logFileName = "zapgen.log"
)

// errUsage marks errors already reported with a usage message.
var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	global := flag.NewFlagSet("zapgen", flag.ContinueOnError)
	global.SetOutput(stderr)
	debug := global.Bool("debug", false, "write logs to "+filepath.Join(logDir, logFileName))
	global.Usage = func() { usage(stderr) }
	if err := global.Parse(args); err != nil {
		return 2
	}

	if f := setupLogging(*debug); f != nil {
		defer f.Close()
	}

	rest := global.Args()
	if len(rest) == 0 {
		usage(stderr)
		return 2
	}
	cmd, ok := commands[rest[0]]
	if !ok {
		fmt.Fprintf(stderr, "zapgen: unknown command %q\n", rest[0])
		usage(stderr)
		return 2
	}
	log.Printf("zapgen %s %v", rest[0], rest[1:])
	if err := cmd(rest[1:], stdout, stderr); err != nil {
		if errors.Is(err, errUsage) {
			return 2
		}
		log.Printf("zapgen %s: %v", rest[0], err)
		fmt.Fprintf(stderr, "zapgen: %v\n", err)
		return 1
	}
	return 0
}

func usage(w io.Writer) {
	fmt.Fprint(w, `usage: zapgen [-debug] <command> [flags] [args]

commands:
  list      list the patterns of a catalog
  show      print every frame of a pattern
  preview   animate a pattern in the terminal
  gen       generate source for one Zap pattern
  export    generate source for every Zap pattern

preview settings come from its flags, then the -config file, then the
defaults: catalog zap, color green, size md, speed normal.
`)
}

// setupLogging sends the standard logger to logs/zapgen.log when debug is
// set and discards it otherwise. The returned file, if any, must be closed
// by the caller.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
