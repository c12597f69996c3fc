// The dgpsdecoder reads an ITU-R M.823 DGPS beacon bitstream from a UDP
// multicast group and writes a textual trace of every decoded message to
// stdout: station reference positions, station almanac entries,
// per-satellite pseudorange corrections, constellation health and
// free-text messages.
//
// When it starts up it looks for an optional JSON config file (-config)
// that can override the bit-string debug trace, the satellite store
// eviction threshold, and the directory for the daily event log. Absence of
// the flag is not an error: built-in defaults apply. A named file that
// cannot be opened or parsed is fatal.
//
//	{
//	    "debug": false,
//	    "removeold": 5000,
//	    "log_directory": "logs"
//	}
//
// Positional arguments give the multicast group and port, defaulting to
// 225.0.0.1:10000:
//
//	dgpsdecoder [-config dgps.json] [-debug-bits] [group [port]]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/goblimey/go-dgps/cmd/dgpsdecoder/config"
	"github.com/goblimey/go-dgps/dgps/decoder"
	"github.com/goblimey/go-dgps/dgps/satstore"
	"github.com/goblimey/go-dgps/dgps/sink"
	"github.com/goblimey/go-tools/dailylogger"
)

const (
	defaultGroup = "225.0.0.1"
	defaultPort  = 10000
)

func main() {
	var configFileName string
	flag.StringVar(&configFileName, "config", "", "JSON config file")
	debugBits := flag.Bool("debug-bits", false, "log every shifted bit while hunting for sync (verbose)")
	flag.Parse()

	cfg, errConfig := config.GetConfig(configFileName)
	if errConfig != nil {
		fmt.Fprintln(os.Stderr, errConfig.Error())
		os.Exit(-1)
	}

	logDir := cfg.LogDirectory
	if logDir == "" {
		logDir = "logs"
	}
	dailyLog := dailylogger.New(logDir, "dgpsdecoder.", ".log")
	logger := log.New(dailyLog, "dgpsdecoder", log.LstdFlags|log.Lshortfile|log.Lmicroseconds)

	group, port := parseArgs(flag.Args(), logger)

	removeold := uint64(satstore.DefaultRemoveOld)
	if cfg.RemoveOld > 0 {
		removeold = cfg.RemoveOld
	}

	src, err := newMulticastSource(group, port)
	if err != nil {
		logger.Printf("cannot join multicast group %s:%d: %s", group, port, err.Error())
		os.Exit(-1)
	}
	defer src.Close()

	out := sink.NewStdout(os.Stdout)
	d := decoder.New(src, out,
		decoder.WithDebug(cfg.Debug),
		decoder.WithDebugBits(*debugBits),
		decoder.WithLogger(logger),
		decoder.WithRemoveOld(removeold),
	)
	d.Run()
}

// parseArgs reads the optional positional group and port arguments,
// matching the original Python Main()'s handling of sys.argv.
func parseArgs(args []string, logger *log.Logger) (string, int) {
	group := defaultGroup
	if len(args) > 0 {
		group = args[0]
	}

	port := defaultPort
	if len(args) > 1 {
		p, err := strconv.Atoi(args[1])
		if err != nil {
			logger.Printf("invalid port %q: %s", args[1], err.Error())
			os.Exit(-1)
		}
		port = p
	}

	return group, port
}
