package main

import (
	"flag"

	"github.com/evilsocket/islazy/log"
)

var (
	debug      = false
	ver        = false
	routes     = false
	vendors    = false
	oneShot    = false
	withAttack = false
	timeout    = 30
	format     = "table"
	address    = "0.0.0.0:5000"
	env        = ".env"
	quiet      = false
)

// flags that can also be set from the environment or the .env file
var envFlags = map[string]string{
	"address": "WIFISCAN_ADDRESS",
	"timeout": "WIFISCAN_TIMEOUT",
	"vendors": "WIFISCAN_VENDORS",
	"debug":   "WIFISCAN_DEBUG",
}

func init() {
	flag.BoolVar(&ver, "version", ver, "Print version and exit.")
	flag.BoolVar(&debug, "debug", debug, "Enable debug logs.")
	flag.BoolVar(&routes, "routes", routes, "Generate routes documentation and exit.")
	flag.StringVar(&log.Output, "log", log.Output, "Log file path or empty for standard output.")
	flag.StringVar(&address, "address", address, "API address.")
	flag.StringVar(&env, "env", env, "Load .env from.")

	flag.IntVar(&timeout, "timeout", timeout, "Timeout in seconds for the wifi scanning command.")
	flag.BoolVar(&vendors, "vendors", vendors, "Resolve access point vendors from their OUI.")

	flag.BoolVar(&oneShot, "scan", oneShot, "Scan once, print the networks and exit.")
	flag.BoolVar(&withAttack, "attack", withAttack, "Include the simulated evil twins in the -scan output.")
	flag.StringVar(&format, "format", format, "Output format for -scan: table, json or yaml.")
}
