package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/evilsocket/islazy/log"
	"github.com/evilsocket/wifiscan/api"
	"github.com/evilsocket/wifiscan/utils"
	"github.com/evilsocket/wifiscan/version"
	"github.com/evilsocket/wifiscan/wifi"
)

func main() {
	flag.Parse()

	if ver {
		fmt.Println(version.Version)
		return
	}

	setupLog()
	defer log.Close()

	setupEnv()
	if err := flagsFromEnv(flag.CommandLine, os.Getenv); err != nil {
		log.Fatal("%v", err)
	}
	// the environment might have enabled debug logs
	setupLogLevel()
	setupCore()

	scanner := wifi.NewScanner(
		wifi.WithTimeout(time.Duration(timeout)*time.Second),
		wifi.WithVendorLookup(vendors))

	if !scanner.Supported() {
		log.Warning("wifi scanning is not supported on %s, sample data will be served", scanner.OS())
	}

	if oneShot {
		if err := showNetworks(os.Stdout, scanOnce(scanner, withAttack), format); err != nil {
			log.Fatal("%v", err)
		}
		return
	}

	server := api.Setup(scanner)
	if routes {
		fmt.Println(server.RoutesDoc())
		return
	}

	log.Info("wifiscan v%s starting on %s ...", version.Version, scanner.OS())
	log.Info("dashboard available at %s", utils.DashboardURL(address, utils.Hostname()))

	server.Run(address)
}
