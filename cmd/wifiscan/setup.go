package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"github.com/adrg/xdg"
	"github.com/evilsocket/islazy/fs"
	"github.com/evilsocket/islazy/log"
	"github.com/joho/godotenv"
)

func isFlagSet(set *flag.FlagSet, name string) (found bool) {
	set.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return
}

// logOutput returns where logs should go and whether they should be silenced,
// -scan with a machine readable format owns the standard output.
func logOutput(oneShot bool, format, output, goos string) (string, bool) {
	if !oneShot || format == "table" || output != "" {
		return output, false
	} else if goos == "windows" {
		return output, true
	}
	return os.Stderr.Name(), false
}

func setupLog() {
	log.Output, quiet = logOutput(oneShot, format, log.Output, runtime.GOOS)
	if err := log.Open(); err != nil {
		panic(err)
	}
	log.OnFatal = log.ExitOnFatal
	setupLogLevel()
}

func setupLogLevel() {
	if debug {
		log.Level = log.DEBUG
	} else if quiet {
		log.Level = log.FATAL
	} else {
		log.Level = log.INFO
	}
}

func setupEnv() {
	envPath := env
	if !fs.Exists(envPath) {
		// only fail if the user asked for a specific file
		if isFlagSet(flag.CommandLine, "env") {
			log.Fatal("%s does not exist", envPath)
		}
		found, err := xdg.SearchConfigFile("wifiscan/env")
		if err != nil {
			log.Debug("no env file found")
			return
		}
		envPath = found
	}

	if err := godotenv.Load(envPath); err != nil {
		log.Fatal("error loading %s: %v", envPath, err)
	}
	log.Debug("loaded %s", envPath)
}

// command line flags take precedence over the environment
func flagsFromEnv(set *flag.FlagSet, getenv func(string) string) error {
	for name, variable := range envFlags {
		value := getenv(variable)
		if value == "" || isFlagSet(set, name) {
			continue
		}
		if err := set.Set(name, value); err != nil {
			return fmt.Errorf("invalid value %q for %s: %v", value, variable, err)
		}
	}
	return nil
}

func setupCore() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		for sig := range c {
			log.Warning("received signal %v", sig)
			log.Close()
			os.Exit(0)
		}
	}()

	if timeout <= 0 {
		log.Fatal("-timeout must be greater than zero")
	}
}
