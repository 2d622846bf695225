// Copyright 2022 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2022 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2022 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/czcorpus/satzgen/server"

	"github.com/rs/zerolog/log"
)

// VersionInfo is filled in by the linker during build
type VersionInfo struct {
	Version   string `json:"version"`
	BuildDate string `json:"buildDate"`
	GitCommit string `json:"gitCommit"`
}

var (
	version     string
	buildDate   string
	gitCommit   string
	versionInfo = VersionInfo{
		Version:   version,
		BuildDate: buildDate,
		GitCommit: gitCommit,
	}
)

func determineConfigPath(argPos int) string {
	v := flag.Arg(argPos)
	if v != "" {
		return v
	}
	fmt.Fprintln(os.Stderr, "no config path specified, searching common locations")
	return ""
}

func main() {
	cmdOpts := new(server.CmdOptions)
	flag.StringVar(&cmdOpts.Host, "host", "", "Host to listen on")
	flag.IntVar(&cmdOpts.Port, "port", 0, "Port to listen on")
	flag.IntVar(&cmdOpts.ReadTimeoutSecs, "read-timeout", 0, "Server read timeout in seconds")
	flag.IntVar(&cmdOpts.WriteTimeoutSecs, "write-timeout", 0, "Server write timeout in seconds")
	flag.StringVar(&cmdOpts.LogPath, "log-path", "", "A file to log to (if empty then stderr is used)")
	flag.StringVar(&cmdOpts.LogLevel, "log-level", "", "A log level (debug, info, warn/warning, error)")
	flag.StringVar(&cmdOpts.Level, "level", "", "Override the configured CEFR level (e.g. A1, A2, B1)")
	var exVerb, exSubject string
	flag.StringVar(&exVerb, "verb", "", "Generate the exercise for this specific verb (applies to the exercise action)")
	flag.StringVar(&exSubject, "subject", "", "Force a grammatical person, e.g. ich, du, wir (applies to the exercise action)")

	flag.Usage = func() {
		fmt.Fprintf(
			os.Stderr,
			"satzgen - a German present tense sentence trainer"+
				"\n\nUsage:"+
				"\n\t%s [options] start [conf.json]"+
				"\n\t%s [options] exercise [conf.json]"+
				"\n\t%s [options] validate [conf.json]"+
				"\n\t%s [options] version\n",
			filepath.Base(os.Args[0]), filepath.Base(os.Args[0]),
			filepath.Base(os.Args[0]), filepath.Base(os.Args[0]),
		)
		flag.PrintDefaults()
	}
	flag.Parse()

	action := flag.Arg(0)

	switch action {
	case "version":
		fmt.Printf("satzgen %s\nbuild date: %s\nlast commit: %s\n",
			versionInfo.Version, versionInfo.BuildDate, versionInfo.GitCommit)
		return
	case "start":
		conf := server.FindAndLoadConfig(determineConfigPath(1), cmdOpts)
		log.Info().
			Str("version", versionInfo.Version).
			Str("buildDate", versionInfo.BuildDate).
			Str("last commit", versionInfo.GitCommit).
			Msg("Starting satzgen")
		server.RunService(conf)
	case "exercise":
		conf := server.FindAndLoadConfig(determineConfigPath(1), cmdOpts)
		runExercise(conf, exVerb, exSubject)
	case "validate":
		conf := server.FindAndLoadConfig(determineConfigPath(1), cmdOpts)
		runValidate(conf)
	default:
		fmt.Printf("Unknown action [%s]. Try -h for help\n", flag.Arg(0))
		os.Exit(1)
	}

}
