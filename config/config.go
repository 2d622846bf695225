// Copyright 2022 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2022 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2022 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/czcorpus/satzgen/exstore"
	"github.com/czcorpus/satzgen/lexicon"
	"github.com/czcorpus/satzgen/reporting"
	"github.com/czcorpus/satzgen/trainer"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	DfltServerReadTimeoutSecs  = 10
	DfltServerWriteTimeoutSecs = 30
	DftlServerPort             = 8080
	DfltServerHost             = "localhost"
	DfltTimeZone               = "Europe/Prague"
)

// Limit defines a request rate limit applied per client IP.
type Limit struct {
	ReqPerTimeThreshold     int `json:"reqPerTimeThreshold"`
	ReqCheckingIntervalSecs int `json:"reqCheckingIntervalSecs"`
	BurstLimit              int `json:"burstLimit"`
}

func (m Limit) ReqCheckingInterval() time.Duration {
	return time.Duration(m.ReqCheckingIntervalSecs) * time.Second
}

func (m Limit) NormLimitPerSec() rate.Limit {
	return rate.Limit(float64(m.ReqPerTimeThreshold) / float64(m.ReqCheckingIntervalSecs))
}

func (m Limit) Validate(context string) error {
	if m.ReqPerTimeThreshold <= 0 {
		return fmt.Errorf("%s.reqPerTimeThreshold must be a positive number", context)
	}
	if m.ReqCheckingIntervalSecs <= 0 {
		return fmt.Errorf("%s.reqCheckingIntervalSecs must be a positive number", context)
	}
	if m.BurstLimit <= 0 {
		return fmt.Errorf("%s.burstLimit must be a positive number", context)
	}
	return nil
}

type Configuration struct {
	ServerHost             string              `json:"serverHost"`
	ServerPort             int                 `json:"serverPort"`
	ServerReadTimeoutSecs  int                 `json:"serverReadTimeoutSecs"`
	ServerWriteTimeoutSecs int                 `json:"serverWriteTimeoutSecs"`
	TimeZone               string              `json:"timeZone"`
	Logging                logging.LoggingConf `json:"logging"`
	Lexicon                lexicon.Conf        `json:"lexicon"`
	Trainer                trainer.Conf        `json:"trainer"`
	ExerciseStore          *exstore.Conf       `json:"exerciseStore"`
	Reporting              *reporting.Conf     `json:"reporting"`
	Limits                 []Limit             `json:"limits"`
}

func (c *Configuration) Validate() error {
	var err error
	if err = c.Lexicon.Validate("lexicon"); err != nil {
		return err
	}
	if err = c.Trainer.Validate("trainer"); err != nil {
		return err
	}
	if c.ExerciseStore != nil {
		if err = c.ExerciseStore.Validate("exerciseStore"); err != nil {
			return err
		}
	}
	for i, limit := range c.Limits {
		if err = limit.Validate(fmt.Sprintf("limits[%d]", i)); err != nil {
			return err
		}
	}
	if _, err := time.LoadLocation(c.TimeZone); err != nil {
		return err
	}
	return nil
}

func (c *Configuration) TimezoneLocation() *time.Location {
	// we can ignore the error here as we always call c.Validate()
	// first (which also tries to load the location and report possible
	// error)
	loc, _ := time.LoadLocation(c.TimeZone)
	return loc
}

func LoadConfig(path string) *Configuration {
	if path == "" {
		log.Fatal().Msg("Cannot load config - path not specified")
	}
	rawData, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	var conf Configuration
	err = json.Unmarshal(rawData, &conf)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	return &conf
}
