// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2025 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package lexicon

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
)

/*
CREATE TABLE satzgen_verb (
	infinitive varchar(63) NOT NULL,
	data text NOT NULL, -- the whole verb entry as a JSON document
	updated datetime NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	PRIMARY KEY (infinitive)
) ENGINE=InnoDB;

-- privileges:

create user 'satzgen'@'192.168.1.%' identified by '******';
grant select on satzgen_verb to 'satzgen'@'192.168.1.%';
*/

const (
	DfltVerbsTableName = "satzgen_verb"
)

type DBConf struct {
	Name                   string `json:"name"`
	Host                   string `json:"host"`
	User                   string `json:"user"`
	Password               string `json:"password"`
	OverrideVerbsTableName string `json:"overrideVerbsTableName"`
}

func (conf *DBConf) IsZero() bool {
	return conf.Name == "" && conf.Host == "" && conf.User == "" && conf.Password == ""
}

func (conf *DBConf) Validate(context string) error {
	if conf.IsZero() {
		log.Warn().Msgf("verb database not configured - verbs will be loaded from files")
		return nil

	} else if conf.Name == "" {
		return fmt.Errorf("%s.name is missing/empty", context)

	} else if conf.Host == "" {
		return fmt.Errorf("%s.host is missing/empty", context)

	} else if conf.User == "" {
		return fmt.Errorf("%s.user is missing/empty", context)

	} else if conf.Password == "" {
		return fmt.Errorf("%s.password is missing/empty", context)
	}
	return nil
}

func (conf *DBConf) VerbsTableName() string {
	if conf.OverrideVerbsTableName != "" {
		log.Warn().Msgf("overriding verbs table name to '%s'", conf.OverrideVerbsTableName)
		return conf.OverrideVerbsTableName
	}
	return DfltVerbsTableName
}

func OpenDB(conf *DBConf) (*sql.DB, error) {
	mconf := mysql.NewConfig()
	mconf.Net = "tcp"
	mconf.Addr = conf.Host
	mconf.User = conf.User
	mconf.Passwd = conf.Password
	mconf.DBName = conf.Name
	mconf.ParseTime = true
	mconf.Loc = time.Local
	db, err := sql.Open("mysql", mconf.FormatDSN())
	if err != nil {
		return nil, err
	}
	return db, nil
}

// VerbsTable reads verb entries stored as JSON documents in MySQL.
// It is an alternative source to the verbs file and produces the
// same Catalog.
type VerbsTable struct {
	db        *sql.DB
	tableName string
}

func (table *VerbsTable) LoadAll() (*Catalog, error) {
	rows, err := table.db.Query(
		fmt.Sprintf("SELECT infinitive, data FROM %s ORDER BY infinitive", table.tableName))
	if err != nil {
		return nil, fmt.Errorf("failed to load verbs from database: %w", err)
	}
	defer rows.Close()
	verbs := make([]*Verb, 0, 100)
	for rows.Next() {
		var infinitive, doc string
		if err := rows.Scan(&infinitive, &doc); err != nil {
			return nil, fmt.Errorf("failed to load verbs from database: %w", err)
		}
		var verb Verb
		if err := sonic.Unmarshal([]byte(doc), &verb); err != nil {
			return nil, fmt.Errorf("failed to decode verb entry %s: %w", infinitive, err)
		}
		if verb.Infinitive != infinitive {
			log.Warn().
				Str("key", infinitive).
				Str("infinitive", verb.Infinitive).
				Msg("verb entry key does not match its document")
		}
		verbs = append(verbs, &verb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load verbs from database: %w", err)
	}
	return NewCatalog(verbs)
}

func NewVerbsTable(db *sql.DB, conf *DBConf) *VerbsTable {
	return &VerbsTable{
		db:        db,
		tableName: conf.VerbsTableName(),
	}
}
