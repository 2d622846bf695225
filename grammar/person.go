// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2025 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package grammar

import (
	"errors"
	"fmt"
)

var ErrUnknownPerson = errors.New("unknown grammatical person")

// Person is one of the nine German subject pronouns the conjugator
// distinguishes. The value "sie_plural" keeps plural "sie" apart from
// the singular one; in rendered sentences both surface as "sie".
type Person string

const (
	PersonIch       Person = "ich"
	PersonDu        Person = "du"
	PersonEr        Person = "er"
	PersonSie       Person = "sie"
	PersonEs        Person = "es"
	PersonWir       Person = "wir"
	PersonIhr       Person = "ihr"
	PersonSieFormal Person = "Sie"
	PersonSiePlural Person = "sie_plural"
)

// Persons lists all valid persons in their canonical order.
var Persons = []Person{
	PersonIch,
	PersonDu,
	PersonEr,
	PersonSie,
	PersonEs,
	PersonWir,
	PersonIhr,
	PersonSieFormal,
	PersonSiePlural,
}

var reflexivePronouns = map[Person]string{
	PersonIch:       "mich",
	PersonDu:        "dich",
	PersonEr:        "sich",
	PersonSie:       "sich",
	PersonEs:        "sich",
	PersonWir:       "uns",
	PersonIhr:       "euch",
	PersonSieFormal: "sich",
	PersonSiePlural: "sich",
}

func (p Person) Validate() error {
	if _, ok := reflexivePronouns[p]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPerson, string(p))
	}
	return nil
}

// Surface returns the pronoun as it appears in subject position.
func (p Person) Surface() string {
	if p == PersonSiePlural {
		return "sie"
	}
	return string(p)
}

// ReflexivePronoun returns the accusative reflexive pronoun matching
// the person (mich, dich, sich, ...).
func (p Person) ReflexivePronoun() string {
	return reflexivePronouns[p]
}

// ParsePerson converts a raw subject string (as stored in template
// catalogs) into a Person.
func ParsePerson(v string) (Person, error) {
	p := Person(v)
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}
