package parser

import (
	"errors"
	"fmt"
	"time"
)

// LogItem is one successfully parsed access log line.
//
// Client is never empty and Time is never the zero instant: parsers
// reject lines that cannot satisfy both.
type LogItem struct {
	Size      uint64
	Client    string
	Time      time.Time
	Method    string
	URL       string
	Protocol  string
	Status    int
	Server    string
	Useragent string
}

type Parser interface {
	Parse(line []byte) (LogItem, error)
}

type ParserFunc func(line []byte) (LogItem, error)

func (f ParserFunc) Parse(line []byte) (LogItem, error) {
	return f(line)
}

type NewFunc func() (Parser, error)

type ParserMeta struct {
	Name        string
	Description string
	Hidden      bool
	F           NewFunc
}

const DefaultParser = "combined"

var (
	ErrExpectedIgnoredLog = errors.New("ignored")
	ErrEmptyClient        = errors.New("empty client address")
	ErrMissingTime        = errors.New("missing timestamp")

	registry = make(map[string]ParserMeta)
)

func RegisterParser(meta ParserMeta) {
	registry[meta.Name] = meta
}

func GetParser(name string) (Parser, error) {
	meta, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown parser %q", name)
	}
	return meta.F()
}

func All() []ParserMeta {
	metas := make([]ParserMeta, 0, len(registry))
	for _, m := range registry {
		metas = append(metas, m)
	}
	return metas
}

// checkItem enforces the invariants every parser must uphold.
func checkItem(item LogItem) (LogItem, error) {
	if item.Client == "" || item.Client == "-" {
		return LogItem{}, ErrEmptyClient
	}
	if item.Time.IsZero() {
		return LogItem{}, ErrMissingTime
	}
	return item, nil
}
