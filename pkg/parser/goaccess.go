package parser

import (
	"errors"
	"fmt"
	"os"

	"github.com/taoky/goaccessfmt/pkg/goaccessfmt"
)

const GoAccessConfigEnv = "GOACCESS_CONFIG"

func init() {
	RegisterParser(ParserMeta{
		Name:        "goaccess",
		Description: "Any format GoAccess understands, configured by $GOACCESS_CONFIG",
		F: func() (Parser, error) {
			return NewGoAccessParser(os.Getenv(GoAccessConfigEnv))
		},
	})
}

type GoAccessFormatParser struct {
	conf goaccessfmt.Config
}

func NewGoAccessParser(confFile string) (*GoAccessFormatParser, error) {
	if confFile == "" {
		return nil, errors.New("goaccess parser requires $" + GoAccessConfigEnv)
	}
	file, err := os.Open(confFile)
	if err != nil {
		return nil, fmt.Errorf("goaccess config: %w", err)
	}
	defer file.Close()
	conf, err := goaccessfmt.ParseConfigReader(file)
	if err != nil {
		return nil, fmt.Errorf("goaccess config %q: %w", confFile, err)
	}
	return &GoAccessFormatParser{conf: conf}, nil
}

func (p *GoAccessFormatParser) Parse(line []byte) (LogItem, error) {
	glogitem, err := goaccessfmt.ParseLine(p.conf, string(line))
	if err != nil {
		return LogItem{}, err
	}

	return checkItem(LogItem{
		Size:   glogitem.RespSize,
		Client: glogitem.Host,
		Time:   glogitem.Dt,
		URL:    glogitem.Req,
		Server: glogitem.Server,
	})
}
