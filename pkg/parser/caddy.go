package parser

import (
	"github.com/goccy/go-json"
)

func init() {
	newFunc := func() (Parser, error) {
		return ParserFunc(ParseCaddyJSON), nil
	}

	RegisterParser(ParserMeta{
		Name:        "caddy-json",
		Description: "Caddy's default JSON format",
		F:           newFunc,
	})
	RegisterParser(ParserMeta{
		Name:        "caddy",
		Description: "An alias for `caddy-json`",
		Hidden:      true,
		F:           newFunc,
	})
}

type CaddyJsonLogRequest struct {
	RemoteIP string              `json:"remote_ip"`
	ClientIP string              `json:"client_ip"`
	Method   string              `json:"method"`
	Proto    string              `json:"proto"`
	Uri      string              `json:"uri"`
	Headers  map[string][]string `json:"headers"`
}

type CaddyJsonLog struct {
	Msg       string              `json:"msg"`
	Timestamp float64             `json:"ts"` // (unix_seconds_float)
	Request   CaddyJsonLogRequest `json:"request"`
	Size      uint64              `json:"size"`
	Status    int                 `json:"status"`
}

func ParseCaddyJSON(line []byte) (LogItem, error) {
	var logItem CaddyJsonLog
	err := json.Unmarshal(line, &logItem)
	if err != nil {
		return LogItem{}, err
	}
	if logItem.Msg != "handled request" {
		return LogItem{}, ErrExpectedIgnoredLog
	}
	client := logItem.Request.ClientIP
	if client == "" {
		client = logItem.Request.RemoteIP
	}
	var useragent string
	if ua := logItem.Request.Headers["User-Agent"]; len(ua) > 0 {
		useragent = ua[0]
	}
	return checkItem(LogItem{
		Size:      logItem.Size,
		Client:    client,
		Time:      unixFloat(logItem.Timestamp),
		Method:    logItem.Request.Method,
		URL:       logItem.Request.Uri,
		Protocol:  logItem.Request.Proto,
		Status:    logItem.Status,
		Useragent: useragent,
	})
}
