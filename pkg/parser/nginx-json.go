package parser

import (
	"math"
	"time"

	"github.com/goccy/go-json"
)

func init() {
	newFunc := func() (Parser, error) {
		return ParserFunc(ParseNginxJSON), nil
	}
	RegisterParser(ParserMeta{
		Name:        "nginx-json",
		Description: "`nginx-json` format, see README.md for details",
		F:           newFunc,
	})
	RegisterParser(ParserMeta{
		Name:        "ngx_json",
		Description: "An alias for `nginx-json`",
		Hidden:      true,
		F:           newFunc,
	})
}

type NginxJSONLog struct {
	Size      uint64  `json:"size"`
	Client    string  `json:"clientip"`
	Method    string  `json:"method"`
	Url       string  `json:"url"`
	Status    int     `json:"status"`
	Timestamp float64 `json:"timestamp"`
	ServerIP  string  `json:"serverip"`
	Useragent string  `json:"user_agent"`
}

func unixFloat(ts float64) time.Time {
	if ts <= 0 {
		return time.Time{}
	}
	sec, dec := math.Modf(ts)
	return time.Unix(int64(sec), int64(dec*1e9))
}

func ParseNginxJSON(line []byte) (LogItem, error) {
	var logItem NginxJSONLog
	err := json.Unmarshal(line, &logItem)
	if err != nil {
		return LogItem{}, err
	}
	return checkItem(LogItem{
		Size:      logItem.Size,
		Client:    logItem.Client,
		Time:      unixFloat(logItem.Timestamp),
		Method:    logItem.Method,
		URL:       logItem.Url,
		Status:    logItem.Status,
		Server:    logItem.ServerIP,
		Useragent: logItem.Useragent,
	})
}
