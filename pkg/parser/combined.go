package parser

import (
	"fmt"
	"strconv"
)

func init() {
	newFunc := func() (Parser, error) {
		return ParserFunc(ParseCombined), nil
	}
	RegisterParser(ParserMeta{
		Name:        "combined",
		Description: "Common/combined log format used by Nginx and Apache",
		F:           newFunc,
	})
	RegisterParser(ParserMeta{
		Name:        "nginx-combined",
		Description: "An alias for `combined`",
		Hidden:      true,
		F:           newFunc,
	})
	RegisterParser(ParserMeta{
		Name:        "clf",
		Description: "An alias for `combined`",
		Hidden:      true,
		F:           newFunc,
	})
}

// $remote_addr $ident $remote_user [$time_local] "$request" $status $body_bytes_sent
// optionally followed by "$http_referer" "$http_user_agent".
const combinedMinFields = 7

func ParseCombined(line []byte) (LogItem, error) {
	fields, err := splitFields(line)
	if err != nil {
		return LogItem{}, err
	}
	if len(fields) < combinedMinFields {
		return LogItem{}, fmt.Errorf("unexpected format: expected at least %d fields, got %d", combinedMinFields, len(fields))
	}

	localTime, err := clfDateParse(fields[3])
	if err != nil {
		return LogItem{}, fmt.Errorf("invalid time: %w", err)
	}
	method, url, protocol := splitRequest(fields[4])
	// A non-numeric $status is kept as 0; it does not affect statistics.
	status, _ := strconv.Atoi(string(fields[5]))

	item := LogItem{
		Size:     parseSize(fields[6]),
		Client:   string(fields[0]),
		Time:     localTime,
		Method:   string(method),
		URL:      string(url),
		Protocol: string(protocol),
		Status:   status,
	}
	if len(fields) > 8 {
		item.Useragent = string(fields[8])
	}
	return checkItem(item)
}
