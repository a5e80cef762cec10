package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombinedParser(t *testing.T) {
	as := assert.New(t)
	p := ParserFunc(ParseCombined)
	line := `123.45.67.8 - - [12/Mar/2023:00:15:32 +0800] "GET /path/to/a/file HTTP/1.1" 200 3009 "-" "curl/8.0"`
	log, err := p.Parse([]byte(line))
	require.NoError(t, err)
	as.EqualValues(3009, log.Size)
	as.Equal("123.45.67.8", log.Client)
	as.Equal("GET", log.Method)
	as.Equal("/path/to/a/file", log.URL)
	as.Equal("HTTP/1.1", log.Protocol)
	as.Equal(200, log.Status)
	as.Equal("curl/8.0", log.Useragent)
	expectedTime := time.Date(2023, 3, 12, 0, 15, 32, 0, time.FixedZone("CST", 8*60*60))
	as.True(expectedTime.Equal(log.Time), "expected time %v, got %v", expectedTime, log.Time)
}

func TestCombinedParserTabSeparated(t *testing.T) {
	line := "10.0.0.1\t-\t-\t[10/Oct/2000:13:55:36 -0700]\t\"GET /a HTTP/1.1\"\t200\t2326\t\"-\"\t\"curl/8.0\""
	log, err := ParseCombined([]byte(line))
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1", log.Client)
	assert.Equal(t, "/a", log.URL)
	assert.EqualValues(t, 2326, log.Size)
	assert.Equal(t, "curl/8.0", log.Useragent)
}

func TestCombinedParserCommonFormat(t *testing.T) {
	log, err := ParseCombined([]byte(`10.0.0.1 - frank [10/Oct/2000:13:55:36 -0700] "GET /apache_pb.gif HTTP/1.0" 200 2326`))
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1", log.Client)
	assert.EqualValues(t, 2326, log.Size)
	assert.Empty(t, log.Useragent)
}

func TestCombinedParserSize(t *testing.T) {
	testCases := map[string]uint64{
		`1.1.1.1 - - [12/Mar/2023:00:15:32 +0800] "GET / HTTP/1.1" 304 - "-" "-"`:   0,
		`1.1.1.1 - - [12/Mar/2023:00:15:32 +0800] "GET / HTTP/1.1" 304 "" "-" "-"`:  0,
		`1.1.1.1 - - [12/Mar/2023:00:15:32 +0800] "GET / HTTP/1.1" 200 abc "-" "-"`: 0,
		`1.1.1.1 - - [12/Mar/2023:00:15:32 +0800] "GET / HTTP/1.1" 200 100`:         100,
	}
	for line, expected := range testCases {
		log, err := ParseCombined([]byte(line))
		if assert.NoError(t, err, line) {
			assert.Equal(t, expected, log.Size, line)
		}
	}
}

func TestCombinedParserRejects(t *testing.T) {
	testCases := []string{
		``,
		`1.1.1.1 - - [12/Mar/2023:00:15:32 +0800] "GET / HTTP/1.1" 200`,
		`1.1.1.1 - - [12/Mar/2023 00:15:32 +0800] "GET / HTTP/1.1" 200 100`,
		`1.1.1.1 - - [12/Foo/2023:00:15:32 +0800] "GET / HTTP/1.1" 200 100`,
		`1.1.1.1 - - [31/Feb/2023:00:15:32 +0800] "GET / HTTP/1.1" 200 100`,
		`1.1.1.1 - - [12/Mar/2023:25:15:32 +0800] "GET / HTTP/1.1" 200 100`,
		`1.1.1.1 - - [not a time] "GET / HTTP/1.1" 200 100`,
		`- - - [12/Mar/2023:00:15:32 +0800] "GET / HTTP/1.1" 200 100`,
		`"" - - [12/Mar/2023:00:15:32 +0800] "GET / HTTP/1.1" 200 100`,
		`1.1.1.1 - - [12/Mar/2023:00:15:32 +0800] "GET / HTTP/1.1 200 100`,
	}
	for _, line := range testCases {
		_, err := ParseCombined([]byte(line))
		assert.Error(t, err, line)
	}
}

func TestCombinedParserDeterministic(t *testing.T) {
	line := []byte(`114.5.1.4 - - [04/Apr/2024:08:01:12 +0800] "GET /a HTTP/2.0" 200 42 "-" "-"`)
	first, err := ParseCombined(line)
	require.NoError(t, err)
	for range 10 {
		again, err := ParseCombined(line)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestCombinedParserWithUnusualInputs(t *testing.T) {
	as := assert.New(t)
	line := `114.5.1.4 - - [04/Apr/2024:08:01:12 +0800] "\x16\x03\x01\x00\xCA\x01\x00\x00\xC6\x03\x03\x94b\x22\x06u\xBEi\xF6\xC5cA\x97eq\xF0\xD5\xD3\xE6\x08I" 400 163 "-" "-"`
	log, err := ParseCombined([]byte(line))
	as.NoError(err)
	as.Equal(`\x16\x03\x01\x00\xCA\x01\x00\x00\xC6\x03\x03\x94b\x22\x06u\xBEi\xF6\xC5cA\x97eq\xF0\xD5\xD3\xE6\x08I`, log.URL)
	as.EqualValues(163, log.Size)

	line = `114.5.1.5 - - [04/Apr/2024:09:02:13 +0800] "\x16\x03\x01\x00\xEE\x01\x00\x00\xEA\x03\x03\x9C\xB4\x92\xC5{\xE9\xEC\x18\xB1\x17\x04f\xCA\x0F\xF3\xFD\xAA\x98H\xA5N\xBC\xC9\xD7\xF8\x95.H\x15\x13\xF2\xF9 ~W\xB9\x94Qs\x01\x02\xE3c'\xA8pB\xC5\xCC\x10c\xC9\xF4\x99{\x0E1\x90\x81\xBD4J\x10y\x17\x00&\xC0+\xC0/\xC0,\xC00\xCC\xA9\xCC\xA8\xC0\x09\xC0\x13\xC0" 400 163 "-" "-"`
	log, err = ParseCombined([]byte(line))
	as.NoError(err)
	// When the abnormal request have a space in the URL, we ignore things before the space (shall be "method")
	as.Equal(`~W\xB9\x94Qs\x01\x02\xE3c'\xA8pB\xC5\xCC\x10c\xC9\xF4\x99{\x0E1\x90\x81\xBD4J\x10y\x17\x00&\xC0+\xC0/\xC0,\xC00\xCC\xA9\xCC\xA8\xC0\x09\xC0\x13\xC0`, log.URL)
}
