package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClfDateParse(t *testing.T) {
	expected := time.Date(2006, time.January, 2, 15, 4, 5, 0, time.FixedZone("", -7*60*60))
	got, err := clfDateParse([]byte(CommonLogFormat))
	if assert.NoError(t, err) {
		assert.Equal(t, expected, got)
	}

	std, err := time.Parse(CommonLogFormat, "10/Oct/2000:13:55:36 +0530")
	assert.NoError(t, err)
	got, err = clfDateParse([]byte("10/Oct/2000:13:55:36 +0530"))
	if assert.NoError(t, err) {
		assert.True(t, std.Equal(got), "expected %v, got %v", std, got)
	}
}

func TestClfDateParseInvalid(t *testing.T) {
	testCases := []string{
		"",
		"2/Jan/2006:15:04:05 -0700",
		"02/Jan/2006:15:04:05",
		"02/Jan/2006 15:04:05 -0700",
		"02/jan/2006:15:04:05 -0700",
		"02/Jan/2006:15:04:05 *0700",
		"0a/Jan/2006:15:04:05 -0700",
		"30/Feb/2006:15:04:05 -0700",
		"02/Jan/2006:15:60:05 -0700",
	}
	for _, c := range testCases {
		_, err := clfDateParse([]byte(c))
		assert.Error(t, err, c)
	}
}

func TestFindEndingDoubleQuote(t *testing.T) {
	type testCase struct {
		input    []byte
		expected int
	}
	testCases := []testCase{
		{[]byte(`abc"`), 3},
		{[]byte(`ab\"c"`), 5},
		{[]byte(`ab\\c"`), 5},
		{[]byte(`ab`), -1},
	}
	for _, c := range testCases {
		assert.Equal(t, c.expected, findEndingDoubleQuote(c.input))
	}
}

func TestSplitFields(t *testing.T) {
	type testCase struct {
		line     []byte
		expected [][]byte
	}
	testCases := []testCase{
		{
			[]byte(`127.0.0.1 - - [2/Jan/2006:15:04:05 -0700] "GET /blog/2021/01/hello-world HTTP/1.1" 200 512`),
			[][]byte{
				[]byte(`127.0.0.1`),
				[]byte(`-`),
				[]byte(`-`),
				[]byte(`2/Jan/2006:15:04:05 -0700`),
				[]byte(`GET /blog/2021/01/hello-world HTTP/1.1`),
				[]byte(`200`),
				[]byte(`512`),
			},
		},
		{
			[]byte(`a  "b \"c\""  [d e]`),
			[][]byte{
				[]byte(`a`),
				[]byte(`b \"c\"`),
				[]byte(`d e`),
			},
		},
		{
			[]byte("1.2.3.4\t-\t-\t[2/Jan/2006:15:04:05 -0700] \t\"GET / HTTP/1.1\"\t200\t512"),
			[][]byte{
				[]byte(`1.2.3.4`),
				[]byte(`-`),
				[]byte(`-`),
				[]byte(`2/Jan/2006:15:04:05 -0700`),
				[]byte(`GET / HTTP/1.1`),
				[]byte(`200`),
				[]byte(`512`),
			},
		},
	}
	for _, c := range testCases {
		res, err := splitFields(c.line)
		if assert.NoError(t, err) {
			assert.Equal(t, c.expected, res)
		}
	}

	_, err := splitFields([]byte(`a "b`))
	assert.Error(t, err)
	_, err = splitFields([]byte(`a [b`))
	assert.Error(t, err)
}

func TestSplitRequest(t *testing.T) {
	method, url, proto := splitRequest([]byte("GET /a b HTTP/1.1"))
	assert.Equal(t, "GET", string(method))
	assert.Equal(t, "/a b", string(url))
	assert.Equal(t, "HTTP/1.1", string(proto))

	method, url, proto = splitRequest([]byte("garbage"))
	assert.Nil(t, method)
	assert.Equal(t, "garbage", string(url))
	assert.Nil(t, proto)
}
