package filter

import (
	"errors"
	"fmt"
	"net/netip"
	"time"

	"github.com/spf13/pflag"
	"github.com/taoky/logproc/pkg/parser"
)

// Filter restricts which records contribute to the statistics. The zero
// value matches everything.
type Filter struct {
	Prefixes []netip.Prefix
	TimeFrom time.Time
	TimeTo   time.Time
}

var timeFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"20060102150405",
}

func (f *Filter) InstallFlags(flags *pflag.FlagSet) {
	flags.Func("ip", "Only count clients in this IP or CIDR range (can be specified multiple times)",
		func(value string) error {
			p, err := ParsePrefix(value)
			if err != nil {
				return err
			}
			f.Prefixes = append(f.Prefixes, p)
			return nil
		})
	flags.TimeVar(&f.TimeFrom, "time-from", f.TimeFrom, timeFormats, "Start time to filter (inclusive)")
	flags.TimeVar(&f.TimeTo, "time-to", f.TimeTo, timeFormats, "End time to filter (inclusive)")
}

// ParsePrefix accepts either a CIDR or a bare address.
func ParsePrefix(value string) (netip.Prefix, error) {
	if p, err := netip.ParsePrefix(value); err == nil {
		return p.Masked(), nil
	}
	addr, err := netip.ParseAddr(value)
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("invalid IP or CIDR %q", value)
	}
	return netip.PrefixFrom(addr, addr.BitLen()), nil
}

func (f *Filter) IsEmpty() bool {
	return len(f.Prefixes) == 0 && f.TimeFrom.IsZero() && f.TimeTo.IsZero()
}

var (
	ErrInvalidIP     = errors.New("invalid client IP")
	ErrNoPrefixMatch = errors.New("no matching prefix")
	ErrTimeNoMatch   = errors.New("time does not match")
)

// Match returns nil when item passes the filter.
func (f *Filter) Match(item parser.LogItem) error {
	if len(f.Prefixes) > 0 {
		ip, err := netip.ParseAddr(item.Client)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidIP, err)
		}
		ip = ip.Unmap()
		prefixMatch := false
		for _, prefix := range f.Prefixes {
			if prefix.Contains(ip) {
				prefixMatch = true
				break
			}
		}
		if !prefixMatch {
			return ErrNoPrefixMatch
		}
	}
	if !f.TimeFrom.IsZero() && item.Time.Before(f.TimeFrom) {
		return ErrTimeNoMatch
	}
	if !f.TimeTo.IsZero() && item.Time.After(f.TimeTo) {
		return ErrTimeNoMatch
	}
	return nil
}
