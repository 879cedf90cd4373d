// Package iprange applies the rangeset algebra to IPv4 address ranges.
//
// Ranges are closed and compared as 32-bit numbers, so two ranges that share
// an address are merged while ranges of consecutive addresses stay separate.
package iprange

import (
	"encoding/binary"
	"errors"
	"fmt"
	"net/netip"
	"strings"

	"github.com/henderiw/rangeset/pkg/rangeset"
	"go4.org/netipx"
)

var ErrUnsupportedFamily = errors.New("unsupported address family")

// Normalize returns the minimal sorted list of ranges covering rr.
func Normalize(rr []netipx.IPRange) ([]netipx.IPRange, error) {
	in, err := toRanges(rr)
	if err != nil {
		return nil, err
	}
	out, err := rangeset.Normalize(in)
	if err != nil {
		return nil, err
	}
	return fromRanges(out), nil
}

// Union returns the normalized list of addresses in a or b.
func Union(a, b []netipx.IPRange) ([]netipx.IPRange, error) {
	return combine(rangeset.ModeUnion, a, b)
}

// Intersect returns the normalized list of addresses in both a and b.
func Intersect(a, b []netipx.IPRange) ([]netipx.IPRange, error) {
	return combine(rangeset.ModeIntersect, a, b)
}

func combine(m rangeset.Mode, a, b []netipx.IPRange) ([]netipx.IPRange, error) {
	ra, erra := toRanges(a)
	rb, errb := toRanges(b)
	if err := errors.Join(erra, errb); err != nil {
		return nil, err
	}
	out, err := rangeset.Combine(m, ra, rb)
	if err != nil {
		return nil, err
	}
	return fromRanges(out), nil
}

// Parse parses "from-to" ranges, single addresses and prefixes.
func Parse(ss ...string) ([]netipx.IPRange, error) {
	rr := make([]netipx.IPRange, 0, len(ss))
	var errs error
	for _, s := range ss {
		r, err := parse(s)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		rr = append(rr, r)
	}
	if errs != nil {
		return nil, errs
	}
	return rr, nil
}

func parse(s string) (netipx.IPRange, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, "/") {
		p, err := netip.ParsePrefix(s)
		if err != nil {
			return netipx.IPRange{}, fmt.Errorf("ip prefix %s is invalid", s)
		}
		return netipx.RangeOfPrefix(p), nil
	}
	from, to, found := strings.Cut(s, "-")
	fromIP, err := netip.ParseAddr(strings.TrimSpace(from))
	if err != nil {
		return netipx.IPRange{}, fmt.Errorf("ip address %s in range %s is invalid", from, s)
	}
	if !found {
		return netipx.IPRangeFrom(fromIP, fromIP), nil
	}
	toIP, err := netip.ParseAddr(strings.TrimSpace(to))
	if err != nil {
		return netipx.IPRange{}, fmt.Errorf("ip address %s in range %s is invalid", to, s)
	}
	r := netipx.IPRangeFrom(fromIP, toIP)
	if _, err := toRange(r); err != nil {
		return netipx.IPRange{}, err
	}
	return r, nil
}

// IPSet returns rr as a netipx.IPSet.
func IPSet(rr []netipx.IPRange) (*netipx.IPSet, error) {
	var b netipx.IPSetBuilder
	for _, r := range rr {
		if _, err := toRange(r); err != nil {
			return nil, err
		}
		b.AddRange(r)
	}
	return b.IPSet()
}

func toRanges(rr []netipx.IPRange) ([]rangeset.Range[uint32], error) {
	out := make([]rangeset.Range[uint32], 0, len(rr))
	var errs error
	for _, r := range rr {
		nr, err := toRange(r)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		out = append(out, nr)
	}
	return out, errs
}

func toRange(r netipx.IPRange) (rangeset.Range[uint32], error) {
	var nr rangeset.Range[uint32]
	if !r.From().IsValid() || !r.To().IsValid() {
		return nr, fmt.Errorf("ip range %s is invalid", r)
	}
	if !r.From().Is4() || !r.To().Is4() {
		return nr, fmt.Errorf("ip range %s: %w", r, ErrUnsupportedFamily)
	}
	nr = rangeset.New(addrToUint32(r.From()), addrToUint32(r.To()))
	if err := nr.Validate(); err != nil {
		return rangeset.Range[uint32]{}, fmt.Errorf("ip range %s-%s: %w", r.From(), r.To(), err)
	}
	return nr, nil
}

func fromRanges(rr []rangeset.Range[uint32]) []netipx.IPRange {
	out := make([]netipx.IPRange, 0, len(rr))
	for _, r := range rr {
		out = append(out, netipx.IPRangeFrom(uint32ToAddr(r.Start), uint32ToAddr(r.End)))
	}
	return out
}

func addrToUint32(addr netip.Addr) uint32 {
	a4 := addr.As4()
	return binary.BigEndian.Uint32(a4[:])
}

func uint32ToAddr(v uint32) netip.Addr {
	var a4 [4]byte
	binary.BigEndian.PutUint32(a4[:], v)
	return netip.AddrFrom4(a4)
}
