package pipeline

import (
	"strings"

	"github.com/utoken-go/utoken/internal/chart"
	"github.com/utoken-go/utoken/internal/charclass"
)

// emailStep recognizes local@domain, where domain must end
// in a valid TLD; the local part may include '.', '_', '+', '-' and
// unicode letters. A trailing '.' on the domain (sentence terminator) is
// trimmed and the TLD is re-validated against what's left.
type emailStep struct{}

func (emailStep) Name() string        { return "email" }
func (emailStep) RestartAtZero() bool { return true }

func (emailStep) Guard(rt *Runtime, sv charclass.BitVector) bool {
	return sv.HasAny(charclass.BitAtSign)
}

func isEmailLocalRune(rt *Runtime, r rune) bool {
	if r == '.' || r == '_' || r == '+' || r == '-' {
		return true
	}
	return rt.Tables.Vector(r).Has(charclass.BitLetter) || rt.Tables.Vector(r).Has(charclass.BitDigit)
}

func isEmailDomainRune(rt *Runtime, r rune) bool {
	if r == '.' || r == '-' {
		return true
	}
	return rt.Tables.Vector(r).Has(charclass.BitLetter) || rt.Tables.Vector(r).Has(charclass.BitDigit)
}

func (s emailStep) Find(rt *Runtime, i, j int) ([]TokenSpec, bool) {
	for p := i; p < j; p++ {
		if rt.Clean[p] != '@' {
			continue
		}
		// Walk the local part backward from '@'.
		localStart := p
		for localStart > i && isEmailLocalRune(rt, rt.Clean[localStart-1]) {
			localStart--
		}
		if localStart == p {
			continue // nothing before '@'
		}
		// Walk the domain part forward from '@'+1.
		domainEnd := p + 1
		for domainEnd < j && isEmailDomainRune(rt, rt.Clean[domainEnd]) {
			domainEnd++
		}
		for domainEnd > p+1 && rt.Clean[domainEnd-1] == '.' {
			domainEnd--
		}
		domain := rt.CleanSlice(p+1, domainEnd)
		labels := strings.Split(domain, ".")
		if len(labels) < 2 {
			continue
		}
		if !rt.Store.IsValidTLD(labels[len(labels)-1]) {
			continue
		}
		return []TokenSpec{{Start: localStart, End: domainEnd, Type: chart.Email}}, true
	}
	return nil, false
}
