package dataset

import (
	"regexp"
	"strings"

	"github.com/halvard/apostat/naming"
)

// MatchMode selects how GetPage compares a requested title against each
// page's Names.Title.
type MatchMode int

const (
	// MatchExact requires byte-for-byte equality.
	MatchExact MatchMode = iota
	// MatchCaseInsensitive compares titles ignoring case (the default
	// apop_data_get_page behavior).
	MatchCaseInsensitive
	// MatchRegex treats the requested title as a regular expression
	// evaluated against each page title. This is the ambient addition
	// from SPEC_FULL.md §1, grounded in original_source/apop_data.m4.c's
	// regex-capable get_page.
	MatchRegex
)

// GetPage walks the More chain looking for a page whose title matches
// according to mode, returning (page, true) on the first hit or (nil,
// false) if the chain is exhausted. A cyclic chain is detected and
// reported by returning (nil, false) once any page is revisited.
func (d *Dataset) GetPage(title string, mode MatchMode) (*Dataset, bool) {
	var re *regexp.Regexp
	if mode == MatchRegex {
		compiled, err := regexp.Compile(title)
		if err != nil {
			return nil, false
		}
		re = compiled
	}

	seen := make(map[*Dataset]bool)
	for page := d; page != nil; page = page.More {
		if seen[page] {
			return nil, false
		}
		seen[page] = true

		pageTitle := ""
		if page.Names != nil {
			pageTitle = page.Names.Title
		}
		var hit bool
		switch mode {
		case MatchExact:
			hit = pageTitle == title
		case MatchCaseInsensitive:
			hit = strings.EqualFold(pageTitle, title)
		case MatchRegex:
			hit = re.MatchString(pageTitle)
		}
		if hit {
			return page, true
		}
	}
	return nil, false
}

// AddPage appends newpage to the tail of d's More chain, naming it title.
// It returns ErrCycle instead of linking if newpage already appears in d's
// chain, or if newpage's own chain reaches a page of d's chain (either
// would create a cycle).
func (d *Dataset) AddPage(newpage *Dataset, title string) error {
	seen := make(map[*Dataset]bool)
	tail := d
	for {
		if seen[tail] {
			return ErrCycle
		}
		seen[tail] = true
		if tail == newpage {
			return ErrCycle
		}
		if tail.More == nil {
			break
		}
		tail = tail.More
	}
	inNew := make(map[*Dataset]bool)
	for p := newpage; p != nil && !inNew[p]; p = p.More {
		if seen[p] {
			return ErrCycle
		}
		inNew[p] = true
	}
	if newpage.Names == nil {
		newpage.Names = naming.New(title)
	} else {
		newpage.Names.Title = title
	}
	tail.More = newpage
	return nil
}
