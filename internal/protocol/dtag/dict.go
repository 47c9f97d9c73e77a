package dtag

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// ErrMalformedTable marks a dictionary entry list that violates the
// uniqueness or naming rules. It is a programming error in the table.
var ErrMalformedTable = errors.New("dtag: malformed table")

// TableError reports the first entry that made Build fail.
type TableError struct {
	Index  int
	Code   DTag
	Name   string
	Reason string
}

func (e TableError) Error() string {
	return fmt.Sprintf("dtag: entry[%d] code=%d name=%q: %s", e.Index, uint32(e.Code), e.Name, e.Reason)
}

func (e TableError) Unwrap() error { return ErrMalformedTable }

// Lookup is the dictionary surface consumed by ccnb encoders and decoders.
type Lookup interface {
	NameFor(code DTag) (string, bool)
	CodeFor(name string) (DTag, bool)
}

// Dict is an immutable two-way index over a DTAG entry list. It is safe for
// concurrent use once Build returns.
type Dict struct {
	entries []Entry
	byCode  map[DTag]string
	byName  map[string]DTag
}

var _ Lookup = (*Dict)(nil)

// Build validates entries and indexes them by code and by name.
func Build(entries []Entry) (*Dict, error) {
	d := &Dict{
		entries: make([]Entry, len(entries)),
		byCode:  make(map[DTag]string, len(entries)),
		byName:  make(map[string]DTag, len(entries)),
	}
	copy(d.entries, entries)

	for i, e := range d.entries {
		if reason := checkName(e.Name); reason != "" {
			return nil, buildFailed(TableError{Index: i, Code: e.Code, Name: e.Name, Reason: reason})
		}
		if prev, dup := d.byCode[e.Code]; dup {
			return nil, buildFailed(TableError{
				Index:  i,
				Code:   e.Code,
				Name:   e.Name,
				Reason: fmt.Sprintf("duplicate code (already assigned to %q)", prev),
			})
		}
		if prev, dup := d.byName[e.Name]; dup {
			return nil, buildFailed(TableError{
				Index:  i,
				Code:   e.Code,
				Name:   e.Name,
				Reason: fmt.Sprintf("duplicate name (already assigned to code %d)", uint32(prev)),
			})
		}
		d.byCode[e.Code] = e.Name
		d.byName[e.Name] = e.Code
	}

	log.Debug().Int("entries", len(d.entries)).Msg("dtag.Build ok")
	return d, nil
}

// MustBuild is like Build but panics on a malformed table.
func MustBuild(entries []Entry) *Dict {
	d, err := Build(entries)
	if err != nil {
		panic(err)
	}
	return d
}

func buildFailed(te TableError) error {
	log.Error().
		Int("index", te.Index).
		Uint32("code", uint32(te.Code)).
		Str("name", te.Name).
		Str("reason", te.Reason).
		Msg("dtag.Build rejected table")
	return te
}

// checkName returns a non-empty reason when name is not a usable element name.
func checkName(name string) string {
	if name == "" {
		return "empty name"
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return fmt.Sprintf("invalid character %q at offset %d", c, i)
		}
	}
	return ""
}

// NameFor returns the element name assigned to code.
func (d *Dict) NameFor(code DTag) (string, bool) {
	if d == nil {
		return "", false
	}
	name, ok := d.byCode[code]
	return name, ok
}

// CodeFor returns the code assigned to name. Matching is exact and
// case-sensitive.
func (d *Dict) CodeFor(name string) (DTag, bool) {
	if d == nil {
		return 0, false
	}
	code, ok := d.byName[name]
	return code, ok
}

// Len returns the number of entries.
func (d *Dict) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Entries returns a copy of the entries in table order.
func (d *Dict) Entries() []Entry {
	if d == nil {
		return nil
	}
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}
