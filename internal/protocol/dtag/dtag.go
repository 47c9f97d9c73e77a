package dtag

import (
	"strconv"
	"sync"
)

// DTag is a numeric tag code assigned to a standard ccnb element name.
type DTag uint32

// Standard DTAG codes.
const (
	Name                          DTag = 14
	Component                     DTag = 15
	Certificate                   DTag = 16
	Collection                    DTag = 17
	CompleteName                  DTag = 18
	Content                       DTag = 19
	ContentAuthenticator          DTag = 20
	ContentDigest                 DTag = 21
	ContentHash                   DTag = 22
	ContentObject                 DTag = 23
	Count                         DTag = 24
	Header                        DTag = 25
	Interest                      DTag = 26
	Key                           DTag = 27
	KeyLocator                    DTag = 28
	KeyName                       DTag = 29
	Length                        DTag = 30
	Link                          DTag = 31
	LinkAuthenticator             DTag = 32
	NameComponentCount            DTag = 33
	PublisherID                   DTag = 34
	PublisherKeyID                DTag = 35
	RootDigest                    DTag = 36
	Signature                     DTag = 37
	Start                         DTag = 38
	Timestamp                     DTag = 39
	Type                          DTag = 40
	Nonce                         DTag = 41
	Scope                         DTag = 42
	Exclude                       DTag = 43
	Bloom                         DTag = 44
	BloomSeed                     DTag = 45
	OrderPreference               DTag = 46
	AnswerOriginKind              DTag = 47
	MatchFirstAvailableDescendant DTag = 48
	MatchLastAvailableDescendant  DTag = 49
	MatchNextAvailableSibling     DTag = 50
	MatchLastAvailableSibling     DTag = 51
	MatchEntirePrefix             DTag = 52
	Witness                       DTag = 53
	SignatureBits                 DTag = 54
	DigestAlgorithm               DTag = 55

	CCNProtocolDataUnit        DTag = 17702112
	ExperimentalResponseFilter DTag = 17702113
)

// Entry associates a DTAG code with its element name.
type Entry struct {
	Code DTag
	Name string
}

// standardEntries is the embedded table. Order is part of the contract for
// Entries and list output.
var standardEntries = []Entry{
	{Name, "Name"},
	{Component, "Component"},
	{Certificate, "Certificate"},
	{Collection, "Collection"},
	{CompleteName, "CompleteName"},
	{Content, "Content"},
	{ContentAuthenticator, "ContentAuthenticator"},
	{ContentDigest, "ContentDigest"},
	{ContentHash, "ContentHash"},
	{ContentObject, "ContentObject"},
	{Count, "Count"},
	{Header, "Header"},
	{Interest, "Interest"},
	{Key, "Key"},
	{KeyLocator, "KeyLocator"},
	{KeyName, "KeyName"},
	{Length, "Length"},
	{Link, "Link"},
	{LinkAuthenticator, "LinkAuthenticator"},
	{NameComponentCount, "NameComponentCount"},
	{PublisherID, "PublisherID"},
	{PublisherKeyID, "PublisherKeyID"},
	{RootDigest, "RootDigest"},
	{Signature, "Signature"},
	{Start, "Start"},
	{Timestamp, "Timestamp"},
	{Type, "Type"},
	{Nonce, "Nonce"},
	{Scope, "Scope"},
	{Exclude, "Exclude"},
	{Bloom, "Bloom"},
	{BloomSeed, "BloomSeed"},
	{OrderPreference, "OrderPreference"},
	{AnswerOriginKind, "AnswerOriginKind"},
	{MatchFirstAvailableDescendant, "MatchFirstAvailableDescendant"},
	{MatchLastAvailableDescendant, "MatchLastAvailableDescendant"},
	{MatchNextAvailableSibling, "MatchNextAvailableSibling"},
	{MatchLastAvailableSibling, "MatchLastAvailableSibling"},
	{MatchEntirePrefix, "MatchEntirePrefix"},
	{Witness, "Witness"},
	{SignatureBits, "SignatureBits"},
	{DigestAlgorithm, "DigestAlgorithm"},
	{CCNProtocolDataUnit, "CCNProtocolDataUnit"},
	{ExperimentalResponseFilter, "ExperimentalResponseFilter"},
}

// StandardEntries returns a copy of the embedded table.
func StandardEntries() []Entry {
	out := make([]Entry, len(standardEntries))
	copy(out, standardEntries)
	return out
}

var standard = sync.OnceValue(func() *Dict {
	return MustBuild(standardEntries)
})

// Standard returns the process-wide dictionary built from the embedded table.
// The first call builds it and panics if the table is malformed; later calls
// return the same instance.
func Standard() *Dict {
	return standard()
}

// String renders the standard element name, or DTag(n) for unassigned codes.
func (t DTag) String() string {
	if name, ok := Standard().NameFor(t); ok {
		return name
	}
	return "DTag(" + strconv.FormatUint(uint64(t), 10) + ")"
}
