// Package store implements the three-file on-disk index format:
// <base>.meta, <base>.forward, <base>.inverted. All integers are
// written little-endian via encoding/binary, so the files are portable
// across host byte order. Every field is written and read explicitly,
// field by field, rather than through a single struct blit, so the
// byte layout is exact and independent of any Go struct's memory
// alignment.
package store

const (
	// Magic is the fixed 32-bit signature written at the start of
	// every .meta file.
	Magic uint32 = 0x49444558
	// Version is the current on-disk format version.
	Version uint16 = 0x0001

	// FlagCompressed is unused; always 0.
	FlagCompressed uint16 = 1 << 0
	// FlagStemmed marks an index built with --stemming.
	FlagStemmed uint16 = 1 << 1
	// FlagPositional is unused; always 0.
	FlagPositional uint16 = 1 << 2

	reservedMetaBytes = 256
	maxURLLen         = 65535
	maxTitleLen       = 65535
	maxTermLen        = 255
)

// Metadata is the raw record written to <base>.meta, in declaration
// order. The four offset/size fields are reserved for a future
// unified container: the builder always writes zero and the loader
// ignores them.
type Metadata struct {
	Version          uint16
	Flags            uint16
	TotalDocuments   uint32
	TotalUniqueTerms uint32
	Timestamp        uint64
	ForwardOffset    uint32
	ForwardSize      uint32
	InvertedOffset   uint32
	InvertedSize     uint32
}
