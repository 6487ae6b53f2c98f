// Package cache stores decomposed/lexed snapshots of previously seen input
// on disk, keyed by content hash, so that repeated runs over the same text
// (e.g. a file under --watch) skip re-running the pipeline.
package cache

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"

	"github.com/mattfbacon/sneturfahi/internal/lexer"
	"github.com/mattfbacon/sneturfahi/internal/selmaho"
	"github.com/mattfbacon/sneturfahi/internal/span"
)

// TokenRecord is the CBOR-serializable form of a lexer.Token: the token
// itself holds a span over the original input string, which is safe to
// store since the cache is keyed by that same input's hash.
type TokenRecord struct {
	Selmaho      selmaho.Selmaho
	Start        uint32
	End          uint32
	Experimental bool
}

// Snapshot is the cached result of lexing one input string.
type Snapshot struct {
	Version uint8
	Tokens  []TokenRecord
}

func toRecord(t lexer.Token) TokenRecord {
	return TokenRecord{
		Selmaho:      t.Selmaho,
		Start:        t.Span.Start,
		End:          t.Span.End,
		Experimental: t.Experimental,
	}
}

func fromRecord(r TokenRecord) lexer.Token {
	return lexer.Token{
		Selmaho:      r.Selmaho,
		Span:         span.Span{Start: r.Start, End: r.End},
		Experimental: r.Experimental,
	}
}

// NewSnapshot builds a Snapshot from a completed token slice.
func NewSnapshot(tokens []lexer.Token) *Snapshot {
	records := make([]TokenRecord, len(tokens))
	for i, t := range tokens {
		records[i] = toRecord(t)
	}
	return &Snapshot{Version: 1, Tokens: records}
}

// ToTokens reconstructs the original token slice from the snapshot.
func (s *Snapshot) ToTokens() []lexer.Token {
	out := make([]lexer.Token, len(s.Tokens))
	for i, r := range s.Tokens {
		out[i] = fromRecord(r)
	}
	return out
}

var encMode = func() cbor.EncMode {
	mode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("cache: building canonical CBOR encoder: %v", err))
	}
	return mode
}()

// Marshal produces the deterministic CBOR encoding of a snapshot.
func (s *Snapshot) Marshal() ([]byte, error) {
	data, err := encMode.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("cache: encoding snapshot: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a snapshot previously produced by Marshal.
func Unmarshal(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := cbor.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("cache: decoding snapshot: %w", err)
	}
	return &s, nil
}

// Encode produces the same canonical CBOR encoding Marshal uses for
// snapshots, for any other CBOR-serializable value -- in particular the
// CLI's --emit=cbor output mode over a parsed CST, which has no cache key
// of its own and so doesn't go through Snapshot/Store.
func Encode(v any) ([]byte, error) {
	data, err := encMode.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("cache: encoding value: %w", err)
	}
	return data, nil
}

// Key computes the content-addressed cache key for an input string: the
// hex-encoded BLAKE2b-256 hash of its bytes.
func Key(input string) string {
	sum := blake2b.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

// Store is a directory of CBOR-encoded snapshots, one file per cache key.
type Store struct {
	dir string
}

// Open returns a Store rooted at dir, creating dir if it doesn't exist.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache: creating directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".cbor")
}

// Get returns the cached snapshot for input, if present.
func (s *Store) Get(input string) (*Snapshot, bool, error) {
	data, err := os.ReadFile(s.path(Key(input)))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache: reading entry: %w", err)
	}
	snap, err := Unmarshal(data)
	if err != nil {
		return nil, false, err
	}
	return snap, true, nil
}

// Put stores tokens as the cached result for input.
func (s *Store) Put(input string, tokens []lexer.Token) error {
	data, err := NewSnapshot(tokens).Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path(Key(input)), data, 0o644); err != nil {
		return fmt.Errorf("cache: writing entry: %w", err)
	}
	return nil
}
