package cache_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mattfbacon/sneturfahi/internal/cache"
	"github.com/mattfbacon/sneturfahi/internal/lexer"
)

func TestSnapshotMarshalRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "simple bridi", input: "mi prami do"},
		{name: "delimited quote", input: "zoi gy 2 + 2 = 4 gy"},
		{name: "empty", input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := lexer.New(tt.input)
			var toks []lexer.Token
			for {
				tok, ok := l.Next()
				if !ok {
					break
				}
				toks = append(toks, tok)
			}
			if err := l.Err(); err != nil {
				t.Fatalf("unexpected lex error: %v", err)
			}

			data, err := cache.NewSnapshot(toks).Marshal()
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			snap, err := cache.Unmarshal(data)
			if err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}

			if diff := cmp.Diff(toks, snap.ToTokens()); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
