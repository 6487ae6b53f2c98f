package lexer_test

import (
	"testing"

	"github.com/mattfbacon/sneturfahi/internal/lexer"
	"github.com/mattfbacon/sneturfahi/internal/selmaho"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, input string) ([]lexer.Token, error) {
	t.Helper()
	l := lexer.New(input)
	var toks []lexer.Token
	for {
		tok, ok := l.Next()
		if !ok {
			break
		}
		toks = append(toks, tok)
	}
	return toks, l.Err()
}

func TestBasicSentence(t *testing.T) {
	toks, err := collect(t, "mi prami do")
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, selmaho.Koha, toks[0].Selmaho)
	assert.Equal(t, selmaho.Gismu, toks[1].Selmaho)
	assert.Equal(t, selmaho.Koha, toks[2].Selmaho)
}

func TestEmptyDelimitedQuote(t *testing.T) {
	input := "zoi gy gy"
	toks, err := collect(t, input)
	require.NoError(t, err)
	// zoi, opening delimiter, closing delimiter -- no AnyText in between.
	require.Len(t, toks, 3)
	assert.Equal(t, selmaho.Zoi, toks[0].Selmaho)
	assert.Equal(t, selmaho.ZoiDelimiter, toks[1].Selmaho)
	assert.Equal(t, selmaho.ZoiDelimiter, toks[2].Selmaho)
}

func TestDelimitedQuoteWithContent(t *testing.T) {
	input := "zoi gy 2 + 2 = 4 gy"
	toks, err := collect(t, input)
	require.NoError(t, err)
	require.Len(t, toks, 4)
	assert.Equal(t, selmaho.Zoi, toks[0].Selmaho)
	assert.Equal(t, selmaho.ZoiDelimiter, toks[1].Selmaho)
	assert.Equal(t, selmaho.AnyText, toks[2].Selmaho)
	assert.Equal(t, selmaho.ZoiDelimiter, toks[3].Selmaho)
	content, ok := toks[2].Span.Slice(input)
	assert.True(t, ok)
	assert.Equal(t, "2 + 2 = 4", content)
}

func TestUnclosedDelimitedQuoteErrors(t *testing.T) {
	_, err := collect(t, "zoi gy unclosed text")
	require.Error(t, err)
	var lexErr *lexer.Error
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, lexer.DelimitedQuoteUnclosed, lexErr.Kind)
}

func TestEmptyQuoteWithPauseBeforeClosingDelimiter(t *testing.T) {
	input := "zoi gy.gy"
	toks, err := collect(t, input)
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, selmaho.Zoi, toks[0].Selmaho)
	assert.Equal(t, selmaho.ZoiDelimiter, toks[1].Selmaho)
	assert.Equal(t, selmaho.ZoiDelimiter, toks[2].Selmaho)
}

func TestDelimitedQuoteWhitespaceRules(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantContent string
	}{
		{"no_pauses_on_delimiters", "zoi gy no pauses on the delimiters gy", "no pauses on the delimiters"},
		{"pause_at_start", "zoi gy. pause at start gy", " pause at start"},
		{"pause_at_end", "zoi gy pause at end .gy", "pause at end "},
		{"pauses_on_both", "zoi gy. pauses on both .gy", " pauses on both "},
		{"only_whitespace", "zoi gy   gy", " "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := collect(t, tt.input)
			require.NoError(t, err)
			require.Len(t, toks, 4)
			assert.Equal(t, selmaho.Zoi, toks[0].Selmaho)
			assert.Equal(t, selmaho.ZoiDelimiter, toks[1].Selmaho)
			assert.Equal(t, selmaho.AnyText, toks[2].Selmaho)
			assert.Equal(t, selmaho.ZoiDelimiter, toks[3].Selmaho)
			content, ok := toks[2].Span.Slice(tt.input)
			assert.True(t, ok)
			assert.Equal(t, tt.wantContent, content)
		})
	}
}

func TestPauseDelimitedQuoteSwallowsOneWord(t *testing.T) {
	toks, err := collect(t, "me'oi gzb mi")
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, selmaho.Mehoi, toks[0].Selmaho)
	assert.Equal(t, selmaho.AnyText, toks[1].Selmaho)
	assert.Equal(t, selmaho.Koha, toks[2].Selmaho)
}
