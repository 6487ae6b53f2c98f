package decompose_test

import (
	"strings"
	"testing"

	"github.com/mattfbacon/sneturfahi/internal/decompose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func words(t *testing.T, input string) []string {
	t.Helper()
	d := decompose.New(input)
	var out []string
	for {
		s, ok := d.Next()
		if !ok {
			break
		}
		if word, ok := s.Slice(input); ok {
			out = append(out, word)
		}
	}
	return out
}

func TestBasicWhitespaceSeparated(t *testing.T) {
	assert.Equal(t, []string{"mi", "prami", "do"}, words(t, "mi prami do"))
}

func TestMinajimpe(t *testing.T) {
	assert.Equal(t, []string{"mi", "na", "jimpe"}, words(t, "minajimpe"))
}

func TestCommasAreInvisible(t *testing.T) {
	got := words(t, "mi,prami do")
	require.NotEmpty(t, got)
}

func TestEmptyInput(t *testing.T) {
	assert.Empty(t, words(t, ""))
	assert.Empty(t, words(t, "   "))
}

func TestDecomposeTentativePeelCases(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"tosmabru2", "tosymabru", []string{"tosymabru"}},
		{"tosmabru3", "totosymabru", []string{"to", "tosymabru"}},
		{"how_many", "totototosymabru", []string{"to", "to", "to", "tosymabru"}},
		{"fuvi", "fuvi", []string{"fu", "vi"}},
		{"sekihu", "seki'u", []string{"se", "ki'u"}},
		{"setese", "setese", []string{"se", "te", "se"}},
		{"selmaho", "selma'o", []string{"selma'o"}},
		{"vowels", "kiiibroda", []string{"ki", "ii", "broda"}},
		{"slinkuhi", "loslinku'i", []string{"loslinku'i"}},
		{"cmevla_tricky2", "zo alobrodan alobroda zo", []string{"zo", "alobrodan", "a", "lo", "broda", "zo"}},
		{"vrudysai", "coiiiii", []string{"coi", "ii", "ii"}},
		{"janbe", "tanjelavi", []string{"tanjelavi"}},
		{"thrig", "mablabigerku", []string{"ma", "blabigerku"}},
		{"stress1_baseline", "lojboprenu", []string{"lo", "jboprenu"}},
		{"stress1_1", "LOjboPREnu", []string{"LOjbo", "PREnu"}},
		{"stress1_2", "lojboPREnu", []string{"lo", "jboPREnu"}},
		{"stress2_baseline", "mipramido", []string{"mi", "pramido"}},
		{"stress2_1", "miPRAmido", []string{"mi", "PRAmi", "do"}},
		{"stress2_2", "MIpramido", []string{"MIpra", "mi", "do"}},
		{"numbers", "li123", []string{"li", "1", "2", "3"}},
		{"numbers1", "li 123", []string{"li", "1", "2", "3"}},
		{"numbers2", "123moi", []string{"1", "2", "3", "moi"}},
		{"yyy", "yyy", []string{"yyy"}},
		{"yyy2", "mi yyy broda", []string{"mi", "yyy", "broda"}},
		{"yyy3", "mi yyybroda", []string{"mi", "yyy", "broda"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, words(t, tt.input))
		})
	}
}

func TestCommasInsideMinajimpe(t *testing.T) {
	got := words(t, ",,,m,,,i,,,n,,a,,,j,,,i,,,m,,,p,,,e,,,")
	assert.Equal(t, []string{",,,m,,,i", ",,,n,,a", ",,,j,,,i,,,m,,,p,,,e"}, got)
}

func TestDontBlowTheStackOnAllCommas(t *testing.T) {
	input := strings.Repeat(",", 100000)
	assert.Empty(t, words(t, input))
}

func TestNextNoDecompositionReturnsRawChunk(t *testing.T) {
	input := "raw text here"
	d := decompose.New(input)
	s, ok := d.NextNoDecomposition()
	require.True(t, ok)
	word, ok := s.Slice(input)
	require.True(t, ok)
	assert.Equal(t, "raw", word)
}
