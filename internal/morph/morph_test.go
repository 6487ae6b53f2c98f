package morph_test

import (
	"testing"

	"github.com/mattfbacon/sneturfahi/internal/morph"
	"github.com/stretchr/testify/assert"
)

func TestLojbanWordGismu(t *testing.T) {
	r := morph.Gismu("prami")
	assert.True(t, r.Ok)
	assert.Equal(t, "", r.Rest)
}

func TestLojbanWordCmavo(t *testing.T) {
	r := morph.CmavoForm("mi")
	assert.True(t, r.Ok)
	assert.Equal(t, "", r.Rest)
}

func TestLojbanWordCmevla(t *testing.T) {
	r := morph.Cmevla("djan")
	assert.True(t, r.Ok)
	assert.Equal(t, "", r.Rest)
}

func TestLojbanWordRejectsTrailingLetters(t *testing.T) {
	r := morph.Gismu("pramix")
	assert.False(t, r.Ok)
}

func TestLujvoCompound(t *testing.T) {
	r := morph.LujvoMinimal("mlatu")
	assert.True(t, r.Ok)
}

func TestCmavoFormMatchesDigit(t *testing.T) {
	r := morph.CmavoForm("1")
	assert.True(t, r.Ok)
	assert.Equal(t, "", r.Rest)
}

func TestCmavoFormMatchesYRun(t *testing.T) {
	r := morph.CmavoFormMinimal("yyy")
	assert.True(t, r.Ok)
	assert.Equal(t, "", r.Rest)
}

func TestCmavoFormMinimalStopsAtCvcyLujvoHead(t *testing.T) {
	r := morph.CmavoFormMinimal("tOsyda")
	assert.False(t, r.Ok)
}
