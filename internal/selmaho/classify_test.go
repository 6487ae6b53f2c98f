package selmaho_test

import (
	"testing"

	"github.com/mattfbacon/sneturfahi/internal/selmaho"
	"github.com/stretchr/testify/assert"
)

func TestClassifyDirectCmavo(t *testing.T) {
	result, experimental := selmaho.Classify("mi")
	assert.Equal(t, selmaho.Koha, result)
	assert.False(t, experimental)
}

func TestClassifyCommaStripped(t *testing.T) {
	result, _ := selmaho.Classify("m,i")
	assert.Equal(t, selmaho.Koha, result)
}

func TestClassifyHFoldedToApostrophe(t *testing.T) {
	result, _ := selmaho.Classify("gihe")
	assert.Equal(t, selmaho.Giha, result)
}

func TestClassifyGismuFallsThroughToGismu(t *testing.T) {
	result, _ := selmaho.Classify("prami")
	assert.Equal(t, selmaho.Gismu, result)
}

func TestClassifyCmevlaFallsThroughToCmevla(t *testing.T) {
	result, _ := selmaho.Classify("djan")
	assert.Equal(t, selmaho.Cmevla, result)
}

func TestClassifyUnknownCmavoShapeIsExperimental(t *testing.T) {
	result, experimental := selmaho.Classify("xy'y")
	assert.Equal(t, selmaho.UnknownCmavo, result)
	assert.True(t, experimental)
}

func TestClassifyQuoteTriggerIsExperimental(t *testing.T) {
	result, experimental := selmaho.Classify("me'oi")
	assert.Equal(t, selmaho.Mehoi, result)
	assert.True(t, experimental)
}

func TestClassifyDigitsArePa(t *testing.T) {
	for _, digit := range []string{"0", "1", "5", "9"} {
		result, experimental := selmaho.Classify(digit)
		assert.Equal(t, selmaho.Pa, result, "digit %q", digit)
		assert.False(t, experimental, "digit %q", digit)
	}
}

func TestClassifyYRunIsY(t *testing.T) {
	for _, word := range []string{"y", "yy", "yyy"} {
		result, experimental := selmaho.Classify(word)
		assert.Equal(t, selmaho.Y, result, "word %q", word)
		assert.False(t, experimental, "word %q", word)
	}
}

func TestIsFundamentallyExperimental(t *testing.T) {
	assert.False(t, selmaho.A.IsFundamentallyExperimental())
	assert.True(t, selmaho.Xahoihahoiha.IsFundamentallyExperimental())
	assert.False(t, selmaho.Gismu.IsFundamentallyExperimental())
	assert.False(t, selmaho.ZoiDelimiter.IsFundamentallyExperimental())
}
