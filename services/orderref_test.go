package services

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOrderRefFormat(t *testing.T) {
	re := regexp.MustCompile(`^ORD-[` + refAlphabet + `]{5}$`)

	for i := 0; i < 1000; i++ {
		ref := GenerateOrderRef()
		assert.Regexp(t, re, ref)
	}
}

func TestGenerateOrderRefExcludesAmbiguousChars(t *testing.T) {
	for i := 0; i < 1000; i++ {
		ref := strings.TrimPrefix(GenerateOrderRef(), "ORD-")
		for _, c := range []string{"I", "O", "0", "1"} {
			assert.NotContains(t, ref, c)
		}
	}
}
