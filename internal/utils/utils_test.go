package utils_test

import (
	"regexp"
	"testing"

	"campportal/internal/utils"

	"gotest.tools/v3/assert"
)

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "AB12CD", utils.NormalizeCode("  ab12cd "))
	assert.Equal(t, "AB12CD", utils.NormalizeCode("AB12CD"))
	assert.Equal(t, "", utils.NormalizeCode("   "))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Rex", utils.Capitalize("rex"))
	assert.Equal(t, "R", utils.Capitalize("r"))
	assert.Equal(t, "", utils.Capitalize(""))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Bronze Sword", utils.DisplayName("bronze_sword"))
	assert.Equal(t, "Ambrosia", utils.DisplayName("ambrosia"))
}

func TestGenerateLinkCode(t *testing.T) {
	format := regexp.MustCompile(`^[0-9A-F]{6}$`)
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		code, err := utils.GenerateLinkCode()
		assert.NilError(t, err)
		assert.Assert(t, format.MatchString(code), "unexpected code format: %s", code)
		seen[code] = true
	}

	// 100 draws from a 24 bit space should essentially never collide.
	assert.Assert(t, len(seen) > 95)
}

func TestGenerateSessionToken(t *testing.T) {
	format := regexp.MustCompile(`^[0-9a-f]{64}$`)

	first, err := utils.GenerateSessionToken()
	assert.NilError(t, err)
	assert.Assert(t, format.MatchString(first))

	second, err := utils.GenerateSessionToken()
	assert.NilError(t, err)
	assert.Assert(t, first != second)
}
