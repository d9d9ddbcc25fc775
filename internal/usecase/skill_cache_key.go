package usecase

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

const skillCacheKeyPrefix = "skills:extract:"

// SkillCacheKey addresses a skill set by the exact text it was extracted from.
func SkillCacheKey(text string) string {
	sum := blake2b.Sum256([]byte(text))
	return skillCacheKeyPrefix + hex.EncodeToString(sum[:])
}
