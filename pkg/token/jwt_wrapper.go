package token

import "gamevault/pkg/config"

// Swapped out by tests that need a failing or fixed token.
var (
	GenerateJWTFunc = GenerateJWT
	ParseJWTFunc    = ParseJWT
)

// GenerateJWTWrapper issues a member token signed by the member service
func GenerateJWTWrapper(memberID, role string) (string, error) {
	return GenerateJWTFunc(memberID, role, config.EnvConfig.MemberService)
}

// ParseJWTWrapper parses through ParseJWTFunc
func ParseJWTWrapper(t string) (*Claims, error) {
	return ParseJWTFunc(t)
}
