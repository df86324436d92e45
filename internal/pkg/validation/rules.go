package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Username: alphanumeric, 3-30 chars
	UsernamePattern = `^[a-zA-Z0-9]{3,30}$`

	// Password: alphanumeric, 3-30 chars
	PasswordPattern = `^[a-zA-Z0-9]{3,30}$`

	// Name validation min length (communities and roles)
	NameMinLength = 2
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Username   *regexp.Regexp
	Password   *regexp.Regexp
	Whitespace *regexp.Regexp
}{
	Username:   regexp.MustCompile(UsernamePattern),
	Password:   regexp.MustCompile(PasswordPattern),
	Whitespace: regexp.MustCompile(`\s+`),
}

// IsValidUsername reports whether the username is alphanumeric and 3-30 chars.
func IsValidUsername(username string) bool {
	return CompiledPatterns.Username.MatchString(username)
}

// IsValidPassword reports whether the password matches the accepted pattern.
func IsValidPassword(password string) bool {
	return CompiledPatterns.Password.MatchString(password)
}

// Slugify derives a community slug from its name: lower-cased, with every
// run of whitespace collapsed into a single hyphen. Leading or trailing
// whitespace therefore becomes a leading or trailing hyphen; slugs are not
// trimmed further.
func Slugify(name string) string {
	return CompiledPatterns.Whitespace.ReplaceAllString(strings.ToLower(name), "-")
}
