package password

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

const (
	MinLength    = 8
	SpecialChars = "@#$%^&+=!"
	// MaxBytes is the longest input bcrypt accepts.
	MaxBytes = 72
)

func Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func Compare(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}

// IsStrong reports whether plain satisfies the account password policy:
// at least 8 characters and at most 72 bytes, with a lowercase letter, an
// uppercase letter, a digit and one of @#$%^&+=!, and no whitespace anywhere.
func IsStrong(plain string) bool {
	if utf8.RuneCountInString(plain) < MinLength || len(plain) > MaxBytes {
		return false
	}
	var lower, upper, digit, special bool
	for _, r := range plain {
		switch {
		case unicode.IsSpace(r):
			return false
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(SpecialChars, r):
			special = true
		}
	}
	return lower && upper && digit && special
}
