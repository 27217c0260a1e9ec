package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// MinPasswordLength is the shortest accepted password
const MinPasswordLength = 8

// PasswordError lists every strength rule a password failed
type PasswordError struct {
	Problems []string
}

func (e *PasswordError) Error() string {
	return strings.Join(e.Problems, " ")
}

// Is lets errors.Is(err, ErrWeakPassword) match any PasswordError
func (e *PasswordError) Is(target error) bool {
	return target == ErrWeakPassword
}

// PasswordAttribute is a named piece of user data the password must not resemble
type PasswordAttribute struct {
	Name  string
	Value string
}

var attributeSplitter = regexp.MustCompile(`\W+`)

var commonPasswords = map[string]struct{}{
	"password": {}, "password1": {}, "password123": {}, "12345678": {}, "123456789": {},
	"1234567890": {}, "qwerty123": {}, "qwertyuiop": {}, "iloveyou": {}, "sunshine": {},
	"princess": {}, "football": {}, "baseball": {}, "welcome1": {}, "abc12345": {},
	"admin123": {}, "letmein1": {}, "trustno1": {}, "superman": {}, "starwars": {},
	"passw0rd": {}, "dragon123": {}, "monkey123": {}, "11111111": {}, "00000000": {},
	"87654321": {}, "qwerty12": {}, "1q2w3e4r": {}, "zaq12wsx": {}, "whatever": {},
	"computer": {}, "michelle": {}, "jennifer": {}, "internet": {}, "asdfghjk": {},
	"asdf1234": {}, "changeme": {}, "p@ssw0rd": {}, "welcome123": {}, "master123": {},
}

// ValidatePassword applies the length, numeric-only, common-password and
// attribute-similarity rules. It returns nil or a *PasswordError.
func ValidatePassword(password string, attrs ...PasswordAttribute) error {
	var problems []string

	if len([]rune(password)) < MinPasswordLength {
		problems = append(problems, fmt.Sprintf("This password is too short. It must contain at least %d characters.", MinPasswordLength))
	}

	if isEntirelyNumeric(password) {
		problems = append(problems, "This password is entirely numeric.")
	}

	lowered := strings.ToLower(strings.TrimSpace(password))
	if _, ok := commonPasswords[lowered]; ok {
		problems = append(problems, "This password is too common.")
	}

	for _, attr := range attrs {
		if resemblesAttribute(lowered, attr.Value) {
			problems = append(problems, fmt.Sprintf("The password is too similar to the %s.", attr.Name))
			break
		}
	}

	if len(problems) > 0 {
		return &PasswordError{Problems: problems}
	}
	return nil
}

func isEntirelyNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func resemblesAttribute(password, value string) bool {
	value = strings.ToLower(value)
	if value == "" || password == "" {
		return false
	}
	parts := append([]string{value}, attributeSplitter.Split(value, -1)...)
	for _, part := range parts {
		if len(part) < 3 {
			continue
		}
		if strings.Contains(password, part) || strings.Contains(part, password) {
			return true
		}
	}
	return false
}
