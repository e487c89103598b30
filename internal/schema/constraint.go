package schema

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// DefaultPasswordMinLength is the minimum length used by PasswordStrength
// when no explicit length is configured.
const DefaultPasswordMinLength = 8

// formats backs the email and url shape checks. A *validator.Validate
// caches its parsed tags and is safe for concurrent use.
var formats = validator.New()

// Violation is what a Constraint reports for a bad value.
type Violation struct {
	Code    Code
	Message string
}

// Constraint is a single rule attached to a string node.
//
// Check receives the field name (the last path segment, used in messages)
// and the string value. It returns nil when the value is acceptable.
type Constraint interface {
	Name() string
	Check(field, value string) *Violation
}

// pick returns the override message when set, otherwise the default.
func pick(override, fallback string) string {
	if override != "" {
		return override
	}
	return fallback
}

type minLength struct {
	n       int
	message string
}

// MinLength rejects strings shorter than n code points. The bound is
// inclusive: a string of exactly n characters passes.
func MinLength(n int, message string) Constraint {
	if n < 0 {
		panic(fmt.Sprintf("schema: min length must be non-negative, got %d", n))
	}
	return minLength{n: n, message: message}
}

func (c minLength) Name() string { return "min" }

func (c minLength) Check(field, value string) *Violation {
	if utf8.RuneCountInString(value) >= c.n {
		return nil
	}
	return &Violation{
		Code:    LengthViolation,
		Message: pick(c.message, fmt.Sprintf("%s must be at least %d characters", field, c.n)),
	}
}

type maxLength struct {
	n       int
	message string
}

// MaxLength rejects strings longer than n code points (inclusive bound).
func MaxLength(n int, message string) Constraint {
	if n < 0 {
		panic(fmt.Sprintf("schema: max length must be non-negative, got %d", n))
	}
	return maxLength{n: n, message: message}
}

func (c maxLength) Name() string { return "max" }

func (c maxLength) Check(field, value string) *Violation {
	if utf8.RuneCountInString(value) <= c.n {
		return nil
	}
	return &Violation{
		Code:    LengthViolation,
		Message: pick(c.message, fmt.Sprintf("%s must be at most %d characters", field, c.n)),
	}
}

type emailFormat struct {
	message string
}

// Email requires local-part "@" domain, where the domain contains a dot.
// The empty string passes; pair it with Required to reject it.
func Email(message string) Constraint {
	return emailFormat{message: message}
}

func (c emailFormat) Name() string { return "email" }

func (c emailFormat) Check(field, value string) *Violation {
	if value == "" || IsEmail(value) {
		return nil
	}
	return &Violation{
		Code:    FormatViolation,
		Message: pick(c.message, field+" must be a valid email"),
	}
}

// IsEmail reports whether s looks like an email address.
func IsEmail(s string) bool {
	if formats.Var(s, "email") != nil {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	domain := s[at+1:]
	dot := strings.IndexByte(domain, '.')
	return dot > 0 && dot < len(domain)-1
}

type urlFormat struct {
	message string
}

// URL requires scheme "://" host with an optional path.
// The empty string passes; pair it with Required to reject it.
func URL(message string) Constraint {
	return urlFormat{message: message}
}

func (c urlFormat) Name() string { return "url" }

func (c urlFormat) Check(field, value string) *Violation {
	if value == "" || IsURL(value) {
		return nil
	}
	return &Violation{
		Code:    FormatViolation,
		Message: pick(c.message, field+" must be a valid url"),
	}
}

// IsURL reports whether s looks like an absolute URL with a host.
func IsURL(s string) bool {
	if !strings.Contains(s, "://") || formats.Var(s, "url") != nil {
		return false
	}
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

type passwordStrength struct {
	minLen  int
	message string
}

// PasswordStrength requires at least one lowercase letter, one uppercase
// letter, one digit and minLen characters. A minLen of zero or less uses
// DefaultPasswordMinLength.
func PasswordStrength(minLen int, message string) Constraint {
	if minLen <= 0 {
		minLen = DefaultPasswordMinLength
	}
	return passwordStrength{minLen: minLen, message: message}
}

func (c passwordStrength) Name() string { return "password-strength" }

func (c passwordStrength) Check(field, value string) *Violation {
	if IsStrongPassword(value, c.minLen) {
		return nil
	}
	return &Violation{
		Code:    WeaknessViolation,
		Message: pick(c.message, field+" is not a strong enough password"),
	}
}

// IsStrongPassword applies the composite password rule.
func IsStrongPassword(s string, minLen int) bool {
	if utf8.RuneCountInString(s) < minLen {
		return false
	}

	var lower, upper, digit bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return lower && upper && digit
}
