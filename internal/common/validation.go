package common

import (
	"errors"
	"regexp"
	"strings"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)
	gamerTagRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
)

func ValidateGamerTag(tag string) error {
	tag = strings.TrimSpace(tag)
	if len(tag) < 3 || len(tag) > 50 {
		return errors.New("gamer tag must be between 3 and 50 characters")
	}

	if !gamerTagRegex.MatchString(tag) {
		return errors.New("gamer tag can only contain letters, numbers, and underscores")
	}

	return nil
}

func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.New("password must be at least 6 characters long")
	}

	if len(password) > 100 {
		return errors.New("password is too long")
	}

	return nil
}

func ValidateEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errors.New("email is required")
	}

	if !emailRegex.MatchString(email) {
		return errors.New("invalid email format")
	}

	return nil
}
