package domain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasscodeLen   = 4
	// bcrypt only accepts up to 72 bytes
	MaxPasscodeBytes = 72
)

var (
	ErrProfileNotFound    = errors.New("profile not found")
	ErrProfileExists      = errors.New("a profile is already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidName        = errors.New("name cannot be empty")
	ErrPasscodeTooShort   = errors.New("passcode must be at least 4 characters long")
	ErrPasscodeTooLong    = errors.New("passcode must be at most 72 bytes long")
	ErrUnauthorized       = errors.New("unauthorized")
)

type ProfileRepository interface {
	// Get returns the registered profile or ErrProfileNotFound.
	Get(ctx context.Context) (*Profile, error)

	// Create stores a new profile; it fails with ErrProfileExists if one is already registered.
	Create(ctx context.Context, p *Profile) error
}

// Profile is the single local owner of the tracker data.
type Profile struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	PasscodeHash string    `json:"passcode_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewProfile(id, name string) (*Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}

	return &Profile{
		ID:        id,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (p *Profile) SetPasscode(plain string) error {
	if utf8.RuneCountInString(plain) < MinPasscodeLen {
		return ErrPasscodeTooShort
	}
	if len(plain) > MaxPasscodeBytes {
		return ErrPasscodeTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return fmt.Errorf("%w: %v", ErrPasscodeTooLong, err)
	}
	if err != nil {
		return fmt.Errorf("profile: hash passcode: %w", err)
	}

	p.PasscodeHash = string(hash)
	return nil
}

func (p *Profile) CheckPasscode(plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(p.PasscodeHash), []byte(plain))
}

// Matches compares display names case-insensitively.
func (p *Profile) Matches(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), p.Name)
}

func DecodeProfile(raw string) (*Profile, error) {
	var p Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, err
	}
	if p.ID == "" {
		return nil, ErrProfileNotFound
	}
	return &p, nil
}

func (p *Profile) Encode() (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
