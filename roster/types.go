package roster

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidRating is returned when a batter rating is NaN or ±Inf.
	ErrInvalidRating = errors.New("roster: rating must be a finite number")

	// ErrInvalidHand is returned for a handedness outside {Left, Right}.
	ErrInvalidHand = errors.New("roster: handedness must be L or R")

	// ErrEmptyRoster is returned by Decode when the document lists no players.
	ErrEmptyRoster = errors.New("roster: no players")
)

// Hand is the batting side of a Batter.
type Hand int

const (
	// Left marks a left-handed batter.
	Left Hand = iota

	// Right marks a right-handed batter.
	Right
)

// Valid reports whether h is Left or Right.
func (h Hand) Valid() bool { return h == Left || h == Right }

// Opposite returns the other hand. Invalid hands are returned unchanged.
func (h Hand) Opposite() Hand {
	switch h {
	case Left:
		return Right
	case Right:
		return Left
	default:
		return h
	}
}

// String renders "L" or "R" ("?" for invalid values).
func (h Hand) String() string {
	switch h {
	case Left:
		return "L"
	case Right:
		return "R"
	default:
		return "?"
	}
}

// ParseHand accepts "L", "R", "left" and "right", case-insensitive.
func ParseHand(s string) (Hand, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l", "left":
		return Left, nil
	case "r", "right":
		return Right, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidHand, s)
	}
}

// MarshalYAML implements yaml.Marshaler.
func (h Hand) MarshalYAML() (interface{}, error) {
	if !h.Valid() {
		return nil, ErrInvalidHand
	}

	return h.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (h *Hand) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("%w: line %d", ErrInvalidHand, value.Line)
	}
	parsed, err := ParseHand(s)
	if err != nil {
		return err
	}
	*h = parsed

	return nil
}

// Batter is a single roster member.
//
// Two batters with equal Rating and Hand score identically, but solvers treat
// them as distinct roster members (tracked by index), so duplicates are legal.
type Batter struct {
	Name   string  `yaml:"name,omitempty"`
	Rating float64 `yaml:"avg"`
	Hand   Hand    `yaml:"hand"`
}

// String renders the batter as "(0.340 R)" or "Name (0.340 R)".
func (b Batter) String() string {
	if b.Name == "" {
		return fmt.Sprintf("(%.3f %s)", b.Rating, b.Hand)
	}

	return fmt.Sprintf("%s (%.3f %s)", b.Name, b.Rating, b.Hand)
}

// Roster is an ordered collection of batters.
type Roster []Batter
