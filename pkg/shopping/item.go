package shopping

import (
	"errors"
	"strings"
)

var ErrNameRequired = errors.New("name is required")

type Item struct {
	ID        string
	Name      string
	Quantity  string
	Completed bool
	AddedBy   string
}

// ItemFields is what the add form supplies. New items always start as not completed.
type ItemFields struct {
	Name     string
	Quantity string
	AddedBy  string
}

// Normalize trims the text fields and falls back to defaultMember when AddedBy is empty.
func (f ItemFields) Normalize(defaultMember string) ItemFields {
	f.Name = strings.TrimSpace(f.Name)
	f.Quantity = strings.TrimSpace(f.Quantity)
	f.AddedBy = strings.TrimSpace(f.AddedBy)
	if f.AddedBy == "" {
		f.AddedBy = defaultMember
	}
	return f
}

func (f ItemFields) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return ErrNameRequired
	}
	return nil
}

type CompletionSummary struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}
