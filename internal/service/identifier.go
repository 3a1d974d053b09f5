package service

import (
	"strconv"
	"strings"

	appErr "github.com/xxxsen/renthub/internal/pkg/errors"
)

type IdentifierKind int

const (
	IdentifierEmail IdentifierKind = iota + 1
	IdentifierMobile
)

// Identifier is what a user typed to find their account: an email address
// or a mobile number.
type Identifier struct {
	Kind   IdentifierKind
	Email  string
	Mobile int64
}

func ParseIdentifier(raw string) (Identifier, error) {
	if strings.Contains(raw, "@") {
		return Identifier{Kind: IdentifierEmail, Email: raw}, nil
	}
	mobile, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return Identifier{}, appErr.ErrInvalidIdentifier
	}
	return Identifier{Kind: IdentifierMobile, Mobile: mobile}, nil
}
