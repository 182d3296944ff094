package domain

import "github.com/google/uuid"

func mustID(s string) uuid.UUID {
	return uuid.MustParse(s)
}
