package siteconfig

import (
	"fmt"
	"sort"

	apperrors "psisite/internal/errors"
	"psisite/internal/ordering"
)

// Sorted returns the credentials ordered by their order field, ties by id.
func (c AboutCredentials) Sorted() AboutCredentials {
	out := make(AboutCredentials, len(c))
	copy(out, c)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Active returns the sorted credentials that are shown publicly.
func (c AboutCredentials) Active() AboutCredentials {
	out := make(AboutCredentials, 0, len(c))
	for _, cred := range c.Sorted() {
		if cred.IsActive {
			out = append(out, cred)
		}
	}
	return out
}

// MoveCredential moves the credential with id to position and renumbers every
// credential to its new index.
func MoveCredential(creds AboutCredentials, id, position int) (AboutCredentials, error) {
	sorted := creds.Sorted()
	from := ordering.IndexOf(sorted, func(c Credential) bool { return c.ID == id })
	if from < 0 {
		return nil, fmt.Errorf("credential %d: %w", id, apperrors.ErrNotFound)
	}

	moved := ordering.Move(sorted, from, position)
	for i := range moved {
		moved[i].Order = i
	}
	return moved, nil
}
