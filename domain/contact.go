// Package domain contains core concepts of the chat relay.
// This file defines the Contact identity record.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Contact associates a stable generated identity with the last network
// address it was seen on and a self-reported display alias.
// The alias stays empty until the peer logs in.
type Contact struct {
	ID               uuid.UUID `json:"id"`
	LastKnownAddress string    `json:"lastKnownAddress"`
	Alias            string    `json:"alias"`
}

func NewContact(address string) Contact {
	return Contact{
		ID:               uuid.New(),
		LastKnownAddress: address,
		Alias:            "",
	}
}

// Describe returns the short form used in logs and presence views.
func (c Contact) Describe() string {
	return fmt.Sprintf("%s (%s)", c.Alias, c.LastKnownAddress)
}

// Matches reports whether a wire-level party name designates this contact.
// Legacy payloads carry no contact ids, only aliases or raw addresses.
func (c Contact) Matches(party string) bool {
	if party == "" {
		return false
	}
	return party == c.Alias || party == c.LastKnownAddress
}
