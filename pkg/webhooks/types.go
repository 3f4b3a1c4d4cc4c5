// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

// APIKeyHeader carries the shared secret configured on the Kratos web hook.
const APIKeyHeader = "X-Webhook-Api-Key"

type KratosIdentity struct {
	ID                  string                    `json:"id"`
	Traits              KratosTraits              `json:"traits"`
	VerifiableAddresses []KratosVerifiableAddress `json:"verifiable_addresses,omitempty"`
}

type KratosTraits struct {
	Email string `json:"email"`
}

type KratosVerifiableAddress struct {
	Value    string `json:"value"`
	Verified bool   `json:"verified"`
}

// emailVerified reports whether Kratos already verified the trait email.
func (i *KratosIdentity) emailVerified() bool {
	for _, a := range i.VerifiableAddresses {
		if a.Verified && a.Value == i.Traits.Email {
			return true
		}
	}
	return false
}
