package outreach

import "strings"

// InferEmail derives a candidate address from a raw display name and a
// bare domain ("acme.com"). The result is a heuristic guess, never a
// verified mailbox.
//
// The name is normalized and split on whitespace. One token yields
// token@domain. With two or more, the first token is the given name
// and every remaining token is concatenated with no separator into the
// family-name block: "Jean Paul Dupont Martin" → jean.pauldupontmartin@.
// Middle names and multi-part surnames are indistinguishable in the
// input, so no attempt is made to tell them apart.
//
// Zero tokens yields "" — the caller must treat that as "no email
// derivable", not as a valid address.
func InferEmail(fullName, domain string) string {
	tokens := strings.Fields(NormalizeName(fullName))
	switch len(tokens) {
	case 0:
		return ""
	case 1:
		return tokens[0] + "@" + domain
	default:
		return tokens[0] + "." + strings.Join(tokens[1:], "") + "@" + domain
	}
}
