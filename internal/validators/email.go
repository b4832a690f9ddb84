// Package validators holds field checks that need more than a binding tag.
package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid reports whether the address's domain actually receives
// mail: an MX record, or failing that any address record. Used at signup to
// reject throwaway typo domains before an account row is created.
func IsEmailDomainValid(email string) bool {
	domain, ok := mailDomain(email)
	if !ok {
		return false
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}

func mailDomain(email string) (string, bool) {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return "", false
	}
	return email[at+1:], true
}
