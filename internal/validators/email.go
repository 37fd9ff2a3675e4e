package validators

import (
	"net"
	"strings"
)

// Resolvedores injetáveis para teste; em produção são os lookups reais.
var (
	lookupMX = net.LookupMX
	lookupIP = net.LookupIP
)

// IsEmailDomainValid confere se o domínio do e-mail resolve no DNS: primeiro
// MX, depois A/AAAA como fallback para domínios que recebem e-mail direto no
// host. A sintaxe local (parte antes do @) fica a cargo do binding.
func IsEmailDomainValid(email string) bool {
	domain := emailDomain(email)
	if domain == "" {
		return false
	}

	if mx, err := lookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := lookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}

func emailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return email[at+1:]
}
