package agenda

import "strings"

// ===============================
// Telefone
// ===============================

// NormalizePhone remove tudo que não for dígito.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidPhone aceita números brasileiros fixos (10 dígitos) e celulares
// (11 dígitos), depois de normalizar.
func ValidPhone(phone string) bool {
	n := len(NormalizePhone(phone))
	return n == 10 || n == 11
}

// MaskPhone aplica a máscara progressiva de exibição: (DD), (DD) NNNN,
// (DD) NNNN-NNNN para 10 dígitos e (DD) NNNNN-NNNN para 11. Acima de 11
// dígitos o excedente é descartado. Reaplicar sobre a própria saída é
// estável.
func MaskPhone(phone string) string {
	digits := NormalizePhone(phone)
	if len(digits) > 11 {
		digits = digits[:11]
	}

	switch {
	case len(digits) <= 2:
		return digits
	case len(digits) <= 6:
		return "(" + digits[:2] + ") " + digits[2:]
	case len(digits) <= 10:
		return "(" + digits[:2] + ") " + digits[2:6] + "-" + digits[6:]
	default:
		return "(" + digits[:2] + ") " + digits[2:7] + "-" + digits[7:]
	}
}
