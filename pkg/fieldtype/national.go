package fieldtype

import "strings"

// Checksum-validated national identifiers. Each type trims its input and
// verifies the control digit/letter defined by the issuing authority.
func registerNational(m map[string]Type) {
	m["pesel"] = Type{
		Pre:   func(raw string) any { return strings.TrimSpace(raw) },
		Valid: validPESEL,
	}
	m["bsn"] = Type{
		Pre:   func(raw string) any { return strings.TrimSpace(raw) },
		Valid: validBSN,
	}
	m["dni"] = Type{
		Pre: func(raw string) any {
			return strings.ToUpper(strings.TrimSpace(raw))
		},
		Valid: validDNI,
	}
}

// validPESEL checks the Polish PESEL number: 11 digits with a weighted
// mod-10 control digit.
func validPESEL(v any) string {
	s, ok := v.(string)
	if !ok || len(s) != 11 || !allDigits(s) {
		return "must be a valid PESEL number"
	}
	weights := [10]int{1, 3, 7, 9, 1, 3, 7, 9, 1, 3}
	sum := 0
	for i, w := range weights {
		sum += int(s[i]-'0') * w
	}
	control := (10 - sum%10) % 10
	if control != int(s[10]-'0') {
		return "must be a valid PESEL number"
	}
	return ""
}

// validBSN checks the Dutch burgerservicenummer: 9 digits satisfying the
// 11-proef, where the last digit carries weight -1.
func validBSN(v any) string {
	s, ok := v.(string)
	if !ok || len(s) != 9 || !allDigits(s) {
		return "must be a valid BSN"
	}
	sum := 0
	for i := 0; i < 8; i++ {
		sum += int(s[i]-'0') * (9 - i)
	}
	sum -= int(s[8] - '0')
	if sum%11 != 0 {
		return "must be a valid BSN"
	}
	return ""
}

const dniLetters = "TRWAGMYFPDXBNJZSQVHLCKE"

// validDNI checks the Spanish DNI: 8 digits plus a mod-23 control letter.
func validDNI(v any) string {
	s, ok := v.(string)
	if !ok || len(s) != 9 || !allDigits(s[:8]) {
		return "must be a valid DNI"
	}
	num := 0
	for i := 0; i < 8; i++ {
		num = num*10 + int(s[i]-'0')
	}
	if s[8] != dniLetters[num%23] {
		return "must be a valid DNI"
	}
	return ""
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
