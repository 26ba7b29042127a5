package entities

// ValidCPF checks the two verification digits of a CPF (11 digits, masks allowed).
func ValidCPF(raw string) bool {
	d := OnlyDigits(raw)
	if len(d) != 11 || allSame(d) {
		return false
	}
	return checkDigit(d[:9], []int{10, 9, 8, 7, 6, 5, 4, 3, 2}) == int(d[9]-'0') &&
		checkDigit(d[:10], []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}) == int(d[10]-'0')
}

// ValidCNPJ checks the two verification digits of a CNPJ (14 digits, masks allowed).
func ValidCNPJ(raw string) bool {
	d := OnlyDigits(raw)
	if len(d) != 14 || allSame(d) {
		return false
	}
	return checkDigit(d[:12], []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}) == int(d[12]-'0') &&
		checkDigit(d[:13], []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}) == int(d[13]-'0')
}

// checkDigit computes a mod-11 verification digit.
func checkDigit(digits string, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += int(digits[i]-'0') * w
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}

func allSame(d string) bool {
	for i := 1; i < len(d); i++ {
		if d[i] != d[0] {
			return false
		}
	}
	return true
}
