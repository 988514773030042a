package utils

import (
	"regexp"
	"strings"

	"github.com/a2sh3r/groupmart/internal/models"
)

var addressPatterns = map[models.WithdrawalMethod]*regexp.Regexp{
	models.MethodUPI:       regexp.MustCompile(`^[A-Za-z0-9.\-_]{2,256}@[A-Za-z]{2,64}$`),
	models.MethodUSDTTRC20: regexp.MustCompile(`^T[1-9A-HJ-NP-Za-km-z]{33}$`),
	models.MethodUSDTBEP20: regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`),
	models.MethodPayPal:    regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`),
	models.MethodCard:      regexp.MustCompile(`^[0-9]{13,19}$`),
}

func IsKnownMethod(method models.WithdrawalMethod) bool {
	_, ok := addressPatterns[method]
	return ok
}

func IsValidAddress(method models.WithdrawalMethod, address string) bool {
	re, ok := addressPatterns[method]
	if !ok {
		return false
	}
	address = strings.TrimSpace(address)
	if method == models.MethodCard {
		address = strings.NewReplacer(" ", "", "-", "").Replace(address)
		return re.MatchString(address) && IsValidLuhn(address)
	}
	return re.MatchString(address)
}
