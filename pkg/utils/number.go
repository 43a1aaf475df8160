package utils

import "github.com/shopspring/decimal"

// RoundCurrency arredonda valores monetários para centavos
func RoundCurrency(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// RateFromFloat converte uma taxa de configuração em decimal sem ruído de ponto flutuante
func RateFromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}
