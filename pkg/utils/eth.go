package utils

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var weiPerEth = decimal.New(1, 18)

// ParseEth parses a decimal ETH amount string, rejecting malformed input.
func ParseEth(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid eth amount %q: %w", s, err)
	}
	return d, nil
}

// IsPositiveEth reports whether s parses as a strictly positive amount.
func IsPositiveEth(s string) bool {
	d, err := ParseEth(s)
	return err == nil && d.IsPositive()
}

// EthToHexWei converts a decimal ETH string to a 0x-prefixed hex wei value,
// the shape eth_sendTransaction expects.
func EthToHexWei(eth string) (string, error) {
	d, err := ParseEth(eth)
	if err != nil {
		return "", err
	}
	wei := d.Mul(weiPerEth).Truncate(0)
	return "0x" + wei.BigInt().Text(16), nil
}

// SellerShare is the fraction of an accepted offer that reaches the seller;
// the remainder stays with the bank wallet.
var SellerShare = decimal.NewFromFloat(0.7)

// SellerPayout computes the seller's share of a sale price, rounded to 4
// decimal places.
func SellerPayout(priceEth string) (string, error) {
	d, err := ParseEth(priceEth)
	if err != nil {
		return "", err
	}
	return d.Mul(SellerShare).Round(4).String(), nil
}
