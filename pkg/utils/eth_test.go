package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEthToHexWei(t *testing.T) {
	tests := []struct {
		eth  string
		want string
	}{
		{"1", "0xde0b6b3a7640000"},
		{"0.022", "0x4e28e2290f0000"},
		{"0", "0x0"},
	}

	for _, tt := range tests {
		got, err := EthToHexWei(tt.eth)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, got, "eth=%s", tt.eth)
	}

	_, err := EthToHexWei("not a number")
	assert.Error(t, err)
}

func TestIsPositiveEth(t *testing.T) {
	assert.True(t, IsPositiveEth("0.015"))
	assert.True(t, IsPositiveEth("10"))
	assert.False(t, IsPositiveEth("0"))
	assert.False(t, IsPositiveEth("-0.5"))
	assert.False(t, IsPositiveEth(""))
	assert.False(t, IsPositiveEth("1e"))
}

func TestSellerPayout(t *testing.T) {
	payout, err := SellerPayout("1")
	assert.NoError(t, err)
	assert.Equal(t, "0.7", payout)

	payout, err = SellerPayout("0.03")
	assert.NoError(t, err)
	assert.Equal(t, "0.021", payout)
}
