package domain

import "errors"

// ErrInvalidDepositTier возвращается, когда процент депозита не входит в допустимый набор
var ErrInvalidDepositTier = errors.New("domain: deposit percentage is not an allowed tier")

// DepositSplit разбивка итоговой суммы на депозит и остаток
type DepositSplit struct {
	DPAmount        Money
	RemainingAmount Money
}

// AllocateDeposit разбивает итоговую сумму на депозит и остаток по проценту депозита
// Депозит округляется half-up, остаток вычисляется вычитанием из итога,
// а не независимым округлением - поэтому dpAmount + remainingAmount == totalAmount точно
// При dpPercentage == 100 остаток равен нулю
func AllocateDeposit(totalAmount Money, dpPercentage int) (DepositSplit, error) {
	if !IsAllowedDepositTier(dpPercentage) {
		return DepositSplit{}, ErrInvalidDepositTier
	}

	dp := Money((int64(totalAmount)*int64(dpPercentage) + 50) / 100)

	return DepositSplit{
		DPAmount:        dp,
		RemainingAmount: totalAmount - dp,
	}, nil
}

// IsAllowedDepositTier проверяет, что процент депозита входит в допустимый набор
func IsAllowedDepositTier(dpPercentage int) bool {
	for _, tier := range AllowedDepositTiers {
		if dpPercentage == tier {
			return true
		}
	}
	return false
}
