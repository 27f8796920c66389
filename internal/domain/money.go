package domain

import "math"

// Money денежная сумма в минимальных единицах валюты (int64, без плавающей точки)
// Все расчеты в сервисе ведутся в целых числах, чтобы инвариант
// dpAmount + remainingAmount == totalAmount выполнялся точно при любом округлении
type Money int64

// MulNights умножает сумму на количество ночей
func (m Money) MulNights(nights int) Money {
	return m * Money(nights)
}

// MoneyFromFloat конвертирует число в Money с округлением half-up
// Используется для fixed сезонных тарифов, хранящих ставку как numeric
func MoneyFromFloat(v float64) Money {
	return Money(math.Round(v))
}

// RoundPercent возвращает percent процентов от суммы с округлением half-up
func RoundPercent(m Money, percent float64) Money {
	return Money(math.Round(float64(m) * percent / 100))
}

// RoundMultiply умножает сумму на коэффициент с округлением half-up
func RoundMultiply(m Money, factor float64) Money {
	return Money(math.Round(float64(m) * factor))
}
