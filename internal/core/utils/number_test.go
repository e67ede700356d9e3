package utils_test

import (
	"testing"
	"time"

	"github.com/freightmart/freightmart/internal/core/utils"
	"github.com/stretchr/testify/assert"
)

func TestBusinessNumber(t *testing.T) {
	now := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)

	number := utils.BusinessNumber(utils.OrderNumberPrefix, now)
	assert.Len(t, number, 3+14+6)
	assert.Equal(t, "ORD20260102150405", number[:17])

	other := utils.BusinessNumber(utils.OrderNumberPrefix, now)
	assert.NotEqual(t, number, other)
}
