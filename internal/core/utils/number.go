package utils

import (
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	OrderNumberPrefix    = "ORD"
	PaymentNumberPrefix  = "PAY"
	DepositNumberPrefix  = "DEP"
	WithdrawNumberPrefix = "WDR"
)

// BusinessNumber builds a prefix + timestamp + random-suffix identifier.
// Collisions are negligible but not impossible: uniqueness is enforced
// by a DB constraint and callers retry on conflict.
func BusinessNumber(prefix string, now time.Time) string {
	u := uuid.New()
	return prefix + now.Format("20060102150405") + strings.ToUpper(hex.EncodeToString(u[:3]))
}
