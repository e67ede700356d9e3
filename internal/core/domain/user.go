package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type UserRole string

const (
	UserRoleShipper UserRole = "shipper"
	UserRoleDriver  UserRole = "driver"
)

type User struct {
	ID          uint64
	Phone       string
	Password    string
	Name        string
	Role        UserRole
	CreditScore decimal.Decimal
	CreatedAt   time.Time
}
