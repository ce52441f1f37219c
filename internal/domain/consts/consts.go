package consts

import "time"

const (
	DBCtxTimeout    = 5 * time.Second
	DefaultQuantity = 1
)
