// Package v1 implements the v1 API of the Pennywise backend.
package v1

import (
	"github.com/pennywise/backend/internal/ledger"
	"github.com/pennywise/backend/internal/mail"
)

// Controller carries the dependencies of the API handlers.
type Controller struct {
	engine    *ledger.Engine
	mail      mail.Sender
	jwtSecret string
}

// New returns a Controller for the v1 API.
func New(engine *ledger.Engine, sender mail.Sender, jwtSecret string) Controller {
	return Controller{
		engine:    engine,
		mail:      sender,
		jwtSecret: jwtSecret,
	}
}
