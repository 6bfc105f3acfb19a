package availability

import (
	"context"

	"Backend-Medical-Intake/src/database"
	"Backend-Medical-Intake/src/logger"
	"Backend-Medical-Intake/src/models"
)

// Checker answers whether the remote database can serve this deployment.
type Checker interface {
	CheckAvailability(ctx context.Context) bool
}

// Probe issues a one-record list against the forms collection on every call.
// It keeps no state between calls and never fails: any error means
// unavailable. The error kind only changes what gets logged.
type Probe struct {
	forms database.Collection[models.Form]
}

// NewProbe returns a probe over forms. A nil collection (no database
// configured) always reports unavailable.
func NewProbe(forms database.Collection[models.Form]) *Probe {
	return &Probe{forms: forms}
}

func (p *Probe) CheckAvailability(ctx context.Context) (ok bool) {
	if p == nil || p.forms == nil {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			logger.WithField("panic", r).Warn("⚠️ Database probe panicked, using local storage")
			ok = false
		}
	}()

	_, err := p.forms.List(ctx, database.ListOptions{Limit: 1})
	if err == nil {
		return true
	}

	switch database.KindOf(err) {
	case database.KindNotProvisioned:
		logger.WithError(err).Warn("⚠️ Database not available - using local storage fallback")
	case database.KindUnreachable:
		logger.WithError(err).Warn("⚠️ Database unreachable - using local storage fallback")
	default:
		logger.WithError(err).Warn("⚠️ Database unavailable")
	}
	return false
}
