package ops

import (
	"context"
	"errors"

	"github.com/blububb/cart/internal/model"
	"github.com/blububb/cart/internal/storage"
	"go.uber.org/zap"
)

// popupSeenValue is the stored marker for a dismissed popup.
const popupSeenValue = "true"

// Popup tracks whether the promotional popup has been dismissed.
type Popup struct {
	kv     storage.KV
	logger *zap.Logger
}

// NewPopup returns a Popup backed by kv.
func NewPopup(kv storage.KV, logger *zap.Logger) *Popup {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Popup{kv: kv, logger: logger}
}

// ShouldShow reports whether the popup has not been dismissed yet.
// An unreadable flag counts as not dismissed.
func (p *Popup) ShouldShow(ctx context.Context) bool {
	v, err := p.kv.Get(ctx, model.PopupSeenKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			p.logger.Warn("popup flag unreadable", zap.Error(err))
		}
		return true
	}
	return v != popupSeenValue
}

// Dismiss records that the visitor has closed the popup.
func (p *Popup) Dismiss(ctx context.Context) error {
	return p.kv.Set(ctx, model.PopupSeenKey, popupSeenValue)
}

// Reset forgets the dismissal so the popup shows again.
func (p *Popup) Reset(ctx context.Context) error {
	return p.kv.Delete(ctx, model.PopupSeenKey)
}
