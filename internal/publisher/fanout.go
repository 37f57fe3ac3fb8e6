package publisher

import (
	"context"
	"errors"

	"notesync/internal/domain"
)

type Notifier interface {
	Notify(ctx context.Context, notice domain.Notice) error
}

// Fanout delivers every notice to all notifiers and joins their errors.
type Fanout []Notifier

func (f Fanout) Notify(ctx context.Context, notice domain.Notice) error {
	var errs []error
	for _, n := range f {
		if err := n.Notify(ctx, notice); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
