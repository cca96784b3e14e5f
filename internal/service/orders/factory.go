package orders

import "context"

type actionFunc func(context.Context, Event) error

// actionFactory routes an event to its handler by normalized status.
// Statuses without an entry are acknowledged untouched.
type actionFactory struct {
	byStatus map[string]actionFunc
}

func newActionFactory(onCancel actionFunc) *actionFactory {
	return &actionFactory{
		byStatus: map[string]actionFunc{
			StatusCanceled:  onCancel,
			StatusCancelled: onCancel,
			StatusDeleted:   onCancel,
		},
	}
}

func (f *actionFactory) get(e Event) (actionFunc, bool) {
	fn, ok := f.byStatus[e.NormalizedStatus()]
	return fn, ok
}
