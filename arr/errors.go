package arr

import "errors"

// ErrInvalidArgument is returned when a helper receives an argument outside
// its domain, such as a negative count passed to [FirstN] or [LastN].
//
// Use [errors.Is] for comparisons:
//
//	_, err := arr.FirstN(items, -1)
//	if errors.Is(err, arr.ErrInvalidArgument) {
//	    // n was negative
//	}
var ErrInvalidArgument = errors.New("arr: invalid argument")
