package gate

import (
	"github.com/ezrec/nibblenet/translate"
)

var f = translate.From

// ErrArity reports a Call with the wrong number of boolean inputs.
type ErrArity string

func (err ErrArity) Error() string {
	return f("gate %v: wrong input count", string(err))
}

func (err ErrArity) Is(other error) (ok bool) {
	_, ok = other.(ErrArity)
	return
}
