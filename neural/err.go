package neural

import (
	"errors"

	"github.com/ezrec/nibblenet/translate"
)

var f = translate.From

var (
	// Layer errors
	ErrNoForward = errors.New(f("backward without forward"))

	// Network construction errors
	ErrLayerChain = errors.New(f("layer specs do not chain"))
)
