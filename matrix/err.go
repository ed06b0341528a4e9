package matrix

import (
	"errors"

	"github.com/ezrec/nibblenet/translate"
)

var f = translate.From

var (
	// Matrix shape errors
	ErrDimension = errors.New(f("incompatible dimensions"))
)
