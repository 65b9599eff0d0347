package collutils

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestOptional(t *testing.T) {
	is := is.New(t)

	some := Some(42)

	value, ok := some.Get()
	is.True(ok)
	is.Equal(value, 42)
	is.True(some.IsPresent())
	is.Equal(some.OrElse(1), 42)

	value, err := some.OrError()
	is.NoErr(err)
	is.Equal(value, 42)

	none := None[int]()

	_, ok = none.Get()
	is.True(!ok)
	is.True(!none.IsPresent())
	is.Equal(none.OrElse(1), 1)

	_, err = none.OrError()
	is.True(errors.Is(err, ErrNoElements))

	is.Equal(Optional[int]{}, none)
}
