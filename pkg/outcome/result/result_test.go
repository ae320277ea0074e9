package result

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/outcome/pkg/outcome"
)

func TestOk_Predicates(t *testing.T) {
	t.Parallel()
	r := Ok[int, error](5)
	assert.True(t, r.IsOk())
	assert.False(t, r.IsErr())
}

func TestErr_Predicates(t *testing.T) {
	t.Parallel()
	r := Err[int](errors.New("boom"))
	assert.False(t, r.IsOk())
	assert.True(t, r.IsErr())
}

func TestTry(t *testing.T) {
	t.Parallel()

	ok := Try(7, nil)
	assert.True(t, ok.IsOk())
	assert.Equal(t, 7, ok.Unwrap())

	err := errors.New("open failed")
	bad := Try(0, err)
	assert.True(t, bad.IsErr())
	assert.Same(t, err, bad.UnwrapErr())
}

func TestUnwrap_Ok(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 5, Ok[int, error](5).Unwrap())

	// zero values are real success values
	assert.Equal(t, 0, Ok[int, error](0).Unwrap())
	assert.Equal(t, "", Ok[string, error]("").Unwrap())
	assert.Equal(t, false, Ok[bool, error](false).Unwrap())
	assert.Equal(t, []int{}, Ok[[]int, error]([]int{}).Unwrap())
}

func TestUnwrap_ErrPanicsWithPayload(t *testing.T) {
	t.Parallel()
	e := errors.New("boom")
	r := Err[int](e)

	defer func() {
		rec := recover()
		require.NotNil(t, rec)
		f, ok := rec.(*outcome.UnwrapFailure)
		require.True(t, ok, "expected *outcome.UnwrapFailure, got %T", rec)
		assert.Same(t, e, f.Payload)
	}()
	r.Unwrap()
}

func TestExpect(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 5, Ok[int, error](5).Expect("should have value"))

	e := errors.New("boom")
	defer func() {
		rec := recover()
		require.NotNil(t, rec)
		f, ok := rec.(*outcome.UnwrapFailure)
		require.True(t, ok)
		assert.Equal(t, "parsing config", f.Msg)
		assert.Same(t, e, f.Payload)
	}()
	Err[int](e).Expect("parsing config")
}

func TestUnwrapOr(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 5, Ok[int, error](5).UnwrapOr(9))
	assert.Equal(t, 9, Err[int](errors.New("boom")).UnwrapOr(9))
}

func TestUnwrapOrElse(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 5, Ok[int, string](5).UnwrapOrElse(func(e string) int { return len(e) }))
	assert.Equal(t, 4, Err[int, string]("boom").UnwrapOrElse(func(e string) int { return len(e) }))
}

func TestUnwrapErr(t *testing.T) {
	t.Parallel()
	e := errors.New("boom")
	assert.Same(t, e, Err[int](e).UnwrapErr())
}

func TestUnwrapErr_OkPanicsWithInvariantViolation(t *testing.T) {
	t.Parallel()
	defer func() {
		rec := recover()
		require.NotNil(t, rec)
		_, ok := rec.(*outcome.InvariantViolation)
		require.True(t, ok, "expected *outcome.InvariantViolation, got %T", rec)
	}()
	Ok[int, error](5).UnwrapErr()
}

func TestExpectErr(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "boom", Err[int, string]("boom").ExpectErr("wanted an error"))

	defer func() {
		rec := recover()
		require.NotNil(t, rec)
		v, ok := rec.(*outcome.InvariantViolation)
		require.True(t, ok)
		assert.Contains(t, v.Msg, "wanted an error")
	}()
	Ok[int, string](5).ExpectErr("wanted an error")
}

func TestInspect(t *testing.T) {
	t.Parallel()

	var seen []int
	r := Ok[int, error](5).Inspect(func(v int) { seen = append(seen, v) })
	assert.Equal(t, []int{5}, seen)
	assert.Equal(t, Ok[int, error](5), r)

	Err[int](errors.New("boom")).Inspect(func(v int) { seen = append(seen, v) })
	assert.Equal(t, []int{5}, seen, "inspect must not run on Err")
}

func TestInspectErr(t *testing.T) {
	t.Parallel()

	var seen []string
	r := Err[int, string]("boom").InspectErr(func(e string) { seen = append(seen, e) })
	assert.Equal(t, []string{"boom"}, seen)
	assert.Equal(t, Err[int, string]("boom"), r)

	Ok[int, string](5).InspectErr(func(e string) { seen = append(seen, e) })
	assert.Equal(t, []string{"boom"}, seen, "inspectErr must not run on Ok")
}

func TestIter(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []int{5}, slices.Collect(Ok[int, error](5).Iter()))
	assert.Empty(t, slices.Collect(Err[int](errors.New("boom")).Iter()))
}

func TestString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Ok(5)", Ok[int, error](5).String())
	assert.Equal(t, "Err(boom)", Err[int, string]("boom").String())
}

func TestZeroResultIsErr(t *testing.T) {
	t.Parallel()
	var r Result[int, string]
	assert.True(t, r.IsErr())
	assert.Equal(t, "", r.UnwrapErr())
}
