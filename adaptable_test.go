package middlewrap_test

import (
	"testing"

	"github.com/lestrrat-go/middlewrap"
	"github.com/stretchr/testify/require"
)

func TestOf(t *testing.T) {
	req, res := &request{}, &response{}
	testcases := []struct {
		Name  string
		Func  adaptFunc
		Value any
		Error error
		Calls int
	}{
		{
			Name: "func(Req, Res)",
			Func: middlewrap.Of[*request, *response](func(*request, *response) {}),
		},
		{
			Name:  "func(Req, Res) error",
			Func:  middlewrap.Of[*request, *response](func(*request, *response) error { return errTest }),
			Error: errTest,
		},
		{
			Name:  "func(Req, Res) (any, error)",
			Func:  middlewrap.Of[*request, *response](func(*request, *response) (any, error) { return "value", nil }),
			Value: "value",
		},
		{
			Name: "func(Req, Res) *Promise returning nil",
			Func: middlewrap.Of[*request, *response](func(*request, *response) *middlewrap.Promise { return nil }),
		},
		{
			Name:  "func(Req, Res, Next)",
			Func:  middlewrap.Of[*request, *response](func(_ *request, _ *response, next middlewrap.Next) { next(nil) }),
			Calls: 1,
		},
		{
			Name:  "func(Req, Res, Next) error",
			Func:  middlewrap.Of[*request, *response](func(_ *request, _ *response, next middlewrap.Next) error { next(nil); return errTest }),
			Error: errTest,
			Calls: 1,
		},
		{
			Name: "Func",
			Func: middlewrap.Of[*request, *response](adaptFunc(func(*request, *response, middlewrap.Next) (any, error) {
				return "value", nil
			})),
			Value: "value",
		},
	}
	for _, tc := range testcases {
		t.Run(tc.Name, func(t *testing.T) {
			var calls int
			v, err := tc.Func(req, res, func(error) { calls++ })
			require.Equal(t, tc.Value, v)
			require.Equal(t, tc.Error, err)
			require.Equal(t, tc.Calls, calls)
		})
	}
}

func TestAsync(t *testing.T) {
	var reached bool
	v, err := middlewrap.Async(adaptFunc(func(*request, *response, middlewrap.Next) (any, error) {
		reached = true
		return nil, errTest
	}))(&request{}, &response{}, nil)
	require.NoError(t, err, "errors should not surface synchronously")

	_, err = await(t, v)
	require.Equal(t, errTest, err)
	require.True(t, reached)
}
