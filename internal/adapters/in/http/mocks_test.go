package http

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type mockCommandHandler[C any] struct {
	mock.Mock
}

func (m *mockCommandHandler[C]) Handle(ctx context.Context, command C) error {
	args := m.Called(ctx, command)
	return args.Error(0)
}

type mockHandler[In, Out any] struct {
	mock.Mock
}

func (m *mockHandler[In, Out]) Handle(ctx context.Context, in In) (Out, error) {
	args := m.Called(ctx, in)
	var out Out
	if v := args.Get(0); v != nil {
		out = v.(Out)
	}
	return out, args.Error(1)
}
