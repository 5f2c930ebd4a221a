package book

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) List(ctx context.Context, limit, offset int) ([]Book, int, error) {
	args := m.Called(ctx, limit, offset)
	var books []Book
	if args.Get(0) != nil {
		books = args.Get(0).([]Book)
	}
	return books, args.Int(1), args.Error(2)
}

func (m *mockRepository) Search(ctx context.Context, query string, limit, offset int) ([]Book, int, error) {
	args := m.Called(ctx, query, limit, offset)
	var books []Book
	if args.Get(0) != nil {
		books = args.Get(0).([]Book)
	}
	return books, args.Int(1), args.Error(2)
}

func (m *mockRepository) GetByID(ctx context.Context, id string) (Book, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Book), args.Error(1)
}

func (m *mockRepository) GetByISBN(ctx context.Context, isbn string) (Book, error) {
	args := m.Called(ctx, isbn)
	return args.Get(0).(Book), args.Error(1)
}

func (m *mockRepository) Insert(ctx context.Context, in CreateInput) (Book, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(Book), args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, id string, in UpdateInput) (Book, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(Book), args.Error(1)
}

func (m *mockRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func ptr[T any](v T) *T {
	return &v
}
