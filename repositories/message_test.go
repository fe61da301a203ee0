package repositories

import (
	"fmt"
	"log/slog"
	"testing"

	"speech-x-text/domain"
	"speech-x-text/errors"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

// backends runs the same contract against every store implementation.
func backends(t *testing.T, limit int) map[string]IMessageRepository {
	t.Helper()
	badgerRepository, err := OpenBadgerMessageRepository(slog.Default(), limit)
	require.NoError(t, err)
	t.Cleanup(func() { _ = badgerRepository.Close() })

	return map[string]IMessageRepository{
		BackendMemory: NewMessageRepository(slog.Default(), limit),
		BackendBadger: badgerRepository,
	}
}

func Test_Create_Then_Get_Returns_Same_Message(t *testing.T) {
	for name, repository := range backends(t, DefaultLimit) {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			created, err := repository.Create("hello")
			req.NoError(err)
			req.Equal(1, created.ID)
			req.Equal("hello", created.Text)
			req.False(created.CreatedAt.IsZero())

			fetched, err := repository.Get(created.ID)
			req.NoError(err)
			req.Equal(created.ID, fetched.ID)
			req.Equal(created.Text, fetched.Text)
			req.True(created.CreatedAt.Equal(fetched.CreatedAt))
		})
	}
}

func Test_List_Keeps_The_Ten_Most_Recent_In_Creation_Order(t *testing.T) {
	for name, repository := range backends(t, DefaultLimit) {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			for i := 1; i <= 11; i++ {
				created, err := repository.Create(fmt.Sprintf("message %d", i))
				req.NoError(err)
				req.Equal(i, created.ID)
			}

			messages, err := repository.List()
			req.NoError(err)
			req.Len(messages, DefaultLimit)
			req.Equal([]int{2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, lo.Map(messages, func(m domain.Message, _ int) int {
				return m.ID
			}))

			_, err = repository.Get(1)
			req.ErrorIs(err, errors.ErrNotFound)
		})
	}
}

func Test_List_On_Empty_Store_Is_Not_Nil(t *testing.T) {
	for name, repository := range backends(t, DefaultLimit) {
		t.Run(name, func(t *testing.T) {
			messages, err := repository.List()
			require.NoError(t, err)
			require.NotNil(t, messages)
			require.Empty(t, messages)
		})
	}
}

func Test_Ids_Are_Never_Reused_After_Delete(t *testing.T) {
	for name, repository := range backends(t, DefaultLimit) {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			first, err := repository.Create("first")
			req.NoError(err)
			_, err = repository.Delete(first.ID)
			req.NoError(err)

			second, err := repository.Create("second")
			req.NoError(err)
			req.Equal(first.ID+1, second.ID)
		})
	}
}

func Test_Update_Preserves_Id_And_CreatedAt(t *testing.T) {
	for name, repository := range backends(t, DefaultLimit) {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			created, err := repository.Create("before")
			req.NoError(err)

			updated, err := repository.Update(created.ID, "after")
			req.NoError(err)
			req.Equal(created.ID, updated.ID)
			req.True(created.CreatedAt.Equal(updated.CreatedAt))
			req.Equal("after", updated.Text)

			fetched, err := repository.Get(created.ID)
			req.NoError(err)
			req.Equal("after", fetched.Text)
		})
	}
}

func Test_Update_Unknown_Id_Returns_Not_Found(t *testing.T) {
	for name, repository := range backends(t, DefaultLimit) {
		t.Run(name, func(t *testing.T) {
			_, err := repository.Update(42, "nobody home")
			require.ErrorIs(t, err, errors.ErrNotFound)
		})
	}
}

func Test_Second_Delete_Returns_Not_Found(t *testing.T) {
	for name, repository := range backends(t, DefaultLimit) {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			created, err := repository.Create("short lived")
			req.NoError(err)

			deleted, err := repository.Delete(created.ID)
			req.NoError(err)
			req.Equal(created.ID, deleted.ID)
			req.Equal("short lived", deleted.Text)

			_, err = repository.Delete(created.ID)
			req.ErrorIs(err, errors.ErrNotFound)

			messages, err := repository.List()
			req.NoError(err)
			req.Empty(messages)
		})
	}
}

func Test_Custom_Limit_Is_Honoured(t *testing.T) {
	for name, repository := range backends(t, 2) {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			for _, text := range []string{"Alice", "Bob", "Clara"} {
				_, err := repository.Create(text)
				req.NoError(err)
			}
			messages, err := repository.List()
			req.NoError(err)
			req.Equal([]string{"Bob", "Clara"}, lo.Map(messages, func(m domain.Message, _ int) string {
				return m.Text
			}))
		})
	}
}

func Test_Open_Unknown_Backend(t *testing.T) {
	_, _, err := Open("postgres", slog.Default(), DefaultLimit)
	require.ErrorIs(t, err, errors.ErrUnknownBackend)
}

func Test_Open_Known_Backends(t *testing.T) {
	for _, backend := range []string{"", BackendMemory, BackendBadger} {
		t.Run(backend, func(t *testing.T) {
			req := require.New(t)
			repository, closeFn, err := Open(backend, slog.Default(), DefaultLimit)
			req.NoError(err)
			req.NotNil(repository)
			req.NoError(closeFn())
		})
	}
}
