package db

import (
	"errors"
	"testing"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
)

func TestRedisRead(t *testing.T) {
	t.Run("existing", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		storage := RedisStorage{db: db}
		mock.ExpectGet("document:words.md").SetVal("## run\n")

		text, err := storage.Read("words.md")
		assert.NoError(t, err)
		assert.Equal(t, "## run\n", text)
	})
	t.Run("not found", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		storage := RedisStorage{db: db}
		mock.ExpectGet("document:words.md").RedisNil()

		_, err := storage.Read("words.md")
		assert.ErrorIs(t, err, ErrNotFound)
	})
	t.Run("error", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		storage := RedisStorage{db: db}
		mock.ExpectGet("document:words.md").SetErr(errors.New("FAIL"))

		_, err := storage.Read("words.md")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestRedisWrite(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		storage := RedisStorage{db: db}
		mock.ExpectSetXX("document:words.md", "text", 0).SetVal(true)

		assert.NoError(t, storage.Write("words.md", "text"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
	t.Run("not found", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		storage := RedisStorage{db: db}
		mock.ExpectSetXX("document:words.md", "text", 0).SetVal(false)

		assert.ErrorIs(t, storage.Write("words.md", "text"), ErrNotFound)
	})
	t.Run("error", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		storage := RedisStorage{db: db}
		mock.ExpectSetXX("document:words.md", "text", 0).SetErr(errors.New("FAIL"))

		assert.Error(t, storage.Write("words.md", "text"))
	})
}

func TestRedisCreate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		storage := RedisStorage{db: db}
		mock.ExpectSetNX("document:words.md", "text", 0).SetVal(true)

		assert.NoError(t, storage.Create("words.md", "text"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
	t.Run("already exists", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		storage := RedisStorage{db: db}
		mock.ExpectSetNX("document:words.md", "text", 0).SetVal(false)

		assert.ErrorIs(t, storage.Create("words.md", "text"), ErrAlreadyExists)
	})
}

func TestRedisAppend(t *testing.T) {
	db, mock := redismock.NewClientMock()
	storage := &RedisStorage{db: db}
	mock.ExpectGet("document:words.md").SetVal("# Words\n")
	mock.ExpectSetXX("document:words.md", "# Words\n\n## run\n", 0).SetVal(true)

	assert.NoError(t, Append(storage, "words.md", "## run\n"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
