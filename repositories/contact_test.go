package repositories

import (
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func Test_Get_Or_Create_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	db := openTestStore(t)

	repository, err := NewContactRepository(db, slog.Default())
	req.NoError(err)

	first, err := repository.GetOrCreate("10.0.0.5")
	req.NoError(err)
	again, err := repository.GetOrCreate("10.0.0.5")
	req.NoError(err)
	req.Equal(first.ID, again.ID)

	other, err := repository.GetOrCreate("10.0.0.6")
	req.NoError(err)
	req.NotEqual(first.ID, other.ID)
	req.Len(repository.All(), 2)
}

func Test_Save_Updates_Alias_In_Place(t *testing.T) {
	req := require.New(t)
	db := openTestStore(t)

	repository, err := NewContactRepository(db, slog.Default())
	req.NoError(err)

	contact, err := repository.GetOrCreate("10.0.0.5")
	req.NoError(err)

	contact.Alias = "Ana"
	req.NoError(repository.Save(contact))

	found, ok := repository.FindByAddress("10.0.0.5")
	req.True(ok)
	req.Equal("Ana", found.Alias)
	req.Equal(contact.ID, found.ID)
	req.Len(repository.All(), 1)
}

func Test_Contacts_Survive_Reload(t *testing.T) {
	req := require.New(t)
	db := openTestStore(t)

	repository, err := NewContactRepository(db, slog.Default())
	req.NoError(err)

	contact, err := repository.GetOrCreate("10.0.0.5")
	req.NoError(err)
	contact.Alias = "Ana"
	req.NoError(repository.Save(contact))

	// A fresh repository over the same store sees the whole collection.
	reloaded, err := NewContactRepository(db, slog.Default())
	req.NoError(err)

	found, ok := reloaded.FindByAddress("10.0.0.5")
	req.True(ok)
	req.Equal("Ana", found.Alias)
	req.Equal(contact.ID, found.ID)
}

func Test_Find_By_Address_Misses_Unknown(t *testing.T) {
	req := require.New(t)
	db := openTestStore(t)

	repository, err := NewContactRepository(db, slog.Default())
	req.NoError(err)

	_, ok := repository.FindByAddress("10.0.0.99")
	req.False(ok)
	req.Empty(repository.All())
}
