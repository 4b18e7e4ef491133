package history_test

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ambiyansyah-risyal/anuvada/history"
)

// tickingClock returns a clock advancing one second per call.
func tickingClock(start time.Time) func() time.Time {
	n := 0
	return func() time.Time {
		t := start.Add(time.Duration(n) * time.Second)
		n++
		return t
	}
}

var epoch = time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC)

func stores(t *testing.T) map[string]history.Store {
	t.Helper()

	fileStore, err := history.NewFileStore(t.TempDir())
	require.NoError(t, err)

	sqliteStore, err := history.OpenSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqliteStore.Close() })

	return map[string]history.Store{
		"memory": history.NewMemoryStore(),
		"file":   fileStore,
		"sqlite": sqliteStore,
	}
}

func TestRoundTrip(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			h := history.New(store, history.WithClock(tickingClock(epoch)))
			for i := 0; i < 7; i++ {
				_, err := h.Add(fmt.Sprintf("en-%d", i), fmt.Sprintf("kn-%d", i))
				require.NoError(t, err)
			}
			want := h.Entries()

			reloaded := history.New(store)
			require.NoError(t, reloaded.Load())
			got := reloaded.Entries()

			require.Len(t, got, 7)
			for i := range want {
				require.Equal(t, want[i].English, got[i].English)
				require.Equal(t, want[i].Kannada, got[i].Kannada)
				require.True(t, want[i].Timestamp.Truncate(time.Second).Equal(got[i].Timestamp.Truncate(time.Second)),
					"timestamp %d: want %v got %v", i, want[i].Timestamp, got[i].Timestamp)
			}
			require.Equal(t, "en-6", got[0].English)
		})
	}
}

func TestTruncation(t *testing.T) {
	h := history.New(history.NewMemoryStore(), history.WithClock(tickingClock(epoch)))
	for i := 0; i < 11; i++ {
		_, err := h.Add(fmt.Sprintf("en-%d", i), "kn")
		require.NoError(t, err)
	}

	entries := h.Entries()
	require.Len(t, entries, history.DefaultCapacity)
	require.Equal(t, "en-10", entries[0].English)
	require.Equal(t, "en-1", entries[9].English, "oldest entry should have been dropped")
}

func TestCustomCapacityAndKey(t *testing.T) {
	store := history.NewMemoryStore()
	h := history.New(store, history.WithCapacity(2), history.WithKey("other"))
	for _, s := range []string{"a", "b", "c"} {
		_, err := h.Add(s, s)
		require.NoError(t, err)
	}
	require.Equal(t, 2, h.Len())

	_, found, err := store.Get(history.DefaultKey)
	require.NoError(t, err)
	require.False(t, found)

	data, found, err := store.Get("other")
	require.NoError(t, err)
	require.True(t, found)
	require.Contains(t, string(data), `"english":"c"`)
}

func TestPersistedFormat(t *testing.T) {
	store := history.NewMemoryStore()
	h := history.New(store, history.WithClock(func() time.Time {
		return time.Date(2026, 10, 14, 14, 5, 9, 123456789, time.FixedZone("IST", 19800))
	}))
	_, err := h.Add("Hello", "ಹಲೋ")
	require.NoError(t, err)

	data, found, err := store.Get(history.DefaultKey)
	require.NoError(t, err)
	require.True(t, found)
	require.JSONEq(t, `[{"english":"Hello","kannada":"ಹಲೋ","timestamp":"2026-10-14T08:35:09.123Z"}]`, string(data))
}

func TestLoadMissingAndCorrupt(t *testing.T) {
	store := history.NewMemoryStore()
	h := history.New(store)
	require.NoError(t, h.Load())
	require.Equal(t, 0, h.Len())

	require.NoError(t, store.Set(history.DefaultKey, []byte("{not json")))
	require.Error(t, h.Load())
	require.Equal(t, 0, h.Len())
}

func TestAtAndClear(t *testing.T) {
	store := history.NewMemoryStore()
	h := history.New(store)
	_, err := h.Add("one", "ಒಂದು")
	require.NoError(t, err)

	e, err := h.At(0)
	require.NoError(t, err)
	require.Equal(t, "one", e.English)

	_, err = h.At(1)
	require.ErrorIs(t, err, history.ErrOutOfRange)
	_, err = h.At(-1)
	require.ErrorIs(t, err, history.ErrOutOfRange)

	require.NoError(t, h.Clear())
	require.Equal(t, 0, h.Len())
	_, found, err := store.Get(history.DefaultKey)
	require.NoError(t, err)
	require.False(t, found)
}

func TestFileStoreRejectsBadKeys(t *testing.T) {
	s, err := history.NewFileStore(t.TempDir())
	require.NoError(t, err)
	require.Error(t, s.Set("../escape", []byte("x")))
	_, _, err = s.Get("a/b")
	require.Error(t, err)
}
