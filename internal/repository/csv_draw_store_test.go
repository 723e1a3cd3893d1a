package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lottopick/internal/domain/models"
)

func TestCSVDrawStoreInit(t *testing.T) {
	store := NewCSVDrawStore(filepath.Join("testdata", "draws.csv"))
	require.NoError(t, store.Init(context.Background()))

	history := store.History()
	require.Len(t, history, 12)
	assert.Equal(t, 12, store.LatestRound())

	// newest-first ordering
	for i := 1; i < len(history); i++ {
		assert.Greater(t, history[i-1].Round, history[i].Round)
	}

	// numbers sorted and valid
	for _, d := range history {
		require.NoError(t, models.Combination(d.Numbers).Valid())
		for i := 1; i < len(d.Numbers); i++ {
			assert.Less(t, d.Numbers[i-1], d.Numbers[i])
		}
	}

	assert.Equal(t, models.Draw{
		Round:   1,
		Date:    "2002-12-07",
		Numbers: [6]int{5, 10, 21, 26, 35, 42},
		Bonus:   4,
	}, history[len(history)-1])
}

func TestCSVDrawStoreInitMissingFile(t *testing.T) {
	store := NewCSVDrawStore(filepath.Join("testdata", "does-not-exist.csv"))
	require.Error(t, store.Init(context.Background()))
}

func TestCSVDrawStoreInitRejectsBadRows(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"too few columns", "1,2002-12-07,1,2,3\n"},
		{"duplicate numbers", "1,2002-12-07,1,1,2,3,4,5,6\n"},
		{"out of range", "1,2002-12-07,1,2,3,4,5,46,6\n"},
		{"header only", "round,date,num1,num2,num3,num4,num5,num6,bonus\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "draws.csv")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o644))
			store := NewCSVDrawStore(path)
			require.Error(t, store.Init(context.Background()))
		})
	}
}

func TestCSVDrawStoreAppend(t *testing.T) {
	src, err := os.ReadFile(filepath.Join("testdata", "draws.csv"))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "draws.csv")
	require.NoError(t, os.WriteFile(path, src, 0o644))

	store := NewCSVDrawStore(path)
	ctx := context.Background()
	require.NoError(t, store.Init(ctx))

	next := models.Draw{
		Round:   13,
		Date:    "2003-03-01",
		Numbers: [6]int{2, 9, 17, 23, 31, 44},
		Bonus:   6,
	}
	require.NoError(t, store.Append(ctx, next))
	assert.Equal(t, 13, store.LatestRound())
	assert.Equal(t, next, store.History()[0])

	// persisted: a fresh store sees the appended round
	reloaded := NewCSVDrawStore(path)
	require.NoError(t, reloaded.Init(ctx))
	assert.Equal(t, 13, reloaded.LatestRound())
}

func TestCSVDrawStoreAppendRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draws.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,2002-12-07,1,2,3,4,5,6,7\n"), 0o644))

	store := NewCSVDrawStore(path)
	ctx := context.Background()
	require.NoError(t, store.Init(ctx))

	bad := models.Draw{Round: 2, Date: "2002-12-14", Numbers: [6]int{1, 1, 2, 3, 4, 5}}
	require.Error(t, store.Append(ctx, bad))
}

func TestCSVDrawStoreHealth(t *testing.T) {
	store := NewCSVDrawStore(filepath.Join("testdata", "draws.csv"))
	require.Error(t, store.Health(context.Background()))

	require.NoError(t, store.Init(context.Background()))
	require.NoError(t, store.Health(context.Background()))
}
