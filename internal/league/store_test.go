package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DAHines57/BowlBot/internal/database"
	"github.com/DAHines57/BowlBot/internal/engine"
)

func newTestStore(t *testing.T) LeagueStore {
	t.Helper()
	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)
	t.Cleanup(dbTeardown)
	return New(db)
}

func sheetRow(season int, week, team, player string, games ...string) Row {
	row := Row{Season: season, Week: week, Team: team, Player: player}
	copy(row.Games[:], games)
	return row
}

func seedSeason(t *testing.T, store LeagueStore) {
	t.Helper()
	rows := []Row{
		sheetRow(1, "1", "Pin Pals", "Dana", "150", "170"),
		sheetRow(1, "1", "Splitters", "Lee", "160", "155"),
		sheetRow(1, "2", "Pin Pals", "Dana", "180"),
		sheetRow(1, "3", "Pin Pals", "Dana"),
	}
	require.NoError(t, store.AddRows(rows))
}

func TestListRows(t *testing.T) {
	store := newTestStore(t)
	seedSeason(t, store)

	raws, err := store.ListRows(1)
	require.NoError(t, err)
	require.Len(t, raws, 4)

	first := raws[0]
	assert.Equal(t, engine.Text("Pin Pals"), first.Team)
	assert.Equal(t, engine.Text("Dana"), first.Player)
	assert.Equal(t, engine.Number(1), first.Week)
	assert.Equal(t, engine.Number(150), first.Games[0])
	assert.True(t, first.Games[2].IsBlank())
	assert.NotEmpty(t, first.ID, "ids are assigned on insert")
}

func TestSeasonsAndCurrentSeason(t *testing.T) {
	store := newTestStore(t)

	current, err := store.CurrentSeason()
	require.NoError(t, err)
	assert.Equal(t, 0, current, "empty sheet has no season")

	require.NoError(t, store.AddRows([]Row{
		sheetRow(1, "1", "Pin Pals", "Dana", "150"),
		sheetRow(3, "1", "Pin Pals", "Dana", "160"),
	}))

	seasons, err := store.Seasons()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, seasons)

	current, err = store.CurrentSeason()
	require.NoError(t, err)
	assert.Equal(t, 3, current)
}

func TestAddScoreExactWeek(t *testing.T) {
	store := newTestStore(t)
	seedSeason(t, store)

	added, ok, err := store.AddScore("dana", 150, 3, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Dana", added.Player)
	assert.Equal(t, "Pin Pals", added.Team)
	assert.Equal(t, 3, added.Week)
	assert.Equal(t, 1, added.Slot)

	raws, err := store.ListRows(1)
	require.NoError(t, err)
	assert.Equal(t, engine.Number(150), raws[3].Games[0])
}

func TestAddScoreFallsBackToLatestWeek(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.AddRows([]Row{
		sheetRow(1, "1", "Pin Pals", "Dana", "150", "170"),
		sheetRow(1, "2", "Pin Pals", "Dana", "180"),
	}))

	added, ok, err := store.AddScore("Dana", 200, 9, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, added.Week, "missing week falls back to the player's latest row")
	assert.Equal(t, 2, added.Slot, "score lands in the first free slot")

	raws, err := store.ListRows(1)
	require.NoError(t, err)
	assert.Equal(t, engine.Number(200), raws[1].Games[1])
}

func TestAddScoreFillsZeroSlot(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.AddRows([]Row{
		sheetRow(1, "1", "Pin Pals", "Dana", "150", "0", "170"),
	}))

	added, ok, err := store.AddScore("Dana", 145, 1, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, added.Slot, "a stored zero counts as a free slot")
}

func TestAddScoreRowFull(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.AddRows([]Row{
		sheetRow(1, "1", "Pin Pals", "Dana", "150", "160", "170", "180", "190"),
	}))

	_, ok, err := store.AddScore("Dana", 200, 1, 1)
	require.NoError(t, err)
	assert.False(t, ok, "a full row cannot take another score")
}

func TestAddScoreUnknownPlayer(t *testing.T) {
	store := newTestStore(t)
	seedSeason(t, store)

	_, ok, err := store.AddScore("Zed", 200, 1, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAddScoreIgnoresSubstitutes(t *testing.T) {
	store := newTestStore(t)
	sub := sheetRow(1, "1", "Pin Pals", "Ringer", "300")
	sub.Substitute = "Y"
	require.NoError(t, store.AddRows([]Row{sub}))

	_, ok, err := store.AddScore("Ringer", 200, 1, 1)
	require.NoError(t, err)
	assert.False(t, ok, "substitute rows are not part of the roster")
}

func TestClear(t *testing.T) {
	store := newTestStore(t)
	seedSeason(t, store)

	store.Clear()

	raws, err := store.ListRows(1)
	require.NoError(t, err)
	assert.Empty(t, raws)
}
