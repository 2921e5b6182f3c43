package league

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/DAHines57/BowlBot/internal/engine"
)

// New creates a new LeagueStore.
func New(db *sql.DB) LeagueStore {
	return &store{
		db: db,
	}
}

const rowColumns = "id, week, team, player, game1, game2, game3, game4, game5, absent, substitute, opponent"

// ListRows returns a season's sheet rows in sheet order, cells untyped.
func (s *store) ListRows(season int) ([]engine.RawRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listRows(season)
}

func (s *store) listRows(season int) ([]engine.RawRow, error) {
	rows, err := s.db.Query(
		"SELECT "+rowColumns+" FROM score_rows WHERE season = ? ORDER BY rowid", season)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []engine.RawRow
	for rows.Next() {
		raw, err := scanRow(rows, season)
		if err != nil {
			log.Error("Failed to scan score row", "error", err)
			continue
		}
		out = append(out, raw)
	}
	return out, rows.Err()
}

func scanRow(scanner interface{ Scan(...any) error }, season int) (engine.RawRow, error) {
	var id, week, team, player, absent, substitute, opponent string
	games := make([]string, engine.SlotsPerWeek)

	err := scanner.Scan(&id, &week, &team, &player,
		&games[0], &games[1], &games[2], &games[3], &games[4],
		&absent, &substitute, &opponent)
	if err != nil {
		return engine.RawRow{}, err
	}

	raw := engine.RawRow{
		ID:         id,
		Season:     season,
		Week:       engine.ParseCell(week),
		Team:       engine.ParseCell(team),
		Player:     engine.ParseCell(player),
		Absent:     engine.ParseCell(absent),
		Substitute: engine.ParseCell(substitute),
		Opponent:   engine.ParseCell(opponent),
	}
	for i, g := range games {
		raw.Games[i] = engine.ParseCell(g)
	}
	return raw, nil
}

// Seasons returns every season with at least one row, ascending.
func (s *store) Seasons() ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT DISTINCT season FROM score_rows ORDER BY season")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var seasons []int
	for rows.Next() {
		var season int
		if err := rows.Scan(&season); err != nil {
			return nil, err
		}
		seasons = append(seasons, season)
	}
	return seasons, rows.Err()
}

// CurrentSeason returns the highest season on record, 0 when the sheet is
// empty.
func (s *store) CurrentSeason() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var season sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(season) FROM score_rows").Scan(&season)
	if err != nil {
		return 0, err
	}
	return int(season.Int64), nil
}

// AddRows inserts raw sheet rows in one transaction, assigning ids where
// missing.
func (s *store) AddRows(rowsToAdd []Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO score_rows (id, season, week, team, player, game1, game2, game3, game4, game5, absent, substitute, opponent, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	now := time.Now().Unix()
	for _, row := range rowsToAdd {
		id := row.ID
		if id == "" {
			id = uuid.NewString()
		}
		_, err = stmt.Exec(id, row.Season, row.Week, row.Team, row.Player,
			row.Games[0], row.Games[1], row.Games[2], row.Games[3], row.Games[4],
			row.Absent, row.Substitute, row.Opponent, now, now)
		if err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// AddScore writes a single game score onto a player's row. The player name is
// resolved fuzzily against the season's roster; the target row is the one for
// the requested week, falling back to the player's latest week. The score
// lands in the first free game slot. The boolean is false when the player
// cannot be resolved, has no row, or the row is already full.
func (s *store) AddScore(player string, score int, week int, season int) (*ScoreAdded, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raws, err := s.listRows(season)
	if err != nil {
		return nil, false, err
	}

	records := engine.NormalizeRows(raws)
	var roster []string
	seen := make(map[string]struct{})
	for _, rec := range records {
		if rec.Substitute {
			continue
		}
		if _, ok := seen[rec.Player]; !ok {
			seen[rec.Player] = struct{}{}
			roster = append(roster, rec.Player)
		}
	}

	resolved, ok := engine.ResolveName(player, roster)
	if !ok {
		return nil, false, nil
	}

	// Prefer the row for the requested week; otherwise the player's latest.
	targetIdx := -1
	for i, rec := range records {
		if rec.Substitute || rec.Player != resolved {
			continue
		}
		if week > 0 && rec.Week == week {
			targetIdx = i
			break
		}
		if targetIdx == -1 || rec.Week > records[targetIdx].Week {
			targetIdx = i
		}
	}
	if targetIdx == -1 {
		return nil, false, nil
	}
	target := records[targetIdx]
	raw := rawByID(raws, target.ID)

	slot := -1
	for i := 0; i < engine.SlotsPerWeek; i++ {
		cell := raw.Games[i]
		if cell.IsBlank() || (cell.Kind == engine.CellNumber && cell.Number == 0) {
			slot = i
			break
		}
	}
	if slot == -1 {
		return nil, false, nil
	}

	column := fmt.Sprintf("game%d", slot+1)
	_, err = s.db.Exec(
		"UPDATE score_rows SET "+column+" = ?, updated_at = ? WHERE id = ?",
		fmt.Sprintf("%d", score), time.Now().Unix(), target.ID)
	if err != nil {
		return nil, false, err
	}

	return &ScoreAdded{
		Player: resolved,
		Team:   target.Team,
		Score:  score,
		Week:   target.Week,
		Season: season,
		Slot:   slot + 1,
	}, true, nil
}

func rawByID(raws []engine.RawRow, id string) engine.RawRow {
	for _, raw := range raws {
		if raw.ID == id {
			return raw
		}
	}
	return engine.RawRow{}
}

// Clear wipes the sheet. Intended for tests and local resets.
func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM score_rows"); err != nil {
		log.Error("Failed to clear score rows", "error", err)
	}
}
