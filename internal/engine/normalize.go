package engine

import "strings"

// headerTokens are labels that mark section headers or summary lines in the
// source sheets rather than actual teams or players. Rows carrying them are
// not score rows.
var headerTokens = map[string]struct{}{
	"team":          {},
	"player":        {},
	"team averages": {},
	"average":       {},
	"wins":          {},
	"losses":        {},
	"ties":          {},
}

// labelValue extracts a usable free-text label from a cell. Blank cells and
// numeric cells carry no label; header tokens are rejected.
func labelValue(c Cell) (string, bool) {
	if c.Kind != CellText {
		return "", false
	}
	label := strings.TrimSpace(c.Text)
	if label == "" {
		return "", false
	}
	if _, ok := headerTokens[strings.ToLower(label)]; ok {
		return "", false
	}
	return label, true
}

// NormalizeRow converts a raw row into a typed ScoreRecord. The boolean is
// false when the row is not a score row at all (blank or header team/player
// labels); malformed cells inside a valid row are coerced, never rejected.
func NormalizeRow(raw RawRow) (ScoreRecord, bool) {
	team, ok := labelValue(raw.Team)
	if !ok {
		return ScoreRecord{}, false
	}
	player, ok := labelValue(raw.Player)
	if !ok {
		return ScoreRecord{}, false
	}

	rec := ScoreRecord{
		ID:         raw.ID,
		Season:     raw.Season,
		Team:       team,
		Player:     player,
		Absent:     raw.Absent.Bool(),
		Substitute: raw.Substitute.Bool(),
	}
	if w := raw.Week.Int(); w > 0 {
		rec.Week = w
	}
	for i, g := range raw.Games {
		rec.Games[i] = g.Float()
	}
	if opp, ok := labelValue(raw.Opponent); ok {
		rec.Opponent = opp
	}
	return rec, true
}

// NormalizeRows converts a season's raw rows, dropping non-score rows and
// preserving input order.
func NormalizeRows(rows []RawRow) []ScoreRecord {
	records := make([]ScoreRecord, 0, len(rows))
	for _, raw := range rows {
		if rec, ok := NormalizeRow(raw); ok {
			records = append(records, rec)
		}
	}
	return records
}
