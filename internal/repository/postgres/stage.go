package postgres

import (
	"database/sql"

	"askbot/internal/domain"
)

// StageRepo implements repository.StageRepository
type StageRepo struct {
	db *sql.DB
}

// NewStageRepo creates a new stage repository
func NewStageRepo(db *sql.DB) *StageRepo {
	return &StageRepo{db: db}
}

// GetStage returns the current stage for the conversation, NONE when absent
func (r *StageRepo) GetStage(chatID int64) (domain.Stage, error) {
	var raw string
	query := `SELECT stage FROM stages WHERE chat_id = $1`
	err := r.db.QueryRow(query, chatID).Scan(&raw)

	if err == sql.ErrNoRows {
		return domain.StageNone, nil
	}
	if err != nil {
		return domain.StageNone, err
	}

	return domain.ParseStage(raw), nil
}

// SetStage unconditionally overwrites the stage for the conversation
func (r *StageRepo) SetStage(chatID int64, stage domain.Stage) error {
	query := `
		INSERT INTO stages (chat_id, stage)
		VALUES ($1, $2)
		ON CONFLICT (chat_id)
		DO UPDATE SET stage = EXCLUDED.stage
	`
	_, err := r.db.Exec(query, chatID, string(stage))
	return err
}
