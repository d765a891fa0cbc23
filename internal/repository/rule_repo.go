package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jzynonet/warner-music-guardian/internal/model"
)

type RuleRepo struct {
	pool *pgxpool.Pool
}

func NewRuleRepo(pool *pgxpool.Pool) *RuleRepo {
	return &RuleRepo{pool: pool}
}

const ruleColumns = `id, name, description, conditions, action, active, created_at`

func scanRule(row pgx.Row) (*model.AutoFlagRule, error) {
	var rule model.AutoFlagRule
	err := row.Scan(&rule.ID, &rule.Name, &rule.Description, &rule.Conditions,
		&rule.Action, &rule.Active, &rule.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// List returns all rules, newest first.
func (r *RuleRepo) List(ctx context.Context) ([]model.AutoFlagRule, error) {
	return r.list(ctx, `SELECT `+ruleColumns+` FROM auto_flag_rules ORDER BY created_at DESC`)
}

// ListActive returns the rules applied to incoming videos.
func (r *RuleRepo) ListActive(ctx context.Context) ([]model.AutoFlagRule, error) {
	return r.list(ctx, `SELECT `+ruleColumns+` FROM auto_flag_rules WHERE active = true ORDER BY id`)
}

func (r *RuleRepo) list(ctx context.Context, query string) ([]model.AutoFlagRule, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []model.AutoFlagRule
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, err
		}
		rules = append(rules, *rule)
	}
	return rules, rows.Err()
}

// Create inserts a rule. Conditions serialize to JSONB through pgx. Returns 0
// when the name already exists.
func (r *RuleRepo) Create(ctx context.Context, req model.RuleRequest) (int64, error) {
	action := req.Action
	if action == "" {
		action = model.RuleActionFlag
	}
	var desc *string
	if req.Description != "" {
		desc = &req.Description
	}
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO auto_flag_rules (name, description, conditions, action)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO NOTHING
		RETURNING id`,
		strings.TrimSpace(req.Name), desc, req.Conditions, action).Scan(&id)
	if err == pgx.ErrNoRows {
		return 0, nil
	}
	return id, err
}

// Update toggles a rule on or off.
func (r *RuleRepo) Update(ctx context.Context, id int64, req model.RuleUpdateRequest) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE auto_flag_rules SET active = COALESCE($2, active) WHERE id = $1`,
		id, req.Active)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes one rule.
func (r *RuleRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM auto_flag_rules WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
