// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package study

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pkg/errors"
)

const (
	// DriverName is the database/sql driver registered by pgx
	DriverName = "pgx"

	checkViolation   = "23514"
	notNullViolation = "23502"

	studyColumns = `study_id, title, authors, keywords, abstract, category, country, study_year,
		doi, peer_reviewed, approved, uploader, nr_downloads, experiments`
)

//go:embed migrations/*.sql
var migrations embed.FS

// PostgresOptions configures the connection pool behind a PostgresStore
type PostgresOptions struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// OpenPostgres opens and pings a connection pool
func OpenPostgres(ctx context.Context, o PostgresOptions) (*sql.DB, error) {
	if len(o.DSN) == 0 {
		return nil, errors.New("a postgres DSN is required")
	}

	db, err := sql.Open(DriverName, o.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	if o.MaxOpenConns > 0 {
		db.SetMaxOpenConns(o.MaxOpenConns)
	}

	if o.MaxIdleConns > 0 {
		db.SetMaxIdleConns(o.MaxIdleConns)
	}

	if o.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(o.ConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "ping database")
	}

	return db, nil
}

func newMigrate(db *sql.DB) (*migrate.Migrate, error) {
	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return nil, errors.Wrap(err, "load migrations")
	}

	driver, err := migratepgx.WithInstance(db, &migratepgx.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "migration driver")
	}

	m, err := migrate.NewWithInstance("iofs", source, "pgx5", driver)
	return m, errors.Wrap(err, "create migrator")
}

// Migrate applies every embedded migration that has not yet been applied.  Running
// against an up to date schema is not an error.
func Migrate(db *sql.DB) error {
	m, err := newMigrate(db)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "apply migrations")
	}

	return nil
}

// PostgresStore is a Store backed by the studies table.  Experiments are kept as JSONB.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type rowScanner interface {
	Scan(...interface{}) error
}

func scanStudy(row rowScanner) (Study, error) {
	var (
		s                 Study
		category, country sql.NullString
		experiments       []byte
	)

	err := row.Scan(
		&s.ID, &s.Title, &s.Authors, &s.Keywords, &s.Abstract, &category, &country, &s.Year,
		&s.DOI, &s.PeerReviewed, &s.Approved, &s.Uploader, &s.Downloads, &experiments,
	)

	if err != nil {
		return Study{}, err
	}

	if category.Valid {
		s.Category = &Named{Name: category.String}
	}

	if country.Valid {
		s.Country = &Named{Name: country.String}
	}

	s.Experiments = []Experiment{}
	if len(experiments) > 0 {
		if err := json.Unmarshal(experiments, &s.Experiments); err != nil {
			return Study{}, errors.Wrapf(err, "decode experiments of study %d", s.ID)
		}
	}

	return s, nil
}

func nullName(n *Named) sql.NullString {
	if n == nil {
		return sql.NullString{}
	}

	return sql.NullString{String: n.Name, Valid: true}
}

// escapeLike protects the LIKE wildcards in a user supplied term
func escapeLike(term string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
}

// buildListQuery renders the SELECT for a filter along with its arguments
func buildListQuery(f Filter) (string, []interface{}) {
	var (
		query strings.Builder
		args  []interface{}
	)

	query.WriteString("SELECT " + studyColumns + " FROM studies WHERE TRUE")
	next := func(value interface{}) string {
		args = append(args, value)
		return "$" + strconv.Itoa(len(args))
	}

	if f.Approved != nil {
		query.WriteString(" AND approved = " + next(*f.Approved))
	}

	if len(f.Title) > 0 {
		query.WriteString(" AND title ILIKE " + next("%"+escapeLike(f.Title)+"%"))
	}

	if len(f.Category) > 0 {
		query.WriteString(" AND category = " + next(f.Category))
	}

	query.WriteString(" ORDER BY study_id")
	return query.String(), args
}

// translate maps driver errors onto this package's errors
func translate(err error, action string) error {
	var pgErr *pgconn.PgError
	switch {
	case err == nil:
		return nil

	case errors.Is(err, sql.ErrNoRows):
		return ErrNotFound

	case errors.As(err, &pgErr) && (pgErr.Code == checkViolation || pgErr.Code == notNullViolation):
		return errors.WithMessage(ErrInvalid, pgErr.Message)

	default:
		return errors.Wrap(err, action)
	}
}

func (ps *PostgresStore) List(ctx context.Context, f Filter) ([]Study, error) {
	query, args := buildListQuery(f)
	rows, err := ps.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translate(err, "list studies")
	}

	defer rows.Close()

	result := []Study{}
	for rows.Next() {
		s, err := scanStudy(rows)
		if err != nil {
			return nil, translate(err, "scan study")
		}

		result = append(result, s)
	}

	return result, translate(rows.Err(), "list studies")
}

func (ps *PostgresStore) Get(ctx context.Context, id int64) (Study, error) {
	s, err := scanStudy(ps.db.QueryRowContext(ctx, "SELECT "+studyColumns+" FROM studies WHERE study_id = $1", id))
	return s, translate(err, "get study")
}

func (ps *PostgresStore) Create(ctx context.Context, s Study) (Study, error) {
	if err := s.Validate(); err != nil {
		return Study{}, err
	}

	if s.Experiments == nil {
		s.Experiments = []Experiment{}
	}

	experiments, err := json.Marshal(s.Experiments)
	if err != nil {
		return Study{}, errors.Wrap(err, "encode experiments")
	}

	q := `
		INSERT INTO studies (title, authors, keywords, abstract, category, country, study_year,
			doi, peer_reviewed, approved, uploader, nr_downloads, experiments)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + studyColumns

	created, err := scanStudy(ps.db.QueryRowContext(ctx, q,
		s.Title, s.Authors, s.Keywords, s.Abstract, nullName(s.Category), nullName(s.Country), s.Year,
		s.DOI, s.PeerReviewed, s.Approved, s.Uploader, s.Downloads, string(experiments),
	))

	return created, translate(err, "insert study")
}

func (ps *PostgresStore) Approve(ctx context.Context, id int64) (Study, error) {
	s, err := scanStudy(ps.db.QueryRowContext(ctx,
		"UPDATE studies SET approved = TRUE WHERE study_id = $1 RETURNING "+studyColumns, id,
	))

	return s, translate(err, "approve study")
}

func (ps *PostgresStore) Delete(ctx context.Context, id int64) error {
	result, err := ps.db.ExecContext(ctx, "DELETE FROM studies WHERE study_id = $1", id)
	if err != nil {
		return translate(err, "delete study")
	}

	n, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "delete study")
	}

	if n == 0 {
		return ErrNotFound
	}

	return nil
}
