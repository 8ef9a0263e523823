package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"chordtabs/internal/tabs"
)

// Stats counts the rows written by SaveDictionary.
type Stats struct {
	Types     int
	Aliases   int
	Templates int
}

// SaveDictionary replaces the stored dictionary with d in one transaction.
func (s *Store) SaveDictionary(ctx context.Context, d *tabs.Dictionary) (Stats, error) {
	var stats Stats

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return stats, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// Drop whatever was stored before
	for _, table := range []string{"templates", "chord_aliases", "chord_types", "meta"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return stats, fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO meta (key, value) VALUES ('version', ?)`, strconv.Itoa(d.Version())); err != nil {
		return stats, fmt.Errorf("failed to write version: %w", err)
	}

	typeStmt, err := tx.PrepareContext(ctx, `INSERT INTO chord_types (name) VALUES (?)`)
	if err != nil {
		return stats, fmt.Errorf("failed to prepare chord type statement: %w", err)
	}
	defer typeStmt.Close()

	aliasStmt, err := tx.PrepareContext(ctx, `INSERT INTO chord_aliases (type_id, alias) VALUES (?, ?)`)
	if err != nil {
		return stats, fmt.Errorf("failed to prepare alias statement: %w", err)
	}
	defer aliasStmt.Close()

	templateStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO templates (type_id, shape, ordinal, frets, tones)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return stats, fmt.Errorf("failed to prepare template statement: %w", err)
	}
	defer templateStmt.Close()

	for _, typ := range d.Types() {
		res, err := typeStmt.ExecContext(ctx, string(typ))
		if err != nil {
			return stats, fmt.Errorf("failed to insert chord type %q: %w", typ, err)
		}
		typeID, err := res.LastInsertId()
		if err != nil {
			return stats, fmt.Errorf("failed to get chord type id: %w", err)
		}
		stats.Types++

		for _, alias := range d.Aliases(typ) {
			if _, err := aliasStmt.ExecContext(ctx, typeID, alias); err != nil {
				return stats, fmt.Errorf("failed to insert alias %q: %w", alias, err)
			}
			stats.Aliases++
		}

		for _, shape := range d.Shapes(typ) {
			for i, tmpl := range d.Templates(typ, shape) {
				rec := tmpl.Record()
				frets, err := json.Marshal(rec.Frets)
				if err != nil {
					return stats, fmt.Errorf("failed to encode frets: %w", err)
				}
				tones, err := json.Marshal(rec.Tones)
				if err != nil {
					return stats, fmt.Errorf("failed to encode tones: %w", err)
				}
				if _, err := templateStmt.ExecContext(ctx, typeID, string(shape), i, string(frets), string(tones)); err != nil {
					return stats, fmt.Errorf("failed to insert %s %s template %d: %w", typ, shape, i, err)
				}
				stats.Templates++
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return stats, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.Info("Stored chord dictionary",
		zap.Int("types", stats.Types),
		zap.Int("aliases", stats.Aliases),
		zap.Int("templates", stats.Templates))
	return stats, nil
}

// LoadDictionary reads the stored dictionary and validates it.
// It returns ErrEmpty when nothing has been saved yet.
func (s *Store) LoadDictionary(ctx context.Context) (*tabs.Dictionary, error) {
	f := tabs.File{Types: make(map[string]tabs.TypeEntry)}

	var version string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = 'version'`).Scan(&version)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrEmpty
	case err != nil:
		return nil, fmt.Errorf("failed to read version: %w", err)
	}
	if f.Version, err = strconv.Atoi(version); err != nil {
		return nil, fmt.Errorf("invalid stored version %q: %w", version, err)
	}

	// Chord types, keyed by row id for the joins below
	names, err := s.loadTypes(ctx, &f)
	if err != nil {
		return nil, err
	}

	if err := s.loadAliases(ctx, names, &f); err != nil {
		return nil, err
	}
	count, err := s.loadTemplates(ctx, names, &f)
	if err != nil {
		return nil, err
	}

	d, err := tabs.NewDictionary(f)
	if err != nil {
		return nil, fmt.Errorf("stored dictionary: %w", err)
	}

	s.logger.Info("Loaded chord dictionary",
		zap.Int("types", len(names)),
		zap.Int("templates", count))
	return d, nil
}

// loadTypes closes its rows before returning: the store holds one connection.
func (s *Store) loadTypes(ctx context.Context, f *tabs.File) (map[int64]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM chord_types`)
	if err != nil {
		return nil, fmt.Errorf("failed to query chord types: %w", err)
	}
	defer rows.Close()

	names := make(map[int64]string)
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("failed to scan chord type: %w", err)
		}
		names[id] = name
		f.Types[name] = tabs.TypeEntry{Shapes: make(map[string][]tabs.Record)}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read chord types: %w", err)
	}
	return names, nil
}

func (s *Store) loadAliases(ctx context.Context, names map[int64]string, f *tabs.File) error {
	rows, err := s.db.QueryContext(ctx, `SELECT type_id, alias FROM chord_aliases ORDER BY id`)
	if err != nil {
		return fmt.Errorf("failed to query aliases: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var typeID int64
		var alias string
		if err := rows.Scan(&typeID, &alias); err != nil {
			return fmt.Errorf("failed to scan alias: %w", err)
		}
		name, ok := names[typeID]
		if !ok {
			return fmt.Errorf("alias %q references missing chord type %d", alias, typeID)
		}
		entry := f.Types[name]
		entry.Aliases = append(entry.Aliases, alias)
		f.Types[name] = entry
	}
	return rows.Err()
}

func (s *Store) loadTemplates(ctx context.Context, names map[int64]string, f *tabs.File) (int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT type_id, shape, frets, tones
		FROM templates
		ORDER BY type_id, shape, ordinal
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to query templates: %w", err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var typeID int64
		var shape, frets, tones string
		if err := rows.Scan(&typeID, &shape, &frets, &tones); err != nil {
			return count, fmt.Errorf("failed to scan template: %w", err)
		}
		name, ok := names[typeID]
		if !ok {
			return count, fmt.Errorf("template references missing chord type %d", typeID)
		}

		var rec tabs.Record
		if err := json.Unmarshal([]byte(frets), &rec.Frets); err != nil {
			return count, fmt.Errorf("failed to decode %s %s frets: %w", name, shape, err)
		}
		if err := json.Unmarshal([]byte(tones), &rec.Tones); err != nil {
			return count, fmt.Errorf("failed to decode %s %s tones: %w", name, shape, err)
		}

		f.Types[name].Shapes[shape] = append(f.Types[name].Shapes[shape], rec)
		count++
	}
	return count, rows.Err()
}
