// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mdhender/svgicons/catalog"
	"github.com/mdhender/svgicons/renderer"
)

const (
	kindString = "string"
	kindNumber = "number"
)

// SaveSet writes the set, replacing any stored set with the same name.
// It returns the set's assigned ID.
func (s *SQLiteStore) SaveSet(ctx context.Context, set *catalog.Set) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, &ErrDatabase{Op: "begin", Err: err}
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM icon_sets WHERE name = ?`, set.Name()); err != nil {
		return 0, &ErrDatabase{Op: "delete icon_set", Err: err}
	}
	result, err := tx.ExecContext(ctx,
		`INSERT INTO icon_sets (name, created_at) VALUES (?, ?)`,
		set.Name(),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, &ErrDatabase{Op: "insert icon_set", Err: err}
	}
	setID, err := result.LastInsertId()
	if err != nil {
		return 0, &ErrDatabase{Op: "insert icon_set", Err: err}
	}

	for _, icon := range set.All() {
		if err := insertIcon(ctx, tx, setID, icon); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, &ErrDatabase{Op: "commit", Err: err}
	}
	return setID, nil
}

func insertIcon(ctx context.Context, tx *sql.Tx, setID int64, icon catalog.Icon) error {
	const query = `
		INSERT INTO icons (set_id, name, stroke_width, omit, tags, digest)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	result, err := tx.ExecContext(ctx, query,
		setID,
		icon.Name,
		icon.StrokeWidth,
		int64(icon.Omit),
		strings.Join(icon.Tags, ","),
		icon.Digest(),
	)
	if err != nil {
		return &ErrDatabase{Op: "insert icon " + icon.Name, Err: err}
	}
	iconID, err := result.LastInsertId()
	if err != nil {
		return &ErrDatabase{Op: "insert icon " + icon.Name, Err: err}
	}
	return insertNodes(ctx, tx, iconID, sql.NullInt64{}, icon.Nodes)
}

func insertNodes(ctx context.Context, tx *sql.Tx, iconID int64, parentID sql.NullInt64, nodes []renderer.Node) error {
	for seq, node := range nodes {
		result, err := tx.ExecContext(ctx,
			`INSERT INTO nodes (icon_id, parent_id, seq, tag, text) VALUES (?, ?, ?, ?, ?)`,
			iconID, parentID, seq, string(node.Tag), node.Text,
		)
		if err != nil {
			return &ErrDatabase{Op: "insert node", Err: err}
		}
		nodeID, err := result.LastInsertId()
		if err != nil {
			return &ErrDatabase{Op: "insert node", Err: err}
		}
		for n, attr := range node.Attrs {
			kind, value := encodeValue(attr.Value)
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO node_attrs (node_id, seq, name, kind, value) VALUES (?, ?, ?, ?, ?)`,
				nodeID, n, attr.Name, kind, value,
			); err != nil {
				return &ErrDatabase{Op: "insert node_attr", Err: err}
			}
		}
		if err := insertNodes(ctx, tx, iconID, sql.NullInt64{Int64: nodeID, Valid: true}, node.Children); err != nil {
			return err
		}
	}
	return nil
}

func encodeValue(v any) (kind, value string) {
	switch v.(type) {
	case float64, float32, int, int64:
		return kindNumber, renderer.FormatValue(v)
	}
	return kindString, renderer.FormatValue(v)
}

func decodeValue(kind, value string) (any, error) {
	switch kind {
	case kindNumber:
		return strconv.ParseFloat(value, 64)
	case kindString:
		return value, nil
	}
	return nil, fmt.Errorf("unknown attribute kind %q", kind)
}

// SetNames lists the stored sets by name.
func (s *SQLiteStore) SetNames(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM icon_sets ORDER BY name`)
	if err != nil {
		return nil, &ErrDatabase{Op: "select icon_sets", Err: err}
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, &ErrDatabase{Op: "scan icon_set", Err: err}
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, &ErrDatabase{Op: "select icon_sets", Err: err}
	}
	return names, nil
}

// DeleteSet removes a stored set and all of its icons.
func (s *SQLiteStore) DeleteSet(ctx context.Context, name string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM icon_sets WHERE name = ?`, name)
	if err != nil {
		return &ErrDatabase{Op: "delete icon_set", Err: err}
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%s: %w", name, ErrSetNotFound)
	}
	return nil
}

type iconRow struct {
	id          int64
	name        string
	strokeWidth float64
	omit        int64
	tags        string
	digest      string
}

type nodeRow struct {
	id       int64
	parentID sql.NullInt64
	tag      string
	text     string
	attrs    renderer.Attrs
}

// LoadSet reads a stored set back into a catalog set.
// Every icon's digest is checked against the rebuilt geometry.
func (s *SQLiteStore) LoadSet(ctx context.Context, name string) (*catalog.Set, error) {
	var setID int64
	err := s.db.QueryRowContext(ctx, `SELECT id FROM icon_sets WHERE name = ?`, name).Scan(&setID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", name, ErrSetNotFound)
	} else if err != nil {
		return nil, &ErrDatabase{Op: "select icon_set", Err: err}
	}

	iconRows, err := s.selectIcons(ctx, setID)
	if err != nil {
		return nil, err
	}

	icons := make([]catalog.Icon, 0, len(iconRows))
	for _, row := range iconRows {
		nodes, err := s.selectNodes(ctx, row)
		if err != nil {
			return nil, err
		}
		icon := catalog.Icon{
			Name:        row.name,
			Nodes:       nodes,
			StrokeWidth: row.strokeWidth,
			Omit:        renderer.Omit(row.omit),
		}
		if row.tags != "" {
			icon.Tags = strings.Split(row.tags, ",")
		}
		if got := icon.Digest(); got != row.digest {
			return nil, &ErrCorruptNode{Icon: row.name, Msg: fmt.Sprintf("digest %s, stored %s", got, row.digest)}
		}
		icons = append(icons, icon)
	}

	return catalog.NewSet(name, icons...)
}

// selectIcons reads all rows before returning so the caller can issue
// further queries on a single-connection pool.
func (s *SQLiteStore) selectIcons(ctx context.Context, setID int64) ([]iconRow, error) {
	const query = `
		SELECT id, name, stroke_width, omit, tags, digest
		FROM icons
		WHERE set_id = ?
		ORDER BY name
	`
	rows, err := s.db.QueryContext(ctx, query, setID)
	if err != nil {
		return nil, &ErrDatabase{Op: "select icons", Err: err}
	}
	defer rows.Close()

	var list []iconRow
	for rows.Next() {
		var row iconRow
		if err := rows.Scan(&row.id, &row.name, &row.strokeWidth, &row.omit, &row.tags, &row.digest); err != nil {
			return nil, &ErrDatabase{Op: "scan icon", Err: err}
		}
		list = append(list, row)
	}
	if err := rows.Err(); err != nil {
		return nil, &ErrDatabase{Op: "select icons", Err: err}
	}
	return list, nil
}

func (s *SQLiteStore) selectNodes(ctx context.Context, icon iconRow) ([]renderer.Node, error) {
	const nodeQuery = `
		SELECT id, parent_id, tag, text
		FROM nodes
		WHERE icon_id = ?
		ORDER BY parent_id, seq
	`
	rows, err := s.db.QueryContext(ctx, nodeQuery, icon.id)
	if err != nil {
		return nil, &ErrDatabase{Op: "select nodes", Err: err}
	}
	var list []*nodeRow
	byID := make(map[int64]*nodeRow)
	for rows.Next() {
		row := &nodeRow{}
		if err := rows.Scan(&row.id, &row.parentID, &row.tag, &row.text); err != nil {
			rows.Close()
			return nil, &ErrDatabase{Op: "scan node", Err: err}
		}
		list = append(list, row)
		byID[row.id] = row
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return nil, &ErrDatabase{Op: "select nodes", Err: err}
	}

	const attrQuery = `
		SELECT a.node_id, a.name, a.kind, a.value
		FROM node_attrs a
		JOIN nodes n ON n.id = a.node_id
		WHERE n.icon_id = ?
		ORDER BY a.node_id, a.seq
	`
	rows, err = s.db.QueryContext(ctx, attrQuery, icon.id)
	if err != nil {
		return nil, &ErrDatabase{Op: "select node_attrs", Err: err}
	}
	defer rows.Close()
	for rows.Next() {
		var nodeID int64
		var name, kind, value string
		if err := rows.Scan(&nodeID, &name, &kind, &value); err != nil {
			return nil, &ErrDatabase{Op: "scan node_attr", Err: err}
		}
		row, ok := byID[nodeID]
		if !ok {
			return nil, &ErrCorruptNode{Icon: icon.name, NodeID: nodeID, Msg: "attribute for unknown node"}
		}
		v, err := decodeValue(kind, value)
		if err != nil {
			return nil, &ErrCorruptNode{Icon: icon.name, NodeID: nodeID, Msg: err.Error()}
		}
		row.attrs = append(row.attrs, renderer.Attr{Name: name, Value: v})
	}
	if err := rows.Err(); err != nil {
		return nil, &ErrDatabase{Op: "select node_attrs", Err: err}
	}

	// rows are ordered by parent then seq, so appending keeps sibling order
	children := make(map[int64][]*nodeRow)
	var top []*nodeRow
	for _, row := range list {
		if !row.parentID.Valid {
			top = append(top, row)
			continue
		}
		if _, ok := byID[row.parentID.Int64]; !ok {
			return nil, &ErrCorruptNode{Icon: icon.name, NodeID: row.id, Msg: "parent not in icon"}
		}
		children[row.parentID.Int64] = append(children[row.parentID.Int64], row)
	}
	return buildNodes(top, children, 0)
}

const maxNodeDepth = 64

func buildNodes(rows []*nodeRow, children map[int64][]*nodeRow, depth int) ([]renderer.Node, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	if depth > maxNodeDepth {
		return nil, &ErrCorruptNode{NodeID: rows[0].id, Msg: "node tree too deep"}
	}
	nodes := make([]renderer.Node, 0, len(rows))
	for _, row := range rows {
		kids, err := buildNodes(children[row.id], children, depth+1)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, renderer.Node{
			Tag:      renderer.Tag(row.tag),
			Attrs:    row.attrs,
			Children: kids,
			Text:     row.text,
		})
	}
	return nodes, nil
}
