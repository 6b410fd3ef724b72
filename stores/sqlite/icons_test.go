// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package store_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/mdhender/svgicons/catalog"
	"github.com/mdhender/svgicons/renderer"
	store "github.com/mdhender/svgicons/stores/sqlite"
)

func newStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLiteStore(context.Background())
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveSetLoadSet_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	r, err := renderer.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	for _, set := range []*catalog.Set{catalog.Lucide(), catalog.Outline()} {
		if _, err := s.SaveSet(ctx, set); err != nil {
			t.Fatalf("save %s: %v", set.Name(), err)
		}
		loaded, err := s.LoadSet(ctx, set.Name())
		if err != nil {
			t.Fatalf("load %s: %v", set.Name(), err)
		}
		if got, want := loaded.Names(), set.Names(); !reflect.DeepEqual(got, want) {
			t.Fatalf("%s: names = %v, want %v", set.Name(), got, want)
		}
		for _, icon := range set.All() {
			got, ok := loaded.Lookup(icon.Name)
			if !ok {
				t.Fatalf("%s: %s missing after load", set.Name(), icon.Name)
			}
			if got.Digest() != icon.Digest() {
				t.Errorf("%s: %s: digest changed", set.Name(), icon.Name)
			}
			// stored numbers come back as float64, the markup must not change
			if a, b := got.Render(r, renderer.Size(32)).String(), icon.Render(r, renderer.Size(32)).String(); a != b {
				t.Errorf("%s: %s: markup\n%s\nwant\n%s", set.Name(), icon.Name, a, b)
			}
			if !reflect.DeepEqual(got.Tags, icon.Tags) {
				t.Errorf("%s: %s: tags = %v, want %v", set.Name(), icon.Name, got.Tags, icon.Tags)
			}
		}
	}

	names, err := s.SetNames(ctx)
	if err != nil {
		t.Fatalf("set names: %v", err)
	}
	if want := []string{"lucide", "outline"}; !reflect.DeepEqual(names, want) {
		t.Fatalf("set names = %v, want %v", names, want)
	}
}

func TestSaveSet_NestedNodes(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	icon := catalog.Icon{
		Name: "nested",
		Nodes: []renderer.Node{
			renderer.GroupNode(renderer.Attrs{renderer.A("opacity", 0.5)},
				renderer.PathNode("M1 1"),
				renderer.GroupNode(nil,
					renderer.CircleNode(1, 2, 3),
					renderer.LineNode(0, 0, 24, 24),
				),
			),
			{Tag: "title", Text: "nested groups"},
		},
		StrokeWidth: 1.5,
		Omit:        renderer.OmitLinecap,
	}
	set, err := catalog.NewSet("custom", icon)
	if err != nil {
		t.Fatalf("new set: %v", err)
	}
	if _, err := s.SaveSet(ctx, set); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := s.LoadSet(ctx, "custom")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	got, _ := loaded.Lookup("nested")
	if got.StrokeWidth != 1.5 || got.Omit != renderer.OmitLinecap {
		t.Fatalf("family = %v/%v, want 1.5/%v", got.StrokeWidth, got.Omit, renderer.OmitLinecap)
	}
	if n := len(got.Nodes); n != 2 {
		t.Fatalf("top-level nodes = %d, want 2", n)
	}
	inner := got.Nodes[0].Children[1]
	if inner.Tag != renderer.Group || len(inner.Children) != 2 || inner.Children[1].Tag != renderer.Line {
		t.Fatalf("inner group = %+v", inner)
	}
	if got.Nodes[1].Text != "nested groups" {
		t.Fatalf("text = %q, want %q", got.Nodes[1].Text, "nested groups")
	}
}

func TestSaveSet_Replaces(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	first, _ := catalog.NewSet("mine", catalog.Check, catalog.X)
	second, _ := catalog.NewSet("mine", catalog.Minus)
	if _, err := s.SaveSet(ctx, first); err != nil {
		t.Fatalf("save first: %v", err)
	}
	if _, err := s.SaveSet(ctx, second); err != nil {
		t.Fatalf("save second: %v", err)
	}
	loaded, err := s.LoadSet(ctx, "mine")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got, want := loaded.Names(), []string{"minus"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("names = %v, want %v", got, want)
	}
}

func TestLoadSet_NotFound(t *testing.T) {
	s := newStore(t)
	if _, err := s.LoadSet(context.Background(), "missing"); !errors.Is(err, store.ErrSetNotFound) {
		t.Fatalf("load: err = %v, want ErrSetNotFound", err)
	}
	if err := s.DeleteSet(context.Background(), "missing"); !errors.Is(err, store.ErrSetNotFound) {
		t.Fatalf("delete: err = %v, want ErrSetNotFound", err)
	}
}

func TestFileStore_RequiresExistingFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "icons.db")

	if _, err := store.NewSQLiteStoreWithConfig(ctx, store.StoreConfig{Path: path}); err == nil {
		t.Fatalf("open missing file: want error")
	}

	s, err := store.NewSQLiteStoreWithConfig(ctx, store.StoreConfig{Path: path, InitSchema: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.SaveSet(ctx, catalog.Outline()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := store.CompactDatabase(ctx, path); err != nil {
		t.Fatalf("compact: %v", err)
	}

	s, err = store.NewSQLiteStoreWithConfig(ctx, store.StoreConfig{Path: path})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	loaded, err := s.LoadSet(ctx, "outline")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Len() != catalog.Outline().Len() {
		t.Fatalf("icons = %d, want %d", loaded.Len(), catalog.Outline().Len())
	}
}

func TestLoadSet_RejectsCorruptRows(t *testing.T) {
	const iconNodes = `SELECT n.id FROM nodes n JOIN icons i ON i.id = n.icon_id WHERE i.name = ?`
	for _, tc := range []struct {
		name  string
		icon  string
		stmts []string
	}{
		{"geometry changed", "minus", []string{
			`UPDATE node_attrs SET value = 'M0 0' WHERE name = 'd' AND node_id IN (` + iconNodes + `)`,
		}},
		{"bad number", "circle", []string{
			`UPDATE node_attrs SET value = 'twelve' WHERE name = 'cx' AND node_id IN (` + iconNodes + `)`,
		}},
		{"unknown kind", "minus", []string{
			`PRAGMA ignore_check_constraints = ON`,
			`UPDATE node_attrs SET kind = 'bool' WHERE node_id IN (` + iconNodes + `)`,
		}},
		{"orphan parent", "minus", []string{
			`UPDATE nodes SET parent_id = 999999 WHERE id IN (` + iconNodes + `)`,
		}},
		{"digest changed", "minus", []string{
			`UPDATE icons SET digest = 'x' WHERE name = ?`,
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			path := filepath.Join(t.TempDir(), "icons.db")

			s, err := store.NewSQLiteStoreWithConfig(ctx, store.StoreConfig{Path: path, InitSchema: true})
			if err != nil {
				t.Fatalf("create: %v", err)
			}
			if _, err := s.SaveSet(ctx, catalog.Lucide()); err != nil {
				t.Fatalf("save: %v", err)
			}
			if err := s.Close(); err != nil {
				t.Fatalf("close: %v", err)
			}

			// foreign keys stay off on this connection so orphan rows can be written
			db, err := sql.Open("sqlite", path)
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			db.SetMaxOpenConns(1)
			for _, stmt := range tc.stmts {
				var args []any
				if stmt[0] != 'P' {
					args = append(args, tc.icon)
				}
				if _, err := db.ExecContext(ctx, stmt, args...); err != nil {
					db.Close()
					t.Fatalf("%s: %v", stmt, err)
				}
			}
			if err := db.Close(); err != nil {
				t.Fatalf("close raw: %v", err)
			}

			s, err = store.NewSQLiteStoreWithConfig(ctx, store.StoreConfig{Path: path})
			if err != nil {
				t.Fatalf("reopen: %v", err)
			}
			defer s.Close()
			_, err = s.LoadSet(ctx, "lucide")
			var corrupt *store.ErrCorruptNode
			if !errors.As(err, &corrupt) {
				t.Fatalf("load: err = %v, want *ErrCorruptNode", err)
			}
			if corrupt.Icon != tc.icon {
				t.Errorf("corrupt icon = %q, want %q", corrupt.Icon, tc.icon)
			}
		})
	}
}
