package store

import (
	"catalog-app/internal/domain/catalog"

	"gorm.io/gorm"
)

// The foreign-key graph, as data. Delete order is derived from it instead of
// being hand-written per entity, so a new dependent only needs an edge and a
// scoped delete below.
type edge struct {
	child  string
	parent string
}

var fkGraph = []edge{
	{child: "games", parent: "publications"},
	{child: "games", parent: "users"},
	{child: "publications", parent: "video_games"},
	{child: "publications", parent: "platforms"},
	{child: "video_game_categories", parent: "video_games"},
	{child: "video_game_categories", parent: "categories"},
}

// deleteOrder returns the tables whose rows must go before a row of root
// can, deepest dependents first (depth-first post-order over fkGraph).
func deleteOrder(root string) []string {
	var order []string
	seen := map[string]bool{root: true}
	var visit func(parent string)
	visit = func(parent string) {
		for _, e := range fkGraph {
			if e.parent != parent || seen[e.child] {
				continue
			}
			seen[e.child] = true
			visit(e.child)
			order = append(order, e.child)
		}
	}
	visit(root)
	return order
}

// childDeletes maps a root table to the delete statement for each dependent
// table, scoped to one root key. Statements are parameterized; the key never
// enters statement text.
var childDeletes = map[string]map[string]func(tx *gorm.DB, key any) error{
	"video_games": {
		"games": func(tx *gorm.DB, key any) error {
			sub := tx.Model(&catalog.Publication{}).Select("id").Where("video_game_id = ?", key)
			return tx.Where("publication_id IN (?)", sub).Delete(&catalog.Game{}).Error
		},
		"publications": func(tx *gorm.DB, key any) error {
			return tx.Where("video_game_id = ?", key).Delete(&catalog.Publication{}).Error
		},
		"video_game_categories": func(tx *gorm.DB, key any) error {
			return tx.Exec("DELETE FROM video_game_categories WHERE video_game_id = ?", key).Error
		},
	},
	"platforms": {
		"games": func(tx *gorm.DB, key any) error {
			sub := tx.Model(&catalog.Publication{}).Select("id").Where("platform_code = ?", key)
			return tx.Where("publication_id IN (?)", sub).Delete(&catalog.Game{}).Error
		},
		"publications": func(tx *gorm.DB, key any) error {
			return tx.Where("platform_code = ?", key).Delete(&catalog.Publication{}).Error
		},
	},
	"publications": {
		"games": func(tx *gorm.DB, key any) error {
			return tx.Where("publication_id = ?", key).Delete(&catalog.Game{}).Error
		},
	},
	"categories": {
		"video_game_categories": func(tx *gorm.DB, key any) error {
			return tx.Exec("DELETE FROM video_game_categories WHERE category_id = ?", key).Error
		},
	},
	"users": {
		"games": func(tx *gorm.DB, key any) error {
			return tx.Where("user_id = ?", key).Delete(&catalog.Game{}).Error
		},
	},
}

// cascadeDelete clears every dependent of one root row inside tx, in
// topological order. Each step waits on the previous one; any error aborts
// the remaining plan and rolls the transaction back.
func cascadeDelete(tx *gorm.DB, root string, key any) error {
	steps := childDeletes[root]
	for _, table := range deleteOrder(root) {
		step, ok := steps[table]
		if !ok {
			// reachable in the graph but out of this root's scope
			continue
		}
		if err := step(tx, key); err != nil {
			return err
		}
	}
	return nil
}
