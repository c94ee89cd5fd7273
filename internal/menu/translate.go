package menu

import (
	"github.com/MosaabBleik/menu-service/internal/models"
	"github.com/MosaabBleik/menu-service/internal/store"
)

// itemFromRow renames a store row to its JSON shape. The column tags of
// store.MenuRow and the json tags of models.MenuItem form the renaming
// table; created_at becomes createdAt.
func itemFromRow(row store.MenuRow) models.MenuItem {
	return models.MenuItem{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Price:       row.Price,
		Available:   row.Available,
		CreatedAt:   row.CreatedAt.UTC(),
	}
}
