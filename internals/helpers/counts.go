package helper

import "gorm.io/gorm"

type groupedCount struct {
	ID uint
	N  int64
}

// CountGrouped counts rows of table per keyCol value in ids. Extra filters
// (object_type, is_deleted) are expected on db already.
func CountGrouped(db *gorm.DB, table, keyCol string, ids []uint) (map[uint]int64, error) {
	out := make(map[uint]int64, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []groupedCount
	err := db.Table(table).
		Select(keyCol+" AS id, COUNT(*) AS n").
		Where(keyCol+" IN ?", ids).
		Group(keyCol).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.ID] = r.N
	}
	return out, nil
}
