package drill

import "kanadrill-go/internal/kana"

// Pool is the flat list of drillable entries for one range.
type Pool []kana.Entry

// BuildPool flattens the rows selected by r into complete entries, in table
// order. A range that matches no row yields an empty pool.
func BuildPool(ds *kana.Dataset, r kana.Range) Pool {
	pool := Pool{}
	for _, row := range ds.Rows() {
		if !r.Includes(row.Label) {
			continue
		}
		for _, e := range row.Entries {
			if e.Complete() {
				pool = append(pool, e)
			}
		}
	}
	return pool
}
