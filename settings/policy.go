package settings

import "github.com/samber/lo"

// SavePolicy lists the fields Save persists for a context: the visible set
// narrowed to what the launcher reads back for the class, console and device.
// The subset can be empty, in which case nothing is written at all.
func SavePolicy(ctx Context) []Field {
	return lo.Filter(Visible(ctx), func(f Field, _ int) bool {
		return f.def().persists(ctx)
	})
}
