package provisioning

import (
	"github.com/samber/lo"

	"github.com/imamik/eksbp/internal/config"
)

// SplitSubnetSelections returns the explicit subnet ids named by selections,
// deduplicated in order, and the selections that name no ids at all.
func SplitSubnetSelections(selections []config.SubnetSelection) ([]string, []config.SubnetSelection) {
	ids := lo.Uniq(lo.FlatMap(selections, func(s config.SubnetSelection, _ int) []string {
		return s.SubnetIDs
	}))
	unresolved := lo.Filter(selections, func(s config.SubnetSelection, _ int) bool {
		return len(s.SubnetIDs) == 0
	})
	return ids, unresolved
}
