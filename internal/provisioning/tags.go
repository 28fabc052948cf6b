package provisioning

import (
	"github.com/samber/lo"

	"github.com/imamik/eksbp/internal/util/naming"
)

// OwnershipTags returns tags with the cluster ownership tag added.
// The ownership tag cannot be overridden by tags.
func OwnershipTags(cluster string, tags map[string]string) map[string]string {
	return lo.Assign(tags, map[string]string{
		naming.ClusterTagKey(cluster): naming.OwnedTagValue,
	})
}
