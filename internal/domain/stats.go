package domain

// StatusDistribution lightweight status counts for the admin dashboard
// header. Pending, Active and Completed bucket the working statuses;
// Total counts every order including cancelled ones.
type StatusDistribution struct {
	Pending   int
	Active    int
	Completed int
	Total     int
}

// DistributionOf builds the distribution from a full order set
func DistributionOf(orders []*RepairOrder) StatusDistribution {
	var d StatusDistribution
	for _, order := range orders {
		d.Total++
		switch bucketOf(order.Status) {
		case bucketPending:
			d.Pending++
		case bucketActive:
			d.Active++
		case bucketCompleted:
			d.Completed++
		}
	}
	return d
}

// Shift moves one order between status buckets in place. Used after a
// confirmed status update so the dashboard counters stay current without
// re-fetching the order set; calendar occupancy is deliberately left
// untouched until the next explicit reload.
func (d *StatusDistribution) Shift(from, to OrderStatus) {
	switch bucketOf(from) {
	case bucketPending:
		d.Pending--
	case bucketActive:
		d.Active--
	case bucketCompleted:
		d.Completed--
	}
	switch bucketOf(to) {
	case bucketPending:
		d.Pending++
	case bucketActive:
		d.Active++
	case bucketCompleted:
		d.Completed++
	}
}

type statusBucket int

const (
	bucketOther statusBucket = iota
	bucketPending
	bucketActive
	bucketCompleted
)

func bucketOf(s OrderStatus) statusBucket {
	switch s {
	case StatusPending:
		return bucketPending
	case StatusConfirmed, StatusInProgress, StatusDelayed:
		return bucketActive
	case StatusCompleted:
		return bucketCompleted
	default:
		return bucketOther
	}
}
