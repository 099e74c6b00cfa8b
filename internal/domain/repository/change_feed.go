package repository

// Row-change events emitted by the store after a committed write. The feed
// is a read-only observer of already-decided facts: consumers reconcile or
// re-read, they never derive new mutations from it.

type ChangeKind string

const (
	ChangeInsert ChangeKind = "insert"
	ChangeUpdate ChangeKind = "update"
	ChangeDelete ChangeKind = "delete"
)

const (
	TableItems         = "items"
	TableSaleContracts = "sale_contracts"
	TableCertificates  = "certificates"
	TableInterested    = "interested_buyers"
)

type Change struct {
	Table string      `json:"table"`
	Kind  ChangeKind  `json:"kind"`
	Key   string      `json:"key"`
	Row   interface{} `json:"row,omitempty"`
}

// ChangeFeed fans committed row changes out to local viewers.
type ChangeFeed interface {
	Publish(change Change)
	Subscribe(fn func(Change)) (unsubscribe func())
}
