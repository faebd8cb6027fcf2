package constant

type StoreStatus int

const (
	StoreStatusPending  StoreStatus = 1
	StoreStatusApproved StoreStatus = 2
	StoreStatusRejected StoreStatus = 3
)

var StoreStatusLabel = map[StoreStatus]string{
	StoreStatusPending:  "pending",
	StoreStatusApproved: "approved",
	StoreStatusRejected: "rejected",
}
