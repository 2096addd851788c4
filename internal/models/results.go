package models

// Result shapes mirror what the store reports for mutating operations, so
// clients can check what actually happened.

type InsertResult struct {
	InsertedID *string `json:"insertedId"`
}

type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// SettlementResult carries both halves of the payment settlement so callers
// can verify the cart cleanup count against the ids they submitted.
type SettlementResult struct {
	PaymentResult InsertResult `json:"paymentResult"`
	DeleteResult  DeleteResult `json:"deleteResult"`
}

type AdminStats struct {
	Users         int64   `json:"users"`
	ContestsItems int64   `json:"contestsItems"`
	Pay           int64   `json:"pay"`
	Revenue       float64 `json:"revenue"`
}
