package models

// ProductIDSequence names the counter document backing product id assignment.
const ProductIDSequence = "product_id"

// Counter is a named sequence document incremented atomically on each
// allocation. Seq never decreases, so ids are not reused after deletes.
type Counter struct {
	Name string `bson:"_id"`
	Seq  int64  `bson:"seq"`
}
