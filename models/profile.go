package models

import "time"

// KYC verification states a profile can be in.
const (
	KYCVerified   = "verified"
	KYCPending    = "pending"
	KYCUnverified = "unverified"
)

// Profile is the marketplace identity record resolved by the compliance gate
// and the transaction router. Profile storage itself lives outside this core;
// only the fields the gate reads are modeled here.
type Profile struct {
	LaundrID    string    `bson:"laundr_id" json:"laundr_id"`
	DisplayName string    `bson:"display_name" json:"display_name"`
	Email       string    `bson:"email" json:"email"`
	KYCStatus   string    `bson:"kyc_status" json:"kyc_status"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
