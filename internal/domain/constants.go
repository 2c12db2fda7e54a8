package domain

// Record Stages
const (
	StageTender   Stage = "TENDER"
	StageContract Stage = "CONTRACT"
)

// List Exports for API
var Stages = []Stage{
	StageTender,
	StageContract,
}

// AllBuyers is the buyer filter value the client sends for "any buyer".
const AllBuyers = "0"

// Search page bounds
const (
	MinSearchLimit = 1
	MaxSearchLimit = 100
)
