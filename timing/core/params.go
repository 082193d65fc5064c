package core

// Params holds the core parameters that do not involve the execute-stage
// functional units. Values are inherited as-is from the base Minor core.
type Params struct {
	ThreadPolicy string

	Fetch1FetchLimit            int
	Fetch1LineSnapWidth         int
	Fetch1LineWidth             int
	Fetch1ToFetch2ForwardDelay  int
	Fetch1ToFetch2BackwardDelay int

	Fetch2InputBufferSize      int
	Fetch2ToDecodeForwardDelay int
	Fetch2CycleInput           bool

	DecodeInputBufferSize       int
	DecodeToExecuteForwardDelay int
	DecodeInputWidth            int
	DecodeCycleInput            bool

	ExecuteInputWidth          int
	ExecuteCycleInput          bool
	ExecuteIssueLimit          int
	ExecuteMemoryIssueLimit    int
	ExecuteCommitLimit         int
	ExecuteMemoryCommitLimit   int
	ExecuteInputBufferSize     int
	ExecuteMaxAccessesInMemory int
	ExecuteBranchDelay         int

	ExecuteLSQMaxStoreBufferStoresPerCycle int
	ExecuteLSQRequestsQueueSize            int
	ExecuteLSQTransfersQueueSize           int
	ExecuteLSQStoreBufferSize              int

	ExecuteSetTraceTimeOnCommit  bool
	ExecuteSetTraceTimeOnIssue   bool
	ExecuteAllowEarlyMemoryIssue bool
	EnableIdling                 bool

	// BranchPredictor names the branch predictor the pipeline should use.
	BranchPredictor string
}

// DefaultParams returns the base Minor core parameters.
func DefaultParams() Params {
	return Params{
		ThreadPolicy: "RoundRobin",

		Fetch1FetchLimit:            1,
		Fetch1LineSnapWidth:         0,
		Fetch1LineWidth:             0,
		Fetch1ToFetch2ForwardDelay:  1,
		Fetch1ToFetch2BackwardDelay: 1,

		Fetch2InputBufferSize:      2,
		Fetch2ToDecodeForwardDelay: 1,
		Fetch2CycleInput:           true,

		DecodeInputBufferSize:       3,
		DecodeToExecuteForwardDelay: 1,
		DecodeInputWidth:            2,
		DecodeCycleInput:            true,

		ExecuteInputWidth:          2,
		ExecuteCycleInput:          true,
		ExecuteIssueLimit:          2,
		ExecuteMemoryIssueLimit:    1,
		ExecuteCommitLimit:         2,
		ExecuteMemoryCommitLimit:   1,
		ExecuteInputBufferSize:     7,
		ExecuteMaxAccessesInMemory: 2,
		ExecuteBranchDelay:         1,

		ExecuteLSQMaxStoreBufferStoresPerCycle: 2,
		ExecuteLSQRequestsQueueSize:            1,
		ExecuteLSQTransfersQueueSize:           2,
		ExecuteLSQStoreBufferSize:              5,

		ExecuteSetTraceTimeOnCommit:  true,
		ExecuteSetTraceTimeOnIssue:   false,
		ExecuteAllowEarlyMemoryIssue: true,
		EnableIdling:                 true,

		BranchPredictor: "TournamentBP",
	}
}
