package entity

// DisplayedState is the user-facing status derived from a request revision
// and the concurrently most recent data sourcing revision. It gives finer
// visibility into the otherwise opaque Processing period.
type DisplayedState string

const (
	DisplayedStateOpen             DisplayedState = "Open"
	DisplayedStateProcessing       DisplayedState = "Processing"
	DisplayedStateInitialized      DisplayedState = "Initialized"
	DisplayedStateDocumentSourcing DisplayedState = "DocumentSourcing"
	DisplayedStateDataExtraction   DisplayedState = "DataExtraction"
	DisplayedStateProcessed        DisplayedState = "Processed"
	DisplayedStateWithdrawn        DisplayedState = "Withdrawn"
)

// HistoryEntry is one row of the reconciled request timeline. In the
// compact history AdminComment is always nil; in the extended history it
// carries the most recent comment forward until overwritten.
type HistoryEntry struct {
	Timestamp      int64
	DisplayedState DisplayedState
	AdminComment   *string
}
