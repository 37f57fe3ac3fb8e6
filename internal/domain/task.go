package domain

// TaskPage is one page of pending sync tasks. Valid is false when the
// integration binding was revoked.
type TaskPage struct {
	Valid   bool
	Limit   int
	TaskIDs []string
}

// IntegrationStatus is the remote view of the account binding.
type IntegrationStatus struct {
	Valid           bool
	FailedTaskCount int
}

// AccountStatus is the combined local and remote validity of a credential.
type AccountStatus struct {
	Valid           bool
	FailedTaskCount int
}

// MaterializeResult reports what happened to one task.
type MaterializeResult struct {
	PluginEnabled bool
	TaskExists    bool
	Synced        bool
	Path          string
}

// FolderResult distinguishes a new folder from one that was already there.
type FolderResult int

const (
	FolderCreated FolderResult = iota
	FolderExists
)

// LoginStatus is one poll response of a login session.
type LoginStatus struct {
	Approved         bool
	Token            string
	UserID           string
	UserName         string
	Avatar           string
	InvalidSessionID bool
}
