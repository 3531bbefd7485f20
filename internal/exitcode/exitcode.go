package exitcode

const (
	Success        = 0
	UsageError     = 1
	RequestError   = 2
	APIError       = 3
	PartialFailure = 4
	DBConnError    = 5
	WriteError     = 6
)
