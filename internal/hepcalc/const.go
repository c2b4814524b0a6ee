package hepcalc

const (
	FormatText     = "text"
	FormatJSON     = "json"
	DefaultQ2      = 100.0
	DefaultWorkers = 4 // concurrent events in a batch; 0 means one per CPU
	Header         = "Performing a horrible calculation with momenta:"
	AnswerPrefix   = "Answer is : "
)
