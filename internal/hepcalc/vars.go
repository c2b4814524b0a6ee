package hepcalc

var (
	Debug = false // set to true to record and dump per-stage statistics
	// Compile time checks that both reporters satisfy Reporter
	_ Reporter = TextReporter{}
	_ Reporter = JSONReporter{}
)
