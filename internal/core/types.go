package core

const (
	AppName    = "termcore"
	AppVersion = "0.1.0"
)

// ClearScreen is the result of the clear verb. Front ends without a real
// terminal treat a result equal to it as a request to wipe their output.
const ClearScreen = "\x1b[2J\x1b[1;1H"

// Result is the outcome of one dispatch. Front ends that only speak text use
// Output; Failed lets richer surfaces style errors differently.
type Result struct {
	Output string
	Failed bool
}

func (r Result) String() string {
	return r.Output
}

func Success(output string) Result {
	return Result{Output: output}
}

func Failure(output string) Result {
	return Result{Output: output, Failed: true}
}
