// Package exitcodes defines the process exit statuses rflaunch reports.
//
//   - Success (0): the runner passed, or the user chose to exit
//   - Failure (1): the runner failed, could not start, or the selection was invalid
//   - Usage (2): unknown flag, subcommand or extra arguments
//   - Interrupted (130): SIGINT/SIGTERM, so automation can tell cancellation from failure
package exitcodes

const (
	Success     = 0
	Failure     = 1
	Usage       = 2
	Interrupted = 130
)
