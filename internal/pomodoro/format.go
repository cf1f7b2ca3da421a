package pomodoro

import "fmt"

// FormatTime renders seconds as m:ss. Minutes are not padded.
func FormatTime(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	return fmt.Sprintf("%d:%02d", totalSeconds/60, totalSeconds%60)
}
