package tuicore

import "github.com/sirupsen/logrus"

// Logger receives structured diagnostics from the terminal driver and
// backend — raw-mode transitions and the backend resize that forces the
// next draw to be full. Hot paths (diff, encoder) never
// log. Defaults to WarnLevel so normal operation is silent; applications
// may reconfigure it (level, output, formatter) before starting a runner.
var Logger = newDefaultLogger()

func newDefaultLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}
