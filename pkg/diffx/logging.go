// logging.go - CLI-level structured logging (SPEC_FULL.md §2 point 10).
//
// Only the cmd/diffx binary and the cobra commands in cli.go log; the
// diff engine itself stays side-effect free per spec.md §5.
package diffx

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger returns a logrus.Logger configured the way the pack's cobra
// binaries configure theirs: text formatter, timestamps, and the level
// passed in by the caller (cmd/diffx passes logrus.WarnLevel).
func NewLogger(out io.Writer, level logrus.Level) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return log
}
