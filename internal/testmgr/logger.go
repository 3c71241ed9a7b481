package testmgr

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"utest/pkg/utest/core"
)

// Implementer of logrus.Hook interface to tee log messages from the test
// logger to the suite logger
type testLogTee struct {
	suiteLogger *logrus.Logger
	testID      string
}

func (tee testLogTee) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (tee testLogTee) Fire(entry *logrus.Entry) error {
	// Make a shallow copy so that we can modify the logger pointer
	newEntry := tee.suiteLogger.WithFields(entry.Data)
	newEntry.Caller = entry.Caller
	newEntry.Log(entry.Level, fmt.Sprintf("[%s] > %s", tee.testID, entry.Message))
	return nil
}

// capturingLogger is the logger handed to a single test execution. Every
// entry is kept in memory and forwarded to the suite logger.
type capturingLogger struct {
	testID    string
	suite     *logrus.Logger
	log       *logrus.Logger
	logBuffer bytes.Buffer
}

func newCapturingLogger(testID string, suite *logrus.Logger) *capturingLogger {
	cl := &capturingLogger{
		testID: testID,
		suite:  suite,
		log:    logrus.New(),
	}

	cl.log.SetLevel(logrus.TraceLevel)
	cl.log.SetOutput(&cl.logBuffer)
	cl.log.SetFormatter(&logrus.TextFormatter{
		ForceColors:      true,
		DisableTimestamp: false,
	})
	cl.log.AddHook(testLogTee{
		suiteLogger: suite,
		testID:      testID,
	})
	cl.log.SetReportCaller(true)

	return cl
}

// close records the final status, detaches the buffer and returns the
// captured lines.
func (cl *capturingLogger) close(out *core.Outcome) []string {
	cl.log.SetReportCaller(false)
	// The runner reports the status to the suite logger itself
	cl.log.ReplaceHooks(make(logrus.LevelHooks))
	localEntry := logrus.NewEntry(cl.log)

	if out.ErrMessage != "" {
		localEntry = localEntry.WithField("reason", out.ErrMessage)
	}

	localEntry.Log(out.Status.LogLevel(), out.Status.String())

	// Close this logger
	cl.log.Out = io.Discard

	return cl.lines()
}

func (cl *capturingLogger) lines() []string {
	text := strings.TrimRight(cl.logBuffer.String(), "\n")
	if text == "" {
		return nil
	}

	return strings.Split(text, "\n")
}
