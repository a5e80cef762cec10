package analyze

import (
	"os"
)

func (a *Analyzer) OpenLogFile() error {
	if a.Config.LogOutput == "" {
		return nil
	}

	logFile, err := os.OpenFile(a.Config.LogOutput, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
	a.logFile = logFile
	a.logger.SetOutput(logFile)
	return nil
}

// Close closes the log file opened for Config.LogOutput.
func (a *Analyzer) Close() error {
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	a.logger.SetOutput(a.stderr)
	return err
}
