package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rshade/aichronos/internal/config"
	"github.com/rshade/aichronos/internal/logging"
)

// setupLogging configures logging based on config file, environment, and CLI flags.
//
// The interactive timeline owns the terminal, so it never logs to stderr: it
// writes to the configured file, to the default log file under --debug, or
// nowhere.
func setupLogging(cmd *cobra.Command) logging.LogPathResult {
	loggingCfg := config.GetLoggingConfig()
	interactive := cmd == cmd.Root()

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		if interactive {
			if loggingCfg.File == "" {
				if path, err := config.DefaultLogFile(); err == nil {
					loggingCfg.File = path
				}
			}
		} else {
			loggingCfg.Format = "console"
			loggingCfg.File = ""
		}
	}

	// Ensure log directory exists after all overrides have been applied.
	if loggingCfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(loggingCfg.File), 0o700); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not create log directory: %v\n", err)
		}
	}

	lc := loggingCfg.ToLoggingConfig()
	if interactive && lc.Output == logging.OutputStderr {
		lc.Output = logging.OutputDiscard
	}
	result := logging.NewLoggerWithPath(lc)
	if interactive && result.FallbackUsed {
		reason := result.FallbackReason
		result = logging.NewLoggerWithPath(logging.Config{Output: logging.OutputDiscard})
		result.FallbackUsed = true
		result.FallbackReason = reason
	}
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := result.Logger.WithContext(cmd.Context())
	cmd.SetContext(ctx)

	logger.Info().Str("command", cmd.Name()).Msg("command started")

	return result
}

// cleanupLogging closes the log file handle.
func cleanupLogging(cmd *cobra.Command, logResult *logging.LogPathResult) error {
	logger.Debug().Str("command", cmd.Name()).Msg("command finished")
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
