package cli

import (
	"github.com/spf13/cobra"
)

// helpTemplate renders cobra's usage block followed by the exit code table.
const helpTemplate = `{{with (or .Long .Short)}}{{. | trimTrailingWhitespaces}}

{{end}}{{if or .Runnable .HasSubCommands}}{{.UsageString}}{{end}}
EXIT CODES
  0   Success              Command completed
  1   Error                Runtime failure (other codes follow the error, e.g. 2 not found, 13 permission)
  2   Usage                Invalid flags or arguments; uncaught error with --traceback
  130 Interrupted          SIGINT received
  141 BrokenPipe           Output pipe closed (configurable: broken_pipe_exit_code)
  143 Terminated           SIGTERM received
  149 Break                Console break received

ENVIRONMENT
  LIB_TEMPLATE_TRACEBACK               Same as --traceback
  LIB_TEMPLATE_BROKEN_PIPE_EXIT_CODE   Exit code used when stdout is closed early
  LIB_TEMPLATE_MESSAGE_LIMIT           Max characters of a one-line error message (default: 500)
  LIB_TEMPLATE_TRACEBACK_LIMIT         Max characters of a --traceback cause chain (default: 10000)
  LIB_TEMPLATE_NO_COLOR                Disable colored output
`

// SetCustomHelp configures cmd (and, by inheritance, its subcommands) to use
// the lib-template help template.
func SetCustomHelp(cmd *cobra.Command) {
	cmd.SetHelpTemplate(helpTemplate)
}
