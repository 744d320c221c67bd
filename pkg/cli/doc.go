/*
Package cli provides command-line interface utilities for reforgerconf.

The cli package includes output formatters, status printing, exit code
mapping, and signal handling used by the reforgerconf command.

Output Formatting:

Command results render as text for humans or JSON for pipelines:

	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(os.Stdout, result); err != nil {
		return err
	}

Exit Codes:

Validation failure and usage errors exit differently, so CI can branch
on the outcome:

	os.Exit(cli.ExitCode(err))

Signal Handling:

For watch mode and other long-running commands:

	ctx := cli.SetupSignalHandler()
	// ctx is cancelled on the first SIGINT/SIGTERM
*/
package cli
