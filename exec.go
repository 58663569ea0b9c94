package iconkit

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/esimov/iconkit/utils"
	"golang.org/x/term"
)

// Ops runs a build from the command line configuration and reports its
// progress the way the CLI presents it.
type Ops struct {
	Config Config
	// Stdout receives the build summary, Stderr the progress indicator and
	// the failure report. Nil writers default to the process streams.
	Stdout, Stderr io.Writer
	// Interactive enables colors and the progress indicator.
	Interactive bool
}

// NewOps returns the operations for cfg, detecting whether stderr is a terminal.
func NewOps(cfg Config) *Ops {
	return &Ops{
		Config:      cfg,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Interactive: term.IsTerminal(int(os.Stderr.Fd())),
	}
}

// Execute runs the build with the given provider. On failure the full report
// has already been written to Stderr when the error is returned.
func (op *Ops) Execute(p Provider) error {
	stdout, stderr := op.Stdout, op.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	deco := utils.Decorator(op.Interactive)

	if op.Config.Debug {
		SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer SetLogger(nil)
	}

	var spinner *utils.Spinner
	if op.Interactive {
		spinner = utils.NewSpinner(stderr, progressMessage(deco, Optimizing), time.Millisecond*80, true)

		// Capture CTRL-C signal and restores back the cursor visibility.
		signalChan := make(chan os.Signal, 1)
		done := make(chan struct{})
		signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
		defer func() {
			signal.Stop(signalChan)
			close(done)
		}()
		go func() {
			select {
			case <-signalChan:
				spinner.RestoreCursor()
				os.Exit(1)
			case <-done:
			}
		}()
	}

	pipeline := NewPipeline(p, op.Config.BuildOptions())
	source := op.Config.Source
	pipeline.OnTransition = func(from, to State) {
		switch {
		case from == Importing && to == Optimizing:
			fmt.Fprintf(stdout, "Imported %d icons.\n", pipeline.Collection().Len())
			if spinner != nil {
				spinner.Start()
			}
		case to == Sanitizing || to == Normalizing || to == Recoloring:
			if spinner != nil {
				spinner.SetMessage(progressMessage(deco, to))
			}
		case to == Exporting:
			if spinner != nil {
				spinner.Stop()
			}
			fmt.Fprintf(stdout, "Exporting collection to %s\n", pipeline.Output(source))
		case to == Failed && from != Importing && from != Exporting:
			if spinner != nil {
				spinner.StopMsg = fmt.Sprintf("%s %s\n",
					deco.Text("⚡ ICONKIT", utils.StatusMessage),
					deco.Text("build failed ✘", utils.ErrorMessage),
				)
				spinner.Stop()
			}
		}
	}

	report, err := pipeline.Run(source)
	if err != nil {
		op.printReport(stderr, deco, err)
		return err
	}
	fmt.Fprintf(stderr, "\nExecution time: %s\n", deco.Text(utils.FormatTime(report.Duration), utils.SuccessMessage))
	return nil
}

// progressMessage is the spinner text shown while the build is in state s.
func progressMessage(deco utils.Decorator, s State) string {
	return fmt.Sprintf("%s %s",
		deco.Text("⚡ ICONKIT", utils.StatusMessage),
		deco.Text(fmt.Sprintf("⇢ %s the icon collection...", strings.ToLower(s.String())), utils.DefaultMessage),
	)
}

// printReport writes the failure with every failing icon to w.
func (op *Ops) printReport(w io.Writer, deco utils.Decorator, err error) {
	fmt.Fprintf(w, "%s\n\t%s\n",
		deco.Text("Error building the icon collection:", utils.ErrorMessage),
		deco.Text(fmt.Sprintf("Reason: %v", err), utils.DefaultMessage),
	)
}
