// Package launch starts the cnv command line tool as a child process on
// behalf of a desktop front-end, wiring its arguments from user
// preferences.
package launch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"

	"github.com/SteampunkIslande/cnv-bichat/pkg/prefs"
)

// Options are the command line options of one run.
type Options struct {
	RefDir  string
	WorkDir string

	DeletionThreshold    float64
	DuplicationThreshold float64
}

// Args builds the cnv argument list for an input archive.
func (o Options) Args(archive string) []string {
	var args []string
	if o.RefDir != "" {
		args = append(args, "-refdir", o.RefDir)
	}
	if o.WorkDir != "" {
		args = append(args, "-workdir", o.WorkDir)
	}
	if o.DeletionThreshold != 0 {
		args = append(args, "-del", strconv.FormatFloat(o.DeletionThreshold, 'g', -1, 64))
	}
	if o.DuplicationThreshold != 0 {
		args = append(args, "-dup", strconv.FormatFloat(o.DuplicationThreshold, 'g', -1, 64))
	}
	return append(args, archive)
}

// Run executes the cnv binary on an archive, streaming its output.
// Cancelling the context kills the child process; artifacts already written
// are kept.
func Run(ctx context.Context, bin, archive string, opts Options) error {
	cmd := exec.CommandContext(ctx, bin, opts.Args(archive)...)
	slog.Info("Run", "CMD", cmd)
	cmd.Stderr = os.Stderr
	cmd.Stdout = os.Stdout
	return cmd.Run()
}

// RunWithPrefs executes the cnv binary with directories taken from user
// preferences and remembers the archive for the next run.
func RunWithPrefs(ctx context.Context, bin, archive string, p *prefs.Prefs) error {
	opts := Options{
		RefDir:  p.String(prefs.KeyRefDir),
		WorkDir: p.String(prefs.KeyWorkDir),
	}
	if opts.RefDir == "" || opts.WorkDir == "" {
		return fmt.Errorf("refdir and workdir preferences are required")
	}
	if err := Run(ctx, bin, archive, opts); err != nil {
		return err
	}
	p.SetString(prefs.KeyLastZip, archive)
	return p.Save()
}
